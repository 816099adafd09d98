package soap

import (
	"encoding/xml"
)

// Envelope represents an outgoing SOAP envelope.
type Envelope struct {
	XMLName xml.Name `xml:"soap:Envelope"`

	// Namespace declarations
	NsSoap string `xml:"xmlns:soap,attr"`
	NsXsi  string `xml:"xmlns:xsi,attr"`
	NsXsd  string `xml:"xmlns:xsd,attr"`

	Header *Header `xml:"soap:Header,omitempty"`
	Body   *Body   `xml:"soap:Body"`
}

// Header represents the SOAP header. Weblink does not use header blocks but
// other ASMX services put their credentials there.
type Header struct {
	Content []byte `xml:",innerxml"`
}

// Body represents the SOAP body.
type Body struct {
	Content []byte `xml:",innerxml"`
}

// NewEnvelope creates a new envelope for the given protocol version.
func NewEnvelope(version Version) *Envelope {
	return &Envelope{
		NsSoap: version.Namespace(),
		NsXsi:  NsXsi,
		NsXsd:  NsXsd,
		Body:   &Body{},
	}
}

// WithHeader sets the raw SOAP header content.
func (e *Envelope) WithHeader(content []byte) *Envelope {
	if len(content) == 0 {
		e.Header = nil
		return e
	}
	e.Header = &Header{Content: content}
	return e
}

// WithBody sets the SOAP body content.
func (e *Envelope) WithBody(content []byte) *Envelope {
	e.Body.Content = content
	return e
}

// Marshal serializes the envelope to XML, including the XML declaration.
func (e *Envelope) Marshal() ([]byte, error) {
	data, err := xml.Marshal(e)
	if err != nil {
		return nil, err
	}
	return append([]byte(xml.Header), data...), nil
}

// responseEnvelope is the XML structure for reading any SOAP response,
// regardless of the prefix or version the server used.
type responseEnvelope struct {
	XMLName xml.Name `xml:"Envelope"`
	Body    struct {
		Content []byte `xml:",innerxml"`
	} `xml:"Body"`
}
