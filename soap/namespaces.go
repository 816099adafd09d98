package soap

import "strings"

// XML Namespace URIs used in SOAP envelopes.
const (
	// NsSoap11 is the SOAP 1.1 envelope namespace.
	NsSoap11 = "http://schemas.xmlsoap.org/soap/envelope/"

	// NsSoap12 is the SOAP 1.2 envelope namespace.
	NsSoap12 = "http://www.w3.org/2003/05/soap-envelope"

	// NsXsi is the XML Schema Instance namespace.
	NsXsi = "http://www.w3.org/2001/XMLSchema-instance"

	// NsXsd is the XML Schema namespace.
	NsXsd = "http://www.w3.org/2001/XMLSchema"
)

// Content types per protocol version.
const (
	// ContentTypeSOAP11 is the content type for SOAP 1.1 messages.
	ContentTypeSOAP11 = "text/xml; charset=utf-8"

	// ContentTypeSOAP12 is the content type for SOAP 1.2 messages.
	ContentTypeSOAP12 = "application/soap+xml; charset=utf-8"
)

// Version selects the SOAP protocol version.
type Version int

const (
	// Version11 is SOAP 1.1.
	Version11 Version = iota
	// Version12 is SOAP 1.2.
	Version12
)

// String returns the version number.
func (v Version) String() string {
	if v == Version12 {
		return "1.2"
	}
	return "1.1"
}

// Namespace returns the envelope namespace for the version.
func (v Version) Namespace() string {
	if v == Version12 {
		return NsSoap12
	}
	return NsSoap11
}

// ContentType returns the HTTP content type for a request carrying the given action.
// SOAP 1.2 moves the action into the content type; SOAP 1.1 sends it as a header.
func (v Version) ContentType(action string) string {
	if v == Version12 {
		return ContentTypeSOAP12 + `; action="` + action + `"`
	}
	return ContentTypeSOAP11
}

// ActionURI joins a service namespace and an operation name the way ASMX
// services build their SOAPAction values.
func ActionURI(namespace, operation string) string {
	if namespace == "" {
		return operation
	}
	if strings.HasSuffix(namespace, "/") {
		return namespace + operation
	}
	return namespace + "/" + operation
}
