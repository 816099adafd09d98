package soap

import (
	"bytes"
	"encoding/xml"
	"errors"
	"fmt"
	"strings"
)

// ErrEmptyResponse is returned when the response body carries no payload element.
var ErrEmptyResponse = errors.New("soap: empty response body")

// Fault represents a SOAP fault returned by the service.
// Both SOAP 1.1 and SOAP 1.2 faults are mapped onto it.
type Fault struct {
	// Code is the fault code (e.g., "soap:Client", "soap:Server", "soap:Sender").
	Code string

	// Subcode is the SOAP 1.2 subcode, if any.
	Subcode string

	// Reason is the human-readable fault string.
	Reason string

	// Actor is the faultactor (1.1) or Role (1.2).
	Actor string

	// Detail is the raw inner XML of the detail element.
	Detail string
}

// Error implements the error interface.
func (f *Fault) Error() string {
	var parts []string
	if f.Code != "" {
		parts = append(parts, f.Code)
	}
	if f.Subcode != "" {
		parts = append(parts, f.Subcode)
	}
	if f.Reason != "" {
		parts = append(parts, f.Reason)
	}
	return "soap fault: " + strings.Join(parts, ": ")
}

// IsClientFault returns true if the fault blames the request
// (Client in SOAP 1.1, Sender in SOAP 1.2).
func (f *Fault) IsClientFault() bool {
	local := localName(f.Code)
	return local == "Client" || local == "Sender"
}

// IsServerFault returns true if the fault blames the service
// (Server in SOAP 1.1, Receiver in SOAP 1.2).
func (f *Fault) IsServerFault() bool {
	local := localName(f.Code)
	return local == "Server" || local == "Receiver"
}

// IsFault returns true if the error is a SOAP Fault.
func IsFault(err error) bool {
	var f *Fault
	return errors.As(err, &f)
}

// ParseFault parses a SOAP response and returns a Fault if present.
// Returns nil if the response does not contain a fault.
func ParseFault(data []byte) (*Fault, error) {
	// Quick check if this might be a fault
	if !bytes.Contains(data, []byte("Fault")) {
		return nil, nil
	}

	var env faultEnvelope
	if err := xml.Unmarshal(data, &env); err != nil {
		return nil, fmt.Errorf("parse fault: %w", err)
	}

	f := env.Body.Fault
	if f == nil {
		return nil, nil
	}

	// SOAP 1.1
	if f.FaultCode != "" || f.FaultString != "" {
		return &Fault{
			Code:   strings.TrimSpace(f.FaultCode),
			Reason: strings.TrimSpace(f.FaultString),
			Actor:  strings.TrimSpace(f.FaultActor),
			Detail: strings.TrimSpace(f.Detail.Content),
		}, nil
	}

	// SOAP 1.2
	if f.Code.Value == "" {
		return nil, nil
	}
	return &Fault{
		Code:    strings.TrimSpace(f.Code.Value),
		Subcode: strings.TrimSpace(f.Code.Subcode.Value),
		Reason:  strings.TrimSpace(f.Reason.Text),
		Actor:   strings.TrimSpace(f.Role),
		Detail:  strings.TrimSpace(f.Detail12.Content),
	}, nil
}

// CheckFault parses a response and returns an error if it contains a fault.
func CheckFault(data []byte) error {
	fault, err := ParseFault(data)
	if err != nil {
		return err
	}
	if fault != nil {
		return fault
	}
	return nil
}

func localName(qname string) string {
	if i := strings.LastIndexByte(qname, ':'); i >= 0 {
		return qname[i+1:]
	}
	return qname
}

// faultEnvelope is the XML structure for parsing SOAP faults of either version.
type faultEnvelope struct {
	XMLName xml.Name `xml:"Envelope"`
	Body    struct {
		Fault *struct {
			// SOAP 1.1
			FaultCode   string `xml:"faultcode"`
			FaultString string `xml:"faultstring"`
			FaultActor  string `xml:"faultactor"`
			Detail      struct {
				Content string `xml:",innerxml"`
			} `xml:"detail"`

			// SOAP 1.2
			Code struct {
				Value   string `xml:"Value"`
				Subcode struct {
					Value string `xml:"Value"`
				} `xml:"Subcode"`
			} `xml:"Code"`
			Reason struct {
				Text string `xml:"Text"`
			} `xml:"Reason"`
			Role     string `xml:"Role"`
			Detail12 struct {
				Content string `xml:",innerxml"`
			} `xml:"Detail"`
		} `xml:"Fault"`
	} `xml:"Body"`
}
