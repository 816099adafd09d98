package soap

import (
	"bytes"
	"encoding/xml"
	"fmt"
)

// EncodeOperation encodes a document/literal operation element.
//
// The request is a typed struct whose fields become the child elements of
// <operation xmlns="namespace">. Fields tagged omitempty are left out when
// unset, which is how optional parameters are dropped from the wire. A nil
// request encodes an empty operation element.
func EncodeOperation(namespace, operation string, request any) ([]byte, error) {
	if operation == "" {
		return nil, fmt.Errorf("encode operation: empty operation name")
	}
	if request == nil {
		request = struct{}{}
	}

	var buf bytes.Buffer
	enc := xml.NewEncoder(&buf)
	start := xml.StartElement{Name: xml.Name{Space: namespace, Local: operation}}
	if err := enc.EncodeElement(request, start); err != nil {
		return nil, fmt.Errorf("encode %s: %w", operation, err)
	}
	if err := enc.Flush(); err != nil {
		return nil, fmt.Errorf("encode %s: %w", operation, err)
	}
	return buf.Bytes(), nil
}
