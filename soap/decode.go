package soap

import (
	"bytes"
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"strings"
)

// TextKey holds the character data of an element that also carries attributes.
const TextKey = "_"

// Decode converts the first element found in data into plain Go values.
// See DecodeElement for the mapping rules.
func Decode(data []byte) (any, error) {
	d := xml.NewDecoder(bytes.NewReader(data))
	for {
		tok, err := d.Token()
		if errors.Is(err, io.EOF) {
			return nil, ErrEmptyResponse
		}
		if err != nil {
			return nil, fmt.Errorf("decode: %w", err)
		}
		if start, ok := tok.(xml.StartElement); ok {
			return DecodeElement(d, start)
		}
	}
}

// DecodeElement converts the element opened by start into plain Go values:
//
//   - an element with child elements becomes map[string]any keyed by local name
//   - children sharing a name become []any in document order
//   - a leaf element becomes its text as a string
//   - xsi:nil="true" becomes nil
//   - attributes (other than namespace declarations and xsi:*) become map keys,
//     and the text of such an element is stored under TextKey
//
// Only maps, slices, strings and nil are produced, so the result can be
// handed to encoding/json or yaml without further conversion.
func DecodeElement(d *xml.Decoder, start xml.StartElement) (any, error) {
	var (
		children map[string]any
		attrs    map[string]any
		text     strings.Builder
		isNil    bool
	)

	for _, a := range start.Attr {
		switch {
		case a.Name.Space == "xmlns" || (a.Name.Space == "" && a.Name.Local == "xmlns"):
			continue
		case a.Name.Space == NsXsi || a.Name.Space == "xsi":
			if a.Name.Local == "nil" && (a.Value == "true" || a.Value == "1") {
				isNil = true
			}
			continue
		}
		if attrs == nil {
			attrs = make(map[string]any)
		}
		attrs[a.Name.Local] = a.Value
	}

	for {
		tok, err := d.Token()
		if err != nil {
			return nil, fmt.Errorf("decode %s: %w", start.Name.Local, err)
		}

		switch t := tok.(type) {
		case xml.StartElement:
			v, err := DecodeElement(d, t)
			if err != nil {
				return nil, err
			}
			if children == nil {
				children = make(map[string]any)
			}
			addChild(children, t.Name.Local, v)
		case xml.CharData:
			text.Write(t)
		case xml.EndElement:
			return buildValue(children, attrs, text.String(), isNil), nil
		}
	}
}

// addChild stores v under name, turning repeated names into a slice.
// Element values are never slices themselves, so a slice always means repetition.
func addChild(m map[string]any, name string, v any) {
	existing, ok := m[name]
	if !ok {
		m[name] = v
		return
	}
	if list, ok := existing.([]any); ok {
		m[name] = append(list, v)
		return
	}
	m[name] = []any{existing, v}
}

func buildValue(children, attrs map[string]any, text string, isNil bool) any {
	if isNil && children == nil {
		return nil
	}

	if children != nil {
		for k, v := range attrs {
			if _, exists := children[k]; !exists {
				children[k] = v
			}
		}
		return children
	}

	if strings.TrimSpace(text) == "" {
		text = ""
	}

	if attrs != nil {
		attrs[TextKey] = text
		return attrs
	}
	return text
}
