// Package soap implements the small slice of SOAP needed to talk to
// document/literal ASMX style services such as Weblink.
//
// This package handles envelope construction, request encoding from typed
// Go structs, fault detection, and the conversion of response payloads into
// plain Go values (map[string]any, []any and strings).
//
// # Subpackages
//
//   - auth: Authentication handlers (Basic, NTLM)
//   - transport: HTTP transport layer
//
// # Protocol Versions
//
// SOAP 1.1 is the default, matching what ASMX endpoints expect:
//
//   - Version11: text/xml content type, SOAPAction HTTP header
//   - Version12: application/soap+xml content type, action parameter
package soap
