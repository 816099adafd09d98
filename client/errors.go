package client

import (
	"strings"
)

// ConfigurationError reports a client that cannot be used as configured,
// such as missing credentials at the first remote call.
type ConfigurationError struct {
	Reason string
}

// Error implements the error interface.
func (e *ConfigurationError) Error() string {
	return "weblink: configuration: " + e.Reason
}

// ValidationError reports input rejected before any network call was made.
type ValidationError struct {
	// Fields names the offending field(s) in declaration order.
	Fields []string

	// Message is the human-readable reason, suitable for display.
	Message string
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	return "weblink: " + e.Message
}

// TransportError reports a failure to build the transport or to complete a
// call over it. The cause is kept for errors.Is / errors.As.
type TransportError struct {
	Operation string
	Err       error
}

// Error implements the error interface.
func (e *TransportError) Error() string {
	var b strings.Builder
	b.WriteString("weblink: ")
	if e.Operation != "" {
		b.WriteString(e.Operation)
		b.WriteString(": ")
	}
	b.WriteString("transport")
	if e.Err != nil {
		b.WriteString(": ")
		b.WriteString(e.Err.Error())
	}
	return b.String()
}

// Unwrap returns the underlying cause.
func (e *TransportError) Unwrap() error {
	return e.Err
}

// RemoteCallError reports a call that reached the service but did not yield
// the expected result: a SOAP fault, or a response missing the expected field.
type RemoteCallError struct {
	Operation string
	Reason    string
	Err       error
}

// Error implements the error interface.
func (e *RemoteCallError) Error() string {
	var b strings.Builder
	b.WriteString("weblink: ")
	b.WriteString(e.Operation)
	b.WriteString(": ")
	b.WriteString(e.Reason)
	if e.Err != nil {
		b.WriteString(": ")
		b.WriteString(e.Err.Error())
	}
	return b.String()
}

// Unwrap returns the underlying cause, typically a *soap.Fault.
func (e *RemoteCallError) Unwrap() error {
	return e.Err
}
