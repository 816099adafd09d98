package soap

import (
	"context"
	"encoding/xml"
	"errors"
	"fmt"

	"github.com/smnsjas/go-weblink/soap/transport"
)

// Poster sends a serialized envelope and returns the raw response body.
// *transport.HTTPTransport implements it.
type Poster interface {
	Post(ctx context.Context, url, action, contentType string, body []byte) ([]byte, error)
}

// Client calls document/literal operations on a single SOAP endpoint.
type Client struct {
	endpoint  string
	namespace string
	version   Version
	header    []byte
	poster    Poster
}

// ClientOption configures a Client.
type ClientOption func(*Client)

// WithVersion selects the SOAP protocol version (default Version11).
func WithVersion(v Version) ClientOption {
	return func(c *Client) {
		c.version = v
	}
}

// WithHeader sets raw header content sent with every envelope.
func WithHeader(content []byte) ClientOption {
	return func(c *Client) {
		c.header = content
	}
}

// NewClient creates a new SOAP client.
func NewClient(endpoint, namespace string, poster Poster, opts ...ClientOption) *Client {
	c := &Client{
		endpoint:  endpoint,
		namespace: namespace,
		version:   Version11,
		poster:    poster,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Endpoint returns the service address.
func (c *Client) Endpoint() string {
	return c.endpoint
}

// Version returns the SOAP protocol version in use.
func (c *Client) Version() Version {
	return c.version
}

// Call invokes operation with the typed request and returns the children of
// the <operation>Response element as plain values, so the payload of an
// operation is found under the "<operation>Result" key.
//
// A SOAP fault is returned as *Fault, also when it arrives with HTTP 500.
func (c *Client) Call(ctx context.Context, operation string, request any) (map[string]any, error) {
	payload, err := EncodeOperation(c.namespace, operation, request)
	if err != nil {
		return nil, err
	}

	env := NewEnvelope(c.version).
		WithHeader(c.header).
		WithBody(payload)

	respBody, err := c.sendEnvelope(ctx, ActionURI(c.namespace, operation), env)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", operation, err)
	}

	result, err := decodeResponse(respBody)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", operation, err)
	}
	return result, nil
}

// sendEnvelope marshals and sends a SOAP envelope, returning the response body.
func (c *Client) sendEnvelope(ctx context.Context, action string, env *Envelope) ([]byte, error) {
	body, err := env.Marshal()
	if err != nil {
		return nil, fmt.Errorf("marshal envelope: %w", err)
	}

	header := action
	if c.version == Version12 {
		header = ""
	}

	respBody, err := c.poster.Post(ctx, c.endpoint, header, c.version.ContentType(action), body)
	if err != nil {
		// ASMX services report faults with HTTP 500
		var statusErr *transport.StatusError
		if errors.As(err, &statusErr) {
			if fault, _ := ParseFault(statusErr.Body); fault != nil {
				return nil, fault
			}
		}
		return nil, err
	}

	// Check for SOAP Fault even in successful HTTP responses
	if err := CheckFault(respBody); err != nil {
		return nil, err
	}

	return respBody, nil
}

// decodeResponse extracts the payload element of the body and converts it.
func decodeResponse(data []byte) (map[string]any, error) {
	var env responseEnvelope
	if err := xml.Unmarshal(data, &env); err != nil {
		return nil, fmt.Errorf("parse response: %w", err)
	}

	v, err := Decode(env.Body.Content)
	if errors.Is(err, ErrEmptyResponse) {
		return map[string]any{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("parse response: %w", err)
	}

	switch t := v.(type) {
	case map[string]any:
		return t, nil
	case nil:
		return map[string]any{}, nil
	case string:
		if t == "" {
			return map[string]any{}, nil
		}
	}
	return nil, fmt.Errorf("parse response: unexpected payload %T", v)
}
