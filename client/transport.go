package client

import (
	"context"
	"crypto/tls"
	"fmt"
	"log/slog"
	"net/url"
	"time"

	"github.com/smnsjas/go-weblink/soap"
	"github.com/smnsjas/go-weblink/soap/auth"
	"github.com/smnsjas/go-weblink/soap/transport"
)

// Transport invokes a named remote operation.
//
// The request is one of this package's typed request structs; the returned
// map holds the children of the operation's response element, so the payload
// lives under "<operation>Result".
type Transport interface {
	Invoke(ctx context.Context, operation string, request any) (map[string]any, error)
}

// TransportFactory builds the Transport on the first remote call.
type TransportFactory func(opts TransportOptions) (Transport, error)

// AuthType specifies the HTTP authentication mechanism.
type AuthType int

const (
	// AuthBasic uses HTTP Basic authentication.
	AuthBasic AuthType = iota
	// AuthNTLM uses NTLM authentication.
	AuthNTLM
)

// String returns the authentication scheme name.
func (a AuthType) String() string {
	if a == AuthNTLM {
		return "NTLM"
	}
	return "Basic"
}

// TransportOptions is the configuration snapshot handed to a TransportFactory.
// It is taken once, when the transport is created.
type TransportOptions struct {
	Endpoint  string
	Namespace string
	Login     string
	Password  string
	Version   soap.Version
	Timeout   time.Duration
	UserAgent string
	AuthType  AuthType
	Logger    *slog.Logger

	TLSConfig          *tls.Config
	InsecureSkipVerify bool
}

// LogValue implements slog.LogValuer so the password never leaks into logs.
func (o TransportOptions) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("endpoint", o.Endpoint),
		slog.String("login", o.Login),
		slog.String("soap_version", o.Version.String()),
		slog.Duration("timeout", o.Timeout),
		slog.String("user_agent", o.UserAgent),
		slog.String("scheme", o.AuthType.String()),
		slog.Bool("insecure_skip_verify", o.InsecureSkipVerify),
	)
}

// soapTransport adapts soap.Client to the Transport interface.
type soapTransport struct {
	client *soap.Client
}

// NewSOAPTransport is the default TransportFactory: SOAP over HTTP with
// Basic or NTLM authentication.
func NewSOAPTransport(opts TransportOptions) (Transport, error) {
	u, err := url.Parse(opts.Endpoint)
	if err != nil {
		return nil, fmt.Errorf("parse endpoint: %w", err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return nil, fmt.Errorf("parse endpoint: unsupported scheme %q", u.Scheme)
	}
	if u.Host == "" {
		return nil, fmt.Errorf("parse endpoint: missing host in %q", opts.Endpoint)
	}

	creds := auth.Credentials{
		Username: opts.Login,
		Password: opts.Password,
	}

	var authenticator auth.Authenticator
	switch opts.AuthType {
	case AuthNTLM:
		authenticator = auth.NewNTLMAuth(creds)
	default:
		authenticator = auth.NewBasicAuth(creds).WithLogger(opts.Logger)
	}

	tr := transport.NewHTTPTransport(
		transport.WithLogger(opts.Logger),
		transport.WithTimeout(opts.Timeout),
		transport.WithUserAgent(opts.UserAgent),
		transport.WithTLSConfig(opts.TLSConfig),
		transport.WithInsecureSkipVerify(opts.InsecureSkipVerify),
		transport.WithAuthenticator(authenticator),
	)

	return &soapTransport{
		client: soap.NewClient(opts.Endpoint, opts.Namespace, tr, soap.WithVersion(opts.Version)),
	}, nil
}

// Invoke implements Transport.
func (t *soapTransport) Invoke(ctx context.Context, operation string, request any) (map[string]any, error) {
	return t.client.Call(ctx, operation, request)
}
