package client

import (
	"crypto/tls"
	"log/slog"
	"time"

	"github.com/smnsjas/go-weblink/soap"
)

// Option configures a Client.
type Option func(*Client)

// WithEndpoint overrides the service address.
func WithEndpoint(endpoint string) Option {
	return func(c *Client) {
		if endpoint != "" {
			c.endpoint = endpoint
		}
	}
}

// WithNamespace overrides the target namespace of the operations.
func WithNamespace(namespace string) Option {
	return func(c *Client) {
		if namespace != "" {
			c.namespace = namespace
		}
	}
}

// WithAuthType selects Basic (default) or NTLM authentication.
func WithAuthType(a AuthType) Option {
	return func(c *Client) {
		c.authType = a
	}
}

// WithSOAPVersion selects the SOAP protocol version (default SOAP 1.1).
func WithSOAPVersion(v soap.Version) Option {
	return func(c *Client) {
		c.version = v
	}
}

// WithLogger sets the logger. By default nothing is logged.
func WithLogger(logger *slog.Logger) Option {
	return func(c *Client) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// WithTransportFactory replaces the default SOAP transport.
func WithTransportFactory(f TransportFactory) Option {
	return func(c *Client) {
		if f != nil {
			c.factory = f
		}
	}
}

// WithTimeout sets the initial connection timeout. Non-positive values keep
// DefaultTimeout.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		c.timeout = normalizeTimeout(d)
	}
}

// WithTLSConfig sets the TLS configuration used for https endpoints.
func WithTLSConfig(cfg *tls.Config) Option {
	return func(c *Client) {
		c.tlsConfig = cfg
	}
}

// WithInsecureSkipVerify disables TLS certificate verification.
// Only use this against test servers.
func WithInsecureSkipVerify(skip bool) Option {
	return func(c *Client) {
		c.insecureSkipVerify = skip
	}
}

// WithUserAgent sets the initial User-Agent suffix.
func WithUserAgent(suffix string) Option {
	return func(c *Client) {
		c.userAgentSuffix = suffix
	}
}

// withClock injects a clock (tests only).
func withClock(clock Clock) Option {
	return func(c *Client) {
		c.clock = clock
	}
}
