package auth

import (
	"errors"
	"log/slog"
	"net/http"
)

// Authenticator defines the interface for authentication handlers.
type Authenticator interface {
	// Transport wraps an http.RoundTripper with authentication.
	Transport(base http.RoundTripper) http.RoundTripper

	// Name returns the authentication scheme name.
	Name() string
}

// Credentials holds authentication credentials.
type Credentials struct {
	// Username is the user name for authentication.
	Username string

	// Password is the password for authentication.
	Password string

	// Domain is the optional domain for NTLM authentication.
	Domain string
}

// Validate checks that at least one credential field is populated.
func (c *Credentials) Validate() error {
	if c.Username == "" && c.Password == "" {
		return errors.New("username and password are empty")
	}
	return nil
}

// LogValue implements slog.LogValuer so credentials never leak into logs.
func (c Credentials) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("username", c.Username),
		slog.String("password", "[REDACTED]"),
		slog.String("domain", c.Domain),
	)
}
