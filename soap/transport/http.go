package transport

import (
	"context"
	"crypto/tls"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/smnsjas/go-weblink/soap/auth"
)

// ErrUnauthorized is returned when the server responds with 401 Unauthorized.
// Use errors.Is(err, ErrUnauthorized) to check for authentication failures.
var ErrUnauthorized = errors.New("transport: authentication failed (401 Unauthorized)")

// ErrForbidden is returned when the server responds with 403 Forbidden.
var ErrForbidden = errors.New("transport: access denied (403 Forbidden)")

const (
	// DefaultTimeout is the default HTTP request timeout.
	DefaultTimeout = 60 * time.Second

	// maxBodyPreview caps the response body kept in StatusError messages.
	maxBodyPreview = 3000
)

// StatusError is returned for HTTP responses with a status code of 400 or above
// that are not mapped to a sentinel error.
type StatusError struct {
	StatusCode int
	Body       []byte
}

// Error implements the error interface.
func (e *StatusError) Error() string {
	preview := string(e.Body)
	if len(preview) > maxBodyPreview {
		preview = preview[:maxBodyPreview] + "..."
	}
	return fmt.Sprintf("transport: HTTP %d: %s", e.StatusCode, preview)
}

// HTTPTransport handles HTTP/HTTPS communication for SOAP calls.
type HTTPTransport struct {
	client   *resty.Client
	base     *http.Transport
	logger   *slog.Logger
	insecure bool
}

// HTTPTransportOption configures an HTTPTransport.
type HTTPTransportOption func(*HTTPTransport)

// NewHTTPTransport creates a new HTTP transport with the given options.
func NewHTTPTransport(opts ...HTTPTransportOption) *HTTPTransport {
	base := &http.Transport{
		Proxy: http.ProxyFromEnvironment,
		TLSClientConfig: &tls.Config{
			MinVersion: tls.VersionTLS12,
		},
		// NTLM authenticates the connection, so keep it alive between calls
		DisableKeepAlives:   false,
		MaxIdleConns:        10,
		MaxIdleConnsPerHost: 4,
		IdleConnTimeout:     90 * time.Second,
	}

	t := &HTTPTransport{
		base:   base,
		client: resty.New().SetTransport(base).SetTimeout(DefaultTimeout),
		logger: slog.Default(),
	}

	for _, opt := range opts {
		opt(t)
	}

	if t.insecure {
		if t.base.TLSClientConfig == nil {
			t.base.TLSClientConfig = &tls.Config{MinVersion: tls.VersionTLS12}
		}
		t.base.TLSClientConfig.InsecureSkipVerify = true
		t.logger.Warn("TLS certificate verification disabled; use only for testing")
	}
	return t
}

// WithTimeout sets the HTTP client timeout. Non-positive values keep
// DefaultTimeout.
func WithTimeout(d time.Duration) HTTPTransportOption {
	return func(t *HTTPTransport) {
		if d > 0 {
			t.client.SetTimeout(d)
		}
	}
}

// WithUserAgent sets the User-Agent header sent with every request.
func WithUserAgent(ua string) HTTPTransportOption {
	return func(t *HTTPTransport) {
		if ua != "" {
			t.client.SetHeader("User-Agent", ua)
		}
	}
}

// WithLogger sets the logger used for transport warnings.
func WithLogger(logger *slog.Logger) HTTPTransportOption {
	return func(t *HTTPTransport) {
		if logger != nil {
			t.logger = logger
		}
	}
}

// WithInsecureSkipVerify configures TLS to skip certificate verification.
// It applies on top of any WithTLSConfig, whatever the option order.
// WARNING: Only use this for testing. Never use in production.
func WithInsecureSkipVerify(skip bool) HTTPTransportOption {
	return func(t *HTTPTransport) {
		t.insecure = skip
	}
}

// WithTLSConfig sets a custom TLS configuration. The transport keeps a copy.
// NOTE: MinVersion is enforced to be at least TLS 1.2 for security.
func WithTLSConfig(cfg *tls.Config) HTTPTransportOption {
	return func(t *HTTPTransport) {
		if cfg == nil {
			return
		}
		cfg = cfg.Clone()
		if cfg.MinVersion < tls.VersionTLS12 {
			cfg.MinVersion = tls.VersionTLS12
		}
		t.base.TLSClientConfig = cfg
	}
}

// WithAuthenticator wraps the underlying round tripper with authentication.
func WithAuthenticator(a auth.Authenticator) HTTPTransportOption {
	return func(t *HTTPTransport) {
		if a != nil {
			t.client.SetTransport(a.Transport(t.base))
		}
	}
}

// Post sends a SOAP request and returns the response body.
// action is sent as the SOAPAction header when non-empty.
func (t *HTTPTransport) Post(ctx context.Context, url, action, contentType string, body []byte) ([]byte, error) {
	req := t.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", contentType)
	if len(body) > 0 {
		req.SetBody(body)
	}
	if action != "" {
		req.SetHeader("SOAPAction", `"`+action+`"`)
	}

	resp, err := req.Post(url)
	if err != nil {
		return nil, fmt.Errorf("transport: request failed: %w", err)
	}

	switch code := resp.StatusCode(); {
	case code == http.StatusUnauthorized:
		return nil, ErrUnauthorized
	case code == http.StatusForbidden:
		return nil, ErrForbidden
	case code >= 400:
		return nil, &StatusError{StatusCode: code, Body: resp.Body()}
	}

	return resp.Body(), nil
}

// Timeout returns the configured request timeout.
func (t *HTTPTransport) Timeout() time.Duration {
	return t.client.GetClient().Timeout
}

// UserAgent returns the configured User-Agent header.
func (t *HTTPTransport) UserAgent() string {
	return t.client.Header.Get("User-Agent")
}
