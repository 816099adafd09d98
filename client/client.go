package client

import (
	"context"
	"crypto/tls"
	"errors"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/smnsjas/go-weblink/soap"
	"github.com/smnsjas/go-weblink/soap/transport"
)

const (
	// ProductName is the first token of the User-Agent header.
	ProductName = "go-weblink"

	// Version is the library version reported in the User-Agent header.
	Version = "1.0.0"

	// DefaultEndpoint is the production Weblink service address.
	DefaultEndpoint = "http://weblink.skarabee.com/weblink.asmx"

	// DefaultNamespace is the target namespace of the Weblink operations.
	DefaultNamespace = "http://weblink.skarabee.com/"

	// DefaultTimeout is the connection timeout used when none is set.
	DefaultTimeout = 60 * time.Second
)

// Client is a high-level Weblink client.
//
// The transport is created on the first remote call and reused for the
// lifetime of the Client. Timeout and user agent changes made after that
// point are recorded but not applied to the existing transport.
//
// A Client is safe for concurrent use.
type Client struct {
	mu sync.Mutex

	username string
	password string

	timeout         time.Duration
	userAgentSuffix string

	endpoint  string
	namespace string
	authType  AuthType
	version   soap.Version

	tlsConfig          *tls.Config
	insecureSkipVerify bool

	logger   *slog.Logger
	security *SecurityLogger
	factory  TransportFactory
	clock    Clock
	callIDs  *callIDManager
	authOnce sync.Once

	transport Transport
}

// New creates a new Weblink client for the given account.
//
// Credentials are checked on the first remote call, not here.
func New(username, password string, opts ...Option) *Client {
	c := &Client{
		username:  username,
		password:  password,
		timeout:   DefaultTimeout,
		endpoint:  DefaultEndpoint,
		namespace: DefaultNamespace,
		authType:  AuthBasic,
		version:   soap.Version11,
		logger:    slog.New(slog.DiscardHandler),
		factory:   NewSOAPTransport,
		clock:     realClock{},
		callIDs:   newCallIDManager(),
	}
	for _, opt := range opts {
		opt(c)
	}
	c.security = NewSecurityLogger(c.logger, c.username, c.endpoint)
	c.security.clock = c.clock
	return c
}

// SetTimeout sets the connection timeout used when the transport is created.
// Non-positive values reset it to DefaultTimeout.
func (c *Client) SetTimeout(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.timeout = normalizeTimeout(d)
}

func normalizeTimeout(d time.Duration) time.Duration {
	if d <= 0 {
		return DefaultTimeout
	}
	return d
}

// Timeout returns the configured connection timeout.
func (c *Client) Timeout() time.Duration {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.timeout
}

// SetUserAgent sets the suffix appended to the User-Agent header.
func (c *Client) SetUserAgent(suffix string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.userAgentSuffix = suffix
}

// UserAgent returns the full User-Agent string, "go-weblink/<version> <suffix>".
func (c *Client) UserAgent() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.userAgentLocked()
}

func (c *Client) userAgentLocked() string {
	ua := ProductName + "/" + Version
	if c.userAgentSuffix != "" {
		ua += " " + c.userAgentSuffix
	}
	return ua
}

// Endpoint returns the service address.
func (c *Client) Endpoint() string {
	return c.endpoint
}

// getTransport returns the transport, creating it on first use.
func (c *Client) getTransport(operation string) (Transport, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.transport != nil {
		return c.transport, nil
	}

	if c.username == "" && c.password == "" {
		return nil, &ConfigurationError{Reason: "username and password are both empty"}
	}

	opts := TransportOptions{
		Endpoint:  c.endpoint,
		Namespace: c.namespace,
		Login:     c.username,
		Password:  c.password,
		Version:   c.version,
		Timeout:   c.timeout,
		UserAgent: c.userAgentLocked(),
		AuthType:  c.authType,
		Logger:    c.logger,

		TLSConfig:          c.tlsConfig,
		InsecureSkipVerify: c.insecureSkipVerify,
	}

	tr, err := c.factory(opts)
	if err == nil && tr == nil {
		err = errors.New("transport factory returned nil")
	}
	if err != nil {
		c.security.LogConnection(SubtypeConnFailed, OutcomeFailure, SeverityError,
			map[string]any{"error": err.Error()})
		return nil, &TransportError{Operation: operation, Err: err}
	}

	c.logger.Debug("transport created", "options", opts)
	c.security.LogConnection(SubtypeConnEstablished, OutcomeSuccess, SeverityInfo,
		map[string]any{"scheme": opts.AuthType.String(), "soap_version": opts.Version.String()})
	c.transport = tr
	return tr, nil
}

// invoke calls operation and returns the value of its "<operation>Result"
// field. A missing result field yields nil, which callers treat as empty.
func (c *Client) invoke(ctx context.Context, operation string, request any) (any, error) {
	tr, err := c.getTransport(operation)
	if err != nil {
		return nil, err
	}

	logger := c.logger.With(
		"operation", operation,
		"call_id", uuid.NewString(),
		"seq", c.callIDs.Next(),
	)
	start := c.clock.Now()
	logger.Debug("calling remote operation")

	raw, err := tr.Invoke(ctx, operation, request)
	elapsed := c.clock.Now().Sub(start)
	if err != nil {
		logger.Warn("remote operation failed", "duration", elapsed, "error", err)
		return nil, c.classify(operation, err)
	}
	logger.Debug("remote operation completed", "duration", elapsed)

	c.authOnce.Do(func() {
		c.security.LogAuthentication(operation, SubtypeAuthSuccess, OutcomeSuccess, SeverityInfo, nil)
	})

	return raw[resultField(operation)], nil
}

// classify maps an invocation failure onto the client error taxonomy and
// records the matching security event.
func (c *Client) classify(operation string, err error) error {
	var fault *soap.Fault
	switch {
	case errors.As(err, &fault):
		c.security.LogCall(operation, SubtypeCallFault, OutcomeFailure, SeverityWarning,
			map[string]any{"fault_code": fault.Code})
		return &RemoteCallError{Operation: operation, Reason: "remote fault", Err: fault}
	case errors.Is(err, transport.ErrUnauthorized):
		c.security.LogAuthentication(operation, SubtypeAuthFailure, OutcomeFailure, SeverityWarning, nil)
	case errors.Is(err, transport.ErrForbidden):
		c.security.LogAuthentication(operation, SubtypeAuthFailure, OutcomeDenied, SeverityWarning, nil)
	}
	return &TransportError{Operation: operation, Err: err}
}
