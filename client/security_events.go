package client

import (
	"log/slog"
	"time"

	"github.com/google/uuid"
)

// NIST SP 800-92 style event types
const (
	EventAuthentication = "authentication"
	EventConnection     = "connection"
	EventCall           = "call"
)

// Security event subtypes
const (
	SubtypeConnEstablished = "established"
	SubtypeConnFailed      = "failed"
	SubtypeAuthSuccess     = "success"
	SubtypeAuthFailure     = "failure"
	SubtypeCallFault       = "fault"
)

// Security event outcomes
const (
	OutcomeSuccess = "success"
	OutcomeFailure = "failure"
	OutcomeDenied  = "denied"
)

// Security event severities
const (
	SeverityInfo    = "INFO"
	SeverityWarning = "WARNING"
	SeverityError   = "ERROR"
)

// SecurityEvent is a structured audit record.
type SecurityEvent struct {
	Timestamp string `json:"timestamp"` // ISO 8601 UTC
	EventType string `json:"event_type"`
	Subtype   string `json:"subtype"`
	Severity  string `json:"severity"`

	User          string `json:"user,omitempty"`
	Source        string `json:"source"`
	Target        string `json:"target"` // service endpoint
	CorrelationID string `json:"correlation_id"`

	Action  string         `json:"action"` // remote operation
	Outcome string         `json:"outcome"`
	Details map[string]any `json:"details,omitempty"`
}

// SecurityLogger writes security events for one Client.
type SecurityLogger struct {
	logger        *slog.Logger
	user          string
	target        string
	correlationID string
	clock         Clock
}

// NewSecurityLogger creates a logger whose events share one correlation id.
func NewSecurityLogger(logger *slog.Logger, user, target string) *SecurityLogger {
	return &SecurityLogger{
		logger:        logger,
		user:          user,
		target:        target,
		correlationID: uuid.New().String(),
		clock:         realClock{},
	}
}

// LogEvent constructs and logs a security event.
func (l *SecurityLogger) LogEvent(eventType, subtype, severity, action, outcome string, details map[string]any) {
	if l == nil || l.logger == nil {
		return
	}
	if details == nil {
		details = make(map[string]any)
	}

	event := &SecurityEvent{
		Timestamp:     l.clock.Now().UTC().Format(time.RFC3339),
		EventType:     eventType,
		Subtype:       subtype,
		Severity:      severity,
		User:          l.user,
		Source:        ProductName,
		Target:        l.target,
		CorrelationID: l.correlationID,
		Action:        action,
		Outcome:       outcome,
		Details:       details,
	}

	switch severity {
	case SeverityWarning:
		l.logger.Warn("SecurityEvent", "event", event)
	case SeverityError:
		l.logger.Error("SecurityEvent", "event", event)
	default:
		l.logger.Info("SecurityEvent", "event", event)
	}
}

// LogConnection logs transport creation events.
func (l *SecurityLogger) LogConnection(subtype, outcome, severity string, details map[string]any) {
	l.LogEvent(EventConnection, subtype, severity, "", outcome, details)
}

// LogAuthentication logs authentication events for a remote operation.
func (l *SecurityLogger) LogAuthentication(action, subtype, outcome, severity string, details map[string]any) {
	l.LogEvent(EventAuthentication, subtype, severity, action, outcome, details)
}

// LogCall logs remote call events.
func (l *SecurityLogger) LogCall(action, subtype, outcome, severity string, details map[string]any) {
	l.LogEvent(EventCall, subtype, severity, action, outcome, details)
}
