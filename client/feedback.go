package client

import (
	"fmt"
	"strings"
)

// FeedbackStatus is the state of a listing on the consuming site.
type FeedbackStatus string

// Feedback statuses accepted by the service.
const (
	StatusAvailable      FeedbackStatus = "AVAILABLE"
	StatusDeleted        FeedbackStatus = "DELETED"
	StatusAgentNotActive FeedbackStatus = "AGENT_NOT_ACTIVE"
	StatusError          FeedbackStatus = "ERROR"
)

// DefaultStatusDescription is sent when no description is given.
const DefaultStatusDescription = "description"

var feedbackStatuses = []FeedbackStatus{
	StatusAvailable,
	StatusDeleted,
	StatusAgentNotActive,
	StatusError,
}

// Valid reports whether s is one of the accepted statuses.
func (s FeedbackStatus) Valid() bool {
	for _, v := range feedbackStatuses {
		if s == v {
			return true
		}
	}
	return false
}

func (s FeedbackStatus) validate() error {
	if s.Valid() {
		return nil
	}
	names := make([]string, len(feedbackStatuses))
	for i, v := range feedbackStatuses {
		names[i] = string(v)
	}
	return &ValidationError{
		Fields:  []string{"status"},
		Message: fmt.Sprintf("the given status %q is not one of the following values: %s", string(s), strings.Join(names, ", ")),
	}
}

// ParseFeedbackStatus converts a case-insensitive name into a FeedbackStatus.
func ParseFeedbackStatus(name string) (FeedbackStatus, error) {
	s := FeedbackStatus(strings.ToUpper(strings.TrimSpace(name)))
	if err := s.validate(); err != nil {
		return "", err
	}
	return s, nil
}
