package client

import (
	"context"
	"fmt"
	"time"
)

// LastModifiedLayout is the date-time layout the service expects in LastModified.
const LastModifiedLayout = "2006-01-02T15:04:05"

// SummaryOption filters a summary feed.
type SummaryOption func(*summariesRequest)

// Since limits the feed to items modified since date, passed through as is.
func Since(date string) SummaryOption {
	return func(r *summariesRequest) {
		r.LastModified = &date
	}
}

// SinceTime limits the feed to items modified since t.
func SinceTime(t time.Time) SummaryOption {
	return Since(t.Format(LastModifiedLayout))
}

// PropertyTypes limits the feed to the given property types.
func PropertyTypes(types ...string) SummaryOption {
	return func(r *summariesRequest) {
		r.RequestedPropertyTypes = &propertyTypes{Types: append([]string{}, types...)}
	}
}

func newSummariesRequest(opts []SummaryOption) summariesRequest {
	var r summariesRequest
	for _, opt := range opts {
		opt(&r)
	}
	return r
}

// FetchListing returns the publication with the given id.
func (c *Client) FetchListing(ctx context.Context, id int) (Record, error) {
	if id <= 0 {
		return nil, &ValidationError{
			Fields:  []string{"id"},
			Message: fmt.Sprintf("publication id must be positive, got %d", id),
		}
	}

	result, err := c.invoke(ctx, OpGetPublication, getPublicationRequest{PublicationID: id})
	if err != nil {
		return nil, err
	}

	v, ok := lookup(result, "Publication")
	if !ok || v == nil {
		return nil, &RemoteCallError{
			Operation: OpGetPublication,
			Reason:    fmt.Sprintf("publication %d not found", id),
		}
	}
	pub, ok := v.(map[string]any)
	if !ok {
		return nil, &RemoteCallError{
			Operation: OpGetPublication,
			Reason:    fmt.Sprintf("unexpected publication of type %T", v),
		}
	}
	return pub, nil
}

// FetchAllListings returns the publication summary feed.
// Without options the whole feed is returned.
func (c *Client) FetchAllListings(ctx context.Context, opts ...SummaryOption) ([]Record, error) {
	result, err := c.invoke(ctx, OpGetPublicationSummaries, newSummariesRequest(opts))
	if err != nil {
		return nil, err
	}
	return recordList(OpGetPublicationSummaries, result, "PublicationSummaries", "PublicationSummary")
}

// FetchAllProjects returns the project summary feed.
func (c *Client) FetchAllProjects(ctx context.Context, opts ...SummaryOption) ([]Record, error) {
	result, err := c.invoke(ctx, OpGetProjectSummaries, newSummariesRequest(opts))
	if err != nil {
		return nil, err
	}
	return recordList(OpGetProjectSummaries, result, "ProjectPublicationSummaries", "ProjectPublicationSummary")
}

// FetchContactInfo returns the account's contact details.
func (c *Client) FetchContactInfo(ctx context.Context) (Record, error) {
	result, err := c.invoke(ctx, OpGetContactInfo, nil)
	if err != nil {
		return nil, err
	}
	return record(OpGetContactInfo, result, "UserSummaries", "UserSummary")
}

// SubmitContactMessage validates msg and sends it to the service.
// Nothing is sent when validation fails.
func (c *Client) SubmitContactMessage(ctx context.Context, msg ContactMessage) (any, error) {
	if err := msg.Validate(); err != nil {
		return nil, err
	}
	return c.invoke(ctx, OpInsertContactMes, msg.request())
}

// SendFeedback reports the status of a publication on the consuming site.
// An empty description is sent as DefaultStatusDescription.
func (c *Client) SendFeedback(ctx context.Context, publicationID int, status FeedbackStatus, description string, internalID int, internalURL string) (any, error) {
	if err := status.validate(); err != nil {
		return nil, err
	}
	if description == "" {
		description = DefaultStatusDescription
	}

	req := feedbackRequest{
		FeedbackList: feedbackListWrapper{
			FeedbackList: feedbackList{
				Feedback: feedback{
					PublicationID:     publicationID,
					Status:            string(status),
					StatusDescription: description,
					ExternalID:        internalID,
					URL:               internalURL,
				},
			},
		},
	}
	return c.invoke(ctx, OpFeedback, req)
}
