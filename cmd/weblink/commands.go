package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/smnsjas/go-weblink/client"
)

// weblinkAPI is the part of *client.Client used by the commands.
type weblinkAPI interface {
	FetchListing(ctx context.Context, id int) (client.Record, error)
	FetchAllListings(ctx context.Context, opts ...client.SummaryOption) ([]client.Record, error)
	FetchAllProjects(ctx context.Context, opts ...client.SummaryOption) ([]client.Record, error)
	FetchContactInfo(ctx context.Context) (client.Record, error)
	SubmitContactMessage(ctx context.Context, msg client.ContactMessage) (any, error)
	SendFeedback(ctx context.Context, publicationID int, status client.FeedbackStatus, description string, internalID int, internalURL string) (any, error)
}

// usageError reports bad command line input.
type usageError struct {
	msg string
}

func (e *usageError) Error() string {
	return e.msg
}

func usagef(format string, args ...any) error {
	return &usageError{msg: fmt.Sprintf(format, args...)}
}

// execute runs one command against api and renders its result to out.
func execute(ctx context.Context, api weblinkAPI, command string, args []string, out, stderr io.Writer, format string) error {
	var (
		result any
		err    error
	)

	switch command {
	case "listing":
		result, err = runListing(ctx, api, args)
	case "listings":
		result, err = runSummaries(ctx, "listings", api.FetchAllListings, args, stderr)
	case "projects":
		result, err = runSummaries(ctx, "projects", api.FetchAllProjects, args, stderr)
	case "contact-info":
		if len(args) > 0 {
			return usagef("contact-info takes no arguments")
		}
		result, err = api.FetchContactInfo(ctx)
	case "contact":
		result, err = runContact(ctx, api, args, stderr)
	case "feedback":
		result, err = runFeedback(ctx, api, args, stderr)
	default:
		return usagef("unknown command %q", command)
	}
	if err != nil {
		return err
	}
	return render(out, format, result)
}

func runListing(ctx context.Context, api weblinkAPI, args []string) (any, error) {
	if len(args) != 1 {
		return nil, usagef("usage: listing <id>")
	}
	id, err := strconv.Atoi(args[0])
	if err != nil {
		return nil, usagef("invalid listing id %q", args[0])
	}
	return api.FetchListing(ctx, id)
}

type summaryFunc func(context.Context, ...client.SummaryOption) ([]client.Record, error)

func runSummaries(ctx context.Context, name string, fetch summaryFunc, args []string, stderr io.Writer) (any, error) {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(stderr)
	since := fs.String("since", "", "Only items modified since this date (e.g. 2024-01-31T00:00:00)")
	types := fs.String("types", "", "Comma separated property types")
	if err := fs.Parse(args); err != nil {
		return nil, usagef("%s: %v", name, err)
	}

	var opts []client.SummaryOption
	if *since != "" {
		opts = append(opts, client.Since(*since))
	}
	if *types != "" {
		opts = append(opts, client.PropertyTypes(splitList(*types)...))
	}
	return fetch(ctx, opts...)
}

func runContact(ctx context.Context, api weblinkAPI, args []string, stderr io.Writer) (any, error) {
	var msg client.ContactMessage
	fs := flag.NewFlagSet("contact", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.IntVar(&msg.PublicationID, "publication", 0, "Publication the message is about")
	fs.StringVar(&msg.ExternalReference, "ref", "", "External reference")
	fs.StringVar(&msg.FirstName, "first", "", "First name (required)")
	fs.StringVar(&msg.LastName, "last", "", "Last name (required)")
	fs.StringVar(&msg.Comments, "comments", "", "Message text (required)")
	fs.StringVar(&msg.Phone, "phone", "", "Phone number")
	fs.StringVar(&msg.CellPhone, "cell", "", "Cell phone number")
	fs.StringVar(&msg.Email, "email", "", "E-mail address")
	fs.StringVar(&msg.Street, "street", "", "Street")
	fs.StringVar(&msg.HouseNumber, "number", "", "House number")
	fs.StringVar(&msg.HouseNumberExtension, "ext", "", "House number extension")
	fs.StringVar(&msg.Zip, "zip", "", "Zip code")
	fs.StringVar(&msg.City, "city", "", "City")
	if err := fs.Parse(args); err != nil {
		return nil, usagef("contact: %v", err)
	}
	return api.SubmitContactMessage(ctx, msg)
}

func runFeedback(ctx context.Context, api weblinkAPI, args []string, stderr io.Writer) (any, error) {
	fs := flag.NewFlagSet("feedback", flag.ContinueOnError)
	fs.SetOutput(stderr)
	id := fs.Int("id", 0, "Publication ID (required)")
	status := fs.String("status", "", "AVAILABLE, DELETED, AGENT_NOT_ACTIVE or ERROR (required)")
	description := fs.String("description", "", "Status description")
	internalID := fs.Int("internal-id", 0, "ID of the listing on this site")
	url := fs.String("url", "", "URL of the listing on this site")
	if err := fs.Parse(args); err != nil {
		return nil, usagef("feedback: %v", err)
	}
	if *id <= 0 {
		return nil, usagef("feedback: -id is required")
	}

	s, err := client.ParseFeedbackStatus(*status)
	if err != nil {
		return nil, err
	}
	return api.SendFeedback(ctx, *id, s, *description, *internalID, *url)
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
