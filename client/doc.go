// Package client provides the high-level API for the Weblink SOAP service.
//
// It handles:
//   - Lazy, once-only creation of the SOAP transport
//   - Building each operation's request in the shape Weblink expects
//   - Validating contact messages and feedback statuses before any call
//   - Normalizing responses into plain maps and slices
//
// # Quick Start
//
//	c := client.New("agency", "secret",
//	    client.WithUserAgent("my-site/2.1"),
//	)
//
//	listings, err := c.FetchAllListings(ctx, client.Since("2024-01-01T00:00:00"))
//	if err != nil {
//	    log.Fatal(err)
//	}
//	for _, l := range listings {
//	    fmt.Println(l["ID"])
//	}
//
// # Errors
//
// Every failure is one of *ConfigurationError, *ValidationError,
// *TransportError or *RemoteCallError; match them with errors.As.
package client
