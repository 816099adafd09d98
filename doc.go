// Package weblink is a Go client for the Skarabee Weblink SOAP service, used
// by real-estate sites to import property listings and report leads and
// listing status back.
//
// # Architecture
//
// The library is organized into layers:
//
//	┌─────────────────────────────────────────────────────────┐
//	│  client/          High-level Weblink operations         │
//	├─────────────────────────────────────────────────────────┤
//	│  soap/            Envelope, faults, encode/decode       │
//	├─────────────────────────────────────────────────────────┤
//	│  soap/transport/  HTTP transport (resty)                │
//	│  soap/auth/       Basic and NTLM authentication         │
//	└─────────────────────────────────────────────────────────┘
//
// # Quick Start
//
//	c := client.New("username", "password")
//	c.SetUserAgent("mysite/1.0")
//
//	listings, err := c.FetchAllListings(ctx, client.Since("2024-01-01T00:00:00"))
//	if err != nil {
//	    log.Fatal(err)
//	}
//	for _, l := range listings {
//	    fmt.Println(l["ID"])
//	}
//
// # Command line
//
// cmd/weblink exposes every operation from the shell and prints results as
// JSON or YAML. Configuration comes from flags, WEBLINK_* environment
// variables, a .env file or a config file (see internal/config).
package weblink
