// Package auth provides HTTP authentication handlers for SOAP connections.
//
// # Supported Authentication Methods
//
//   - Basic: HTTP Basic authentication, what PHP's SoapClient login/password
//     options send and what Weblink expects
//   - NTLM: NT LAN Manager authentication (via github.com/Azure/go-ntlmssp)
//     for ASMX services hosted behind Windows authentication
//
// # Usage
//
//	a := auth.NewBasicAuth(auth.Credentials{
//	    Username: "agency",
//	    Password: "secret",
//	})
//	httpClient := &http.Client{Transport: a.Transport(http.DefaultTransport)}
package auth
