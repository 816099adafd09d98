// Package transport provides the HTTP transport for SOAP calls.
//
// The transport layer handles:
//   - HTTP/HTTPS connections (via github.com/go-resty/resty/v2)
//   - TLS configuration
//   - Authentication round trippers
//   - Mapping HTTP status codes to errors
package transport
