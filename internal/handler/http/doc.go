// Package http implements the HTTP transport layer of the server.
//
// It exposes route wiring, request handlers, and middleware for the REST API
// and the live note subscription stream. Cross-cutting concerns such as
// authentication, request tracing, access logging, response compression, and
// request metrics are handled in this package before requests are delegated
// to the service layer.
package http
