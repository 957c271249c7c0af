// Package http implements the HTTP transport layer of the application.
//
// It exposes route wiring, request handlers, and middleware used by the REST
// API: request tracing, access logging, response compression, bearer token
// authentication and per-caller rate limiting. Handlers decode JSON bodies,
// delegate to the service layer and map service errors to status codes.
package http
