// Package http implements the HTTP transport of the note-sync store server.
//
// It exposes route wiring, request handlers and middleware for the document,
// blob, watch and account endpoints. Cross-cutting concerns such as
// authentication, request tracing, access logging and response compression
// are handled here before requests reach the service layer.
package http
