package adapter

import "errors"

// Sentinel errors produced by mapHTTPError. Callers match them with
// [errors.Is]; the wrapped message carries the server's response body.
var (
	ErrBadRequest          = errors.New("bad request")
	ErrUnauthorized        = errors.New("client unauthorized")
	ErrForbidden           = errors.New("forbidden")
	ErrNotFound            = errors.New("not found")
	ErrConflict            = errors.New("conflict")
	ErrBadGateway          = errors.New("bad gateway")
	ErrInternalServerError = errors.New("internal server error")

	// ErrStreamClosed is reported through a watch's onError callback when
	// the server closes the stream.
	ErrStreamClosed = errors.New("watch stream closed")
)
