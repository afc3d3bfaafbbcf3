package adapter

import "errors"

var (
	// ErrBadRequest is returned for HTTP 400 responses.
	ErrBadRequest = errors.New("bad request")
	// ErrNotFound is returned for HTTP 404 responses, which the admin API
	// also uses for unsupported methods.
	ErrNotFound = errors.New("not found")
	// ErrInternalServerError is returned for HTTP 500 responses, for example
	// when the process could not write its runtime override file.
	ErrInternalServerError = errors.New("internal server error")
	// ErrBadGateway is returned for HTTP 502 responses from a proxy in front
	// of the admin API.
	ErrBadGateway = errors.New("bad gateway")
)
