package adapter

import "errors"

// Sentinel transport errors, one per API status the backend is known to
// return. mapHTTPError wraps the server-supplied message around the matching
// sentinel so callers can branch with errors.Is instead of string matching.
var (
	ErrBadRequest          = errors.New("bad request")
	ErrUnauthorized        = errors.New("unauthorized")
	ErrForbidden           = errors.New("forbidden")
	ErrNotFound            = errors.New("not found")
	ErrConflict            = errors.New("conflict")
	ErrBadGateway          = errors.New("bad gateway")
	ErrInternalServerError = errors.New("internal server error")
)
