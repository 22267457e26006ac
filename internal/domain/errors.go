package domain

import "errors"

// Sentinel errors shared by repos, services and the HTTP layer.
// Handlers map them onto status codes; anything else is a 500.
var (
	ErrConflict     = errors.New("conflict")
	ErrUnauthorized = errors.New("unauthorized")
	ErrNotFound     = errors.New("not found")
	ErrBadRequest   = errors.New("bad request")
)
