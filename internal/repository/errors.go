// Package repository defines the MySQL data access layer and the sentinel
// error values shared across repositories.  The sentinels let handlers map
// failure scenarios onto HTTP status codes without inspecting SQL errors.
package repository

import "errors"

// ErrNotFound is returned when the requested record does not exist.
// Handlers should translate this into an HTTP 404 response.
var ErrNotFound = errors.New("not found")
