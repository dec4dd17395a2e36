package prompts

import (
	"errors"
	"net/http"
)

// Domain errors for prompt operations.
var (
	ErrNotFound     = errors.New("prompt not found")
	ErrUnauthorized = errors.New("prompt does not belong to the acting user")
	ErrConstraint   = errors.New("prompt violates a storage constraint")
)

// MapHTTPStatus maps prompt domain errors to appropriate HTTP status codes.
// ErrUnauthorized maps to 401 rather than 403.
func MapHTTPStatus(err error) int {
	if errors.Is(err, ErrNotFound) {
		return http.StatusNotFound
	}
	if errors.Is(err, ErrUnauthorized) {
		return http.StatusUnauthorized
	}
	if errors.Is(err, ErrConstraint) {
		return http.StatusConflict
	}
	return http.StatusInternalServerError
}
