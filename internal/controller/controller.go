package controller

import (
	"net/http"

	"github.com/lshigami/Quokka/internal/service"
)

// statusFromError maps the service error taxonomy onto HTTP status codes.
// Provider failures (unavailable or malformed output) stay 500 with the raw
// detail surfaced, so the caller always sees that a generation failed.
func statusFromError(err error) int {
	switch {
	case service.IsInvalidInput(err):
		return http.StatusBadRequest
	case service.IsUnauthenticated(err):
		return http.StatusUnauthorized
	case service.IsForbidden(err):
		return http.StatusForbidden
	case service.IsNotFound(err):
		return http.StatusNotFound
	case service.IsConflict(err):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}
