// Package handlers defines HTTP-layer error codes used by the enveloped
// (admin/auxiliary) API endpoints.
//
// The public form and chat endpoints do not use these codes: their bodies
// are fixed by the frontend contract (see response.go). Everything else maps
// failures to an HTTP status plus one of these stable, machine-readable
// codes so clients can branch programmatically.
package handlers

const (
	ErrCodeBadRequest   = "bad_request"
	ErrCodeUnauthorized = "unauthorized"
	ErrCodeNotFound     = "not_found"
	ErrCodeInternal     = "internal_error"

	// Domain-specific:
	ErrCodeListFailed       = "list_failed"
	ErrCodeMethodNotAllowed = "method_not_allowed"
)
