// Package handlers provides HTTP handler implementations for the public API.
//
// This file defines the response utilities used across all endpoints. Two
// body conventions coexist deliberately:
//
//   - The public form and chat endpoints answer in the exact shapes the site
//     frontend was written against: `{"error": "..."}` for failures on the
//     contact form, `{"reply": "..."}` for every outcome of the chat widget.
//   - The admin/auxiliary endpoints use the structured ErrorResponse
//     envelope with a stable machine-readable code and the request
//     correlation ID.
//
// `fail()` centralizes envelope formatting and ensures 5xx responses are
// logged with request context; `formError()` and `chatReply()` do the same
// for the frontend-facing shapes.
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/bodhify/go-site-backend/internal/http/middleware"
)

// ErrorResponse is the standard error envelope returned by admin and
// auxiliary endpoints.
//
// Fields:
//   - RequestID: correlation ID echoed from X-Request-ID, used to correlate
//     server logs with client-side errors.
//   - Code: a stable, machine-readable string (see errors.go constants).
//   - Message: a human-readable error description, safe for display.
type ErrorResponse struct {
	// Correlates server logs and client errors
	RequestID string `json:"request_id,omitempty" example:"123e4567-e89b-12d3-a456-426614174000"`
	// Stable, machine-readable code (see errors.go constants)
	Code string `json:"code" example:"not_found"`
	// Human-readable message (safe to show to users)
	Message string `json:"message" example:"resource not found"`
}

// fail aborts the request with a structured error envelope and logs
// server-side errors.
func fail(c *gin.Context, status int, code, msg string) {
	reqID := c.Writer.Header().Get("X-Request-ID")
	resp := ErrorResponse{
		RequestID: reqID,
		Code:      code,
		Message:   msg,
	}

	// Log 5xx (server-side) with request-scoped logger
	if status >= http.StatusInternalServerError {
		lg := middleware.LoggerFrom(c)
		lg.Error().
			Int("status", status).
			Str("code", code).
			Str("message", msg).
			Msg("api error")
	}

	c.AbortWithStatusJSON(status, resp)
}

// Fail is the exported variant of fail().
//
// External packages (e.g., router setup) should call Fail to return
// consistent error envelopes without directly depending on unexported helpers.
func Fail(c *gin.Context, status int, code, msg string) { fail(c, status, code, msg) }

// formError aborts the request with the `{"error": msg}` body the contact
// form frontend expects. Server-side failures are logged before responding.
func formError(c *gin.Context, status int, msg string) {
	if status >= http.StatusInternalServerError {
		lg := middleware.LoggerFrom(c)
		lg.Error().
			Int("status", status).
			Str("message", msg).
			Msg("contact form error")
	}
	c.AbortWithStatusJSON(status, gin.H{"error": msg})
}

// FormError is the exported variant of formError(), used by the router's
// NoMethod fallback to keep the frontend's 405 body shape.
func FormError(c *gin.Context, status int, msg string) { formError(c, status, msg) }

// chatReply writes a `{"reply": text}` body with the given status. The chat
// widget renders the reply field regardless of status, so even failures are
// reply-shaped.
func chatReply(c *gin.Context, status int, text string) {
	c.JSON(status, gin.H{"reply": text})
}

// ok writes a success JSON response.
func ok(c *gin.Context, status int, body any) {
	c.JSON(status, body)
}
