// Package services defines the business logic for contact submissions,
// notification dispatch, and the chat assistant proxy. This file centralizes
// common service-level error values so that they can be consistently returned
// by service methods and checked by callers.
//
// These errors are intended for internal use by the service layer; translation
// into user-facing messages or HTTP status codes is performed at the
// handler layer.
package services

import "errors"

// Contact-related errors.
var (
	// ErrMissingFields is returned when name, email, or message is absent
	// or empty after trimming.
	ErrMissingFields = errors.New("all fields are required")

	// ErrInvalidEmail is returned when the email does not match the
	// expected local@domain.tld shape.
	ErrInvalidEmail = errors.New("invalid email address")

	// ErrMessageTooShort is returned when the message carries no meaningful
	// content after trimming.
	ErrMessageTooShort = errors.New("message is too short")

	// ErrMessageTooLong is returned when the message exceeds the maximum
	// accepted length.
	ErrMessageTooLong = errors.New("message is too long")

	// ErrDuplicateContact is returned when a submission reuses an email
	// address that already has a stored contact record.
	ErrDuplicateContact = errors.New("contact already exists")
)

// Assistant-related errors.
var (
	// ErrMissingAPIKey is returned when no provider credential is configured
	// for the chat assistant; no outbound call is attempted in that case.
	ErrMissingAPIKey = errors.New("provider API key is missing")

	// ErrEmptyMessage is returned when a chat request contains an empty
	// message after trimming.
	ErrEmptyMessage = errors.New("message is empty")

	// ErrMessageTooLarge is returned when a chat message exceeds the
	// maximum accepted prompt length.
	ErrMessageTooLarge = errors.New("message too long")
)
