// Package email implements the two outbound transactional email channels
// used by the contact pipeline:
//
//   - the admin notification, delivered over an authenticated SMTP relay to
//     a fixed operator recipient list, and
//   - the acknowledgment ("welcome") email, delivered through the Resend
//     API to the submitter's own address.
//
// The channels are intentionally independent: they hold separate credentials,
// talk to separate providers, and fail separately. Callers treat both as
// best-effort — a failed send is logged upstream, never retried, and never
// surfaced to the submitter.
package email

import (
	"context"
	"time"
)

// Submission carries the normalized contact triple handed to a channel,
// plus the time the submission was received (rendered into the admin body).
type Submission struct {
	Name       string
	Email      string
	Message    string
	ReceivedAt time.Time
}

// Channel is a single transactional email delivery path. Send renders and
// delivers exactly one email for the submission and returns the delivery
// outcome; it must honor ctx for cancellation.
type Channel interface {
	// Name identifies the channel in logs (e.g. "smtp-admin", "resend-ack").
	Name() string
	// Send delivers one email for the given submission.
	Send(ctx context.Context, sub Submission) error
}
