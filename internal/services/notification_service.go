// Package services – NotificationService
//
// This file implements the best-effort notification fan-out that follows a
// successful contact submission: one operator-facing notification and one
// acknowledgment back to the submitter, carried over two independent email
// channels.
//
// The dispatch is settle-all, not fail-fast: both sends are started
// concurrently, both are allowed to finish, and each outcome is recorded
// individually. A failure on one channel never cancels the other, and no
// failure is ever raised to the caller — the contact flow's visible success
// depends only on persistence, never on delivery.
package services

import (
	"context"
	"sync"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/bodhify/go-site-backend/internal/domain"
	"github.com/bodhify/go-site-backend/internal/email"
)

// Outcome records the settled result of one channel's delivery attempt.
type Outcome struct {
	Channel string
	Err     error
}

// NotificationService fans a persisted submission out to the configured
// email channels. It is safe for concurrent use.
type NotificationService struct {
	// Admin is the operator-notification channel (fixed recipient list).
	Admin email.Channel
	// Ack is the acknowledgment channel (recipient = submitter).
	Ack email.Channel

	// Logger overrides the package-global logger; used by tests.
	Logger *zerolog.Logger
}

// Dispatch attempts both deliveries for the given contact and blocks until
// both have settled. Failures are logged per channel and returned as
// outcomes for observability, but Dispatch itself never fails: by the time
// it runs, the submission is already durable and the response to the
// visitor must not depend on email delivery.
//
// Deliveries share the caller's ctx, so an aborted request still bounds
// both sends; neither send can cancel the other.
func (s *NotificationService) Dispatch(ctx context.Context, c *domain.Contact) []Outcome {
	tr := otel.Tracer("services/NotificationService")
	ctx, span := tr.Start(ctx, "Dispatch",
		trace.WithAttributes(attribute.String("contact.id", c.ID)),
	)
	defer span.End()

	sub := email.Submission{
		Name:       c.Name,
		Email:      c.Email,
		Message:    c.Message,
		ReceivedAt: c.CreatedAt,
	}

	channels := make([]email.Channel, 0, 2)
	if s.Admin != nil {
		channels = append(channels, s.Admin)
	}
	if s.Ack != nil {
		channels = append(channels, s.Ack)
	}

	outcomes := make([]Outcome, len(channels))
	var wg sync.WaitGroup
	for i, ch := range channels {
		wg.Add(1)
		go func(i int, ch email.Channel) {
			defer wg.Done()
			outcomes[i] = Outcome{Channel: ch.Name(), Err: ch.Send(ctx, sub)}
		}(i, ch)
	}
	wg.Wait()

	lg := s.logger()
	for _, out := range outcomes {
		if out.Err != nil {
			lg.Error().
				Str("channel", out.Channel).
				Str("contact_id", c.ID).
				Err(out.Err).
				Msg("notification delivery failed")
		}
	}
	return outcomes
}

func (s *NotificationService) logger() *zerolog.Logger {
	if s.Logger != nil {
		return s.Logger
	}
	return &log.Logger
}
