// Package services – ContactService
//
// This file implements ContactService, the application-level component that
// owns the contact-submission pipeline. It validates and normalizes the
// inbound triple (name, email, message), persists the submission through the
// repo layer, and classifies persistence failures into stable service errors
// so handlers can map them to HTTP results consistently.
//
// Validation is deliberately re-run here even when the transport layer has
// already checked the payload: the service does not trust its callers.
//
// Observability: Submit is OpenTelemetry-instrumented; spans carry the
// generated contact id on success.
package services

import (
	"context"
	"errors"
	"regexp"
	"strings"
	"time"
	"unicode/utf8"

	"gorm.io/gorm"

	"github.com/bodhify/go-site-backend/internal/domain"
	"github.com/bodhify/go-site-backend/internal/repo"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
)

const (
	// defaultMaxMessageRunes caps the stored message body.
	defaultMaxMessageRunes = 5000
	// minMessageRunes rejects single-character noise submissions.
	minMessageRunes = 2
)

// emailRE matches the local@domain.tld shape the contact form accepts:
// a run without whitespace or '@', an '@', a domain run, a literal dot,
// and a TLD run. Anything stricter belongs to an email-verification flow,
// not a marketing form.
var emailRE = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// ContactService implements the contact-submission use case: validate,
// normalize, persist. Notification dispatch is a separate concern handled
// by NotificationService after persistence has succeeded.
type ContactService struct {
	// DB is the GORM handle used for persistence.
	DB *gorm.DB

	// MaxMessageRunes caps the message body by rune length; values <= 0
	// fall back to the default.
	MaxMessageRunes int
}

// Submit validates and persists a contact submission, returning the stored
// record with its generated identifier.
//
// Semantics and validation:
//   - name, email, and message are trimmed; any of them empty afterwards
//     yields ErrMissingFields.
//   - email must match local@domain.tld; otherwise ErrInvalidEmail. On
//     success it is stored lower-cased.
//   - message must carry meaningful content (>= 2 runes) and fit the
//     configured cap; otherwise ErrMessageTooShort / ErrMessageTooLong.
//   - A stored contact per email address is unique; a violation of the DB
//     constraint yields ErrDuplicateContact.
//
// Submit is not idempotent: each successful call creates a new record. The
// only dedup in place is the email uniqueness constraint above.
//
// Errors: the sentinel errors above for predictable cases, or the raw DB
// error for unexpected persistence failures.
func (s *ContactService) Submit(ctx context.Context, name, email, message string) (*domain.Contact, error) {
	tr := otel.Tracer("services/ContactService")
	ctx, span := tr.Start(ctx, "Submit")
	defer span.End()

	name = strings.TrimSpace(name)
	email = strings.TrimSpace(email)
	message = strings.TrimSpace(message)

	if name == "" || email == "" || message == "" {
		return nil, ErrMissingFields
	}
	if !emailRE.MatchString(email) {
		return nil, ErrInvalidEmail
	}
	email = strings.ToLower(email)

	if utf8.RuneCountInString(message) < minMessageRunes {
		return nil, ErrMessageTooShort
	}
	max := s.MaxMessageRunes
	if max <= 0 {
		max = defaultMaxMessageRunes
	}
	if utf8.RuneCountInString(message) > max {
		return nil, ErrMessageTooLong
	}

	c, err := repo.CreateContact(ctx, s.DB, name, email, message)
	if err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) || isDuplicate(err) {
			return nil, ErrDuplicateContact
		}
		return nil, err
	}

	span.SetAttributes(attribute.String("contact.id", c.ID))
	return c, nil
}

// ListPage returns one page of stored submissions ordered newest-first,
// along with the total number of submissions. page is 1-based; callers are
// expected to clamp both arguments to sane bounds.
func (s *ContactService) ListPage(ctx context.Context, page, pageSize int) ([]domain.Contact, int64, error) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 {
		pageSize = 1
	}
	total, err := repo.CountContacts(ctx, s.DB)
	if err != nil {
		return nil, 0, err
	}
	items, err := repo.ListContactsPage(ctx, s.DB, (page-1)*pageSize, pageSize)
	if err != nil {
		return nil, 0, err
	}
	return items, total, nil
}

// Stats returns the submission count and the latest update timestamp, which
// handlers use to derive weak ETags for conditional listing.
func (s *ContactService) Stats(ctx context.Context) (int64, *time.Time, error) {
	return repo.ContactsStats(ctx, s.DB)
}

// isDuplicate attempts to detect unique-constraint violations across drivers
// that may not map to gorm.ErrDuplicatedKey.
func isDuplicate(err error) bool {
	// SQLite typically: "UNIQUE constraint failed"
	// Postgres typically: "duplicate key value violates unique constraint"
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "unique constraint") ||
		strings.Contains(msg, "duplicate key")
}
