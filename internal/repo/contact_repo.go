// Package repo implements the data persistence layer for domain entities,
// backed by GORM. This file provides repository functions for the Contact
// model.
//
// All functions are context-aware and accept a *gorm.DB handle, making them
// safe for use within transactions or connection-scoped operations.
// They follow the "thin repository" approach: no business logic, only CRUD
// persistence and query composition.
//
// Error semantics:
//   - Duplicate submissions (same email) rely on the database unique
//     constraint and are returned as a raw DB error. The service layer
//     translates that into a domain error (services.ErrDuplicateContact).
//   - When a contact is not found, functions return gorm.ErrRecordNotFound
//     (also exported here as ErrNotFound for convenience).
//   - On other DB errors (connectivity, constraints, etc.), the raw gorm
//     error is propagated.
package repo

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/bodhify/go-site-backend/internal/domain"
)

// ErrNotFound is returned when a requested record does not exist.
// It aliases gorm.ErrRecordNotFound for consistency across the service
// layer and handlers.
var ErrNotFound = gorm.ErrRecordNotFound

// CreateContact inserts a new Contact row with the given, already normalized,
// submission fields. The contact ID is a randomly generated UUID (string),
// and CreatedAt is set to UTC.
//
// On success, it returns the persisted Contact. On failure, it returns a DB
// error; a unique-constraint violation on email surfaces as the driver's raw
// error and is classified by the caller.
func CreateContact(ctx context.Context, db *gorm.DB, name, email, message string) (*domain.Contact, error) {
	c := &domain.Contact{
		ID:        uuid.NewString(),
		Name:      name,
		Email:     email,
		Message:   message,
		CreatedAt: time.Now().UTC(),
	}
	if err := db.WithContext(ctx).Create(c).Error; err != nil {
		return nil, err
	}
	return c, nil
}

// GetContact fetches a single contact by its ID. If the record does not
// exist, it returns ErrNotFound. On other DB errors, the raw error is
// returned.
func GetContact(ctx context.Context, db *gorm.DB, id string) (*domain.Contact, error) {
	var c domain.Contact
	err := db.WithContext(ctx).
		Where("id = ?", id).
		First(&c).Error
	if err != nil {
		return nil, err
	}
	return &c, nil
}

// CountContacts returns the total number of stored submissions.
// On DB error, it returns the error.
func CountContacts(ctx context.Context, db *gorm.DB) (int64, error) {
	var total int64
	err := db.WithContext(ctx).
		Model(&domain.Contact{}).
		Count(&total).Error
	return total, err
}

// ListContactsPage returns a paginated slice of contacts, ordered by
// creation time descending (most recent first). Use CountContacts to obtain
// the total for pagination metadata. On DB error, it returns the error.
//
// The caller is responsible for computing offset and limit (e.g., (page-1)*pageSize).
func ListContactsPage(ctx context.Context, db *gorm.DB, offset, limit int) ([]domain.Contact, error) {
	var out []domain.Contact
	err := db.WithContext(ctx).
		Order("created_at desc").
		Offset(offset).
		Limit(limit).
		Find(&out).Error
	return out, err
}
