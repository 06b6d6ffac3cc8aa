// Package domain defines the persistence models for contact submissions.
// These types are mapped with GORM and form the core data layer of the
// site backend.
package domain

import (
	"time"

	"gorm.io/gorm"
)

// Contact represents a single contact-form submission by a website visitor.
// Records are immutable once created: the API exposes no update or delete
// operation, and rows are kept for operational/audit purposes.
//
// Fields:
//   - ID: stable UUID primary key (char(36)), assigned by the store.
//   - Name: submitter's name, trimmed.
//   - Email: submitter's address, trimmed and lower-cased; unique so a
//     repeat submission from the same address is rejected as a duplicate.
//   - Message: free-form message body, trimmed.
//   - CreatedAt / UpdatedAt: timestamps managed by GORM.
//   - DeletedAt: soft deletion marker (retains row for audit/history).
type Contact struct {
	ID        string         `json:"id"         gorm:"type:char(36);primaryKey"`
	Name      string         `json:"name"       gorm:"type:varchar(120);not null"`
	Email     string         `json:"email"      gorm:"type:varchar(254);not null;uniqueIndex:ux_contacts_email"`
	Message   string         `json:"message"    gorm:"type:text;not null"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `json:"-"          gorm:"index"`
}

// TableName returns the database table name for Contact.
func (Contact) TableName() string { return "contacts" }
