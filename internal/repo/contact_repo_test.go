package repo

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"
	"time"

	sqlite "github.com/glebarez/sqlite"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/bodhify/go-site-backend/internal/domain"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:contactrepo_%s?mode=memory&cache=shared", uuid.NewString())

	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	db.Exec("PRAGMA foreign_keys=ON;")
	if err := db.AutoMigrate(&domain.Contact{}); err != nil {
		t.Fatalf("automigrate: %v", err)
	}
	return db
}

func TestCreateContact_AssignsIDAndTimestamps(t *testing.T) {
	db := newTestDB(t)

	c, err := CreateContact(context.Background(), db, "Jane Doe", "jane@example.com", "I need a website.")
	if err != nil {
		t.Fatalf("CreateContact failed: %v", err)
	}
	if c.ID == "" {
		t.Fatalf("expected generated UUID")
	}
	if c.CreatedAt.IsZero() {
		t.Fatalf("expected CreatedAt to be set")
	}

	got, err := GetContact(context.Background(), db, c.ID)
	if err != nil {
		t.Fatalf("GetContact failed: %v", err)
	}
	if got.Email != "jane@example.com" || got.Name != "Jane Doe" {
		t.Fatalf("stored row mismatch: %+v", got)
	}
}

func TestCreateContact_DuplicateEmail_RawDBError(t *testing.T) {
	db := newTestDB(t)

	if _, err := CreateContact(context.Background(), db, "Jane", "jane@example.com", "first"); err != nil {
		t.Fatalf("first create failed: %v", err)
	}

	// Classification into a domain error happens in the service layer; here
	// the raw constraint error must surface.
	_, err := CreateContact(context.Background(), db, "Janet", "jane@example.com", "second")
	if err == nil {
		t.Fatalf("expected unique-constraint error")
	}
	if !strings.Contains(strings.ToLower(err.Error()), "unique") {
		t.Fatalf("expected a unique-constraint error, got %v", err)
	}
}

func TestGetContact_NotFound(t *testing.T) {
	db := newTestDB(t)

	_, err := GetContact(context.Background(), db, uuid.NewString())
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestCountAndListContactsPage(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()

	total, err := CountContacts(ctx, db)
	if err != nil || total != 0 {
		t.Fatalf("empty count = (%d, %v)", total, err)
	}

	base := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	for i := 0; i < 5; i++ {
		c, err := CreateContact(ctx, db, "Jane", fmt.Sprintf("jane%d@example.com", i), "message body")
		if err != nil {
			t.Fatalf("seed %d: %v", i, err)
		}
		// Distinct created_at values so the ordering assertion is stable.
		if err := db.Model(c).Update("created_at", base.Add(time.Duration(i)*time.Minute)).Error; err != nil {
			t.Fatalf("stagger %d: %v", i, err)
		}
	}

	total, err = CountContacts(ctx, db)
	if err != nil || total != 5 {
		t.Fatalf("count = (%d, %v)", total, err)
	}

	page, err := ListContactsPage(ctx, db, 0, 3)
	if err != nil {
		t.Fatalf("ListContactsPage: %v", err)
	}
	if len(page) != 3 {
		t.Fatalf("page len = %d", len(page))
	}
	// Newest first.
	for i := 1; i < len(page); i++ {
		if page[i].CreatedAt.After(page[i-1].CreatedAt) {
			t.Fatalf("page not ordered newest-first: %v then %v", page[i-1].CreatedAt, page[i].CreatedAt)
		}
	}

	rest, err := ListContactsPage(ctx, db, 3, 3)
	if err != nil {
		t.Fatalf("second page: %v", err)
	}
	if len(rest) != 2 {
		t.Fatalf("second page len = %d", len(rest))
	}
}

func TestContactsStats(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()

	count, maxTS, err := ContactsStats(ctx, db)
	if err != nil {
		t.Fatalf("stats on empty table: %v", err)
	}
	if count != 0 || maxTS != nil {
		t.Fatalf("empty stats = (%d, %v)", count, maxTS)
	}

	if _, err := CreateContact(ctx, db, "Jane", "jane@example.com", "message"); err != nil {
		t.Fatalf("seed: %v", err)
	}

	count, maxTS, err = ContactsStats(ctx, db)
	if err != nil {
		t.Fatalf("stats: %v", err)
	}
	if count != 1 || maxTS == nil || maxTS.IsZero() {
		t.Fatalf("stats = (%d, %v)", count, maxTS)
	}
}
