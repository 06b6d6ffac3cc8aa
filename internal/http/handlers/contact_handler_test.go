package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/bodhify/go-site-backend/internal/domain"
	"github.com/bodhify/go-site-backend/internal/services"
)

// ---------- flexible service stubs ----------

type stubContactSvc struct {
	submit   func(context.Context, string, string, string) (*domain.Contact, error)
	listPage func(context.Context, int, int) ([]domain.Contact, int64, error)
	stats    func(context.Context) (int64, *time.Time, error)
}

func (s stubContactSvc) Submit(ctx context.Context, name, email, message string) (*domain.Contact, error) {
	if s.submit != nil {
		return s.submit(ctx, name, email, message)
	}
	return &domain.Contact{ID: "id-1", Name: name, Email: email, Message: message}, nil
}

func (s stubContactSvc) ListPage(ctx context.Context, page, pageSize int) ([]domain.Contact, int64, error) {
	if s.listPage != nil {
		return s.listPage(ctx, page, pageSize)
	}
	return nil, 0, nil
}

func (s stubContactSvc) Stats(ctx context.Context) (int64, *time.Time, error) {
	if s.stats != nil {
		return s.stats(ctx)
	}
	return 0, nil, nil
}

type stubNotifySvc struct {
	calls    int
	lastID   string
	outcomes []services.Outcome
}

func (s *stubNotifySvc) Dispatch(ctx context.Context, c *domain.Contact) []services.Outcome {
	s.calls++
	s.lastID = c.ID
	return s.outcomes
}

type stubAssistantSvc struct {
	reply func(context.Context, string) (string, error)
}

func (s stubAssistantSvc) Reply(ctx context.Context, message string) (string, error) {
	if s.reply != nil {
		return s.reply(ctx, message)
	}
	return "stub reply", nil
}

// ---------- helpers ----------

func newContactRouter(contact ContactService, notify NotificationService, adminToken string) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	h := New(contact, notify, stubAssistantSvc{}, adminToken)
	r.POST("/api/contact", h.SubmitContact)
	r.GET("/api/contacts", h.ListContacts)
	return r
}

func postJSON(t *testing.T, r *gin.Engine, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	raw, err := json.Marshal(body)
	if err != nil {
		t.Fatalf("marshal body: %v", err)
	}
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(raw))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)
	return w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var out map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &out); err != nil {
		t.Fatalf("invalid JSON body %q: %v", w.Body.String(), err)
	}
	return out
}

// ---------- SubmitContact ----------

func TestSubmitContact_Success(t *testing.T) {
	notify := &stubNotifySvc{outcomes: []services.Outcome{
		{Channel: "smtp-admin"},
		{Channel: "resend-ack"},
	}}
	r := newContactRouter(stubContactSvc{}, notify, "")

	w := postJSON(t, r, "/api/contact", SubmitContactRequest{
		Name: "Jane", Email: "jane@example.com", Message: "I need a website.",
	})

	if w.Code != http.StatusCreated {
		t.Fatalf("status = %d, body = %s", w.Code, w.Body.String())
	}
	body := decodeBody(t, w)
	if body["message"] != "Contact form submitted successfully" {
		t.Fatalf("message = %v", body["message"])
	}
	if body["id"] != "id-1" {
		t.Fatalf("id = %v", body["id"])
	}
	if notify.calls != 1 || notify.lastID != "id-1" {
		t.Fatalf("notification dispatch not triggered: calls=%d id=%s", notify.calls, notify.lastID)
	}
}

func TestSubmitContact_Success_EvenWhenAllNotificationsFail(t *testing.T) {
	notify := &stubNotifySvc{outcomes: []services.Outcome{
		{Channel: "smtp-admin", Err: errors.New("smtp down")},
		{Channel: "resend-ack", Err: errors.New("resend down")},
	}}
	r := newContactRouter(stubContactSvc{}, notify, "")

	w := postJSON(t, r, "/api/contact", SubmitContactRequest{
		Name: "Jane", Email: "jane@example.com", Message: "I need a website.",
	})
	if w.Code != http.StatusCreated {
		t.Fatalf("delivery failures must not fail the request; status = %d", w.Code)
	}
}

func TestSubmitContact_MalformedJSON(t *testing.T) {
	r := newContactRouter(stubContactSvc{}, &stubNotifySvc{}, "")

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/contact", strings.NewReader("{not json"))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d", w.Code)
	}
	if got := decodeBody(t, w)["error"]; got != "Invalid request body" {
		t.Fatalf("error = %v", got)
	}
}

func TestSubmitContact_ValidationErrorBodies(t *testing.T) {
	notify := &stubNotifySvc{}
	cases := []struct {
		svcErr     error
		wantStatus int
		wantBody   string
	}{
		{services.ErrMissingFields, http.StatusBadRequest, "All fields are required"},
		{services.ErrInvalidEmail, http.StatusBadRequest, "Please enter a valid email address"},
		{services.ErrMessageTooShort, http.StatusBadRequest, "Message is too short"},
		{services.ErrMessageTooLong, http.StatusBadRequest, "Message is too long"},
		{services.ErrDuplicateContact, http.StatusConflict, "A contact with this email already exists"},
		{errors.New("disk full"), http.StatusInternalServerError, "Internal server error. Please try again later."},
	}
	for _, tc := range cases {
		svc := stubContactSvc{submit: func(context.Context, string, string, string) (*domain.Contact, error) {
			return nil, tc.svcErr
		}}
		r := newContactRouter(svc, notify, "")

		w := postJSON(t, r, "/api/contact", SubmitContactRequest{
			Name: "Jane", Email: "jane@example.com", Message: "hello",
		})
		if w.Code != tc.wantStatus {
			t.Fatalf("%v: status = %d; want %d", tc.svcErr, w.Code, tc.wantStatus)
		}
		if got := decodeBody(t, w)["error"]; got != tc.wantBody {
			t.Fatalf("%v: error = %v; want %q", tc.svcErr, got, tc.wantBody)
		}
	}
	// No failed submission may trigger notifications.
	if notify.calls != 0 {
		t.Fatalf("notifications dispatched on failed submissions: %d", notify.calls)
	}
}

// ---------- ListContacts ----------

func seededContactSvc(n int) stubContactSvc {
	ts := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	return stubContactSvc{
		listPage: func(_ context.Context, page, pageSize int) ([]domain.Contact, int64, error) {
			out := make([]domain.Contact, 0, pageSize)
			for i := 0; i < pageSize && (page-1)*pageSize+i < n; i++ {
				out = append(out, domain.Contact{ID: fmt.Sprintf("id-%d", (page-1)*pageSize+i)})
			}
			return out, int64(n), nil
		},
		stats: func(context.Context) (int64, *time.Time, error) {
			return int64(n), &ts, nil
		},
	}
}

func getContacts(t *testing.T, r *gin.Engine, path, token, inm string) *httptest.ResponseRecorder {
	t.Helper()
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	if token != "" {
		req.Header.Set("X-Admin-Token", token)
	}
	if inm != "" {
		req.Header.Set("If-None-Match", inm)
	}
	r.ServeHTTP(w, req)
	return w
}

func TestListContacts_RequiresToken(t *testing.T) {
	r := newContactRouter(seededContactSvc(5), &stubNotifySvc{}, "s3cret")

	// Missing token
	if w := getContacts(t, r, "/api/contacts", "", ""); w.Code != http.StatusUnauthorized {
		t.Fatalf("missing token: status = %d", w.Code)
	}
	// Wrong token
	if w := getContacts(t, r, "/api/contacts", "wrong", ""); w.Code != http.StatusUnauthorized {
		t.Fatalf("wrong token: status = %d", w.Code)
	}
}

func TestListContacts_DisabledWithoutConfiguredToken(t *testing.T) {
	// Empty configured token disables the listing even with an empty header.
	r := newContactRouter(seededContactSvc(5), &stubNotifySvc{}, "")
	if w := getContacts(t, r, "/api/contacts", "", ""); w.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d", w.Code)
	}
}

func TestListContacts_PaginationEnvelope(t *testing.T) {
	r := newContactRouter(seededContactSvc(5), &stubNotifySvc{}, "s3cret")

	w := getContacts(t, r, "/api/contacts?page=2&page_size=2", "s3cret", "")
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", w.Code, w.Body.String())
	}

	var resp ListContactsResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(resp.Contacts) != 2 {
		t.Fatalf("contacts = %d", len(resp.Contacts))
	}
	p := resp.Pagination
	if p.Page != 2 || p.PageSize != 2 || p.Total != 5 || p.TotalPages != 3 || !p.HasNext {
		t.Fatalf("pagination = %+v", p)
	}
}

func TestListContacts_ClampsPaginationParams(t *testing.T) {
	var gotPage, gotSize int
	svc := seededContactSvc(5)
	inner := svc.listPage
	svc.listPage = func(ctx context.Context, page, pageSize int) ([]domain.Contact, int64, error) {
		gotPage, gotSize = page, pageSize
		return inner(ctx, page, pageSize)
	}
	r := newContactRouter(svc, &stubNotifySvc{}, "s3cret")

	if w := getContacts(t, r, "/api/contacts?page=-3&page_size=9999", "s3cret", ""); w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}
	if gotPage != 1 || gotSize != 100 {
		t.Fatalf("clamped to page=%d size=%d; want 1/100", gotPage, gotSize)
	}
}

func TestListContacts_ETagAndNotModified(t *testing.T) {
	r := newContactRouter(seededContactSvc(5), &stubNotifySvc{}, "s3cret")

	w := getContacts(t, r, "/api/contacts", "s3cret", "")
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}
	etag := w.Header().Get("ETag")
	if !strings.HasPrefix(etag, `W/"contacts:5:`) {
		t.Fatalf("etag = %q", etag)
	}

	// Replay with the ETag: 304, no body.
	w2 := getContacts(t, r, "/api/contacts", "s3cret", etag)
	if w2.Code != http.StatusNotModified {
		t.Fatalf("status = %d; want 304", w2.Code)
	}
	if w2.Body.Len() != 0 {
		t.Fatalf("304 must have no body, got %q", w2.Body.String())
	}
}

func TestListContacts_ListFailure(t *testing.T) {
	svc := stubContactSvc{
		listPage: func(context.Context, int, int) ([]domain.Contact, int64, error) {
			return nil, 0, errors.New("db gone")
		},
		stats: func(context.Context) (int64, *time.Time, error) {
			return 0, nil, errors.New("db gone")
		},
	}
	r := newContactRouter(svc, &stubNotifySvc{}, "s3cret")

	w := getContacts(t, r, "/api/contacts", "s3cret", "")
	if w.Code != http.StatusInternalServerError {
		t.Fatalf("status = %d", w.Code)
	}
	var resp ErrorResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if resp.Code != ErrCodeListFailed {
		t.Fatalf("code = %q", resp.Code)
	}
}
