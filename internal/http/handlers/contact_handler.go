// Contact HTTP handlers.
//
// This file exposes the contact-form pipeline and the admin listing:
//   - POST /api/contact    (submit; public, frontend body contract)
//   - GET  /api/contacts   (admin listing, paginated, ETag support)
//
// Handlers are transport-thin: they validate input, call application
// services, and translate results into HTTP responses. The submit flow is
// strictly ordered: validation and persistence fail the request, the
// notification fan-out never does.
package handlers

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/bodhify/go-site-backend/internal/domain"
	"github.com/bodhify/go-site-backend/internal/services"
	"github.com/bodhify/go-site-backend/internal/utils"
)

// Bodies the site frontend matches on. Do not reword without changing the
// frontend.
const (
	msgAllFieldsRequired = "All fields are required"
	msgInvalidEmail      = "Please enter a valid email address"
	msgDuplicateContact  = "A contact with this email already exists"
	msgInternalError     = "Internal server error. Please try again later."
	msgMethodNotAllowed  = "Method not allowed"
	msgInvalidBody       = "Invalid request body"
	msgSubmitted         = "Contact form submitted successfully"
)

// MethodNotAllowedBody is the fixed message the router's NoMethod fallback
// returns; the frontend shows it verbatim.
const MethodNotAllowedBody = msgMethodNotAllowed

//
// Service contracts (context-aware)
//

// ContactService defines the submission pipeline operations consumed by
// HTTP handlers.
//
// Implementations should be safe for concurrent use and must honor the
// provided context for cancellation and timeouts.
type ContactService interface {
	// Submit validates, normalizes, and persists a contact submission.
	Submit(ctx context.Context, name, email, message string) (*domain.Contact, error)
	// ListPage returns a page of stored submissions and the total count.
	ListPage(ctx context.Context, page, pageSize int) ([]domain.Contact, int64, error)
	// Stats returns the submission count and the most recent update time,
	// used for conditional responses.
	Stats(ctx context.Context) (int64, *time.Time, error)
}

// NotificationService defines the best-effort fan-out that follows a
// successful submission. Dispatch blocks until both channels settle but
// never fails.
type NotificationService interface {
	Dispatch(ctx context.Context, c *domain.Contact) []services.Outcome
}

// AssistantService defines the chat-widget proxy operation.
type AssistantService interface {
	// Reply forwards a visitor message to the provider and returns its reply.
	Reply(ctx context.Context, message string) (string, error)
}

//
// Handler wiring
//

// Handlers groups HTTP endpoints for the contact pipeline, the chat proxy,
// and the service catalog. It depends on abstract service interfaces to keep
// transport concerns separate from business logic.
type Handlers struct {
	contactSvc   ContactService
	notifySvc    NotificationService
	assistantSvc AssistantService
	adminToken   string
}

// New constructs and returns a Handlers instance bound to the given
// services. adminToken guards the admin listing; an empty token disables it.
func New(contactSvc ContactService, notifySvc NotificationService, assistantSvc AssistantService, adminToken string) *Handlers {
	return &Handlers{
		contactSvc:   contactSvc,
		notifySvc:    notifySvc,
		assistantSvc: assistantSvc,
		adminToken:   adminToken,
	}
}

//
// DTOs
//

// SubmitContactRequest is the JSON payload of the contact form.
type SubmitContactRequest struct {
	Name    string `json:"name" example:"Jane Doe"`
	Email   string `json:"email" example:"jane@example.com"`
	Message string `json:"message" example:"Hello, I need a website."`
}

// SubmitContactResponse confirms a stored submission.
type SubmitContactResponse struct {
	Message string `json:"message" example:"Contact form submitted successfully"`
	ID      string `json:"id" example:"141add05-4415-4938-b5a1-17e0d3171aff"`
}

// Pagination carries pagination metadata for list responses.
type Pagination struct {
	Page       int   `json:"page"`
	PageSize   int   `json:"page_size"`
	Total      int64 `json:"total"`
	TotalPages int   `json:"total_pages"`
	HasNext    bool  `json:"has_next"`
}

// ListContactsResponse wraps a page of submissions and pagination
// information.
type ListContactsResponse struct {
	Contacts   []domain.Contact `json:"contacts"`
	Pagination Pagination       `json:"pagination"`
}

//
// Helpers
//

// clampPagination parses and bounds page and page_size query params to sane
// defaults and limits, returning (page, pageSize).
func clampPagination(c *gin.Context) (page, pageSize int) {
	const (
		defaultPage     = 1
		defaultPageSize = 20
		maxPageSize     = 100
	)
	page = utils.AtoiDefault(c.Query("page"), defaultPage)
	if page < 1 {
		page = 1
	}
	pageSize = utils.AtoiDefault(c.Query("page_size"), defaultPageSize)
	if pageSize < 1 {
		pageSize = 1
	}
	if pageSize > maxPageSize {
		pageSize = maxPageSize
	}
	return
}

//
// Handlers
//

// SubmitContact godoc
// @ID          submitContact
// @Summary     Submit the contact form
// @Description Validates and stores a contact submission, then triggers the
// @Description admin and acknowledgment emails best-effort.
// @Tags        Contact
// @Accept      json
// @Produce     json
//
// @Param       body  body  handlers.SubmitContactRequest  true  "Contact form payload"
//
// @Success     201  {object}  handlers.SubmitContactResponse
// @Failure     400  {object}  map[string]string "Validation failure"
// @Failure     405  {object}  map[string]string "Method not allowed"
// @Failure     409  {object}  map[string]string "Email already submitted"
// @Failure     500  {object}  map[string]string "Internal error"
// @Router      /contact [post]
func (h *Handlers) SubmitContact(c *gin.Context) {
	var req SubmitContactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		formError(c, http.StatusBadRequest, msgInvalidBody)
		return
	}

	contact, err := h.contactSvc.Submit(c.Request.Context(), req.Name, req.Email, req.Message)
	if err != nil {
		switch err {
		case services.ErrMissingFields:
			formError(c, http.StatusBadRequest, msgAllFieldsRequired)
		case services.ErrInvalidEmail:
			formError(c, http.StatusBadRequest, msgInvalidEmail)
		case services.ErrMessageTooShort, services.ErrMessageTooLong:
			formError(c, http.StatusBadRequest, sentence(err))
		case services.ErrDuplicateContact:
			formError(c, http.StatusConflict, msgDuplicateContact)
		default:
			formError(c, http.StatusInternalServerError, msgInternalError)
		}
		return
	}

	// Persistence succeeded; the emails are best-effort. Dispatch settles
	// both channels so failures land in this request's logs, but its
	// outcome cannot change the response.
	if h.notifySvc != nil {
		h.notifySvc.Dispatch(c.Request.Context(), contact)
	}

	ok(c, http.StatusCreated, SubmitContactResponse{
		Message: msgSubmitted,
		ID:      contact.ID,
	})
}

// ListContacts godoc
// @ID          listContacts
// @Summary     List contact submissions (admin, paginated)
// @Description Returns a page of stored submissions. Supports weak ETag via If-None-Match and may return 304.
// @Tags        Contact
// @Produce     json
//
// @Param       X-Admin-Token  header  string  true  "Admin shared secret"
// @Param       If-None-Match  header  string  false "Return 304 if ETag matches"
// @Param       page           query   int     false "Page number"     minimum(1) default(1)
// @Param       page_size      query   int     false "Items per page"  minimum(1) maximum(100) default(20)
//
// @Success     200  {object} handlers.ListContactsResponse
// @Header      200  {string} ETag "Weak ETag for current result"
// @Success     304  {string} string "Not Modified"
// @Failure     401  {object} handlers.ErrorResponse "Missing or wrong token"
// @Failure     500  {object} handlers.ErrorResponse "Internal error"
// @Router      /contacts [get]
func (h *Handlers) ListContacts(c *gin.Context) {
	if h.adminToken == "" || c.GetHeader("X-Admin-Token") != h.adminToken {
		fail(c, http.StatusUnauthorized, ErrCodeUnauthorized, "admin token required")
		return
	}

	ctx := c.Request.Context()
	page, pageSize := clampPagination(c)

	// ETag pre-check (best effort).
	if count, maxTS, err := h.contactSvc.Stats(ctx); err == nil {
		var ts int64
		if maxTS != nil {
			ts = maxTS.Unix()
		}
		etag := fmt.Sprintf(`W/"contacts:%d:%d"`, count, ts)
		c.Header("ETag", etag)
		if inm := c.GetHeader("If-None-Match"); inm != "" && inm == etag {
			c.Status(http.StatusNotModified)
			return
		}
	}

	items, total, err := h.contactSvc.ListPage(ctx, page, pageSize)
	if err != nil {
		fail(c, http.StatusInternalServerError, ErrCodeListFailed, err.Error())
		return
	}

	totalPages := int((total + int64(pageSize) - 1) / int64(pageSize))
	resp := ListContactsResponse{
		Contacts: items,
		Pagination: Pagination{
			Page:       page,
			PageSize:   pageSize,
			Total:      total,
			TotalPages: totalPages,
			HasNext:    page < totalPages,
		},
	}
	ok(c, http.StatusOK, resp)
}

// sentence upper-cases the first byte of an error message for display.
func sentence(err error) string {
	msg := err.Error()
	if msg == "" {
		return msg
	}
	if msg[0] >= 'a' && msg[0] <= 'z' {
		return string(msg[0]-'a'+'A') + msg[1:]
	}
	return msg
}
