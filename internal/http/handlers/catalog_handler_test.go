package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/bodhify/go-site-backend/internal/catalog"
)

func newCatalogRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	h := New(stubContactSvc{}, &stubNotifySvc{}, stubAssistantSvc{}, "")
	r.GET("/api/services", h.ListServices)
	r.GET("/api/services/:id", h.GetService)
	return r
}

func getPath(t *testing.T, r *gin.Engine, path string) *httptest.ResponseRecorder {
	t.Helper()
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	r.ServeHTTP(w, req)
	return w
}

func TestListServices_All(t *testing.T) {
	r := newCatalogRouter()

	w := getPath(t, r, "/api/services")
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}
	var resp ListServicesResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(resp.Services) != len(catalog.Services()) {
		t.Fatalf("services = %d; want %d", len(resp.Services), len(catalog.Services()))
	}
	if len(resp.Categories) != len(catalog.Categories()) {
		t.Fatalf("categories = %d; want %d", len(resp.Categories), len(catalog.Categories()))
	}
}

func TestListServices_CategoryFilter(t *testing.T) {
	r := newCatalogRouter()

	w := getPath(t, r, "/api/services?category=development")
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}
	var resp ListServicesResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(resp.Services) != 1 || resp.Services[0].ID != "website-development" {
		t.Fatalf("filtered services = %+v", resp.Services)
	}

	// "all" is the frontend's no-filter sentinel.
	w = getPath(t, r, "/api/services?category=all")
	resp = ListServicesResponse{}
	_ = json.Unmarshal(w.Body.Bytes(), &resp)
	if len(resp.Services) != len(catalog.Services()) {
		t.Fatalf("category=all should return everything, got %d", len(resp.Services))
	}

	// Unknown category filters down to nothing, not an error.
	w = getPath(t, r, "/api/services?category=nope")
	if w.Code != http.StatusOK {
		t.Fatalf("unknown category: status = %d", w.Code)
	}
	resp = ListServicesResponse{}
	_ = json.Unmarshal(w.Body.Bytes(), &resp)
	if len(resp.Services) != 0 {
		t.Fatalf("unknown category should be empty, got %d", len(resp.Services))
	}
}

func TestGetService(t *testing.T) {
	r := newCatalogRouter()

	w := getPath(t, r, "/api/services/website-development")
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}
	var svc catalog.Service
	if err := json.Unmarshal(w.Body.Bytes(), &svc); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if svc.ID != "website-development" || svc.Category != "development" {
		t.Fatalf("service = %+v", svc)
	}
}

func TestGetService_Unknown(t *testing.T) {
	r := newCatalogRouter()

	w := getPath(t, r, "/api/services/no-such-service")
	if w.Code != http.StatusNotFound {
		t.Fatalf("status = %d", w.Code)
	}
	var resp ErrorResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if resp.Code != ErrCodeNotFound {
		t.Fatalf("code = %q", resp.Code)
	}
}
