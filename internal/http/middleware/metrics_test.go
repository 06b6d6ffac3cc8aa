package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestMetrics_CountersInflightAndPathFallback(t *testing.T) {
	gin.SetMode(gin.TestMode)

	r := gin.New()
	r.Use(Metrics())

	// Parameterized route: the path label must be the route template,
	// not the concrete URL, to keep cardinality bounded.
	r.GET("/services/:id", func(c *gin.Context) {
		c.String(http.StatusOK, "web-development")
	})
	// Status-only response keeps size at -1, which the size histogram skips.
	r.POST("/contact", func(c *gin.Context) {
		c.Status(http.StatusNoContent)
	})

	// Baselines guard against other tests sharing the default registry.
	baseSvc := testutil.ToFloat64(httpReqs.WithLabelValues("GET", "/services/:id", "200"))
	base404 := testutil.ToFloat64(httpReqs.WithLabelValues("GET", "/nope", "404"))

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/services/web-development", nil))
	if w.Code != http.StatusOK {
		t.Fatalf("GET /services/web-development -> %d", w.Code)
	}

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/nope", nil))
	if w.Code != http.StatusNotFound {
		t.Fatalf("GET /nope -> %d", w.Code)
	}

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/contact", nil))
	if w.Code != http.StatusNoContent {
		t.Fatalf("POST /contact -> %d", w.Code)
	}

	// Matched route is labeled with the template.
	gotSvc := testutil.ToFloat64(httpReqs.WithLabelValues("GET", "/services/:id", "200"))
	if gotSvc != baseSvc+1 {
		t.Fatalf("counter /services/:id 200 = %v; want %v", gotSvc, baseSvc+1)
	}

	// Unmatched route falls back to the raw URL path.
	got404 := testutil.ToFloat64(httpReqs.WithLabelValues("GET", "/nope", "404"))
	if got404 != base404+1 {
		t.Fatalf("counter 404 fallback = %v; want %v", got404, base404+1)
	}

	if inFlight := testutil.ToFloat64(httpInflight); inFlight != 0 {
		t.Fatalf("httpInflight = %v; want 0 after requests complete", inFlight)
	}
}
