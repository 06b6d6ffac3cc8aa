package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/bodhify/go-site-backend/internal/catalog"
)

// ListServicesResponse wraps the published service catalog.
type ListServicesResponse struct {
	Services   []catalog.Service  `json:"services"`
	Categories []catalog.Category `json:"categories"`
}

// ListServices godoc
// @ID          listServices
// @Summary     List the service catalog
// @Description Returns the published services alongside the category index.
// @Description An optional category filter narrows the service list.
// @Tags        Catalog
// @Produce     json
//
// @Param       category  query  string  false  "Category id to filter by"
//
// @Success     200  {object}  handlers.ListServicesResponse
// @Router      /services [get]
func (h *Handlers) ListServices(c *gin.Context) {
	items := catalog.Services()
	if cat := c.Query("category"); cat != "" && cat != "all" {
		items = catalog.ServicesByCategory(cat)
	}
	ok(c, http.StatusOK, ListServicesResponse{
		Services:   items,
		Categories: catalog.Categories(),
	})
}

// GetService godoc
// @ID          getService
// @Summary     Get a single catalog service
// @Tags        Catalog
// @Produce     json
//
// @Param       id  path  string  true  "Service id"
//
// @Success     200  {object}  catalog.Service
// @Failure     404  {object}  handlers.ErrorResponse "Unknown service id"
// @Router      /services/{id} [get]
func (h *Handlers) GetService(c *gin.Context) {
	svc, found := catalog.ServiceByID(c.Param("id"))
	if !found {
		fail(c, http.StatusNotFound, ErrCodeNotFound, "service not found")
		return
	}
	ok(c, http.StatusOK, svc)
}
