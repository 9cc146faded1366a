package content

import (
	"net/http"

	"github.com/08Abhinay/portfolio/common"
	"github.com/gin-gonic/gin"
)

type ContentHandler struct {
	catalog *Catalog
}

func NewContentHandler(c *Catalog) *ContentHandler {
	return &ContentHandler{catalog: c}
}

// List handles GET /api/sections and returns every section in page order.
func (h *ContentHandler) List(c *gin.Context) {
	c.JSON(http.StatusOK, h.catalog.List())
}

// Get handles GET /api/sections/:id.
func (h *ContentHandler) Get(c *gin.Context) {
	s, ok := h.catalog.Get(c.Param("id"))
	if !ok {
		c.JSON(http.StatusNotFound, common.APIError{Message: "section not found"})
		return
	}

	c.JSON(http.StatusOK, s)
}
