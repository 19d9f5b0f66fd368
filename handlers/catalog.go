package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"homeserve/catalog"
)

// CatalogHandler serves the static service and slot reference data.
type CatalogHandler struct {
	Catalog catalog.Catalog
	Logger  *zap.Logger
}

func NewCatalogHandler(cat catalog.Catalog, logger *zap.Logger) *CatalogHandler {
	return &CatalogHandler{Catalog: cat, Logger: logger}
}

// ListServicesHandler handles GET /api/services. An optional "category"
// query parameter narrows the result.
func (h *CatalogHandler) ListServicesHandler(c *gin.Context) {
	if category := c.Query("category"); category != "" {
		c.JSON(http.StatusOK, h.Catalog.ServicesByCategory(category))
		return
	}
	c.JSON(http.StatusOK, h.Catalog.Services())
}

// GetServiceByIDHandler handles GET /api/services/:id.
func (h *CatalogHandler) GetServiceByIDHandler(c *gin.Context) {
	id := c.Param("id")
	svc, ok := h.Catalog.ServiceByID(id)
	if !ok {
		h.Logger.Warn("service not found", zap.String("serviceID", id))
		c.JSON(http.StatusNotFound, gin.H{"error": "service not found"})
		return
	}
	c.JSON(http.StatusOK, svc)
}

// ListCategoriesHandler handles GET /api/services/categories.
func (h *CatalogHandler) ListCategoriesHandler(c *gin.Context) {
	c.JSON(http.StatusOK, h.Catalog.Categories())
}

// ListSlotsHandler handles GET /api/slots.
func (h *CatalogHandler) ListSlotsHandler(c *gin.Context) {
	c.JSON(http.StatusOK, h.Catalog.Slots())
}
