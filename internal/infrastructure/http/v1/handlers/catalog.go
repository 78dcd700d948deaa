package handlers

import (
	"github.com/gin-gonic/gin"

	"orderdesk/internal/domain/drafts"
	"orderdesk/internal/infrastructure/http/v1/dto"
)

// CatalogHandler serves the product list.
type CatalogHandler struct {
	*BaseHandler
	service *drafts.Service
}

// NewCatalogHandler creates a new catalog handler.
func NewCatalogHandler(base *BaseHandler, service *drafts.Service) *CatalogHandler {
	return &CatalogHandler{BaseHandler: base, service: service}
}

// List returns every product in configured order and the order form defaults.
// GET /api/v1/catalog/products
func (h *CatalogHandler) List(c *gin.Context) {
	h.OK(c, dto.FromCatalog(h.service.Catalog(), h.service.DefaultDeliveryDate()))
}
