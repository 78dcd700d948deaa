package handlers

import (
	"github.com/gin-gonic/gin"

	"orderdesk/internal/domain/drafts"
	"orderdesk/internal/infrastructure/http/v1/dto"
)

// PricingHandler quotes prices without a draft.
type PricingHandler struct {
	*BaseHandler
	service *drafts.Service
}

// NewPricingHandler creates a new pricing handler.
func NewPricingHandler(base *BaseHandler, service *drafts.Service) *PricingHandler {
	return &PricingHandler{BaseHandler: base, service: service}
}

// Quote prices a product, quantity and discount.
// POST /api/v1/pricing
func (h *PricingHandler) Quote(c *gin.Context) {
	var req dto.PricingRequest
	if !h.BindJSON(c, &req) {
		return
	}

	price, err := h.service.Quote(c.Request.Context(), req.Product, req.Quantity, req.DiscountPercent)
	if err != nil {
		h.Error(c, err)
		return
	}

	h.OK(c, dto.FromPriceResult(price))
}
