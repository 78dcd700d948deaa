package handlers

import (
	"github.com/gin-gonic/gin"

	"orderdesk/internal/domain/drafts"
	"orderdesk/internal/infrastructure/http/v1/dto"
)

// InvoiceHandler serves generated invoices and their share links.
type InvoiceHandler struct {
	*BaseHandler
	service *drafts.Service
}

// NewInvoiceHandler creates a new invoice handler.
func NewInvoiceHandler(base *BaseHandler, service *drafts.Service) *InvoiceHandler {
	return &InvoiceHandler{BaseHandler: base, service: service}
}

// Last returns the most recent invoice text.
// GET /api/v1/invoices/last
func (h *InvoiceHandler) Last(c *gin.Context) {
	text, err := h.service.LastInvoice(c.Request.Context())
	if err != nil {
		h.Error(c, err)
		return
	}

	h.OK(c, dto.LastInvoiceResponse{Invoice: text})
}

// Share builds wa.me links for the customer and the default numbers.
// POST /api/v1/share
func (h *InvoiceHandler) Share(c *gin.Context) {
	var req dto.ShareRequest
	if !h.BindJSON(c, &req) {
		return
	}

	result, err := h.service.Share(c.Request.Context(), req.ToServiceRequest())
	if err != nil {
		h.Error(c, err)
		return
	}

	h.OK(c, dto.FromShareResult(result))
}
