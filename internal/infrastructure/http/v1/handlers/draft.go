package handlers

import (
	"github.com/gin-gonic/gin"

	"orderdesk/internal/domain/drafts"
	"orderdesk/internal/infrastructure/http/v1/dto"
)

// DraftHandler drives the order form: edit, price, invoice.
type DraftHandler struct {
	*BaseHandler
	service *drafts.Service
}

// NewDraftHandler creates a new draft handler.
func NewDraftHandler(base *BaseHandler, service *drafts.Service) *DraftHandler {
	return &DraftHandler{BaseHandler: base, service: service}
}

// Create opens a draft. An empty body yields the form defaults.
// POST /api/v1/drafts
func (h *DraftHandler) Create(c *gin.Context) {
	var req dto.DraftRequest
	if c.Request.ContentLength != 0 && !h.BindJSON(c, &req) {
		return
	}

	patch, err := req.ToPatch(h.service.Location())
	if err != nil {
		h.Error(c, err)
		return
	}

	d, err := h.service.Create(c.Request.Context(), patch)
	if err != nil {
		h.Error(c, err)
		return
	}

	h.Created(c, dto.FromDraft(d))
}

// Get returns a draft.
// GET /api/v1/drafts/:id
func (h *DraftHandler) Get(c *gin.Context) {
	draftID, ok := h.ParseID(c)
	if !ok {
		return
	}

	d, err := h.service.Get(c.Request.Context(), draftID)
	if err != nil {
		h.Error(c, err)
		return
	}

	h.OK(c, dto.FromDraft(d))
}

// Update patches a draft. Any field sent drops the computed price.
// PATCH /api/v1/drafts/:id
func (h *DraftHandler) Update(c *gin.Context) {
	draftID, ok := h.ParseID(c)
	if !ok {
		return
	}

	var req dto.DraftRequest
	if !h.BindJSON(c, &req) {
		return
	}

	patch, err := req.ToPatch(h.service.Location())
	if err != nil {
		h.Error(c, err)
		return
	}

	d, err := h.service.Update(c.Request.Context(), draftID, patch)
	if err != nil {
		h.Error(c, err)
		return
	}

	h.OK(c, dto.FromDraft(d))
}

// Delete discards a draft.
// DELETE /api/v1/drafts/:id
func (h *DraftHandler) Delete(c *gin.Context) {
	draftID, ok := h.ParseID(c)
	if !ok {
		return
	}

	if err := h.service.Delete(c.Request.Context(), draftID); err != nil {
		h.Error(c, err)
		return
	}

	h.NoContent(c)
}

// Price computes and stores the price for the draft's current inputs.
// POST /api/v1/drafts/:id/price
func (h *DraftHandler) Price(c *gin.Context) {
	draftID, ok := h.ParseID(c)
	if !ok {
		return
	}

	d, err := h.service.Price(c.Request.Context(), draftID)
	if err != nil {
		h.Error(c, err)
		return
	}

	h.OK(c, dto.FromDraft(d))
}

// Invoice generates the invoice and records the order in the production plan.
// POST /api/v1/drafts/:id/invoice
func (h *DraftHandler) Invoice(c *gin.Context) {
	draftID, ok := h.ParseID(c)
	if !ok {
		return
	}

	result, err := h.service.Invoice(c.Request.Context(), draftID)
	if err != nil {
		h.Error(c, err)
		return
	}

	h.Created(c, dto.FromInvoiceResult(result, h.service.ShareNumbers()))
}
