package handlers

import (
	"github.com/gin-gonic/gin"

	"orderdesk/internal/domain/drafts"
	"orderdesk/internal/infrastructure/http/v1/dto"
)

// PlanHandler serves the production plan.
type PlanHandler struct {
	*BaseHandler
	service *drafts.Service
}

// NewPlanHandler creates a new plan handler.
func NewPlanHandler(base *BaseHandler, service *drafts.Service) *PlanHandler {
	return &PlanHandler{BaseHandler: base, service: service}
}

// Weekly returns orders delivering in the current ISO week.
// GET /api/v1/plan/weekly
func (h *PlanHandler) Weekly(c *gin.Context) {
	h.OK(c, dto.FromPlan(h.service.WeeklyPlan(c.Request.Context())))
}
