package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"orderdesk/internal/domain/drafts"
)

// HealthHandler provides health check endpoints.
type HealthHandler struct {
	service *drafts.Service
	version string
}

// NewHealthHandler creates a new health handler.
func NewHealthHandler(service *drafts.Service, version string) *HealthHandler {
	return &HealthHandler{service: service, version: version}
}

// Live handles the liveness check (is the process alive?).
// GET /health/live
func (h *HealthHandler) Live(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status": "ok",
	})
}

// Ready handles the readiness check. The desk is ready once a catalog is loaded.
// GET /health/ready
func (h *HealthHandler) Ready(c *gin.Context) {
	if h.service == nil || h.service.Catalog().Len() == 0 {
		c.JSON(http.StatusServiceUnavailable, gin.H{
			"status": "error",
			"checks": map[string]string{
				"catalog": "not loaded",
			},
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status": "ok",
		"checks": map[string]string{
			"catalog": "loaded",
		},
	})
}

// Info returns application information.
// GET /health/info
func (h *HealthHandler) Info(c *gin.Context) {
	info := gin.H{
		"app":     "orderdesk",
		"version": h.version,
	}
	if h.service != nil {
		plan := h.service.WeeklyPlan(c.Request.Context())
		info["catalog"] = map[string]any{
			"products": h.service.Catalog().Len(),
		}
		info["ledger"] = map[string]any{
			"orders":      plan.TotalOrders,
			"week_orders": len(plan.Orders),
			"timezone":    h.service.Location().String(),
		}
	}
	c.JSON(http.StatusOK, info)
}
