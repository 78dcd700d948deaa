package dto

import "orderdesk/internal/domain/drafts"

const (
	NoProductionDataMessage = "No production data available yet."
	NoWeeklyOrdersMessage   = "No high-priority products for the current week."
)

// PlanResponse is the production plan for the current ISO week.
type PlanResponse struct {
	Year        int             `json:"year"`
	Week        int             `json:"week"`
	Orders      []OrderResponse `json:"orders"`
	TotalOrders int             `json:"totalOrders"`
	Message     string          `json:"message,omitempty"`
}

// FromPlan converts the plan, choosing the empty-state message the desk shows.
func FromPlan(p drafts.Plan) PlanResponse {
	resp := PlanResponse{
		Year:        p.Year,
		Week:        p.Week,
		Orders:      make([]OrderResponse, 0, len(p.Orders)),
		TotalOrders: p.TotalOrders,
	}
	for _, o := range p.Orders {
		resp.Orders = append(resp.Orders, FromOrder(o))
	}

	switch {
	case p.TotalOrders == 0:
		resp.Message = NoProductionDataMessage
	case len(p.Orders) == 0:
		resp.Message = NoWeeklyOrdersMessage
	}
	return resp
}
