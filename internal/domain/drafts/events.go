package drafts

import (
	"context"
	"time"

	"orderdesk/internal/domain/ledger"
)

// OrderCreated is emitted after an invoice appends an order to the production plan.
type OrderCreated struct {
	OrderID      string          `json:"orderId"`
	Number       string          `json:"number"`
	Product      string          `json:"product"`
	Quantity     int             `json:"quantity"`
	DeliveryDate string          `json:"deliveryDate"`
	Priority     ledger.Priority `json:"priority"`
	CreatedAt    time.Time       `json:"createdAt"`
}

// EventPublisher ships order events to whoever plans production.
type EventPublisher interface {
	PublishOrderCreated(ctx context.Context, event OrderCreated) error
}

// NopPublisher drops every event.
type NopPublisher struct{}

func (NopPublisher) PublishOrderCreated(context.Context, OrderCreated) error { return nil }

func newOrderCreated(order ledger.OrderRecord, quantity int) OrderCreated {
	return OrderCreated{
		OrderID:      order.ID.String(),
		Number:       order.Number,
		Product:      order.Product,
		Quantity:     quantity,
		DeliveryDate: order.DeliveryDateTime.Format(ledger.DateLayout),
		Priority:     order.Priority,
		CreatedAt:    order.CreatedAt,
	}
}
