// Package ledger owns pricing rules, invoice text, production priority and the
// append-only order history the weekly production plan is read from.
package ledger

import (
	"time"

	"orderdesk/internal/core/id"
	"orderdesk/internal/core/types"
)

// Priority is the production urgency of an order.
type Priority string

const (
	PriorityHigh   Priority = "High"
	PriorityMedium Priority = "Medium"
)

// HighPriorityDays is how many calendar days ahead of invoice time a delivery still
// counts as High. Days are wall-clock days in the ledger location, not 24h spans.
const HighPriorityDays = 7

// PriceResult is a snapshot of one pricing computation.
// The zero value means "no price computed".
type PriceResult struct {
	Product         string      `json:"product"`
	Quantity        int         `json:"quantity"`
	DiscountPercent int         `json:"discountPercent"`
	UnitPrice       types.Money `json:"unitPrice"`
	TotalPrice      types.Money `json:"totalPrice"`
	DiscountAmount  types.Money `json:"discountAmount"`
	FinalPrice      types.Money `json:"finalPrice"`
}

// IsComputed reports whether the snapshot carries a strictly positive final price.
func (p PriceResult) IsComputed() bool {
	return p.FinalPrice.IsPositive()
}

// covers reports whether the snapshot was taken for this product and quantity.
func (p PriceResult) covers(product string, quantity int) bool {
	return p.Product == product && p.Quantity == quantity
}

// OrderRecord is one row of the production plan. Records are never mutated.
type OrderRecord struct {
	ID               id.ID     `json:"id"`
	Number           string    `json:"number"`
	Product          string    `json:"product"`
	DeliveryDateTime time.Time `json:"deliveryDateTime"`
	Priority         Priority  `json:"priority"`
	CreatedAt        time.Time `json:"createdAt"`
}

// InvoiceRequest carries everything CreateInvoice needs.
type InvoiceRequest struct {
	CustomerName  string
	CustomerPhone string
	// DeliveryDate is read for its calendar date only.
	DeliveryDate time.Time
	Product      string
	Quantity     int
	Price        PriceResult
}

// Invoice is the result of a successful CreateInvoice.
type Invoice struct {
	Text  string
	Order OrderRecord
}
