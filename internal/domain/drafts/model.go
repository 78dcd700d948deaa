// Package drafts holds order-entry forms between requests. A draft remembers the last
// price computed for it and forgets that price whenever an input changes.
package drafts

import (
	"time"

	"orderdesk/internal/core/id"
	"orderdesk/internal/domain/ledger"
)

// Draft is one clerk's order form.
type Draft struct {
	ID              id.ID     `json:"id"`
	CustomerName    string    `json:"customerName"`
	CustomerPhone   string    `json:"customerPhone"`
	DeliveryDate    time.Time `json:"deliveryDate"`
	Product         string    `json:"product"`
	Quantity        int       `json:"quantity"`
	DiscountPercent int       `json:"discountPercent"`

	// Price is the snapshot from the last successful pricing, zero when stale.
	Price ledger.PriceResult `json:"price"`

	// InvoiceGenerated is set after an invoice and cleared by any change or re-pricing.
	InvoiceGenerated bool `json:"invoiceGenerated"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// Patch carries the fields a clerk changed. Nil fields are left alone.
type Patch struct {
	CustomerName    *string
	CustomerPhone   *string
	DeliveryDate    *time.Time
	Product         *string
	Quantity        *int
	DiscountPercent *int
}

// IsEmpty reports whether the patch touches nothing.
func (p Patch) IsEmpty() bool {
	return p.CustomerName == nil && p.CustomerPhone == nil && p.DeliveryDate == nil &&
		p.Product == nil && p.Quantity == nil && p.DiscountPercent == nil
}

// newDraft fills the form defaults: first product, one unit, no discount,
// delivery a week from now.
func newDraft(defaultProduct string, delivery, now time.Time) Draft {
	return Draft{
		ID:           id.New(),
		DeliveryDate: delivery,
		Product:      defaultProduct,
		Quantity:     1,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
}

// Apply writes the patch and invalidates the stored price.
// Any non-empty patch counts as a change, even if a value is rewritten unchanged.
func (d *Draft) Apply(p Patch, now time.Time) {
	if p.IsEmpty() {
		return
	}
	if p.CustomerName != nil {
		d.CustomerName = *p.CustomerName
	}
	if p.CustomerPhone != nil {
		d.CustomerPhone = *p.CustomerPhone
	}
	if p.DeliveryDate != nil {
		d.DeliveryDate = *p.DeliveryDate
	}
	if p.Product != nil {
		d.Product = *p.Product
	}
	if p.Quantity != nil {
		d.Quantity = *p.Quantity
	}
	if p.DiscountPercent != nil {
		d.DiscountPercent = *p.DiscountPercent
	}
	d.resetPrice()
	d.UpdatedAt = now
}

func (d *Draft) resetPrice() {
	d.Price = ledger.PriceResult{}
	d.InvoiceGenerated = false
}

// invoiceRequest builds the ledger request from the draft's current state.
func (d *Draft) invoiceRequest() ledger.InvoiceRequest {
	return ledger.InvoiceRequest{
		CustomerName:  d.CustomerName,
		CustomerPhone: d.CustomerPhone,
		DeliveryDate:  d.DeliveryDate,
		Product:       d.Product,
		Quantity:      d.Quantity,
		Price:         d.Price,
	}
}
