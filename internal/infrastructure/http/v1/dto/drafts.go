package dto

import (
	"time"

	"orderdesk/internal/domain/drafts"
)

// DraftRequest creates or patches a draft. Omitted fields are left alone.
type DraftRequest struct {
	CustomerName    *string `json:"customerName"`
	CustomerPhone   *string `json:"customerPhone"`
	DeliveryDate    *string `json:"deliveryDate"`
	Product         *string `json:"product"`
	Quantity        *int    `json:"quantity"`
	DiscountPercent *int    `json:"discountPercent"`
}

// ToPatch converts the request, reading the delivery date in loc.
func (r *DraftRequest) ToPatch(loc *time.Location) (drafts.Patch, error) {
	p := drafts.Patch{
		CustomerName:    r.CustomerName,
		CustomerPhone:   r.CustomerPhone,
		Product:         r.Product,
		Quantity:        r.Quantity,
		DiscountPercent: r.DiscountPercent,
	}
	if r.DeliveryDate != nil {
		d, err := ParseDate("deliveryDate", *r.DeliveryDate, loc)
		if err != nil {
			return drafts.Patch{}, err
		}
		p.DeliveryDate = &d
	}
	return p, nil
}

// DraftResponse renders a draft. Price is omitted while stale.
type DraftResponse struct {
	ID               string         `json:"id"`
	CustomerName     string         `json:"customerName"`
	CustomerPhone    string         `json:"customerPhone"`
	DeliveryDate     string         `json:"deliveryDate"`
	Product          string         `json:"product"`
	Quantity         int            `json:"quantity"`
	DiscountPercent  int            `json:"discountPercent"`
	Price            *PriceResponse `json:"price,omitempty"`
	InvoiceGenerated bool           `json:"invoiceGenerated"`
	CreatedAt        time.Time      `json:"createdAt"`
	UpdatedAt        time.Time      `json:"updatedAt"`
}

// FromDraft converts a draft to its response.
func FromDraft(d drafts.Draft) DraftResponse {
	resp := DraftResponse{
		ID:               d.ID.String(),
		CustomerName:     d.CustomerName,
		CustomerPhone:    d.CustomerPhone,
		DeliveryDate:     FormatDate(d.DeliveryDate),
		Product:          d.Product,
		Quantity:         d.Quantity,
		DiscountPercent:  d.DiscountPercent,
		InvoiceGenerated: d.InvoiceGenerated,
		CreatedAt:        d.CreatedAt,
		UpdatedAt:        d.UpdatedAt,
	}
	if d.Price.IsComputed() {
		price := FromPriceResult(d.Price)
		resp.Price = &price
	}
	return resp
}
