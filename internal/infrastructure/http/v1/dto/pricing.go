package dto

import (
	"fmt"

	"orderdesk/internal/core/types"
	"orderdesk/internal/domain/ledger"
)

// PricingRequest is the request body for a one-off quote.
// An empty product is left to the catalog lookup to reject.
type PricingRequest struct {
	Product         string `json:"product"`
	Quantity        int    `json:"quantity"`
	DiscountPercent int    `json:"discountPercent"`
}

// PriceResponse renders a price snapshot. Amounts are fixed to two places.
type PriceResponse struct {
	Product         string `json:"product"`
	Quantity        int    `json:"quantity"`
	DiscountPercent int    `json:"discountPercent"`
	UnitPrice       string `json:"unitPrice"`
	TotalPrice      string `json:"totalPrice"`
	DiscountAmount  string `json:"discountAmount"`
	FinalPrice      string `json:"finalPrice"`
	Message         string `json:"message"`
}

// FromPriceResult converts a snapshot to its response.
func FromPriceResult(p ledger.PriceResult) PriceResponse {
	return PriceResponse{
		Product:         p.Product,
		Quantity:        p.Quantity,
		DiscountPercent: p.DiscountPercent,
		UnitPrice:       types.FormatMoney(p.UnitPrice),
		TotalPrice:      types.FormatMoney(p.TotalPrice),
		DiscountAmount:  types.FormatMoney(p.DiscountAmount),
		FinalPrice:      types.FormatMoney(p.FinalPrice),
		Message: fmt.Sprintf("Total Price after %d%% discount: %s",
			p.DiscountPercent, types.FormatRupees(p.FinalPrice)),
	}
}
