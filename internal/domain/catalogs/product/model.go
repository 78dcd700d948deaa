// Package product provides the Product catalog: the fixed price list a clerk picks from.
package product

import (
	"context"
	"strings"

	"orderdesk/internal/core/apperror"
	"orderdesk/internal/core/types"
)

// Product is a catalog entry. Name is the unique key.
type Product struct {
	// Name identifies the product on invoices and in the production plan
	Name string `yaml:"name" json:"name"`

	// UnitPrice is the price of one unit, in rupees
	UnitPrice types.Money `yaml:"unitPrice" json:"unitPrice"`
}

// Validate checks entry invariants.
func (p Product) Validate(ctx context.Context) error {
	if strings.TrimSpace(p.Name) == "" {
		return apperror.NewValidation("product name is required").
			WithDetail("field", "name")
	}

	if !p.UnitPrice.IsPositive() {
		return apperror.NewValidation("unit price must be positive").
			WithDetail("field", "unitPrice").
			WithDetail("product", p.Name).
			WithDetail("value", p.UnitPrice.String())
	}

	return nil
}
