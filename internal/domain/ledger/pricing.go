package ledger

import (
	"orderdesk/internal/core/apperror"
	"orderdesk/internal/core/types"
)

// Price computes total, discount and final price for one catalog product.
// Arithmetic is exact; rounding happens only when amounts are formatted.
func (l *Ledger) Price(productName string, quantity, discountPercent int) (PriceResult, error) {
	p, ok := l.catalog.Lookup(productName)
	if !ok {
		return PriceResult{}, apperror.NewUnknownProduct(productName)
	}
	if quantity < 1 {
		return PriceResult{}, apperror.NewInvalidQuantity(quantity)
	}
	if discountPercent < 0 || discountPercent > 100 {
		return PriceResult{}, apperror.NewInvalidDiscount(discountPercent)
	}

	total := p.UnitPrice.Mul(types.NewMoneyFromInt(int64(quantity)))
	discount := types.Percent(total, discountPercent)

	return PriceResult{
		Product:         p.Name,
		Quantity:        quantity,
		DiscountPercent: discountPercent,
		UnitPrice:       p.UnitPrice,
		TotalPrice:      total,
		DiscountAmount:  discount,
		FinalPrice:      total.Sub(discount),
	}, nil
}
