package ledger

import (
	"context"
	"fmt"
	"strings"
	"time"

	"orderdesk/internal/core/apperror"
	"orderdesk/internal/core/id"
	"orderdesk/internal/core/types"
	"orderdesk/pkg/logger"
)

// DateLayout is how delivery dates are printed and parsed.
const DateLayout = "2006-01-02"

// CreateInvoice validates the request, formats the invoice text and appends an order
// to the production plan. The returned text also becomes the ledger's last invoice.
func (l *Ledger) CreateInvoice(ctx context.Context, req InvoiceRequest) (Invoice, error) {
	if missing := missingCustomerFields(req); len(missing) > 0 {
		return Invoice{}, apperror.NewMissingCustomerDetails(missing...)
	}
	if !req.Price.IsComputed() || !req.Price.covers(req.Product, req.Quantity) {
		return Invoice{}, apperror.NewPriceNotComputed()
	}

	delivery := l.Midnight(req.DeliveryDate)
	text := FormatInvoice(req.CustomerName, req.CustomerPhone, delivery, req.Product, req.Quantity, req.Price.FinalPrice)

	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.Now()
	number, err := l.numerator.GetNextNumber(ctx, l.numberCfg, now)
	if err != nil {
		return Invoice{}, apperror.NewInternal(fmt.Errorf("issue order number: %w", err))
	}

	record := OrderRecord{
		ID:               id.New(),
		Number:           number,
		Product:          req.Product,
		DeliveryDateTime: delivery,
		Priority:         PriorityFor(delivery, now),
		CreatedAt:        now,
	}
	l.orders = append(l.orders, record)
	l.lastInvoice = text

	logger.FromContext(ctx).Infow("order recorded",
		"order_id", record.ID,
		"number", record.Number,
		"product", record.Product,
		"delivery", delivery.Format(DateLayout),
		"priority", record.Priority,
	)

	return Invoice{Text: text, Order: record}, nil
}

// PriorityFor is High when delivery is due no later than the same wall-clock time
// HighPriorityDays after now, in now's location.
func PriorityFor(delivery, now time.Time) Priority {
	if delivery.After(now.AddDate(0, 0, HighPriorityDays)) {
		return PriorityMedium
	}
	return PriorityHigh
}

// FormatInvoice renders the invoice text. Field order and labels are fixed.
func FormatInvoice(name, phone string, delivery time.Time, productName string, quantity int, finalPrice types.Money) string {
	var b strings.Builder
	b.WriteString("Invoice Details:\n")
	fmt.Fprintf(&b, "Customer Name: %s\n", name)
	fmt.Fprintf(&b, "Customer Phone: %s\n", phone)
	fmt.Fprintf(&b, "Delivery Date: %s\n", delivery.Format(DateLayout))
	fmt.Fprintf(&b, "Product: %s\n", productName)
	fmt.Fprintf(&b, "Quantity: %d\n", quantity)
	fmt.Fprintf(&b, "Total Price: %s", types.FormatRupees(finalPrice))
	return b.String()
}

func missingCustomerFields(req InvoiceRequest) []string {
	var missing []string
	if req.CustomerName == "" {
		missing = append(missing, "customerName")
	}
	if req.CustomerPhone == "" {
		missing = append(missing, "customerPhone")
	}
	return missing
}
