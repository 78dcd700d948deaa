package ledger

import (
	"errors"
	"sync"
	"time"

	corenumerator "orderdesk/internal/core/numerator"
	"orderdesk/internal/domain/catalogs/product"
)

// Options configures a Ledger.
type Options struct {
	// Clock returns the current time. Defaults to time.Now.
	Clock func() time.Time

	// Location interprets delivery dates and week boundaries. Defaults to time.Local.
	Location *time.Location

	// Numerator issues order numbers.
	Numerator corenumerator.Generator

	// NumberConfig controls the order number format. Defaults to ORD-YYYY-NNNNN.
	NumberConfig *corenumerator.Config
}

// Ledger is constructed once at startup and shared by every request.
type Ledger struct {
	catalog   *product.Catalog
	clock     func() time.Time
	loc       *time.Location
	numerator corenumerator.Generator
	numberCfg corenumerator.Config

	mu          sync.RWMutex
	orders      []OrderRecord
	lastInvoice string
}

// New creates a Ledger over an immutable catalog.
func New(catalog *product.Catalog, opts Options) (*Ledger, error) {
	if catalog == nil {
		return nil, errors.New("ledger: catalog is required")
	}
	if opts.Numerator == nil {
		return nil, errors.New("ledger: numerator is required")
	}

	l := &Ledger{
		catalog:   catalog,
		clock:     opts.Clock,
		loc:       opts.Location,
		numerator: opts.Numerator,
		numberCfg: corenumerator.DefaultConfig("ORD"),
	}
	if l.clock == nil {
		l.clock = time.Now
	}
	if l.loc == nil {
		l.loc = time.Local
	}
	if opts.NumberConfig != nil {
		l.numberCfg = *opts.NumberConfig
	}
	return l, nil
}

// Catalog returns the product table.
func (l *Ledger) Catalog() *product.Catalog {
	return l.catalog
}

// Now returns the ledger clock reading in the ledger location.
func (l *Ledger) Now() time.Time {
	return l.clock().In(l.loc)
}

// Location returns the time zone used for calendar dates.
func (l *Ledger) Location() *time.Location {
	return l.loc
}

// Midnight returns the start of t's calendar date in the ledger location.
func (l *Ledger) Midnight(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, l.loc)
}

// DefaultDeliveryDate is the calendar date a week after now.
func (l *Ledger) DefaultDeliveryDate(now time.Time) time.Time {
	return l.Midnight(now.In(l.loc).AddDate(0, 0, HighPriorityDays))
}

// Orders returns every recorded order in insertion order.
func (l *Ledger) Orders() []OrderRecord {
	l.mu.RLock()
	defer l.mu.RUnlock()

	out := make([]OrderRecord, len(l.orders))
	copy(out, l.orders)
	return out
}

// LastInvoice returns the most recently generated invoice text.
func (l *Ledger) LastInvoice() (string, bool) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.lastInvoice, l.lastInvoice != ""
}
