// Package production keeps the floor's view of incoming orders, fed by the order event stream.
package production

import (
	"sync"
	"time"

	"orderdesk/internal/core/apperror"
	"orderdesk/internal/domain/drafts"
	"orderdesk/internal/domain/ledger"
)

// Entry is one order queued for production.
type Entry struct {
	OrderID    string
	Number     string
	Product    string
	Quantity   int
	Delivery   time.Time
	Priority   ledger.Priority
	ReceivedAt time.Time
}

// Summary is the board for one ISO week.
type Summary struct {
	Year   int
	Week   int
	High   int
	Medium int
	Orders []Entry
}

// Board collects order events. Redelivered events are ignored by order ID.
type Board struct {
	loc *time.Location

	mu     sync.RWMutex
	seen   map[string]struct{}
	orders []Entry
}

// NewBoard creates an empty board reading delivery dates in loc.
func NewBoard(loc *time.Location) *Board {
	if loc == nil {
		loc = time.Local
	}
	return &Board{
		loc:  loc,
		seen: make(map[string]struct{}),
	}
}

// Record adds the event and reports whether it was new.
func (b *Board) Record(e drafts.OrderCreated, receivedAt time.Time) (bool, error) {
	if e.OrderID == "" {
		return false, apperror.NewValidation("order event without id")
	}
	delivery, err := time.ParseInLocation(ledger.DateLayout, e.DeliveryDate, b.loc)
	if err != nil {
		return false, apperror.NewValidation("order event with bad delivery date").
			WithDetail("orderId", e.OrderID).
			WithDetail("value", e.DeliveryDate)
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	if _, dup := b.seen[e.OrderID]; dup {
		return false, nil
	}
	b.seen[e.OrderID] = struct{}{}
	b.orders = append(b.orders, Entry{
		OrderID:    e.OrderID,
		Number:     e.Number,
		Product:    e.Product,
		Quantity:   e.Quantity,
		Delivery:   delivery,
		Priority:   e.Priority,
		ReceivedAt: receivedAt,
	})
	return true, nil
}

// Len returns the number of distinct orders recorded.
func (b *Board) Len() int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return len(b.orders)
}

// Week summarises orders delivering in now's ISO week, in arrival order.
func (b *Board) Week(now time.Time) Summary {
	year, week := now.In(b.loc).ISOWeek()
	s := Summary{Year: year, Week: week, Orders: []Entry{}}

	b.mu.RLock()
	defer b.mu.RUnlock()

	for _, e := range b.orders {
		y, w := e.Delivery.ISOWeek()
		if y != year || w != week {
			continue
		}
		s.Orders = append(s.Orders, e)
		if e.Priority == ledger.PriorityHigh {
			s.High++
		} else {
			s.Medium++
		}
	}
	return s
}
