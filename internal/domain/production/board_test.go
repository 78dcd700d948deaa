package production

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"orderdesk/internal/core/apperror"
	"orderdesk/internal/domain/drafts"
	"orderdesk/internal/domain/ledger"
)

var received = time.Date(2026, time.October, 14, 10, 0, 0, 0, time.UTC)

func event(id, delivery string, p ledger.Priority) drafts.OrderCreated {
	return drafts.OrderCreated{
		OrderID:      id,
		Number:       "ORD-2026-" + id,
		Product:      "divine pipe 15mm",
		Quantity:     1,
		DeliveryDate: delivery,
		Priority:     p,
	}
}

func TestRecord_IgnoresRedelivery(t *testing.T) {
	b := NewBoard(time.UTC)

	added, err := b.Record(event("1", "2026-10-16", ledger.PriorityHigh), received)
	require.NoError(t, err)
	assert.True(t, added)

	added, err = b.Record(event("1", "2026-10-16", ledger.PriorityHigh), received)
	require.NoError(t, err)
	assert.False(t, added)
	assert.Equal(t, 1, b.Len())
}

func TestRecord_RejectsBadEvents(t *testing.T) {
	b := NewBoard(time.UTC)

	_, err := b.Record(event("", "2026-10-16", ledger.PriorityHigh), received)
	assert.True(t, apperror.Is(err, apperror.CodeValidation))

	_, err = b.Record(event("2", "16.10.2026", ledger.PriorityHigh), received)
	assert.True(t, apperror.Is(err, apperror.CodeValidation))
	assert.Zero(t, b.Len())
}

func TestWeek_CountsCurrentIsoWeekOnly(t *testing.T) {
	b := NewBoard(time.UTC)
	for _, e := range []drafts.OrderCreated{
		event("1", "2026-10-12", ledger.PriorityHigh),   // Monday, W42
		event("2", "2026-10-18", ledger.PriorityHigh),   // Sunday, W42
		event("3", "2026-10-19", ledger.PriorityHigh),   // Monday, W43
		event("4", "2025-10-15", ledger.PriorityMedium), // W42 of another year
		event("5", "2026-10-17", ledger.PriorityMedium),
	} {
		_, err := b.Record(e, received)
		require.NoError(t, err)
	}

	s := b.Week(received)
	assert.Equal(t, 2026, s.Year)
	assert.Equal(t, 42, s.Week)
	assert.Equal(t, 2, s.High)
	assert.Equal(t, 1, s.Medium)
	require.Len(t, s.Orders, 3)
	assert.Equal(t, []string{"1", "2", "5"}, []string{s.Orders[0].OrderID, s.Orders[1].OrderID, s.Orders[2].OrderID})
}

func TestWeek_Empty(t *testing.T) {
	s := NewBoard(nil).Week(received)
	assert.NotNil(t, s.Orders)
	assert.Empty(t, s.Orders)
}
