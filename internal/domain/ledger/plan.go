package ledger

import "time"

// PlanSnapshot is one consistent reading of the week's plan and the history size.
type PlanSnapshot struct {
	Orders      []OrderRecord
	TotalOrders int
}

// WeeklyPlan returns the orders whose delivery falls in the same ISO 8601 week as now.
// Orders outside the week are left out entirely.
func (l *Ledger) WeeklyPlan(now time.Time) []OrderRecord {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.weekLocked(now)
}

// WeeklySnapshot returns the week's plan together with the total number of
// recorded orders, both taken under one read lock.
func (l *Ledger) WeeklySnapshot(now time.Time) PlanSnapshot {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return PlanSnapshot{
		Orders:      l.weekLocked(now),
		TotalOrders: len(l.orders),
	}
}

// weekLocked expects l.mu to be held.
func (l *Ledger) weekLocked(now time.Time) []OrderRecord {
	year, week := now.In(l.loc).ISOWeek()

	plan := make([]OrderRecord, 0)
	for _, o := range l.orders {
		y, w := o.DeliveryDateTime.In(l.loc).ISOWeek()
		if y == year && w == week {
			plan = append(plan, o)
		}
	}
	return plan
}
