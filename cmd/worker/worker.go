package main

import (
	"context"
	"time"

	"orderdesk/internal/domain/drafts"
	"orderdesk/internal/domain/production"
	"orderdesk/pkg/logger"
)

// Worker feeds order events into the production board.
type Worker struct {
	board *production.Board
	log   *logger.Logger
	now   func() time.Time
}

// NewWorker creates a worker recording onto board, stamping arrivals with now.
func NewWorker(board *production.Board, log *logger.Logger, now func() time.Time) *Worker {
	return &Worker{
		board: board,
		log:   log.WithComponent("worker"),
		now:   now,
	}
}

// Handle records one event on the board.
func (w *Worker) Handle(ctx context.Context, event drafts.OrderCreated) error {
	added, err := w.board.Record(event, w.now())
	if err != nil {
		return err
	}
	if !added {
		w.log.Debugw("duplicate order event", "order_id", event.OrderID)
		return nil
	}

	w.log.Infow("order queued for production",
		"order_id", event.OrderID,
		"number", event.Number,
		"product", event.Product,
		"quantity", event.Quantity,
		"delivery_date", event.DeliveryDate,
		"priority", event.Priority,
	)
	return nil
}

// RunSummaries logs the current week's board on every tick until ctx ends.
func (w *Worker) RunSummaries(ctx context.Context, interval time.Duration) {
	if interval <= 0 {
		interval = time.Minute
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			w.logSummary()
		}
	}
}

func (w *Worker) logSummary() {
	s := w.board.Week(w.now())
	w.log.Infow("weekly production board",
		"year", s.Year,
		"week", s.Week,
		"orders", len(s.Orders),
		"high", s.High,
		"medium", s.Medium,
		"total_received", w.board.Len(),
	)
}
