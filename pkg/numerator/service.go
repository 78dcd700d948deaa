// Package numerator provides in-process order auto-numbering.
// Counters live for the lifetime of the process, like the order history itself.
package numerator

import (
	"context"
	"fmt"
	"sync"
	"time"

	corenumerator "orderdesk/internal/core/numerator"
)

// Service hands out sequential numbers per prefix and reset period.
type Service struct {
	mu       sync.Mutex
	counters map[string]int64
}

// New creates an empty numerator.
func New() *Service {
	return &Service{counters: make(map[string]int64)}
}

var _ corenumerator.Generator = (*Service)(nil)

// GetNextNumber generates the next number.
// Pattern: PREFIX-YEAR-XXXXX (e.g., ORD-2026-00001)
func (s *Service) GetNextNumber(ctx context.Context, cfg corenumerator.Config, period time.Time) (string, error) {
	if s == nil {
		return "", fmt.Errorf("numerator service is not initialized")
	}
	if err := ctx.Err(); err != nil {
		return "", err
	}
	if cfg.Prefix == "" {
		return "", fmt.Errorf("numerator prefix is required")
	}

	key := buildKey(cfg, period)

	s.mu.Lock()
	s.counters[key]++
	num := s.counters[key]
	s.mu.Unlock()

	return formatNumber(cfg, period, num), nil
}

// buildKey creates the sequence key based on config and period.
func buildKey(cfg corenumerator.Config, period time.Time) string {
	switch cfg.ResetPeriod {
	case "month":
		return fmt.Sprintf("%s_%s", cfg.Prefix, period.Format("2006_01"))
	case "year":
		return fmt.Sprintf("%s_%s", cfg.Prefix, period.Format("2006"))
	default:
		return cfg.Prefix
	}
}

// formatNumber creates the final number string.
func formatNumber(cfg corenumerator.Config, period time.Time, num int64) string {
	padWidth := cfg.PadWidth
	if padWidth == 0 {
		padWidth = 5
	}

	if cfg.IncludeYear {
		return fmt.Sprintf("%s-%s-%0*d", cfg.Prefix, period.Format("2006"), padWidth, num)
	}
	return fmt.Sprintf("%s-%0*d", cfg.Prefix, padWidth, num)
}
