package drafts

import (
	"context"
	"sync"

	"orderdesk/internal/core/apperror"
	"orderdesk/internal/core/id"
)

// Store keeps drafts for the lifetime of the process.
type Store interface {
	Create(ctx context.Context, d Draft) error
	Get(ctx context.Context, draftID id.ID) (Draft, error)
	// Update runs fn on the stored draft and saves it if fn succeeds.
	// Calls for the same store are serialized.
	Update(ctx context.Context, draftID id.ID, fn func(d *Draft) error) (Draft, error)
	Delete(ctx context.Context, draftID id.ID) error
}

// MemoryStore is a map-backed Store.
type MemoryStore struct {
	mu     sync.Mutex
	drafts map[id.ID]Draft
}

// NewMemoryStore creates an empty store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{drafts: make(map[id.ID]Draft)}
}

var _ Store = (*MemoryStore)(nil)

func (s *MemoryStore) Create(ctx context.Context, d Draft) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.drafts[d.ID]; exists {
		return apperror.NewValidation("draft already exists").WithDetail("id", d.ID.String())
	}
	s.drafts[d.ID] = d
	return nil
}

func (s *MemoryStore) Get(ctx context.Context, draftID id.ID) (Draft, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	d, ok := s.drafts[draftID]
	if !ok {
		return Draft{}, apperror.NewNotFound("draft", draftID.String())
	}
	return d, nil
}

func (s *MemoryStore) Update(ctx context.Context, draftID id.ID, fn func(d *Draft) error) (Draft, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	d, ok := s.drafts[draftID]
	if !ok {
		return Draft{}, apperror.NewNotFound("draft", draftID.String())
	}
	if err := fn(&d); err != nil {
		return Draft{}, err
	}
	s.drafts[draftID] = d
	return d, nil
}

func (s *MemoryStore) Delete(ctx context.Context, draftID id.ID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.drafts[draftID]; !ok {
		return apperror.NewNotFound("draft", draftID.String())
	}
	delete(s.drafts, draftID)
	return nil
}

// Len returns the number of open drafts.
func (s *MemoryStore) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.drafts)
}
