package drafts

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"orderdesk/internal/core/apperror"
	"orderdesk/internal/core/id"
)

func TestMemoryStore_Lifecycle(t *testing.T) {
	s := NewMemoryStore()
	ctx := context.Background()
	d := newDraft("divine pipe 15mm", opened, opened)

	require.NoError(t, s.Create(ctx, d))
	assert.Error(t, s.Create(ctx, d), "duplicate id")
	assert.Equal(t, 1, s.Len())

	got, err := s.Get(ctx, d.ID)
	require.NoError(t, err)
	assert.Equal(t, d, got)

	updated, err := s.Update(ctx, d.ID, func(d *Draft) error {
		d.Quantity = 5
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, 5, updated.Quantity)

	require.NoError(t, s.Delete(ctx, d.ID))
	_, err = s.Get(ctx, d.ID)
	assert.True(t, apperror.IsNotFound(err))
	assert.True(t, apperror.IsNotFound(s.Delete(ctx, d.ID)))
}

func TestMemoryStore_UpdateErrorDiscardsChanges(t *testing.T) {
	s := NewMemoryStore()
	ctx := context.Background()
	d := newDraft("divine pipe 15mm", opened, opened)
	require.NoError(t, s.Create(ctx, d))

	boom := errors.New("boom")
	_, err := s.Update(ctx, d.ID, func(d *Draft) error {
		d.Quantity = 99
		return boom
	})
	assert.ErrorIs(t, err, boom)

	got, err := s.Get(ctx, d.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, got.Quantity)
}

func TestMemoryStore_UpdateUnknown(t *testing.T) {
	s := NewMemoryStore()
	_, err := s.Update(context.Background(), id.New(), func(*Draft) error { return nil })
	assert.True(t, apperror.IsNotFound(err))
}
