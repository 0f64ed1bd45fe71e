package repository

import (
	"context"
	"testing"
	"time"

	"github.com/sparkquote/estimator-backend/internal/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newStoredQuote(t *testing.T, repo *QuoteMemory, id string) *entity.Quote {
	t.Helper()
	quote := &entity.Quote{
		ID:          id,
		Description: "Install a double socket",
		HourlyRate:  50,
		Status:      entity.QuoteStatusAwaitingAnswers,
	}
	require.NoError(t, repo.Create(context.Background(), quote))
	return quote
}

func TestQuoteMemoryCreateAndGet(t *testing.T) {
	repo := NewQuoteMemory(time.Hour, time.Hour)
	created := newStoredQuote(t, repo, "q-1")

	assert.False(t, created.CreatedAt.IsZero())
	assert.Equal(t, created.CreatedAt, created.UpdatedAt)

	got, err := repo.Get(context.Background(), "q-1")
	require.NoError(t, err)
	assert.Equal(t, created.ID, got.ID)
	assert.Equal(t, created.Description, got.Description)
	assert.Equal(t, entity.QuoteStatusAwaitingAnswers, got.Status)
}

func TestQuoteMemoryGetUnknown(t *testing.T) {
	repo := NewQuoteMemory(time.Hour, time.Hour)

	_, err := repo.Get(context.Background(), "missing")
	require.ErrorIs(t, err, entity.ErrQuoteNotFound)
}

func TestQuoteMemoryGetReturnsCopy(t *testing.T) {
	repo := NewQuoteMemory(time.Hour, time.Hour)
	newStoredQuote(t, repo, "q-1")

	first, err := repo.Get(context.Background(), "q-1")
	require.NoError(t, err)
	first.Status = entity.QuoteStatusEstimated

	// Mutating the returned copy must not leak into the store.
	second, err := repo.Get(context.Background(), "q-1")
	require.NoError(t, err)
	assert.Equal(t, entity.QuoteStatusAwaitingAnswers, second.Status)
}

func TestQuoteMemoryUpdate(t *testing.T) {
	repo := NewQuoteMemory(time.Hour, time.Hour)
	quote := newStoredQuote(t, repo, "q-1")

	quote.Status = entity.QuoteStatusEstimated
	require.NoError(t, repo.Update(context.Background(), quote))

	got, err := repo.Get(context.Background(), "q-1")
	require.NoError(t, err)
	assert.Equal(t, entity.QuoteStatusEstimated, got.Status)
	assert.False(t, got.UpdatedAt.Before(got.CreatedAt))
}

func TestQuoteMemoryUpdateUnknown(t *testing.T) {
	repo := NewQuoteMemory(time.Hour, time.Hour)

	err := repo.Update(context.Background(), &entity.Quote{ID: "missing"})
	require.ErrorIs(t, err, entity.ErrQuoteNotFound)
}

func TestQuoteMemoryExpiry(t *testing.T) {
	repo := NewQuoteMemory(20*time.Millisecond, time.Minute)
	newStoredQuote(t, repo, "q-1")

	time.Sleep(50 * time.Millisecond)

	// An expired session is indistinguishable from an unknown one.
	_, err := repo.Get(context.Background(), "q-1")
	require.ErrorIs(t, err, entity.ErrQuoteNotFound)
}
