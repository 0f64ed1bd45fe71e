package repository

import (
	"context"
	"time"

	"github.com/patrickmn/go-cache"
	"github.com/sparkquote/estimator-backend/internal/entity"
)

// QuoteRepository stores quote sessions between the clarification and
// estimation stages. Nothing in this system is durable: sessions live only as
// long as the configured TTL.
type QuoteRepository interface {
	Create(ctx context.Context, quote *entity.Quote) error
	Get(ctx context.Context, id string) (*entity.Quote, error)
	Update(ctx context.Context, quote *entity.Quote) error
}

// QuoteMemory is a TTL-bounded in-memory implementation backed by go-cache.
// Expired sessions behave exactly like unknown ones.
type QuoteMemory struct {
	store *cache.Cache
}

func NewQuoteMemory(ttl, cleanupInterval time.Duration) *QuoteMemory {
	return &QuoteMemory{
		store: cache.New(ttl, cleanupInterval),
	}
}

func (r *QuoteMemory) Create(_ context.Context, quote *entity.Quote) error {
	now := time.Now().UTC()
	quote.CreatedAt = now
	quote.UpdatedAt = now
	r.store.SetDefault(quote.ID, *quote)
	return nil
}

func (r *QuoteMemory) Get(_ context.Context, id string) (*entity.Quote, error) {
	value, found := r.store.Get(id)
	if !found {
		return nil, entity.ErrQuoteNotFound
	}

	// Stored by value so callers can mutate their copy freely.
	quote := value.(entity.Quote)
	return &quote, nil
}

func (r *QuoteMemory) Update(_ context.Context, quote *entity.Quote) error {
	if _, found := r.store.Get(quote.ID); !found {
		return entity.ErrQuoteNotFound
	}
	quote.UpdatedAt = time.Now().UTC()
	r.store.SetDefault(quote.ID, *quote)
	return nil
}
