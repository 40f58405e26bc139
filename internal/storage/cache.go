package storage

import (
	"context"

	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/oakvale/homestead/internal/domain"
)

// CachedStore is a read-through snapshot cache over another Store.
// Saves write through and refresh the cache; loads hit the cache
// first. Cached entries are deep-cloned on the way in and out so no
// caller ever shares state with the cache.
type CachedStore struct {
	inner Store
	cache *lru.Cache[string, *domain.GameState]
}

var _ Store = (*CachedStore)(nil)

// NewCachedStore wraps inner with an LRU of the given size.
func NewCachedStore(inner Store, size int) (*CachedStore, error) {
	cache, err := lru.New[string, *domain.GameState](size)
	if err != nil {
		return nil, err
	}
	return &CachedStore{inner: inner, cache: cache}, nil
}

func (c *CachedStore) SaveSnapshot(ctx context.Context, slot string, state *domain.GameState) error {
	if err := c.inner.SaveSnapshot(ctx, slot, state); err != nil {
		return err
	}
	c.cache.Add(slot, state.Clone())
	return nil
}

func (c *CachedStore) LoadSnapshot(ctx context.Context, slot string) (*domain.GameState, error) {
	if cached, ok := c.cache.Get(slot); ok {
		return cached.Clone(), nil
	}

	state, err := c.inner.LoadSnapshot(ctx, slot)
	if err != nil {
		return nil, err
	}
	c.cache.Add(slot, state.Clone())
	return state, nil
}

func (c *CachedStore) Ping(ctx context.Context) error { return c.inner.Ping(ctx) }

func (c *CachedStore) Close() error { return c.inner.Close() }
