package services

import (
	"context"
	"sync"
	"time"

	"github.com/dmitrijs2005/deckkeeper/internal/client/storage"
)

// fakeClock is a settable time source.
type fakeClock struct {
	mu sync.Mutex
	t  time.Time
}

func newFakeClock() *fakeClock {
	return &fakeClock{t: time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)}
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.t
}

func (c *fakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.t = c.t.Add(d)
}

// faultyStore wraps a MemoryStorage and fails selected operations.
type faultyStore struct {
	*storage.MemoryStorage
	GetErr error
	SetErr error
}

func newFaultyStore() *faultyStore {
	return &faultyStore{MemoryStorage: storage.NewMemoryStorage()}
}

func (f *faultyStore) Get(ctx context.Context, key string) ([]byte, error) {
	if f.GetErr != nil {
		return nil, f.GetErr
	}
	return f.MemoryStorage.Get(ctx, key)
}

func (f *faultyStore) Set(ctx context.Context, key string, value []byte) error {
	if f.SetErr != nil {
		return f.SetErr
	}
	return f.MemoryStorage.Set(ctx, key, value)
}

func (f *faultyStore) SetMany(ctx context.Context, entries map[string][]byte) error {
	if f.SetErr != nil {
		return f.SetErr
	}
	return f.MemoryStorage.SetMany(ctx, entries)
}
