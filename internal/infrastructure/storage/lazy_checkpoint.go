package storage

import (
	"context"
	"io"
	"sync"

	"rssNotifier/internal/domain/entity"
	"rssNotifier/internal/domain/repository"
)

// OpenFunc connects to a checkpoint store.
type OpenFunc func(ctx context.Context) (repository.CheckpointRepository, error)

// LazyCheckpointRepository defers opening the store until the first Get or
// Put, so a run rejected by configuration validation never touches it.
// A failed open is retried on the next call.
type LazyCheckpointRepository struct {
	open OpenFunc

	mu   sync.Mutex
	repo repository.CheckpointRepository
}

func NewLazyCheckpointRepository(open OpenFunc) *LazyCheckpointRepository {
	return &LazyCheckpointRepository{open: open}
}

func (c *LazyCheckpointRepository) get(ctx context.Context) (repository.CheckpointRepository, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.repo != nil {
		return c.repo, nil
	}
	repo, err := c.open(ctx)
	if err != nil {
		return nil, err
	}
	c.repo = repo
	return repo, nil
}

func (c *LazyCheckpointRepository) Opened() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.repo != nil
}

func (c *LazyCheckpointRepository) Get(ctx context.Context, key string) (entity.StoredValue, error) {
	repo, err := c.get(ctx)
	if err != nil {
		return entity.StoredValue{}, err
	}
	return repo.Get(ctx, key)
}

func (c *LazyCheckpointRepository) Put(ctx context.Context, key string, value int64) error {
	repo, err := c.get(ctx)
	if err != nil {
		return err
	}
	return repo.Put(ctx, key, value)
}

// Close closes the underlying store if it was opened.
func (c *LazyCheckpointRepository) Close() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	repo := c.repo
	c.repo = nil

	switch r := repo.(type) {
	case io.Closer:
		return r.Close()
	case interface{ Close() }:
		r.Close()
	}
	return nil
}
