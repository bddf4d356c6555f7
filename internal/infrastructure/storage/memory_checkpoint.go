package storage

import (
	"context"
	"sync"

	"rssNotifier/internal/domain/entity"
	"rssNotifier/internal/domain/repository"
)

type memoryCheckpoint struct {
	mu     sync.RWMutex
	values map[string]any
}

func NewMemoryCheckpointRepository() repository.CheckpointRepository {
	return &memoryCheckpoint{
		values: make(map[string]any),
	}
}

func (c *memoryCheckpoint) Get(ctx context.Context, key string) (entity.StoredValue, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	v, ok := c.values[key]
	if !ok {
		return entity.Absent(), nil
	}
	return entity.StoredValueFrom(v), nil
}

func (c *memoryCheckpoint) Put(ctx context.Context, key string, value int64) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.values[key] = value
	return nil
}

// SetRaw stores an arbitrary value, e.g. to seed a corrupt checkpoint in tests.
func (c *memoryCheckpoint) SetRaw(key string, value any) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.values[key] = value
}
