package storage

import (
	"context"
	"sync"
)

// MemoryRepository is a map-backed Repository used by tests and anywhere a
// durable store is not wanted. Update applies writes directly, with no
// rollback; the client's single-writer model makes that acceptable.
type MemoryRepository struct {
	mu   sync.Mutex
	data map[string][]byte
}

func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{data: make(map[string][]byte)}
}

func (r *MemoryRepository) Get(ctx context.Context, key string) ([]byte, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	v, ok := r.data[key]
	if !ok {
		return nil, nil
	}
	out := make([]byte, len(v))
	copy(out, v)
	return out, nil
}

func (r *MemoryRepository) Set(ctx context.Context, key string, value []byte) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	v := make([]byte, len(value))
	copy(v, value)
	r.data[key] = v
	return nil
}

func (r *MemoryRepository) Delete(ctx context.Context, key string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.data, key)
	return nil
}

func (r *MemoryRepository) Clear(ctx context.Context) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.data = make(map[string][]byte)
	return nil
}

func (r *MemoryRepository) List(ctx context.Context) (map[string][]byte, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make(map[string][]byte, len(r.data))
	for k, v := range r.data {
		c := make([]byte, len(v))
		copy(c, v)
		out[k] = c
	}
	return out, nil
}

func (r *MemoryRepository) Update(ctx context.Context, fn func(ctx context.Context, tr Repository) error) error {
	// Single-writer semantics are enough here: the client is event-driven
	// and mutations never interleave within one process.
	return fn(ctx, &memoryView{r: r})
}

// memoryView avoids deadlocking on the parent mutex when the Update
// callback calls back into the repository.
type memoryView struct {
	r *MemoryRepository
}

func (v *memoryView) Get(ctx context.Context, key string) ([]byte, error) {
	return v.r.Get(ctx, key)
}

func (v *memoryView) Set(ctx context.Context, key string, value []byte) error {
	return v.r.Set(ctx, key, value)
}

func (v *memoryView) Delete(ctx context.Context, key string) error {
	return v.r.Delete(ctx, key)
}

func (v *memoryView) Clear(ctx context.Context) error {
	return v.r.Clear(ctx)
}

func (v *memoryView) List(ctx context.Context) (map[string][]byte, error) {
	return v.r.List(ctx)
}

func (v *memoryView) Update(ctx context.Context, fn func(ctx context.Context, tr Repository) error) error {
	return fn(ctx, v)
}
