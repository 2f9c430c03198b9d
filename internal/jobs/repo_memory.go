package jobs

import (
	"context"
	"sync"
)

// MemoryRepo implements Repo in memory for development and tests.
type MemoryRepo struct {
	mu      sync.RWMutex
	records map[string]Record
}

// NewMemoryRepo constructs an empty MemoryRepo.
func NewMemoryRepo() *MemoryRepo {
	return &MemoryRepo{records: make(map[string]Record)}
}

// Create stores the record.
func (r *MemoryRepo) Create(_ context.Context, rec Record) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.records[rec.ID] = rec
	return nil
}

// GetByID returns the record or ErrNotFound.
func (r *MemoryRepo) GetByID(_ context.Context, id string) (Record, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	rec, ok := r.records[id]
	if !ok {
		return Record{}, ErrNotFound
	}
	return rec, nil
}

var _ Repo = (*MemoryRepo)(nil)
