package screening

import (
	"context"
	"sort"
	"sync"
)

// MemoryRepo implements Repo in memory for development and tests.
type MemoryRepo struct {
	mu      sync.RWMutex
	reports map[string]Report
}

// NewMemoryRepo constructs an empty MemoryRepo.
func NewMemoryRepo() *MemoryRepo {
	return &MemoryRepo{reports: make(map[string]Report)}
}

// Create stores the report.
func (r *MemoryRepo) Create(_ context.Context, report Report) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.reports[report.ID] = report
	return nil
}

// GetByID returns the report or ErrNotFound.
func (r *MemoryRepo) GetByID(_ context.Context, id string) (Report, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	report, ok := r.reports[id]
	if !ok {
		return Report{}, ErrNotFound
	}
	return report, nil
}

// ListByJob returns reports for a job, newest first.
func (r *MemoryRepo) ListByJob(_ context.Context, jobID string, limit int) ([]Report, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var out []Report
	for _, report := range r.reports {
		if report.JobID == jobID {
			out = append(out, report)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

var _ Repo = (*MemoryRepo)(nil)
