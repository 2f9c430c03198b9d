package screening

import "context"

// Repo defines persistence operations for screening reports.
type Repo interface {
	Create(ctx context.Context, report Report) error
	GetByID(ctx context.Context, id string) (Report, error)
	ListByJob(ctx context.Context, jobID string, limit int) ([]Report, error)
}
