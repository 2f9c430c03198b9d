package jobs

import "context"

// Repo defines persistence operations for job records.
type Repo interface {
	Create(ctx context.Context, rec Record) error
	GetByID(ctx context.Context, id string) (Record, error)
}
