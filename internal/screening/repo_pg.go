package screening

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
)

// PGRepo implements Repo using Postgres. The full report lives in a jsonb
// column; hot fields are mirrored into their own columns for querying.
type PGRepo struct {
	DB *sql.DB
}

// Create inserts a screening report.
func (r *PGRepo) Create(ctx context.Context, report Report) error {
	const query = `
INSERT INTO screenings (id, job_id, candidate_name, status, success, overall_score, report, created_at, completed_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	payload, err := json.Marshal(report)
	if err != nil {
		return err
	}
	_, err = r.DB.ExecContext(ctx, query,
		report.ID,
		report.JobID,
		report.CandidateName,
		string(report.Status),
		report.Success,
		report.OverallScore,
		payload,
		report.CreatedAt,
		report.CompletedAt,
	)
	return err
}

// GetByID returns a screening report by ID.
func (r *PGRepo) GetByID(ctx context.Context, id string) (Report, error) {
	const query = `SELECT report FROM screenings WHERE id = $1 LIMIT 1`
	var payload []byte
	if err := r.DB.QueryRowContext(ctx, query, id).Scan(&payload); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Report{}, ErrNotFound
		}
		return Report{}, err
	}
	var report Report
	if err := json.Unmarshal(payload, &report); err != nil {
		return Report{}, err
	}
	return report, nil
}

// ListByJob returns reports for a job, newest first.
func (r *PGRepo) ListByJob(ctx context.Context, jobID string, limit int) ([]Report, error) {
	if limit <= 0 {
		limit = 20
	}
	if limit > 100 {
		limit = 100
	}
	const query = `
SELECT report FROM screenings
WHERE job_id = $1
ORDER BY created_at DESC
LIMIT $2`
	rows, err := r.DB.QueryContext(ctx, query, jobID, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Report
	for rows.Next() {
		var payload []byte
		if err := rows.Scan(&payload); err != nil {
			return nil, err
		}
		var report Report
		if err := json.Unmarshal(payload, &report); err != nil {
			return nil, err
		}
		out = append(out, report)
	}
	return out, rows.Err()
}

var _ Repo = (*PGRepo)(nil)
