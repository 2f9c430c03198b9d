package jobs

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
)

// PGRepo implements Repo using Postgres.
type PGRepo struct {
	DB *sql.DB
}

// Create inserts a new job record.
func (r *PGRepo) Create(ctx context.Context, rec Record) error {
	const query = `
INSERT INTO jobs (id, title, role, department, description, jd_text, skills, requirements, text_key, created_at, updated_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`
	// nil slices marshal to JSON null, which the jsonb columns reject.
	skills, err := json.Marshal(orEmpty(rec.Skills))
	if err != nil {
		return err
	}
	requirements, err := json.Marshal(orEmpty(rec.Requirements))
	if err != nil {
		return err
	}
	_, err = r.DB.ExecContext(ctx, query,
		rec.ID,
		rec.Title,
		rec.Role,
		rec.Department,
		rec.Description,
		rec.JDText,
		skills,
		requirements,
		rec.TextKey,
		rec.CreatedAt,
		rec.UpdatedAt,
	)
	return err
}

// GetByID returns a job record by ID.
func (r *PGRepo) GetByID(ctx context.Context, id string) (Record, error) {
	const query = `
SELECT id, title, role, department, description, jd_text, skills, requirements, text_key, created_at, updated_at
FROM jobs
WHERE id = $1
LIMIT 1`
	var rec Record
	var role, department, description, jdText, textKey sql.NullString
	var skills, requirements sql.NullString
	err := r.DB.QueryRowContext(ctx, query, id).Scan(
		&rec.ID,
		&rec.Title,
		&role,
		&department,
		&description,
		&jdText,
		&skills,
		&requirements,
		&textKey,
		&rec.CreatedAt,
		&rec.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Record{}, ErrNotFound
		}
		return Record{}, err
	}
	if role.Valid {
		rec.Role = role.String
	}
	if department.Valid {
		rec.Department = department.String
	}
	if description.Valid {
		rec.Description = description.String
	}
	if jdText.Valid {
		rec.JDText = jdText.String
	}
	if textKey.Valid {
		rec.TextKey = textKey.String
	}
	if skills.Valid {
		_ = json.Unmarshal([]byte(skills.String), &rec.Skills)
	}
	if requirements.Valid {
		_ = json.Unmarshal([]byte(requirements.String), &rec.Requirements)
	}
	return rec, nil
}

func orEmpty(list StringList) []string {
	if list == nil {
		return []string{}
	}
	return []string(list)
}

var _ Repo = (*PGRepo)(nil)
