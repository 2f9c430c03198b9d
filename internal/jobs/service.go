package jobs

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"hr-backend/internal/llm"
	"hr-backend/internal/shared/storage/object"
	"hr-backend/internal/shared/telemetry"
)

// Service handles job-description generation and profile resolution.
type Service struct {
	Repo  Repo
	LLM   llm.Client
	Store object.ObjectStore
}

// GenerateRequest carries the inputs for drafting a job description.
type GenerateRequest struct {
	Role             string   `json:"role" binding:"required"`
	Department       string   `json:"department"`
	Experience       string   `json:"experience"`
	Skills           []string `json:"skills"`
	Location         string   `json:"location"`
	EmploymentType   string   `json:"employment_type"`
	Company          string   `json:"company"`
	Responsibilities []string `json:"responsibilities"`
	AdditionalNotes  string   `json:"additional_notes"`
}

// Generate drafts a job description via the LLM chain, stores the text asset,
// and persists the record.
func (s *Service) Generate(ctx context.Context, req GenerateRequest) (Record, error) {
	text, err := s.LLM.Generate(ctx, buildJDPrompt(req))
	if err != nil {
		return Record{}, fmt.Errorf("generate jd: %w", err)
	}

	now := time.Now().UTC()
	rec := Record{
		ID:         uuid.NewString(),
		Title:      req.Role,
		Role:       req.Role,
		Department: req.Department,
		JDText:     text,
		Skills:     StringList(req.Skills),
		CreatedAt:  now,
		UpdatedAt:  now,
	}

	if s.Store != nil {
		key, _, _, err := s.Store.Save(ctx, "jd", rec.ID+".txt", strings.NewReader(text))
		if err != nil {
			// The record still carries the full text, so a missing asset
			// only loses the downloadable copy.
			telemetry.Error("jobs.asset_save_failed", map[string]any{"job_id": rec.ID, "err": err.Error()})
		} else {
			rec.TextKey = key
		}
	}

	if err := s.Repo.Create(ctx, rec); err != nil {
		return Record{}, fmt.Errorf("save jd: %w", err)
	}
	return rec, nil
}

// Get returns a stored job record.
func (s *Service) Get(ctx context.Context, id string) (Record, error) {
	return s.Repo.GetByID(ctx, id)
}

// Resolve turns a job id into a screening profile. Unknown ids and repo
// failures degrade to the fallback profile; the second return reports whether
// that happened.
func (s *Service) Resolve(ctx context.Context, jobID string) (Profile, bool) {
	rec, err := s.Repo.GetByID(ctx, jobID)
	if err != nil {
		if !errors.Is(err, ErrNotFound) {
			telemetry.Error("jobs.resolve_failed", map[string]any{"job_id": jobID, "err": err.Error()})
		}
		return FallbackProfile(), true
	}
	return NormalizeRecord(rec), false
}

func buildJDPrompt(req GenerateRequest) string {
	orDefault := func(s, def string) string {
		if strings.TrimSpace(s) == "" {
			return def
		}
		return s
	}
	skills := strings.Join(req.Skills, ", ")
	if skills == "" {
		skills = "Relevant technical skills"
	}
	responsibilities := ""
	if len(req.Responsibilities) > 0 {
		responsibilities = "- " + strings.Join(req.Responsibilities, "\n- ")
	}
	return fmt.Sprintf(`You are an HR expert. Draft a clear, inclusive, and attractive Job Description (JD) with the following details. Structure it with title, summary, responsibilities, required skills, preferred qualifications, and benefits.

Role: %s
Department: %s
Experience: %s
Skills: %s
Location: %s
Employment: %s
Company: %s
Responsibilities:
%s
Additional Notes: %s
Ensure the JD is concise and scannable.`,
		orDefault(req.Role, "Role"),
		orDefault(req.Department, "General"),
		orDefault(req.Experience, "0-1 years"),
		skills,
		orDefault(req.Location, "Remote/Hybrid"),
		orDefault(req.EmploymentType, "Full-time"),
		orDefault(req.Company, "Our Company"),
		responsibilities,
		req.AdditionalNotes,
	)
}
