package screening

import (
	"context"

	"hr-backend/internal/jobs"
	"hr-backend/internal/parsing"
)

// Enrichment is the AI analyzer's verdict. Component scores and skill
// analysis replace the deterministic values when the enrichment succeeds.
type Enrichment struct {
	ComponentScores ComponentScores `json:"component_scores"`
	SkillAnalysis   SkillAnalysis   `json:"skill_analysis"`
	OverallScore    float64         `json:"overall_score"`
	Assessment      string          `json:"overall_assessment"`
	Strengths       []string        `json:"strengths"`
	Weaknesses      []string        `json:"weaknesses"`
	Recommendation  string          `json:"recommendation"`
}

// Enricher produces an AI assessment of a parsed resume against a job
// profile. Implementations must fail with an error rather than return a
// partial verdict.
type Enricher interface {
	Enrich(ctx context.Context, resume parsing.ParsedResume, profile jobs.Profile) (Enrichment, error)
}
