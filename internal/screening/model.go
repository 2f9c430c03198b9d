// Package screening orchestrates the resume pipeline: decode, extract,
// parse, match, score, and optional AI enrichment.
package screening

import (
	"errors"
	"time"

	"hr-backend/internal/matching"
	"hr-backend/internal/parsing"
	"hr-backend/internal/scoring"
)

// ErrInvalidInput marks request-level failures that map to HTTP 400.
var ErrInvalidInput = errors.New("invalid screening input")

// ErrNotFound indicates the screening record does not exist.
var ErrNotFound = errors.New("screening not found")

// Status tracks the pipeline state machine. Transitions move strictly
// forward; Failed is terminal from any state.
type Status string

const (
	StatusReceived   Status = "received"
	StatusParsed     Status = "parsed"
	StatusMatched    Status = "matched"
	StatusScored     Status = "scored"
	StatusAIEnriched Status = "ai_enriched"
	StatusCompleted  Status = "completed"
	StatusFailed     Status = "failed"
)

// Request is the screening API input. The resume arrives base64-encoded.
type Request struct {
	ResumeBase64   string `json:"resume_base64" binding:"required"`
	ResumeFilename string `json:"resume_filename" binding:"required"`
	JobID          string `json:"job_id" binding:"required"`
	CandidateName  string `json:"candidate_name" binding:"required"`
	EnableAI       *bool  `json:"enable_ai"`
}

// AIEnabled reports the effective flag; it defaults to true.
func (r Request) AIEnabled() bool {
	return r.EnableAI == nil || *r.EnableAI
}

// ComponentScores is the flat per-dimension view carried by the report. The
// values start from the deterministic scorer and may be overridden by AI
// enrichment.
type ComponentScores struct {
	Education  float64 `json:"education"`
	Experience float64 `json:"experience"`
	Domain     float64 `json:"domain"`
	Language   float64 `json:"language"`
	SkillMatch float64 `json:"skill_match"`
}

// SkillAnalysis summarizes matched and missing skills for the report.
type SkillAnalysis struct {
	MatchedRequired    []string `json:"matched_required"`
	MissingRequired    []string `json:"missing_required"`
	MatchedOptional    []string `json:"matched_optional"`
	AllCandidateSkills []string `json:"all_candidate_skills"`
}

// Report is the full screening outcome returned to the caller and persisted.
type Report struct {
	ID                 string                 `json:"id"`
	Status             Status                 `json:"status"`
	Success            bool                   `json:"success"`
	CandidateName      string                 `json:"candidate_name"`
	JobID              string                 `json:"job_id"`
	JobTitle           string                 `json:"job_title,omitempty"`
	FallbackJobProfile bool                   `json:"fallback_job_profile"`
	OverallScore       float64                `json:"overall_score"`
	Rating             string                 `json:"rating,omitempty"`
	Recommendation     string                 `json:"recommendation,omitempty"`
	ComponentScores    ComponentScores        `json:"component_scores"`
	SkillAnalysis      SkillAnalysis          `json:"skill_analysis"`
	KeywordAnalysis    matching.KeywordReport `json:"keyword_analysis"`
	ParsedData         *parsing.ParsedResume  `json:"parsed_data,omitempty"`
	ScoreDetails       *scoring.Overall       `json:"score_details,omitempty"`
	Assessment         string                 `json:"overall_assessment,omitempty"`
	Strengths          []string               `json:"strengths,omitempty"`
	Weaknesses         []string               `json:"weaknesses,omitempty"`
	AIEnriched         bool                   `json:"ai_enriched"`
	AIAssistedMatch    bool                   `json:"ai_assisted_match"`
	Error              string                 `json:"error,omitempty"`
	CreatedAt          time.Time              `json:"created_at"`
	CompletedAt        *time.Time             `json:"completed_at,omitempty"`
}
