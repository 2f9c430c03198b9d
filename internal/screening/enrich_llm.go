package screening

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"hr-backend/internal/jobs"
	"hr-backend/internal/llm"
	"hr-backend/internal/parsing"
)

// LLMEnricher implements Enricher over the provider chain.
type LLMEnricher struct {
	Client llm.Client
}

// Enrich builds the analyzer prompt, runs it, and parses the JSON verdict.
func (e *LLMEnricher) Enrich(ctx context.Context, resume parsing.ParsedResume, profile jobs.Profile) (Enrichment, error) {
	if e == nil || e.Client == nil {
		return Enrichment{}, fmt.Errorf("enricher not configured")
	}

	raw, err := e.Client.Generate(ctx, buildEnrichPrompt(resume, profile))
	if err != nil {
		return Enrichment{}, fmt.Errorf("ai enrichment: %w", err)
	}

	var out Enrichment
	if err := json.Unmarshal([]byte(llm.ExtractJSON(raw)), &out); err != nil {
		return Enrichment{}, fmt.Errorf("ai enrichment response: %w", err)
	}
	if out.OverallScore < 0 || out.OverallScore > 100 {
		return Enrichment{}, fmt.Errorf("ai enrichment score %v out of range", out.OverallScore)
	}
	return out, nil
}

func buildEnrichPrompt(resume parsing.ParsedResume, profile jobs.Profile) string {
	skills := resume.Skills.Found
	if len(skills) > 10 {
		skills = skills[:10]
	}
	skillsStr := "None listed"
	if len(skills) > 0 {
		skillsStr = strings.Join(skills, ", ")
	}
	required := profile.RequiredSkills
	if len(required) > 5 {
		required = required[:5]
	}
	requiredStr := "None"
	if len(required) > 0 {
		requiredStr = strings.Join(required, ", ")
	}
	institution := ""
	if len(resume.Education.Institutions) > 0 {
		institution = resume.Education.Institutions[0]
	}

	return fmt.Sprintf(`Analyze this candidate for the %s position.

CANDIDATE:
- Education: %s from %s
- Experience: %d years
- Skills: %s

JOB REQUIREMENTS:
- Required Skills: %s
- Required Experience: %d years
- Required Education: level %d

Provide scores (0-100) and analysis in this JSON format:
{
    "component_scores": {
        "education": 85,
        "experience": 70,
        "domain": 90,
        "language": 80,
        "skill_match": 75
    },
    "skill_analysis": {
        "matched_required": ["Python", "JavaScript"],
        "missing_required": ["React", "Node.js"],
        "matched_optional": ["AWS"],
        "all_candidate_skills": ["Python", "JavaScript", "SQL", "Git"]
    },
    "overall_score": 80,
    "overall_assessment": "Strong technical background",
    "strengths": ["Good programming skills", "Relevant experience"],
    "weaknesses": ["Missing some frameworks"],
    "recommendation": "Recommended"
}`,
		profile.Title,
		resume.Education.Degree,
		institution,
		resume.Experience.TotalYears,
		skillsStr,
		requiredStr,
		profile.ExperienceYears,
		profile.EducationLevel,
	)
}

var _ Enricher = (*LLMEnricher)(nil)
