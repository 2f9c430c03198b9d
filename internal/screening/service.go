package screening

import (
	"bytes"
	"context"
	"encoding/base64"
	"fmt"
	"math"
	"path/filepath"
	"time"

	"github.com/google/uuid"

	"hr-backend/internal/extract"
	"hr-backend/internal/jobs"
	"hr-backend/internal/matching"
	"hr-backend/internal/parsing"
	"hr-backend/internal/scoring"
	"hr-backend/internal/shared/metrics"
	"hr-backend/internal/shared/storage/object"
	"hr-backend/internal/shared/telemetry"
)

// Recombination weights. The orchestrator re-weights the components with a
// much heavier skill share than the base scorer and keeps the better of the
// two composites.
const (
	reweightEducation  = 0.15
	reweightExperience = 0.20
	reweightDomain     = 0.10
	reweightLanguage   = 0.10
	reweightSkills     = 0.45
)

// Service runs the screening pipeline.
type Service struct {
	Parser   *parsing.Parser
	Jobs     *jobs.Service
	Repo     Repo
	Store    object.ObjectStore
	Matcher  matching.Strategy
	Enricher Enricher
}

// Screen processes one resume against one job. Only malformed input yields a
// non-nil error; every downstream failure is reported in the returned report
// with Success=false.
func (s *Service) Screen(ctx context.Context, req Request) (Report, error) {
	metrics.IncScreeningStarted()
	started := metrics.NowMillis()
	report := Report{
		ID:            uuid.NewString(),
		Status:        StatusReceived,
		CandidateName: req.CandidateName,
		JobID:         req.JobID,
		CreatedAt:     time.Now().UTC(),
	}

	data, err := base64.StdEncoding.DecodeString(req.ResumeBase64)
	if err != nil {
		return Report{}, fmt.Errorf("%w: resume_base64 is not valid base64", ErrInvalidInput)
	}
	if len(data) == 0 {
		return Report{}, fmt.Errorf("%w: resume payload is empty", ErrInvalidInput)
	}

	profile, usedFallback := s.Jobs.Resolve(ctx, req.JobID)
	report.JobTitle = profile.Title
	report.FallbackJobProfile = usedFallback

	// The raw document is staged in the object store for the duration of the
	// screening and released on every exit path.
	if s.Store != nil {
		key, _, _, err := s.Store.Save(ctx, "screenings", report.ID+filepath.Ext(req.ResumeFilename), bytes.NewReader(data))
		if err != nil {
			telemetry.Error("screening.stage_failed", map[string]any{"screening_id": report.ID, "err": err.Error()})
		} else {
			defer func() {
				if err := s.Store.Delete(ctx, key); err != nil {
					telemetry.Error("screening.cleanup_failed", map[string]any{"screening_id": report.ID, "key": key, "err": err.Error()})
				}
			}()
		}
	}

	text, err := extract.Text(ctx, data, "", req.ResumeFilename)
	if err != nil {
		return s.fail(ctx, report, fmt.Sprintf("text extraction failed: %v", err)), nil
	}

	parsed, err := s.Parser.Parse(text, nil)
	if err != nil {
		return s.fail(ctx, report, fmt.Sprintf("resume parsing failed: %v", err)), nil
	}
	report.Status = StatusParsed
	report.ParsedData = &parsed

	skillRes := s.matchSkills(ctx, req, parsed, profile)
	keywords := append(append(append([]string{}, profile.RequiredSkills...), profile.OptionalSkills...), profile.CustomKeywords...)
	kwReport := matching.AnalyzeKeywords(text, keywords)
	relevance := matching.Relevance(skillRes.OverallScore, kwReport)
	report.Status = StatusMatched
	report.AIAssistedMatch = skillRes.AIAssisted
	report.KeywordAnalysis = kwReport
	report.SkillAnalysis = SkillAnalysis{
		MatchedRequired:    skillRes.MatchedRequired,
		MissingRequired:    skillRes.MissingRequired,
		MatchedOptional:    skillRes.MatchedOptional,
		AllCandidateSkills: parsed.Skills.Found,
	}

	scores := scoring.Score(parsed, scoring.Requirements{
		EducationLevel:  profile.EducationLevel,
		ExperienceYears: profile.ExperienceYears,
		TargetDomain:    profile.TargetDomain,
		RequiredSkills:  profile.RequiredSkills,
		OptionalSkills:  profile.OptionalSkills,
	}, skillRes.OverallScore)
	report.Status = StatusScored
	report.ScoreDetails = &scores
	report.ComponentScores = ComponentScores{
		Education:  scores.Education.Score,
		Experience: scores.Experience.Score,
		Domain:     scores.Domain.Score,
		Language:   scores.Language.Score,
		SkillMatch: relevance,
	}
	report.OverallScore = combineOverall(scores.Score, report.ComponentScores)
	report.Rating = scoring.OverallRating(report.OverallScore)
	report.Recommendation = matching.Recommendation(report.OverallScore)
	report.Assessment = fmt.Sprintf("Resume analysis completed with %.1f%% overall score", report.OverallScore)

	if req.AIEnabled() && s.Enricher != nil {
		if enr, err := s.Enricher.Enrich(ctx, parsed, profile); err != nil {
			telemetry.Error("screening.enrich_failed", map[string]any{"screening_id": report.ID, "err": err.Error()})
		} else {
			report.Status = StatusAIEnriched
			report.AIEnriched = true
			report.ComponentScores = enr.ComponentScores
			report.SkillAnalysis = enr.SkillAnalysis
			report.OverallScore = round2(enr.OverallScore)
			report.Rating = scoring.OverallRating(report.OverallScore)
			report.Assessment = enr.Assessment
			report.Strengths = enr.Strengths
			report.Weaknesses = enr.Weaknesses
			if enr.Recommendation != "" {
				report.Recommendation = enr.Recommendation
			}
		}
	}

	report.Status = StatusCompleted
	report.Success = true
	now := time.Now().UTC()
	report.CompletedAt = &now

	s.persist(ctx, report)
	metrics.IncScreeningCompleted()
	metrics.ObserveScreeningDurationMs(metrics.NowMillis() - started)
	return report, nil
}

// Get returns a stored screening report.
func (s *Service) Get(ctx context.Context, id string) (Report, error) {
	return s.Repo.GetByID(ctx, id)
}

func (s *Service) matchSkills(ctx context.Context, req Request, parsed parsing.ParsedResume, profile jobs.Profile) matching.Result {
	onError := func(err error) {
		telemetry.Error("screening.ai_match_failed", map[string]any{"job_id": req.JobID, "err": err.Error()})
	}
	if req.AIEnabled() && s.Matcher != nil {
		return matching.MatchWithStrategies(ctx, parsed.Skills.Found, profile.RequiredSkills, profile.OptionalSkills, onError, s.Matcher)
	}
	return matching.Match(parsed.Skills.Found, profile.RequiredSkills, profile.OptionalSkills)
}

// combineOverall keeps the better of the scorer's composite and the
// skill-heavy recombination.
func combineOverall(base float64, comp ComponentScores) float64 {
	reweighted := comp.Education*reweightEducation +
		comp.Experience*reweightExperience +
		comp.Domain*reweightDomain +
		comp.Language*reweightLanguage +
		comp.SkillMatch*reweightSkills
	return round2(math.Max(base, reweighted))
}

func (s *Service) fail(ctx context.Context, report Report, msg string) Report {
	metrics.IncScreeningFailed()
	report.Status = StatusFailed
	report.Success = false
	report.Error = msg
	now := time.Now().UTC()
	report.CompletedAt = &now
	s.persist(ctx, report)
	return report
}

// persist is best effort: a storage outage must not fail a finished
// screening.
func (s *Service) persist(ctx context.Context, report Report) {
	if s.Repo == nil {
		return
	}
	if err := s.Repo.Create(ctx, report); err != nil {
		telemetry.Error("screening.persist_failed", map[string]any{"screening_id": report.ID, "err": err.Error()})
	}
}

func round2(f float64) float64 {
	return math.Round(f*100) / 100
}
