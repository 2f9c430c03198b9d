package matching

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"strings"

	"hr-backend/internal/llm"
)

// ErrDeclined signals a strategy chose not to produce a result, for example
// when AI assistance is disabled for the request.
var ErrDeclined = errors.New("matching: strategy declined")

// Strategy produces a skill match result, or declines/fails so the caller can
// fall through to the deterministic matcher.
type Strategy interface {
	Match(ctx context.Context, resumeSkills, required, optional []string) (Result, error)
}

// AIStrategy delegates skill matching to an LLM recruiter prompt and verifies
// the answer against the required list before accepting it.
type AIStrategy struct {
	client llm.Client
}

// NewAIStrategy wraps an llm client as a matching Strategy.
func NewAIStrategy(client llm.Client) *AIStrategy {
	return &AIStrategy{client: client}
}

type aiMatchPayload struct {
	MatchedRequired []string           `json:"matched_required"`
	MatchedOptional []string           `json:"matched_optional"`
	MissingRequired []string           `json:"missing_required"`
	Equivalencies   map[string][]string `json:"equivalencies"`
	Explanations    map[string]string  `json:"match_explanations"`
	Confidence      map[string]float64 `json:"confidence_scores"`
}

// Match implements Strategy.
func (s *AIStrategy) Match(ctx context.Context, resumeSkills, required, optional []string) (Result, error) {
	if s == nil || s.client == nil {
		return Result{}, ErrDeclined
	}

	raw, err := s.client.Generate(ctx, buildMatchPrompt(resumeSkills, required, optional))
	if err != nil {
		return Result{}, fmt.Errorf("ai skill match: %w", err)
	}

	var payload aiMatchPayload
	if err := json.Unmarshal([]byte(llm.ExtractJSON(raw)), &payload); err != nil {
		return Result{}, fmt.Errorf("ai skill match response: %w", err)
	}

	matched := dedupe(payload.MatchedRequired)
	missing := dedupe(payload.MissingRequired)
	reqList := dedupe(required)

	// The model occasionally drops skills from both buckets. Anything it
	// never mentioned counts as missing, preserving the partition invariant.
	mentioned := make(map[string]bool, len(matched)+len(missing))
	for _, m := range matched {
		mentioned[strings.ToLower(m)] = true
	}
	for _, m := range missing {
		mentioned[strings.ToLower(m)] = true
	}
	for _, req := range reqList {
		if !mentioned[strings.ToLower(req)] {
			missing = append(missing, req)
		}
	}

	sort.Strings(matched)
	sort.Strings(missing)
	matchedOpt := dedupe(payload.MatchedOptional)
	sort.Strings(matchedOpt)

	reqScore := percentage(len(matched), len(reqList), 100)
	optScore := percentage(len(matchedOpt), len(dedupe(optional)), 0)
	overall := round2(0.7*reqScore + 0.3*optScore)

	return Result{
		MatchedRequired: matched,
		MatchedOptional: matchedOpt,
		MissingRequired: missing,
		RequiredScore:   round2(reqScore),
		OptionalScore:   round2(optScore),
		OverallScore:    overall,
		GapAnalysis:     gapAnalysis(missing, overall),
		Equivalencies:   payload.Equivalencies,
		Explanations:    payload.Explanations,
		Confidence:      payload.Confidence,
		AIAssisted:      true,
	}, nil
}

func buildMatchPrompt(resumeSkills, required, optional []string) string {
	opt := "None"
	if len(optional) > 0 {
		opt = strings.Join(optional, ", ")
	}
	return fmt.Sprintf(`You are an expert technical recruiter. Analyze the skill matching between a resume and job requirements.

RESUME SKILLS:
%s

REQUIRED SKILLS:
%s

OPTIONAL SKILLS:
%s

TASK:
1. Match each required skill to resume skills (handle variations like Node.js/nodejs/node, Express.js/expressjs/express)
2. Match optional skills
3. Identify truly missing skills
4. Provide equivalencies (e.g., "C" in requirements matches "C Programming" in resume)

Respond in JSON format:
{
    "matched_required": ["skill1", "skill2"],
    "matched_optional": ["skill3"],
    "missing_required": ["skill4"],
    "equivalencies": {"c": ["C Programming", "C Language"]},
    "match_explanations": {"c": "Matched 'C Programming' in resume to 'c' in requirements"},
    "confidence_scores": {"c": 0.9}
}`, strings.Join(resumeSkills, ", "), strings.Join(required, ", "), opt)
}

// MatchWithStrategies tries each strategy in order, falling back to the
// deterministic matcher when all of them decline or fail. The error callback
// receives non-decline failures and may be nil.
func MatchWithStrategies(ctx context.Context, resumeSkills, required, optional []string, onError func(error), strategies ...Strategy) Result {
	for _, strat := range strategies {
		res, err := strat.Match(ctx, resumeSkills, required, optional)
		if err == nil {
			return res
		}
		if !errors.Is(err, ErrDeclined) && onError != nil {
			onError(err)
		}
	}
	return Match(resumeSkills, required, optional)
}

var _ Strategy = (*AIStrategy)(nil)
