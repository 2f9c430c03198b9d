// Package matching compares resume skills against job requirements. The
// deterministic matcher is the source of truth; AI strategies (ai.go) may
// refine its view but can never be the only path.
package matching

import (
	"fmt"
	"sort"
	"strings"

	"github.com/agext/levenshtein"

	"hr-backend/internal/parsing"
)

// fuzzyThreshold is the minimum normalized similarity for two labels to be
// reconciled as the same skill.
const fuzzyThreshold = 0.8

// synonyms maps a canonical lowercased label to equivalent spellings. The
// check is applied symmetrically, so each pair only needs one direction here.
var synonyms = map[string][]string{
	"c":          {"c programming", "c language"},
	"c++":        {"cpp", "c plus plus"},
	"c#":         {"csharp", "c sharp"},
	"javascript": {"js", "ecmascript"},
	"typescript": {"ts"},
	"python":     {"python3", "py"},
}

// Result is the outcome of matching one resume against one job's skill lists.
type Result struct {
	MatchedRequired []string           `json:"matched_required"`
	MatchedOptional []string           `json:"matched_optional"`
	MissingRequired []string           `json:"missing_required"`
	FuzzyMatches    map[string]string  `json:"fuzzy_matches,omitempty"`
	RequiredScore   float64            `json:"required_match_pct"`
	OptionalScore   float64            `json:"optional_match_pct"`
	OverallScore    float64            `json:"overall_skill_score"`
	GapAnalysis     string             `json:"gap_analysis"`
	Equivalencies   map[string][]string `json:"equivalencies,omitempty"`
	Explanations    map[string]string  `json:"match_explanations,omitempty"`
	Confidence      map[string]float64 `json:"confidence_scores,omitempty"`
	AIAssisted      bool               `json:"ai_assisted"`
}

// Match runs the full deterministic pipeline: exact/variation/synonym matching,
// then a fuzzy reconciliation pass over whatever is still missing.
// Invariant: matched_required and missing_required always partition the
// deduplicated required list.
func Match(resumeSkills, required, optional []string) Result {
	resume := normalizeAll(resumeSkills)

	var matchedReq, missingReq []string
	for _, req := range dedupe(required) {
		if anyMatch(resume, req) {
			matchedReq = append(matchedReq, req)
		} else {
			missingReq = append(missingReq, req)
		}
	}

	var matchedOpt []string
	for _, opt := range dedupe(optional) {
		if anyMatch(resume, opt) {
			matchedOpt = append(matchedOpt, opt)
		}
	}

	fuzzy := make(map[string]string)
	stillMissing := missingReq[:0:0]
	for _, miss := range missingReq {
		if found, ok := closestFuzzy(resume, miss); ok {
			matchedReq = append(matchedReq, miss)
			fuzzy[miss] = found
		} else {
			stillMissing = append(stillMissing, miss)
		}
	}
	missingReq = stillMissing

	sort.Strings(matchedReq)
	sort.Strings(matchedOpt)
	sort.Strings(missingReq)

	reqScore := percentage(len(matchedReq), len(dedupe(required)), 100)
	optScore := percentage(len(matchedOpt), len(dedupe(optional)), 0)
	overall := round2(0.7*reqScore + 0.3*optScore)

	res := Result{
		MatchedRequired: matchedReq,
		MatchedOptional: matchedOpt,
		MissingRequired: missingReq,
		RequiredScore:   round2(reqScore),
		OptionalScore:   round2(optScore),
		OverallScore:    overall,
		GapAnalysis:     gapAnalysis(missingReq, overall),
	}
	if len(fuzzy) > 0 {
		res.FuzzyMatches = fuzzy
	}
	return res
}

// SkillsEqual reports whether two skill labels name the same skill, through
// normalization, lexical variations, or the synonym table.
func SkillsEqual(a, b string) bool {
	na, nb := normalize(a), normalize(b)
	if na == nb {
		return true
	}
	va := parsing.SkillVariations(na)
	for variant := range parsing.SkillVariations(nb) {
		if va[variant] {
			return true
		}
	}
	return synonymOf(na, nb) || synonymOf(nb, na)
}

func synonymOf(canonical, candidate string) bool {
	for _, s := range synonyms[canonical] {
		if s == candidate {
			return true
		}
	}
	return false
}

func anyMatch(resume []string, want string) bool {
	for _, have := range resume {
		if SkillsEqual(have, want) {
			return true
		}
	}
	return false
}

// closestFuzzy returns the resume skill most similar to want when that
// similarity clears the threshold.
func closestFuzzy(resume []string, want string) (string, bool) {
	nw := normalize(want)
	best := ""
	bestSim := 0.0
	params := levenshtein.NewParams()
	for _, have := range resume {
		sim := levenshtein.Similarity(normalize(have), nw, params)
		if sim >= fuzzyThreshold && sim > bestSim {
			best, bestSim = have, sim
		}
	}
	return best, best != ""
}

func gapAnalysis(missing []string, overall float64) string {
	if len(missing) == 0 {
		return "No required skill gaps identified."
	}
	return fmt.Sprintf("Missing %d required skill(s): %s. Overall skill match %.0f%%.",
		len(missing), strings.Join(missing, ", "), overall)
}

func normalize(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

func normalizeAll(list []string) []string {
	out := make([]string, 0, len(list))
	for _, s := range list {
		if n := normalize(s); n != "" {
			out = append(out, n)
		}
	}
	return out
}

func dedupe(list []string) []string {
	seen := make(map[string]bool, len(list))
	out := make([]string, 0, len(list))
	for _, s := range list {
		s = strings.TrimSpace(s)
		key := strings.ToLower(s)
		if s == "" || seen[key] {
			continue
		}
		seen[key] = true
		out = append(out, s)
	}
	return out
}

func percentage(matched, total int, whenEmpty float64) float64 {
	if total == 0 {
		return whenEmpty
	}
	return float64(matched) / float64(total) * 100
}
