package matching

import (
	"context"
	"errors"
	"math"
	"sort"
	"strings"
	"testing"
)

func TestMatchExactAndVariations(t *testing.T) {
	res := Match(
		[]string{"Python", "nodejs", "PostgreSQL"},
		[]string{"Python", "Node.js", "SQL"},
		nil,
	)
	wantMatched := []string{"Node.js", "Python"}
	if !equalStrings(res.MatchedRequired, wantMatched) {
		t.Errorf("matched = %v, want %v", res.MatchedRequired, wantMatched)
	}
	if !equalStrings(res.MissingRequired, []string{"SQL"}) {
		t.Errorf("missing = %v, want [SQL]", res.MissingRequired)
	}
}

func TestMatchSynonymsSymmetric(t *testing.T) {
	tests := []struct {
		resume, required string
	}{
		{"C Programming", "C"},
		{"C", "C Programming"},
		{"js", "JavaScript"},
		{"JavaScript", "js"},
		{"cpp", "C++"},
		{"python3", "Python"},
	}
	for _, tt := range tests {
		res := Match([]string{tt.resume}, []string{tt.required}, nil)
		if len(res.MatchedRequired) != 1 {
			t.Errorf("Match(%q vs %q): missing = %v, want match", tt.resume, tt.required, res.MissingRequired)
		}
	}
}

func TestMatchFuzzyReconciliation(t *testing.T) {
	res := Match([]string{"PostgresSQL"}, []string{"PostgreSQL"}, nil)
	if len(res.MatchedRequired) != 1 {
		t.Fatalf("near-identical spelling should fuzzy-match, missing = %v", res.MissingRequired)
	}
	if res.FuzzyMatches["PostgreSQL"] == "" {
		t.Errorf("fuzzy match not recorded: %v", res.FuzzyMatches)
	}

	res = Match([]string{"Haskell"}, []string{"PostgreSQL"}, nil)
	if len(res.MatchedRequired) != 0 {
		t.Errorf("unrelated skills should not fuzzy-match: %v", res.MatchedRequired)
	}
}

func TestMatchPartitionInvariant(t *testing.T) {
	required := []string{"Python", "Go", "Kafka", "Terraform", "SQL"}
	res := Match([]string{"python", "sql"}, required, []string{"AWS"})

	got := append(append([]string{}, res.MatchedRequired...), res.MissingRequired...)
	sort.Strings(got)
	want := append([]string{}, required...)
	sort.Strings(want)
	if !equalStrings(got, want) {
		t.Errorf("matched+missing = %v, want partition of %v", got, want)
	}
}

func TestMatchScores(t *testing.T) {
	res := Match(
		[]string{"Python", "SQL"},
		[]string{"Python", "SQL", "Go", "Rust"},
		[]string{"AWS", "Docker"},
	)
	if res.RequiredScore != 50 {
		t.Errorf("required = %v, want 50", res.RequiredScore)
	}
	if res.OptionalScore != 0 {
		t.Errorf("optional = %v, want 0", res.OptionalScore)
	}
	if want := round2(0.7 * 50); res.OverallScore != want {
		t.Errorf("overall = %v, want %v", res.OverallScore, want)
	}
}

func TestMatchEmptyBuckets(t *testing.T) {
	res := Match([]string{"Python"}, nil, nil)
	if res.RequiredScore != 100 {
		t.Errorf("required with no requirements = %v, want 100", res.RequiredScore)
	}
	if res.OptionalScore != 0 {
		t.Errorf("optional with no optionals = %v, want 0", res.OptionalScore)
	}
}

func TestAnalyzeKeywords(t *testing.T) {
	text := "Built data pipelines. Data engineering with airflow and spark."
	rep := AnalyzeKeywords(text, []string{"data", "spark", "kubernetes"})
	if !equalStrings(rep.Matched, []string{"data", "spark"}) {
		t.Errorf("matched = %v", rep.Matched)
	}
	if !equalStrings(rep.Missing, []string{"kubernetes"}) {
		t.Errorf("missing = %v", rep.Missing)
	}
	if math.Abs(rep.Coverage-66.67) > 0.01 {
		t.Errorf("coverage = %v, want 66.67", rep.Coverage)
	}
	if rep.Density <= 0 {
		t.Errorf("density = %v, want positive", rep.Density)
	}
}

func TestAnalyzeKeywordsWholeWordsOnly(t *testing.T) {
	rep := AnalyzeKeywords(
		"Seasoned marketer who runs brand campaigns and grows organic reach.",
		[]string{"R", "Go", "AI"},
	)
	if len(rep.Matched) != 0 {
		t.Errorf("matched = %v, want none (keywords only appear inside other words)", rep.Matched)
	}
	if rep.Density != 0 || rep.Coverage != 0 {
		t.Errorf("density = %v coverage = %v, want 0/0", rep.Density, rep.Coverage)
	}

	rep = AnalyzeKeywords("Daily work in Go, R, and C++ models.", []string{"R", "Go", "C++"})
	if !equalStrings(rep.Matched, []string{"R", "Go", "C++"}) {
		t.Errorf("matched = %v, want all three as standalone tokens", rep.Matched)
	}
}

func TestRecommendationBands(t *testing.T) {
	tests := []struct {
		score float64
		want  string
	}{
		{85, "Highly recommended"},
		{70, "Recommended"},
		{55, "Consider with reservations"},
		{40, "Not recommended"},
		{10, "Strongly not recommended"},
	}
	for _, tt := range tests {
		if got := Recommendation(tt.score); !strings.HasPrefix(got, tt.want) {
			t.Errorf("Recommendation(%v) = %q, want prefix %q", tt.score, got, tt.want)
		}
	}
}

func TestExtractKeywords(t *testing.T) {
	text := "python python python backend backend the and for cloud"
	kws := ExtractKeywords(text, 2)
	if !equalStrings(kws, []string{"python", "backend"}) {
		t.Errorf("keywords = %v, want [python backend]", kws)
	}
}

type stubStrategy struct {
	res Result
	err error
}

func (s stubStrategy) Match(context.Context, []string, []string, []string) (Result, error) {
	return s.res, s.err
}

func TestMatchWithStrategiesFallsThrough(t *testing.T) {
	var reported []error
	res := MatchWithStrategies(context.Background(),
		[]string{"Python"}, []string{"Python"}, nil,
		func(err error) { reported = append(reported, err) },
		stubStrategy{err: ErrDeclined},
		stubStrategy{err: errors.New("provider down")},
	)
	if res.AIAssisted {
		t.Error("deterministic fallback should not be AI-assisted")
	}
	if len(res.MatchedRequired) != 1 {
		t.Errorf("matched = %v", res.MatchedRequired)
	}
	if len(reported) != 1 {
		t.Errorf("declines must not be reported as errors: %v", reported)
	}
}

func TestMatchWithStrategiesUsesFirstSuccess(t *testing.T) {
	want := Result{MatchedRequired: []string{"Go"}, AIAssisted: true}
	res := MatchWithStrategies(context.Background(), nil, nil, nil, nil, stubStrategy{res: want})
	if !res.AIAssisted || !equalStrings(res.MatchedRequired, []string{"Go"}) {
		t.Errorf("res = %+v", res)
	}
}

func equalStrings(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
