package scoring

import (
	"testing"

	"hr-backend/internal/parsing"
)

func TestScoreEducationExceeds(t *testing.T) {
	edu := parsing.Education{Level: 5, Degree: "PHD", Institutions: []string{"State University"}}
	got := ScoreEducation(edu, 3)
	// 100 base + 15 exceed + 5 institution, clamped to 100.
	if got.Score != 100 {
		t.Errorf("score = %v, want 100", got.Score)
	}
	if !got.ExceedsRequirement || !got.MeetsRequirement {
		t.Errorf("flags = %+v", got)
	}
	if got.Rating != "Excellent" {
		t.Errorf("rating = %q", got.Rating)
	}
}

func TestScoreEducationBelowRequirement(t *testing.T) {
	got := ScoreEducation(parsing.Education{Level: 2}, 3)
	// 50 base - 20 penalty.
	if got.Score != 30 {
		t.Errorf("score = %v, want 30", got.Score)
	}
	if got.MeetsRequirement {
		t.Error("level 2 should not meet requirement 3")
	}
	if got.PenaltyPoints != -20 {
		t.Errorf("penalty = %v", got.PenaltyPoints)
	}
}

func TestScoreEducationInstitutionBonusCapped(t *testing.T) {
	edu := parsing.Education{Level: 3, Institutions: []string{"a", "b", "c", "d"}}
	got := ScoreEducation(edu, 3)
	// 70 base + min(20, 10) institution bonus.
	if got.Score != 80 {
		t.Errorf("score = %v, want 80", got.Score)
	}
}

func TestScoreExperienceBands(t *testing.T) {
	tests := []struct {
		years int
		base  float64
	}{
		{0, 0}, {1, 30}, {2, 30}, {3, 60}, {5, 60}, {6, 85}, {10, 85}, {11, 100}, {25, 100},
	}
	for _, tt := range tests {
		got := ScoreExperience(parsing.Experience{TotalYears: tt.years}, 0, "")
		if got.BaseScore != tt.base {
			t.Errorf("base(%d years) = %v, want %v", tt.years, got.BaseScore, tt.base)
		}
	}
}

func TestScoreExperienceBelowRequirementFloor(t *testing.T) {
	got := ScoreExperience(parsing.Experience{TotalYears: 0}, 3, "")
	// 0 base - 25 penalty, clamped to 0.
	if got.Score != 0 {
		t.Errorf("score = %v, want 0 (clamped)", got.Score)
	}
	if got.MeetsRequirement {
		t.Error("0 years should not meet 3")
	}
}

func TestScoreExperienceBonusesAndRelevance(t *testing.T) {
	exp := parsing.Experience{
		TotalYears: 8,
		JobTitles:  []string{"Senior Software Engineer", "Backend Developer"},
		Companies:  []string{"Acme Inc"},
	}
	got := ScoreExperience(exp, 3, "IT")
	// base 85 + 15 exceed + 10 titles + 5 companies + relevance, clamped to 100.
	if got.Score != 100 {
		t.Errorf("score = %v, want 100", got.Score)
	}
	if got.DomainRelevanceScore <= 0 || got.DomainRelevanceScore > 30 {
		t.Errorf("relevance = %v, want in (0, 30]", got.DomainRelevanceScore)
	}
	if !got.Structured {
		t.Error("titles + companies should count as structured")
	}
}

func TestScoreDomainAlignmentExact(t *testing.T) {
	dom := parsing.Domain{
		Primary:    "IT",
		Confidence: 10,
		Scores:     map[string]parsing.DomainScore{"IT": {Score: 12}},
	}
	got := ScoreDomainAlignment(dom, "IT")
	// Exact match with full confidence: no dampening.
	if got.Score != 100 {
		t.Errorf("score = %v, want 100", got.Score)
	}
	if !got.ExactMatch {
		t.Error("expected exact match")
	}
	if got.Rating != "Perfect Match" {
		t.Errorf("rating = %q", got.Rating)
	}
}

func TestScoreDomainAlignmentPartialDampened(t *testing.T) {
	dom := parsing.Domain{
		Primary:    "IT",
		Confidence: 5,
		Scores: map[string]parsing.DomainScore{
			"IT":      {Score: 10},
			"Finance": {Score: 5},
		},
	}
	got := ScoreDomainAlignment(dom, "Finance")
	// alignment 5/10*100 = 50, dampener 0.7 + 0.3*0.5 = 0.85 => 42.5.
	if got.Score != 42.5 {
		t.Errorf("score = %v, want 42.5", got.Score)
	}
}

func TestScoreDomainAlignmentNoSignal(t *testing.T) {
	got := ScoreDomainAlignment(parsing.Domain{Primary: "General"}, "IT")
	if got.Score != 0 {
		t.Errorf("score = %v, want 0", got.Score)
	}
}

func TestScorePurity(t *testing.T) {
	resume := parsing.ParsedResume{
		Education:       parsing.Education{Level: 3, Institutions: []string{"u"}},
		Experience:      parsing.Experience{TotalYears: 4, JobTitles: []string{"Engineer"}},
		Domain:          parsing.Domain{Primary: "IT", Confidence: 6, Scores: map[string]parsing.DomainScore{"IT": {Score: 6}}},
		LanguageQuality: parsing.LanguageQuality{Score: 80, Rating: "Good"},
	}
	req := Requirements{EducationLevel: 3, ExperienceYears: 3, TargetDomain: "IT"}

	a := Score(resume, req, 60)
	b := Score(resume, req, 60)
	if a.Score != b.Score || a.Rating != b.Rating {
		t.Errorf("scoring is not deterministic: %v vs %v", a.Score, b.Score)
	}
}

func TestScoreComposite(t *testing.T) {
	resume := parsing.ParsedResume{
		Education:       parsing.Education{Level: 3},
		Experience:      parsing.Experience{TotalYears: 4, JobTitles: []string{"Software Engineer"}, Companies: []string{"Acme Inc"}},
		Domain:          parsing.Domain{Primary: "IT", Confidence: 10, Scores: map[string]parsing.DomainScore{"IT": {Score: 12}}},
		LanguageQuality: parsing.LanguageQuality{Score: 80, Rating: "Good"},
	}
	req := Requirements{EducationLevel: 3, ExperienceYears: 3, TargetDomain: "IT"}
	got := Score(resume, req, 70)

	// education 70, experience 60+10+5+relevance(2/5*30=12)=87, domain 100, lang 80, skills 70.
	want := round2(70*0.20 + 87*0.30 + 100*0.20 + 80*0.10 + 70*0.20)
	if got.Score != want {
		t.Errorf("overall = %v, want %v", got.Score, want)
	}
	if got.Rating != OverallRating(want) {
		t.Errorf("rating = %q", got.Rating)
	}
	sum := got.Breakdown.Education + got.Breakdown.Experience + got.Breakdown.Domain +
		got.Breakdown.Language + got.Breakdown.Skills
	if diff := sum - got.Score; diff > 0.05 || diff < -0.05 {
		t.Errorf("breakdown sum %v far from overall %v", sum, got.Score)
	}
}

func TestOverallRatingBands(t *testing.T) {
	tests := []struct {
		score float64
		want  string
	}{
		{90, "Excellent Candidate"},
		{85, "Excellent Candidate"},
		{70, "Strong Candidate"},
		{55, "Good Candidate"},
		{40, "Average Candidate"},
		{39.99, "Below Average Candidate"},
	}
	for _, tt := range tests {
		if got := OverallRating(tt.score); got != tt.want {
			t.Errorf("OverallRating(%v) = %q, want %q", tt.score, got, tt.want)
		}
	}
}
