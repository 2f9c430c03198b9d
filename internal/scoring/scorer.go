// Package scoring turns parsed resume fields into component and composite
// scores. Every function here is pure: same inputs, same outputs, no I/O.
package scoring

import (
	"fmt"
	"math"
	"strings"

	"hr-backend/internal/parsing"
)

// Requirements are the job-side inputs to scoring.
type Requirements struct {
	EducationLevel  int      `json:"required_education_level"`
	ExperienceYears int      `json:"required_experience_years"`
	TargetDomain    string   `json:"target_domain"`
	RequiredSkills  []string `json:"required_skills"`
	OptionalSkills  []string `json:"optional_skills"`
}

// Component weights for the overall composite.
const (
	WeightEducation  = 0.20
	WeightExperience = 0.30
	WeightDomain     = 0.20
	WeightLanguage   = 0.10
	WeightSkills     = 0.20
)

var educationBase = map[int]float64{
	5: 100, // doctorate
	4: 85,  // master's
	3: 70,  // bachelor's
	2: 50,  // associate/diploma
	1: 30,  // high school
	0: 0,
}

// domainRelevanceKeywords drive the job-title relevance bonus in experience
// scoring. Deliberately smaller than the parser's detection vocabulary.
var domainRelevanceKeywords = map[string][]string{
	"IT":           {"developer", "engineer", "software", "programmer", "technical"},
	"Data Science": {"data", "analytics", "machine learning", "ai", "scientist"},
	"Marketing":    {"marketing", "campaign", "branding", "advertising", "digital"},
	"Finance":      {"finance", "accounting", "financial", "investment", "analyst"},
	"HR":           {"hr", "recruitment", "talent", "human resources"},
	"Sales":        {"sales", "business development", "account", "revenue"},
	"Design":       {"design", "designer", "creative", "ui", "ux"},
	"Management":   {"manager", "director", "lead", "management"},
}

// EducationScore is the education component breakdown.
type EducationScore struct {
	Score              float64 `json:"education_score"`
	BaseScore          float64 `json:"base_score"`
	CandidateLevel     int     `json:"candidate_level"`
	RequiredLevel      int     `json:"required_level"`
	MeetsRequirement   bool    `json:"meets_requirement"`
	ExceedsRequirement bool    `json:"exceeds_requirement"`
	Degree             string  `json:"degree"`
	BonusPoints        float64 `json:"bonus_points"`
	PenaltyPoints      float64 `json:"penalty_points"`
	Rating             string  `json:"rating"`
}

// ScoreEducation scores degree level against the required ordinal: base from
// the level table, +15 for exceeding, -20 for falling short, +5 per listed
// institution capped at 10, clamped to [0, 100].
func ScoreEducation(edu parsing.Education, requiredLevel int) EducationScore {
	base := educationBase[edu.Level]

	exceeds := edu.Level > requiredLevel
	below := edu.Level < requiredLevel

	bonus := 0.0
	if exceeds {
		bonus = 15
	}
	penalty := 0.0
	if below {
		penalty = -20
	}
	instBonus := math.Min(float64(len(edu.Institutions))*5, 10)

	final := clamp(base + bonus + penalty + instBonus)

	return EducationScore{
		Score:              round2(final),
		BaseScore:          base,
		CandidateLevel:     edu.Level,
		RequiredLevel:      requiredLevel,
		MeetsRequirement:   edu.Level >= requiredLevel,
		ExceedsRequirement: exceeds,
		Degree:             edu.Degree,
		BonusPoints:        bonus + instBonus,
		PenaltyPoints:      penalty,
		Rating:             educationRating(final),
	}
}

// ExperienceScore is the experience component breakdown.
type ExperienceScore struct {
	Score                float64 `json:"experience_score"`
	BaseScore            float64 `json:"base_score"`
	TotalYears           int     `json:"total_years"`
	RequiredYears        int     `json:"required_years"`
	MeetsRequirement     bool    `json:"meets_requirement"`
	ExceedsRequirement   bool    `json:"exceeds_requirement"`
	DomainRelevanceScore float64 `json:"domain_relevance_score"`
	Structured           bool    `json:"has_structured_experience"`
	JobTitleCount        int     `json:"job_title_count"`
	CompanyCount         int     `json:"company_count"`
	BonusPoints          float64 `json:"bonus_points"`
	PenaltyPoints        float64 `json:"penalty_points"`
	Rating               string  `json:"rating"`
}

// ScoreExperience scores years worked against the requirement: banded base
// score, +15 for clearly exceeding (more than 1.5x), -25 for falling short,
// +10 for documented titles, +5 for named employers, plus a title/domain
// relevance bonus capped at 30.
func ScoreExperience(exp parsing.Experience, requiredYears int, domain string) ExperienceScore {
	base := experienceBase(exp.TotalYears)

	meets := exp.TotalYears >= requiredYears
	exceeds := float64(exp.TotalYears) > float64(requiredYears)*1.5

	bonus := 0.0
	if exceeds {
		bonus = 15
	}
	penalty := 0.0
	if !meets {
		penalty = -25
	}
	titleBonus := 0.0
	if len(exp.JobTitles) > 0 {
		titleBonus = 10
	}
	companyBonus := 0.0
	if len(exp.Companies) > 0 {
		companyBonus = 5
	}

	relevance := 0.0
	if keywords := domainRelevanceKeywords[domain]; len(keywords) > 0 {
		titlesText := strings.ToLower(strings.Join(exp.JobTitles, " "))
		hits := 0
		for _, kw := range keywords {
			if strings.Contains(titlesText, kw) {
				hits++
			}
		}
		relevance = math.Min(float64(hits)/float64(len(keywords))*30, 30)
	}

	final := clamp(base + bonus + penalty + titleBonus + companyBonus + relevance)

	return ExperienceScore{
		Score:                round2(final),
		BaseScore:            base,
		TotalYears:           exp.TotalYears,
		RequiredYears:        requiredYears,
		MeetsRequirement:     meets,
		ExceedsRequirement:   exceeds,
		DomainRelevanceScore: round2(relevance),
		Structured:           len(exp.JobTitles) > 0 && len(exp.Companies) > 0,
		JobTitleCount:        len(exp.JobTitles),
		CompanyCount:         len(exp.Companies),
		BonusPoints:          bonus + titleBonus + companyBonus,
		PenaltyPoints:        penalty,
		Rating:               experienceRating(final, exp.TotalYears),
	}
}

func experienceBase(years int) float64 {
	switch {
	case years <= 0:
		return 0
	case years <= 2:
		return 30
	case years <= 5:
		return 60
	case years <= 10:
		return 85
	default:
		return 100
	}
}

// DomainAlignmentScore is the domain component breakdown.
type DomainAlignmentScore struct {
	Score              float64        `json:"domain_alignment_score"`
	PrimaryDomain      string         `json:"primary_domain"`
	TargetDomain       string         `json:"target_domain"`
	ExactMatch         bool           `json:"exact_match"`
	Confidence         int            `json:"confidence"`
	TargetKeywordCount int            `json:"target_keyword_count"`
	AllDomainScores    map[string]int `json:"all_domain_scores"`
	Rating             string         `json:"rating"`
}

// ScoreDomainAlignment compares detected domain against the target: 100 for
// an exact primary-domain match, otherwise the target's keyword count scaled
// against the strongest detected domain. The result is dampened by detection
// confidence (factor 0.7 to 1.0).
func ScoreDomainAlignment(dom parsing.Domain, targetDomain string) DomainAlignmentScore {
	exact := strings.EqualFold(dom.Primary, targetDomain)
	targetScore := dom.Scores[targetDomain].Score

	alignment := 0.0
	switch {
	case exact:
		alignment = 100
	case targetScore > 0:
		maxScore := 0
		for _, s := range dom.Scores {
			if s.Score > maxScore {
				maxScore = s.Score
			}
		}
		if maxScore > 0 {
			alignment = float64(targetScore) / float64(maxScore) * 100
		}
	}

	confidenceFactor := math.Min(float64(dom.Confidence)/10, 1.0)
	final := clamp(alignment * (0.7 + 0.3*confidenceFactor))

	all := make(map[string]int, len(dom.Scores))
	for name, s := range dom.Scores {
		all[name] = s.Score
	}

	return DomainAlignmentScore{
		Score:              round2(final),
		PrimaryDomain:      dom.Primary,
		TargetDomain:       targetDomain,
		ExactMatch:         exact,
		Confidence:         dom.Confidence,
		TargetKeywordCount: targetScore,
		AllDomainScores:    all,
		Rating:             domainRating(final, exact),
	}
}

// LanguageComponent is the pass-through language quality view.
type LanguageComponent struct {
	Score  float64 `json:"score"`
	Rating string  `json:"rating"`
}

// Breakdown lists each component's weighted contribution.
type Breakdown struct {
	Education  float64 `json:"education"`
	Experience float64 `json:"experience"`
	Domain     float64 `json:"domain"`
	Language   float64 `json:"language"`
	Skills     float64 `json:"skills"`
}

// Overall is the full composite result.
type Overall struct {
	Score      float64              `json:"overall_score"`
	Education  EducationScore       `json:"education_component"`
	Experience ExperienceScore      `json:"experience_component"`
	Domain     DomainAlignmentScore `json:"domain_component"`
	Language   LanguageComponent    `json:"language_component"`
	SkillScore float64              `json:"skill_score"`
	Breakdown  Breakdown            `json:"breakdown"`
	Rating     string               `json:"final_rating"`
}

// Score computes every component and the weighted composite. skillScore comes
// from the matcher and is already on a 0-100 scale.
func Score(resume parsing.ParsedResume, req Requirements, skillScore float64) Overall {
	targetDomain := req.TargetDomain
	if targetDomain == "" {
		targetDomain = "IT"
	}

	edu := ScoreEducation(resume.Education, req.EducationLevel)
	exp := ScoreExperience(resume.Experience, req.ExperienceYears, targetDomain)
	dom := ScoreDomainAlignment(resume.Domain, targetDomain)
	lang := resume.LanguageQuality.Score

	overall := round2(edu.Score*WeightEducation +
		exp.Score*WeightExperience +
		dom.Score*WeightDomain +
		lang*WeightLanguage +
		skillScore*WeightSkills)

	return Overall{
		Score:      overall,
		Education:  edu,
		Experience: exp,
		Domain:     dom,
		Language:   LanguageComponent{Score: lang, Rating: resume.LanguageQuality.Rating},
		SkillScore: round2(skillScore),
		Breakdown: Breakdown{
			Education:  round2(edu.Score * WeightEducation),
			Experience: round2(exp.Score * WeightExperience),
			Domain:     round2(dom.Score * WeightDomain),
			Language:   round2(lang * WeightLanguage),
			Skills:     round2(skillScore * WeightSkills),
		},
		Rating: OverallRating(overall),
	}
}

// OverallRating maps a composite score to the candidate rating label.
func OverallRating(score float64) string {
	switch {
	case score >= 85:
		return "Excellent Candidate"
	case score >= 70:
		return "Strong Candidate"
	case score >= 55:
		return "Good Candidate"
	case score >= 40:
		return "Average Candidate"
	default:
		return "Below Average Candidate"
	}
}

func educationRating(score float64) string {
	switch {
	case score >= 90:
		return "Excellent"
	case score >= 75:
		return "Very Good"
	case score >= 60:
		return "Good"
	case score >= 45:
		return "Acceptable"
	default:
		return "Below Requirement"
	}
}

func experienceRating(score float64, years int) string {
	switch {
	case score >= 85:
		return fmt.Sprintf("Excellent (%d+ years)", years)
	case score >= 70:
		return fmt.Sprintf("Very Good (%d+ years)", years)
	case score >= 55:
		return fmt.Sprintf("Good (%d+ years)", years)
	case score >= 40:
		return fmt.Sprintf("Adequate (%d+ years)", years)
	default:
		return fmt.Sprintf("Limited (%d years)", years)
	}
}

func domainRating(score float64, exact bool) string {
	switch {
	case exact && score >= 80:
		return "Perfect Match"
	case score >= 70:
		return "Strong Alignment"
	case score >= 50:
		return "Good Alignment"
	case score >= 30:
		return "Partial Alignment"
	default:
		return "Poor Alignment"
	}
}

func clamp(f float64) float64 {
	return math.Max(0, math.Min(100, f))
}

func round2(f float64) float64 {
	return math.Round(f*100) / 100
}
