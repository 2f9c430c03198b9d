package parsing

// Contact holds best-effort contact details. Fields are empty when not found.
type Contact struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone"`
}

// Skills lists the canonical skills found in the resume text.
type Skills struct {
	Found      []string            `json:"skills"`
	Count      int                 `json:"skill_count"`
	Categories map[string][]string `json:"categories"`
}

// Education summarizes degree level and institution guesses.
type Education struct {
	Level           int      `json:"education_level"`
	Degree          string   `json:"degree"`
	GraduationYears []string `json:"graduation_years"`
	Institutions    []string `json:"institutions"`
}

// Experience summarizes work history signals.
type Experience struct {
	TotalYears    int      `json:"total_years"`
	JobTitles     []string `json:"job_titles"`
	Companies     []string `json:"companies"`
	HasExperience bool     `json:"has_experience"`
}

// DomainScore is the keyword-hit tally for one domain.
type DomainScore struct {
	Score           int      `json:"score"`
	MatchedKeywords []string `json:"matched_keywords"`
}

// RankedDomain pairs a domain name with its score for top-N listings.
type RankedDomain struct {
	Name  string `json:"name"`
	Score int    `json:"score"`
}

// Domain reports the inferred industry alignment of the resume.
type Domain struct {
	Primary    string                 `json:"primary_domain"`
	Scores     map[string]DomainScore `json:"domain_scores"`
	Top        []RankedDomain         `json:"top_domains"`
	Confidence int                    `json:"confidence"`
}

// LanguageQuality is the heuristic writing-quality assessment.
type LanguageQuality struct {
	Score             float64 `json:"grammar_score"`
	WordCount         int     `json:"word_count"`
	SentenceCount     int     `json:"sentence_count"`
	VocabDiversity    float64 `json:"vocab_diversity"`
	AvgSentenceLength float64 `json:"avg_sentence_length"`
	Rating            string  `json:"quality_rating"`
}

// ParsedResume is the full structured output for one document. It is created fresh per
// screening request and treated as immutable once returned.
type ParsedResume struct {
	Contact         Contact         `json:"basic_info"`
	Skills          Skills          `json:"skills"`
	Education       Education       `json:"education"`
	Experience      Experience      `json:"experience"`
	Domain          Domain          `json:"domain"`
	LanguageQuality LanguageQuality `json:"language_quality"`
	RawText         string          `json:"-"`
}
