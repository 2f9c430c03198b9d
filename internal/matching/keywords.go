package matching

import (
	"math"
	"regexp"
	"sort"
	"strings"
)

var wordRe = regexp.MustCompile(`[a-zA-Z][a-zA-Z+#.]*`)

var stopWords = map[string]bool{
	"the": true, "and": true, "for": true, "with": true, "you": true,
	"will": true, "are": true, "our": true, "have": true, "this": true,
	"that": true, "from": true, "your": true, "work": true, "team": true,
	"who": true, "can": true, "all": true, "role": true, "job": true,
	"not": true, "but": true, "has": true, "their": true, "they": true,
	"been": true, "were": true, "was": true, "its": true, "also": true,
}

// KeywordReport summarizes how well resume text covers a job's keyword set.
type KeywordReport struct {
	Matched  []string `json:"matched_keywords"`
	Missing  []string `json:"missing_keywords"`
	Density  float64  `json:"keyword_density"`
	Coverage float64  `json:"keyword_coverage"`
}

// JobRelevance is the combined skill + keyword view used for the final
// recommendation line.
type JobRelevance struct {
	Skills         Result        `json:"skill_match"`
	Keywords       KeywordReport `json:"keyword_analysis"`
	RelevanceScore float64       `json:"relevance_score"`
	Recommendation string        `json:"recommendation"`
}

// AnalyzeKeywords counts job keyword occurrences in the resume text.
// Density is occurrences per hundred words; coverage is the share of
// keywords present at least once.
func AnalyzeKeywords(resumeText string, keywords []string) KeywordReport {
	lower := strings.ToLower(resumeText)
	totalWords := len(wordRe.FindAllString(lower, -1))

	var matched, missing []string
	occurrences := 0
	for _, kw := range dedupe(keywords) {
		n := countKeyword(lower, strings.ToLower(kw))
		if n > 0 {
			matched = append(matched, kw)
			occurrences += n
		} else {
			missing = append(missing, kw)
		}
	}

	density := 0.0
	if totalWords > 0 {
		density = float64(occurrences) / float64(totalWords) * 100
	}
	coverage := 0.0
	if n := len(dedupe(keywords)); n > 0 {
		coverage = float64(len(matched)) / float64(n) * 100
	}

	return KeywordReport{
		Matched:  matched,
		Missing:  missing,
		Density:  round2(density),
		Coverage: round2(coverage),
	}
}

// countKeyword counts whole-word occurrences of kw in the lowered text, so
// short keywords like "r" or "go" never fire inside longer words. Boundaries
// are applied only next to word characters; "c++" keeps its bare tail.
func countKeyword(lower, kw string) int {
	kw = strings.TrimSpace(kw)
	if kw == "" {
		return 0
	}
	pat := regexp.QuoteMeta(kw)
	if isWordByte(kw[0]) {
		pat = `\b` + pat
	}
	if isWordByte(kw[len(kw)-1]) {
		pat += `\b`
	}
	return len(regexp.MustCompile(pat).FindAllStringIndex(lower, -1))
}

func isWordByte(b byte) bool {
	return b == '_' || (b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z') || (b >= '0' && b <= '9')
}

// MatchAgainstJob combines the skill match and keyword analysis into a single
// relevance score: 40% skills, 30% keyword coverage, and a density bonus
// capped at 30 points.
func MatchAgainstJob(resumeText string, resumeSkills, required, optional, keywords []string) JobRelevance {
	skills := Match(resumeSkills, required, optional)
	kw := AnalyzeKeywords(resumeText, keywords)
	relevance := Relevance(skills.OverallScore, kw)

	return JobRelevance{
		Skills:         skills,
		Keywords:       kw,
		RelevanceScore: relevance,
		Recommendation: Recommendation(relevance),
	}
}

// Relevance folds a skill score and keyword report into the combined job
// relevance score.
func Relevance(skillScore float64, kw KeywordReport) float64 {
	return round2(skillScore*0.4 + kw.Coverage*0.3 + math.Min(kw.Density*10, 30))
}

// Recommendation maps a relevance or overall score to the hiring guidance line.
func Recommendation(score float64) string {
	switch {
	case score >= 80:
		return "Highly recommended - Strong match for the position"
	case score >= 65:
		return "Recommended - Good fit with minor gaps"
	case score >= 50:
		return "Consider with reservations - Significant skill gaps"
	case score >= 35:
		return "Not recommended - Major skill mismatch"
	default:
		return "Strongly not recommended - Poor fit for the role"
	}
}

// ExtractKeywords pulls the most frequent non-stop-words out of free text,
// for job records that carry no explicit keyword list.
func ExtractKeywords(text string, limit int) []string {
	counts := make(map[string]int)
	for _, w := range wordRe.FindAllString(strings.ToLower(text), -1) {
		if len(w) < 3 || stopWords[w] {
			continue
		}
		counts[w]++
	}
	words := make([]string, 0, len(counts))
	for w := range counts {
		words = append(words, w)
	}
	sort.Slice(words, func(i, j int) bool {
		if counts[words[i]] != counts[words[j]] {
			return counts[words[i]] > counts[words[j]]
		}
		return words[i] < words[j]
	})
	if limit > 0 && len(words) > limit {
		words = words[:limit]
	}
	return words
}

func round2(f float64) float64 {
	return math.Round(f*100) / 100
}
