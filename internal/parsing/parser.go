package parsing

import (
	"errors"
	"fmt"
	"math"
	"regexp"
	"sort"
	"strconv"
	"strings"
)

// ErrNoText is returned when a document produced no usable text.
var ErrNoText = errors.New("no text extracted from document")

// currentYear anchors open-ended employment ranges ("2021 - present").
const currentYear = 2025

var (
	emailRe = regexp.MustCompile(`[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}`)
	phoneRe = regexp.MustCompile(`(\+\d{1,3}[-.]?)?\s*\(?\d{3}\)?[-.\s]?\d{3}[-.\s]?\d{4}`)
	yearRe  = regexp.MustCompile(`20[0-2]\d`)

	explicitExperienceRes = []*regexp.Regexp{
		regexp.MustCompile(`(?i)(\d+)\+?\s*(?:years?|yrs?)\s*(?:of\s*)?experience`),
		regexp.MustCompile(`(?i)experience[:\s]+(\d+)\+?\s*(?:years?|yrs?)`),
		regexp.MustCompile(`(?i)(\d+)\+?\s*(?:years?|yrs?)`),
	}
	dateRangeRe  = regexp.MustCompile(`(?i)(20\d{2})\s*[-\x{2013}]\s*(20\d{2}|present|current)`)
	sentenceRe   = regexp.MustCompile(`[.!?\n]+`)
	terminatorRe = regexp.MustCompile(`[.!?]+`)

	companySuffixRe = regexp.MustCompile(`\b([A-Z][A-Za-z0-9&.]*(?:\s+[A-Z][A-Za-z0-9&.]*){0,3}\s+(?:Inc|Ltd|LLC|Corp|Corporation|Technologies|Solutions|Systems|Labs|Software|Group|Consulting|Pvt)\b\.?)`)
	companyAtRe     = regexp.MustCompile(`\bat\s+([A-Z][A-Za-z0-9&.]*(?:\s+[A-Z][A-Za-z0-9&.]*){0,3})`)
)

// strictSkills are ambiguous one- and two-character labels matched by exact token
// equality only, so "r" never fires inside "developer".
var strictSkills = map[string]bool{"c": true, "c++": true, "c#": true, "r": true}

// Parser derives structured resume fields from raw text. All vocabulary
// regexps are compiled once at construction and shared across requests.
type Parser struct {
	vocab     *Vocabulary
	titleRe   *regexp.Regexp
	degreeRes []*regexp.Regexp
	domainRes [][]*regexp.Regexp
	skillRes  map[string][]*regexp.Regexp
}

// NewParser constructs a Parser over the given vocabulary.
func NewParser(vocab *Vocabulary) *Parser {
	if vocab == nil {
		vocab = DefaultVocabulary()
	}
	escaped := make([]string, 0, len(vocab.TitleKeywords))
	for _, kw := range vocab.TitleKeywords {
		escaped = append(escaped, regexp.QuoteMeta(kw))
	}
	p := &Parser{
		vocab:    vocab,
		titleRe:  regexp.MustCompile(`(?i)\b((?:[a-z][a-z+./#-]*\s+){0,3}(?:` + strings.Join(escaped, "|") + `))\b`),
		skillRes: make(map[string][]*regexp.Regexp),
	}

	p.degreeRes = make([]*regexp.Regexp, len(vocab.DegreeKeywords))
	for i, dk := range vocab.DegreeKeywords {
		p.degreeRes[i] = regexp.MustCompile(boundedPattern(strings.ToLower(dk.Keyword)))
	}

	p.domainRes = make([][]*regexp.Regexp, len(vocab.Domains))
	for i, dom := range vocab.Domains {
		res := make([]*regexp.Regexp, len(dom.Keywords))
		for j, kw := range dom.Keywords {
			res[j] = regexp.MustCompile(boundedPattern(strings.ToLower(kw)))
		}
		p.domainRes[i] = res
	}

	for _, skill := range vocab.AllSkills() {
		skillLower := strings.ToLower(skill)
		if strictSkills[skillLower] {
			continue
		}
		p.skillRes[skillLower] = variantRegexps(skillLower)
	}
	return p
}

// boundedPattern wraps a quoted keyword in \b anchors, but only where the
// keyword edge is a word character; "m.a." keeps its bare trailing dot.
func boundedPattern(kw string) string {
	pat := regexp.QuoteMeta(kw)
	if isWordByte(kw[0]) {
		pat = `\b` + pat
	}
	if isWordByte(kw[len(kw)-1]) {
		pat += `\b`
	}
	return pat
}

func isWordByte(b byte) bool {
	return b == '_' || (b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z') || (b >= '0' && b <= '9')
}

// Parse runs every extraction step over the text and assembles a ParsedResume.
// Individual steps degrade to empty values; only missing text is an error.
func (p *Parser) Parse(text string, customSkills []string) (ParsedResume, error) {
	if strings.TrimSpace(text) == "" {
		return ParsedResume{}, ErrNoText
	}
	return ParsedResume{
		Contact:         p.ExtractContact(text),
		Skills:          p.ExtractSkills(text, customSkills),
		Education:       p.ExtractEducation(text),
		Experience:      p.ExtractExperience(text),
		Domain:          p.DetectDomain(text),
		LanguageQuality: p.AnalyzeLanguage(text),
		RawText:         text,
	}, nil
}

// ExtractContact pulls name, email, and phone. Name is the first non-empty line.
func (p *Parser) ExtractContact(text string) Contact {
	var name string
	for _, line := range strings.Split(text, "\n") {
		if trimmed := strings.TrimSpace(line); trimmed != "" {
			name = trimmed
			break
		}
	}
	return Contact{
		Name:  name,
		Email: emailRe.FindString(text),
		Phone: strings.TrimSpace(phoneRe.FindString(text)),
	}
}

// ExtractSkills scans for vocabulary skills (or customSkills when provided) using
// variation sets to bridge punctuation and suffix differences.
func (p *Parser) ExtractSkills(text string, customSkills []string) Skills {
	lower := strings.ToLower(text)
	tokens := tokenSet(lower)

	toCheck := customSkills
	usingVocab := len(customSkills) == 0
	if usingVocab {
		toCheck = p.vocab.AllSkills()
	}

	var found []string
	categories := make(map[string][]string)
	for _, skill := range toCheck {
		if !p.skillPresent(lower, tokens, skill) {
			continue
		}
		found = append(found, skill)
		if usingVocab {
			if cat := p.vocab.CategoryOf(skill); cat != "" {
				categories[cat] = append(categories[cat], skill)
			}
		}
	}

	return Skills{Found: found, Count: len(found), Categories: categories}
}

func (p *Parser) skillPresent(lowerText string, tokens map[string]bool, skill string) bool {
	skillLower := strings.ToLower(strings.TrimSpace(skill))
	if skillLower == "" {
		return false
	}
	if strictSkills[skillLower] {
		return tokens[skillLower]
	}
	res, ok := p.skillRes[skillLower]
	if !ok {
		// Custom skill lists are compiled per call; the shared cache stays
		// read-only after construction.
		res = variantRegexps(skillLower)
	}
	for _, re := range res {
		if re.MatchString(lowerText) {
			return true
		}
	}
	return false
}

func variantRegexps(skillLower string) []*regexp.Regexp {
	var out []*regexp.Regexp
	for variant := range SkillVariations(skillLower) {
		out = append(out, regexp.MustCompile(`(?:^|[^a-z])`+regexp.QuoteMeta(variant)+`(?:[^a-z]|$)`))
	}
	return out
}

// SkillVariations expands a lowercased skill label into its lexical variants:
// dotted forms ("node.js" -> "nodejs", "node js", "node"), js suffixes
// ("nodejs" -> "node.js", "node js", "node"), and spaced forms.
func SkillVariations(skill string) map[string]bool {
	variations := map[string]bool{skill: true}
	if strictSkills[skill] {
		return variations
	}
	if strings.Contains(skill, ".") {
		variations[strings.ReplaceAll(skill, ".", "")] = true
		variations[strings.ReplaceAll(skill, ".", " ")] = true
		variations[strings.SplitN(skill, ".", 2)[0]] = true
	} else if strings.HasSuffix(skill, "js") && len(skill) > 2 {
		base := skill[:len(skill)-2]
		variations[base+".js"] = true
		variations[base+" js"] = true
		variations[base] = true
	}
	if strings.Contains(skill, " ") {
		variations[strings.ReplaceAll(skill, " ", "")] = true
		variations[strings.ReplaceAll(skill, " ", ".")] = true
	}
	return variations
}

// ExtractEducation finds the highest degree level mentioned, graduation-year
// candidates, and up to three institution name guesses.
func (p *Parser) ExtractEducation(text string) Education {
	lower := strings.ToLower(text)

	maxLevel := 0
	degree := ""
	for i, dk := range p.vocab.DegreeKeywords {
		if p.degreeRes[i].MatchString(lower) && dk.Level > maxLevel {
			maxLevel = dk.Level
			degree = dk.Keyword
		}
	}

	degreeLabel := "Not specified"
	if degree != "" {
		degreeLabel = strings.ToUpper(degree)
	}

	var institutions []string
	for _, line := range strings.Split(text, "\n") {
		lineLower := strings.ToLower(line)
		for _, kw := range p.vocab.InstitutionWords {
			if strings.Contains(lineLower, kw) {
				institutions = append(institutions, strings.TrimSpace(line))
				break
			}
		}
		if len(institutions) == 3 {
			break
		}
	}

	return Education{
		Level:           maxLevel,
		Degree:          degreeLabel,
		GraduationYears: yearRe.FindAllString(text, -1),
		Institutions:    institutions,
	}
}

// ExtractExperience determines total years worked plus title and employer mentions.
// Explicit "N years of experience" phrasing wins; otherwise employment date ranges
// are summed.
func (p *Parser) ExtractExperience(text string) Experience {
	totalYears := 0
	for _, re := range explicitExperienceRes {
		matches := re.FindAllStringSubmatch(text, -1)
		if len(matches) == 0 {
			continue
		}
		for _, m := range matches {
			if n, err := strconv.Atoi(m[1]); err == nil && n > totalYears {
				totalYears = n
			}
		}
		break
	}

	if totalYears == 0 {
		calculated := 0
		for _, m := range dateRangeRe.FindAllStringSubmatch(text, -1) {
			start, err := strconv.Atoi(m[1])
			if err != nil {
				continue
			}
			end := currentYear
			if n, err := strconv.Atoi(m[2]); err == nil {
				end = n
			}
			if d := end - start; d > 0 {
				calculated += d
			}
		}
		totalYears = calculated
	}

	titles := p.extractJobTitles(text)
	companies := extractCompanies(text)

	return Experience{
		TotalYears:    totalYears,
		JobTitles:     titles,
		Companies:     companies,
		HasExperience: totalYears > 0 || len(titles) > 0,
	}
}

func (p *Parser) extractJobTitles(text string) []string {
	seen := make(map[string]bool)
	var titles []string
	for _, sentence := range sentenceRe.Split(text, -1) {
		for _, m := range p.titleRe.FindAllStringSubmatch(sentence, -1) {
			title := strings.TrimSpace(m[1])
			key := strings.ToLower(title)
			if title == "" || seen[key] {
				continue
			}
			seen[key] = true
			titles = append(titles, title)
			if len(titles) == 5 {
				return titles
			}
		}
	}
	return titles
}

func extractCompanies(text string) []string {
	seen := make(map[string]bool)
	var companies []string
	add := func(name string) {
		name = strings.TrimSpace(strings.TrimSuffix(strings.TrimSpace(name), "."))
		key := strings.ToLower(name)
		if name == "" || seen[key] || len(companies) == 5 {
			return
		}
		seen[key] = true
		companies = append(companies, name)
	}
	for _, m := range companySuffixRe.FindAllStringSubmatch(text, -1) {
		add(m[1])
	}
	for _, m := range companyAtRe.FindAllStringSubmatch(text, -1) {
		add(m[1])
	}
	return companies
}

// DetectDomain counts word-bounded keyword hits per domain and ranks them.
// A zero maximum reports "General" with zero confidence.
func (p *Parser) DetectDomain(text string) Domain {
	lower := strings.ToLower(text)

	scores := make(map[string]DomainScore, len(p.vocab.Domains))
	primary := ""
	primaryScore := -1
	for i, dom := range p.vocab.Domains {
		score := 0
		var matched []string
		for j, kw := range dom.Keywords {
			if count := len(p.domainRes[i][j].FindAllStringIndex(lower, -1)); count > 0 {
				score += count
				matched = append(matched, kw)
			}
		}
		scores[dom.Name] = DomainScore{Score: score, MatchedKeywords: matched}
		if score > primaryScore {
			primaryScore = score
			primary = dom.Name
		}
	}

	ranked := make([]RankedDomain, 0, len(p.vocab.Domains))
	for _, dom := range p.vocab.Domains {
		if s := scores[dom.Name].Score; s > 0 {
			ranked = append(ranked, RankedDomain{Name: dom.Name, Score: s})
		}
	}
	sort.SliceStable(ranked, func(i, j int) bool { return ranked[i].Score > ranked[j].Score })
	if len(ranked) > 3 {
		ranked = ranked[:3]
	}

	confidence := 0
	if primaryScore > 0 {
		confidence = primaryScore
	} else {
		primary = "General"
	}

	return Domain{Primary: primary, Scores: scores, Top: ranked, Confidence: confidence}
}

// AnalyzeLanguage computes the heuristic writing-quality score over the first
// 1000 words. The result is always clamped to [60, 95].
func (p *Parser) AnalyzeLanguage(text string) LanguageQuality {
	words := strings.Fields(text)
	if len(words) > 1000 {
		words = words[:1000]
	}
	sample := strings.Join(words, " ")

	wordCount := len(words)
	sentenceCount := len(terminatorRe.FindAllString(sample, -1))

	unique := make(map[string]bool)
	for _, w := range words {
		if isAlpha(w) {
			unique[strings.ToLower(w)] = true
		}
	}
	diversity := 0.0
	if wordCount > 0 {
		diversity = float64(len(unique)) / float64(wordCount) * 100
	}

	score := 70.0
	switch {
	case diversity > 60:
		score += 15
	case diversity > 50:
		score += 10
	case diversity > 40:
		score += 5
	}
	switch {
	case wordCount >= 300:
		score += 10
	case wordCount >= 150:
		score += 5
	case wordCount < 50:
		score -= 15
	}

	lowerText := strings.ToLower(text)
	verbHits := 0
	for _, verb := range p.vocab.ProfessionalVerbs {
		if strings.Contains(lowerText, verb) {
			verbHits++
		}
	}
	if verbHits >= 5 {
		score += 5
	}

	score = math.Max(60, math.Min(95, score))

	avgLen := 0.0
	if sentenceCount > 0 {
		avgLen = float64(wordCount) / float64(sentenceCount)
	}

	return LanguageQuality{
		Score:             round2(score),
		WordCount:         wordCount,
		SentenceCount:     sentenceCount,
		VocabDiversity:    round2(diversity),
		AvgSentenceLength: round2(avgLen),
		Rating:            languageRating(score),
	}
}

func languageRating(score float64) string {
	switch {
	case score >= 90:
		return "Excellent"
	case score >= 75:
		return "Good"
	case score >= 60:
		return "Fair"
	default:
		return "Needs Improvement"
	}
}

// tokenSet splits lowered text into whitespace/punctuation-delimited tokens,
// preserving "+" and "#" so "c++" and "c#" survive as single tokens.
func tokenSet(lower string) map[string]bool {
	tokens := make(map[string]bool)
	for _, tok := range strings.FieldsFunc(lower, func(r rune) bool {
		switch r {
		case ' ', '\t', '\n', '\r', ',', ';', ':', '(', ')', '[', ']', '{', '}', '/', '|', '"', '\'':
			return true
		}
		return false
	}) {
		tok = strings.Trim(tok, ".")
		if tok != "" {
			tokens[tok] = true
		}
	}
	return tokens
}

func isAlpha(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if (r < 'a' || r > 'z') && (r < 'A' || r > 'Z') {
			return false
		}
	}
	return true
}

func round2(f float64) float64 {
	return math.Round(f*100) / 100
}

// String implements fmt.Stringer for quick log lines.
func (d Domain) String() string {
	return fmt.Sprintf("%s (confidence=%d)", d.Primary, d.Confidence)
}
