package jobs

import (
	"regexp"
	"strconv"
	"strings"
)

var (
	rangeYearsRe = regexp.MustCompile(`(\d+)\s*-\s*(\d+)\s*years?`)
	plusYearsRe  = regexp.MustCompile(`(\d+)\s*\+\s*years?`)
	plainYearsRe = regexp.MustCompile(`(\d+)\s*years?`)
	toYearsRe    = regexp.MustCompile(`(\d+)\s*to\s*(\d+)\s*years?`)

	// Whole words only, so "seniority" never reads as "senior".
	seniorRe = regexp.MustCompile(`\bsenior\b`)
	juniorRe = regexp.MustCompile(`\b(?:junior|entry)\b`)
	midRe    = regexp.MustCompile(`\b(?:mid|intermediate)\b`)
)

// NormalizeRecord maps a stored job record onto the canonical screening
// profile. Title falls back to role, description to jd_text, and skills to
// the requirements list. Education defaults to bachelor's level.
func NormalizeRecord(rec Record) Profile {
	title := rec.Title
	if title == "" {
		title = rec.Role
	}
	if title == "" {
		title = "Unknown Position"
	}

	description := rec.Description
	if description == "" {
		description = rec.JDText
	}

	skills := []string(rec.Skills)
	if len(skills) == 0 {
		skills = []string(rec.Requirements)
	}

	domain := rec.Department
	if domain == "" {
		domain = "Any"
	}

	return Profile{
		Title:           title,
		Description:     description,
		RequiredSkills:  skills,
		OptionalSkills:  nil,
		CustomKeywords:  nil,
		EducationLevel:  3,
		ExperienceYears: ExperienceRequirement(description),
		TargetDomain:    domain,
	}
}

// ExperienceRequirement extracts the minimum years of experience a job
// description asks for. Ranges use their lower bound; seniority keywords are
// the tiebreaker when no number appears.
func ExperienceRequirement(description string) int {
	if description == "" {
		return 0
	}
	lower := strings.ToLower(description)

	if m := rangeYearsRe.FindStringSubmatch(lower); m != nil {
		return atoi(m[1])
	}
	if m := plusYearsRe.FindStringSubmatch(lower); m != nil {
		return atoi(m[1])
	}
	if m := plainYearsRe.FindStringSubmatch(lower); m != nil {
		return atoi(m[1])
	}
	if m := toYearsRe.FindStringSubmatch(lower); m != nil {
		return atoi(m[1])
	}

	switch {
	case seniorRe.MatchString(lower):
		return 5
	case juniorRe.MatchString(lower):
		return 0
	case midRe.MatchString(lower):
		return 3
	}
	return 0
}

const fallbackDescription = "General software engineering position"

// FallbackProfile is the screening profile used when a job id has no stored
// record. Screening still succeeds against this default.
func FallbackProfile() Profile {
	return Profile{
		Title:           "Software Engineer",
		Description:     fallbackDescription,
		RequiredSkills:  []string{"Python", "JavaScript", "SQL", "Git"},
		OptionalSkills:  []string{"React", "Node.js", "AWS", "Docker"},
		CustomKeywords:  []string{"programming", "development", "coding"},
		EducationLevel:  3,
		ExperienceYears: ExperienceRequirement(fallbackDescription),
		TargetDomain:    "IT",
	}
}

func atoi(s string) int {
	n, _ := strconv.Atoi(s)
	return n
}
