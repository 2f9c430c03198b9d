// Package jobs owns job records, job-description generation, and the
// normalization of stored records into screening profiles.
package jobs

import (
	"encoding/json"
	"errors"
	"sort"
	"time"
)

// ErrNotFound indicates the job record does not exist.
var ErrNotFound = errors.New("job not found")

// Record is a stored job or generated job description. Older records were
// written by several producers, so the list-valued fields tolerate multiple
// JSON shapes (see StringList).
type Record struct {
	ID           string     `json:"id"`
	Title        string     `json:"title"`
	Role         string     `json:"role,omitempty"`
	Department   string     `json:"department,omitempty"`
	Description  string     `json:"description,omitempty"`
	JDText       string     `json:"jd_text,omitempty"`
	Skills       StringList `json:"skills,omitempty"`
	Requirements StringList `json:"requirements,omitempty"`
	TextKey      string     `json:"text_key,omitempty"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`
}

// Profile is the canonical job configuration the screening pipeline consumes.
type Profile struct {
	Title           string   `json:"job_title"`
	Description     string   `json:"job_description"`
	RequiredSkills  []string `json:"required_skills"`
	OptionalSkills  []string `json:"optional_skills"`
	CustomKeywords  []string `json:"custom_keywords"`
	EducationLevel  int      `json:"required_education_level"`
	ExperienceYears int      `json:"required_experience_years"`
	TargetDomain    string   `json:"target_domain"`
}

// StringList unmarshals from a JSON array of strings, a single string, or an
// object whose values are strings or string arrays.
type StringList []string

// UnmarshalJSON implements json.Unmarshaler.
func (l *StringList) UnmarshalJSON(data []byte) error {
	var asList []string
	if err := json.Unmarshal(data, &asList); err == nil {
		*l = asList
		return nil
	}

	var asString string
	if err := json.Unmarshal(data, &asString); err == nil {
		if asString == "" {
			*l = nil
		} else {
			*l = []string{asString}
		}
		return nil
	}

	var asMap map[string]json.RawMessage
	if err := json.Unmarshal(data, &asMap); err != nil {
		return err
	}
	keys := make([]string, 0, len(asMap))
	for k := range asMap {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	var out []string
	for _, k := range keys {
		var nested StringList
		if err := json.Unmarshal(asMap[k], &nested); err != nil {
			// Non-string values contribute their key instead.
			out = append(out, k)
			continue
		}
		out = append(out, nested...)
	}
	*l = out
	return nil
}
