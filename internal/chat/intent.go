// Package chat implements the HR assistant conversation flow: intent
// classification, session state, HRMS lookups, and LLM-backed replies.
package chat

import (
	"regexp"
	"strings"
)

// Intents, in classification priority order. The first pattern hit wins, so
// "leave balance" classifies as leave_balance even though it also mentions
// nothing else.
const (
	IntentLeaveBalance   = "leave_balance"
	IntentPolicyQuery    = "policy_query"
	IntentOnboardingHelp = "onboarding_help"
	IntentSalaryBenefits = "salary_benefits"
	IntentAttendance     = "attendance"
	IntentPerformance    = "performance"
	IntentGeneralHR      = "general_hr"
)

type intentPatterns struct {
	name     string
	patterns []*regexp.Regexp
}

var intentTable = []intentPatterns{
	{IntentLeaveBalance, compileAll(
		`leave\s+balance`,
		`how\s+many\s+leaves`,
		`remaining\s+leaves`,
		`vacation\s+days`,
		`time\s+off`,
		`pto\s+balance`,
		`\bleave\b`,
	)},
	{IntentPolicyQuery, compileAll(
		`polic`,
		`\brule\b`,
		`regulation`,
		`guideline`,
		`dress\s+code`,
		`work\s+from\s+home`,
		`\bwfh\b`,
		`remote\s+work`,
	)},
	{IntentOnboardingHelp, compileAll(
		`onboarding`,
		`new\s+hire`,
		`joining`,
		`first\s+day`,
		`getting\s+started`,
		`orientation`,
	)},
	{IntentSalaryBenefits, compileAll(
		`salary`,
		`compensation`,
		`benefits?`,
		`insurance`,
		`health\s+plan`,
		`retirement`,
		`401k`,
		`bonus`,
	)},
	{IntentAttendance, compileAll(
		`attendance`,
		`check.in`,
		`check.out`,
		`working\s+hours`,
		`timesheet`,
	)},
	{IntentPerformance, compileAll(
		`performance`,
		`review`,
		`appraisal`,
		`feedback`,
		`rating`,
	)},
	{IntentGeneralHR, compileAll(
		`\bhr\b`,
		`human\s+resources`,
		`contact\s+hr`,
		`help`,
	)},
}

// ClassifyIntent returns the first matching intent, or general_hr.
func ClassifyIntent(query string) string {
	text := strings.ToLower(query)
	for _, entry := range intentTable {
		for _, re := range entry.patterns {
			if re.MatchString(text) {
				return entry.name
			}
		}
	}
	return IntentGeneralHR
}

// employeeIDRe matches common id formats: emp001, EMP-123, E001, 12345.
var employeeIDRe = regexp.MustCompile(`(?i)\b((?:emp|e)[-_]?\d{2,5}|\d{4,7})\b`)

// ExtractEmployeeID pulls an employee identifier out of free text, normalized
// to upper case with dashes.
func ExtractEmployeeID(text string) string {
	m := employeeIDRe.FindStringSubmatch(text)
	if m == nil {
		return ""
	}
	return strings.ReplaceAll(strings.ToUpper(m[1]), "_", "-")
}

func compileAll(patterns ...string) []*regexp.Regexp {
	out := make([]*regexp.Regexp, 0, len(patterns))
	for _, p := range patterns {
		out = append(out, regexp.MustCompile(p))
	}
	return out
}
