package llm

import (
	"context"
	"strings"
)

// Fallback is the deterministic last-resort responder. It always succeeds, so
// a chain ending with it never surfaces provider outages to callers.
type Fallback struct{}

// Name implements Client.
func (Fallback) Name() string { return "fallback" }

// Generate answers from a small set of canned HR responses keyed on prompt
// keywords.
func (Fallback) Generate(_ context.Context, prompt string) (string, error) {
	text := strings.ToLower(prompt)
	switch {
	case strings.Contains(text, "work from home") || strings.Contains(text, "wfh") || strings.Contains(text, "remote work"):
		return "WFH policy: up to 3 days/week remote with manager approval; ensure availability during core hours.", nil
	case strings.Contains(text, "leave balance") || strings.Contains(text, "leave_balance"):
		return "To check leave balance, share your employee ID or say 'my leave balance'.", nil
	case strings.Contains(text, "polic"):
		return "Common policies: leave, WFH, dress code, conduct. Ask e.g. 'WFH policy'.", nil
	case strings.Contains(text, "onboarding") || strings.Contains(text, "new hire") || strings.Contains(text, "first day"):
		return "Welcome aboard! Check your email for onboarding pack, or ask specifics here.", nil
	default:
		return "Hello! I'm your HR assistant. Ask about leaves, policies, onboarding, benefits, or attendance.", nil
	}
}

var _ Client = Fallback{}
