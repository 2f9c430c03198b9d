package chat

import "strings"

// OnboardingStep identifies one stage of the guided onboarding flow.
type OnboardingStep string

const (
	StepWelcome   OnboardingStep = "welcome"
	StepDocuments OnboardingStep = "documents"
	StepBenefits  OnboardingStep = "benefits"
	StepITSetup   OnboardingStep = "it_setup"
	StepMeetTeam  OnboardingStep = "meet_team"
)

// DetectOnboardingStep returns the guided-flow step a query asks about, or
// "" when the query is not about onboarding at all.
func DetectOnboardingStep(query string) OnboardingStep {
	q := strings.ToLower(query)
	if !strings.Contains(q, "onboarding") && !strings.Contains(q, "new hire") && !strings.Contains(q, "first day") {
		return ""
	}
	switch {
	case strings.Contains(q, "document"):
		return StepDocuments
	case strings.Contains(q, "benefit"):
		return StepBenefits
	case strings.Contains(q, "laptop") || strings.Contains(q, "it") || strings.Contains(q, "setup"):
		return StepITSetup
	case strings.Contains(q, "team") || strings.Contains(q, "manager"):
		return StepMeetTeam
	default:
		return StepWelcome
	}
}

// OnboardingResponse is the canned guidance for a step.
func OnboardingResponse(step OnboardingStep) string {
	switch step {
	case StepDocuments:
		return "For onboarding documents: upload ID proof, bank details, and tax forms in the HR portal. Contact HR if anything is missing."
	case StepBenefits:
		return "Benefits enrollment opens after your first day. Review health, retirement, and leave policies in the portal."
	case StepITSetup:
		return "Your IT setup includes email, VPN, and SSO apps. Check your welcome email for credentials and setup steps."
	case StepMeetTeam:
		return "Schedule a quick intro with your manager and teammates. Your onboarding checklist includes team contacts."
	default:
		return "Welcome aboard! I can guide you through documents, benefits, IT setup, and meeting your team."
	}
}
