package chat

import (
	"context"
	"fmt"
	"strings"

	"hr-backend/internal/llm"
	"hr-backend/internal/shared/metrics"
	"hr-backend/internal/shared/telemetry"
)

// Reply is the outcome of processing one chat query.
type Reply struct {
	Query     string         `json:"query"`
	Intent    string         `json:"intent"`
	Response  string         `json:"response"`
	Context   map[string]any `json:"context"`
	SessionID string         `json:"session_id"`
}

// Service wires intent classification, sessions, HRMS data, and the LLM
// chain into the conversation loop.
type Service struct {
	Sessions *SessionManager
	HRMS     *HRMS
	LLM      llm.Client
}

// NewService constructs a chat Service.
func NewService(sessions *SessionManager, hrms *HRMS, client llm.Client) *Service {
	return &Service{Sessions: sessions, HRMS: hrms, LLM: client}
}

// Process answers one user query within a session. Onboarding questions take
// the guided flow; leave-balance and WFH-policy questions answer from HRMS
// data directly; everything else goes through the LLM.
func (s *Service) Process(ctx context.Context, userID, query, sessionID string) Reply {
	metrics.IncChatMessage()
	session := s.Sessions.GetOrCreate(userID, sessionID)

	var intent, response string
	var reqCtx map[string]any

	if step := DetectOnboardingStep(query); step != "" {
		intent = IntentOnboardingHelp
		reqCtx = map[string]any{
			"user_id":              userID,
			"intent":               intent,
			"onboarding_step":      string(step),
			"flow_type":            "guided",
			"conversation_history": session.ContextString(),
		}
		response = OnboardingResponse(step)
	} else {
		intent = ClassifyIntent(query)
		reqCtx = s.gatherContext(userID, intent, session)

		if id := ExtractEmployeeID(query); id != "" {
			session.SetEmployeeID(id)
			reqCtx["detected_employee_id"] = id
		}

		response = s.answer(ctx, query, intent, session, reqCtx)
	}

	session.AddMessage("user", query, intent)
	session.AddMessage("assistant", response, "")

	return Reply{
		Query:     query,
		Intent:    intent,
		Response:  response,
		Context:   reqCtx,
		SessionID: session.ID,
	}
}

func (s *Service) answer(ctx context.Context, query, intent string, session *Session, reqCtx map[string]any) string {
	switch intent {
	case IntentPolicyQuery:
		lower := strings.ToLower(query)
		asksWFH := strings.Contains(lower, "wfh") || strings.Contains(lower, "work from home") || strings.Contains(lower, "remote")
		if wfh := s.HRMS.Policy("work_from_home"); asksWFH && wfh != nil {
			if text := policyText(wfh); text != "" {
				return text
			}
			return "WFH policy: subject to manager approval; follow core hours."
		}
	case IntentLeaveBalance:
		employeeID := session.EmployeeID()
		if employeeID == "" {
			employeeID = ExtractEmployeeID(query)
		}
		if employeeID == "" {
			employeeID = session.UserID
		}
		if emp := s.HRMS.Employee(employeeID); emp != nil {
			if balance := s.HRMS.LeaveBalance(employeeID); balance != nil {
				return fmt.Sprintf("Your current leave balance: %s", compactJSON(balance))
			}
			return "I couldn't find a leave balance for your profile."
		}
		return "To check leave balance, share your employee ID (e.g., EMP001)."
	}

	out, err := s.LLM.Generate(ctx, BuildPrompt(query, intent, reqCtx))
	if err != nil {
		telemetry.Error("chat.llm_failed", map[string]any{"intent": intent, "err": err.Error()})
		out, _ = llm.Fallback{}.Generate(ctx, query)
	}
	return out
}

func (s *Service) gatherContext(userID, intent string, session *Session) map[string]any {
	ctx := map[string]any{
		"user_id":              userID,
		"intent":               intent,
		"conversation_history": session.ContextString(),
	}

	employee := s.HRMS.Employee(userID)
	ctx["employee_exists"] = employee != nil
	if employee != nil {
		if name, ok := employee["name"].(string); ok {
			ctx["employee_name"] = name
		} else {
			ctx["employee_name"] = "Employee"
		}
	}

	switch {
	case intent == IntentLeaveBalance && employee != nil:
		if balance := s.HRMS.LeaveBalance(userID); balance != nil {
			ctx["leave_balance"] = balance
		}
		if dept, ok := employee["department"].(string); ok {
			ctx["department"] = dept
		}
	case intent == IntentPolicyQuery:
		ctx["policies"] = s.HRMS.Policies()
	case intent == IntentSalaryBenefits && employee != nil:
		ctx["salary"] = employee["salary"]
		ctx["benefits"] = employee["benefits"]
	case intent == IntentAttendance && employee != nil:
		if att := s.HRMS.Attendance(userID); att != nil {
			ctx["attendance"] = att
		}
	case intent == IntentPerformance && employee != nil:
		if perf := s.HRMS.Performance(userID); perf != nil {
			ctx["performance"] = perf
		}
	}
	return ctx
}

func policyText(policy map[string]any) string {
	for _, key := range []string{"general", "policy"} {
		if text, ok := policy[key].(string); ok && text != "" {
			return text
		}
	}
	return ""
}
