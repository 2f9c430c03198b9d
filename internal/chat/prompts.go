package chat

import (
	"encoding/json"
	"fmt"
	"strings"
)

// BuildPrompt renders the LLM prompt for a classified query, folding in
// whatever context was gathered for the intent.
func BuildPrompt(query, intent string, ctx map[string]any) string {
	var b strings.Builder
	b.WriteString("You are an HR assistant for an internal HRMS. Be concise, factual, and helpful.\n")
	fmt.Fprintf(&b, "Intent: %s\n", intent)

	if intent == IntentPolicyQuery {
		if policies, ok := ctx["policies"]; ok {
			fmt.Fprintf(&b, "Available Policies:\n%s\n", compactJSON(policies))
		}
	}
	if intent == IntentLeaveBalance {
		if balance, ok := ctx["leave_balance"]; ok {
			fmt.Fprintf(&b, "Leave Balance: %s\n", compactJSON(balance))
		}
	}

	history, _ := ctx["conversation_history"].(string)
	fmt.Fprintf(&b, "Conversation history:\n%s\n\nUser: %s\nAssistant:", history, query)
	return b.String()
}

func compactJSON(v any) string {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Sprintf("%v", v)
	}
	return string(data)
}
