package usecase

import "fmt"

const (
	msgUnknownIntent = "Sorry, I’m not sure how to handle that yet."

	msgAskEmployeeID   = "Could you share your employee ID so I can check your PTO balance?"
	msgPTOStoreFailure = "I had trouble reaching the PTO database. Please try again later."

	msgAskPolicyTopic      = "What HR policy would you like to know about? For example: maternity leave, WFH, or PTO accrual."
	msgPolicyUnavailable   = "Policy search is currently unavailable because the index is not configured."
	msgPolicySearchFailure = "I couldn’t access the policy search right now. Please try again shortly."
	msgPolicyNotFound      = "I couldn't find a relevant policy for that. Could you rephrase or be more specific?"
	msgPolicyNoSnippet     = "I found a relevant document but couldn't extract a snippet."

	maxExcerptRunes = 1000
)

func msgEmployeeNotFound(employeeID string) string {
	return fmt.Sprintf("I couldn't find an employee with ID \"%s\". Please re-enter your employee ID (e.g., emp001).", employeeID)
}

func msgPTOBalance(name, employeeID string, pto, sick int) string {
	return fmt.Sprintf(
		"%s (ID: %s), you currently have %d PTO day(s) and %d sick leave day(s) available. Would you like help applying for leave?",
		name, employeeID, pto, sick,
	)
}

// truncateRunes cuts s to at most n characters without splitting a rune.
func truncateRunes(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n])
}
