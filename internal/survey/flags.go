package survey

import "fmt"

// priorityFlags are raised when the named field is answered "yes".
var priorityFlags = []struct {
	field string
	label string
}{
	{"interestedInCall", "🔥 WANTS CALL"},
	{"worriedAboutLegal", "⚖️ Legal concerns"},
	{"hadLegalIssue", "🚨 Had legal issue"},
	{"hadLaborComplaint", "📋 Labor complaint"},
}

// PriorityFlags lists the follow-up markers raised by r, in a stable order.
func PriorityFlags(r Response) []string {
	var flags []string
	for _, f := range priorityFlags {
		if r.Field(f.field) == Yes {
			flags = append(flags, f.label)
		}
	}
	return flags
}

// Subject is the notification subject line.
func Subject(r Response) string {
	subject := fmt.Sprintf("New Customer Discovery Response - %s", r.RoleLabel())
	if r.WantsCall() {
		subject += " (WANTS CALL)"
	}
	return subject
}
