package clinics

import "afyabuddy/internal/models"

// Recommendations returns practical advice for choosing among nearby clinics
func Recommendations(urgency models.UrgencyLevel) []string {
	var recs []string

	if urgency == models.UrgencyHigh {
		recs = append(recs,
			"For emergencies, prioritize hospitals with 24/7 emergency departments",
			"Call ahead to inform them of your arrival",
		)
	} else {
		recs = append(recs,
			"Consider appointment availability and waiting times",
			"Verify insurance coverage before visiting",
		)
	}

	return append(recs, "Check current traffic conditions for fastest route")
}
