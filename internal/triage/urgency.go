package triage

import (
	"strings"

	"afyabuddy/internal/models"
)

var (
	highUrgencyKeywords = []string{
		"bleeding", "unconscious", "chest pain", "difficulty breathing", "severe pain",
		"heart attack", "stroke", "choking", "allergic reaction",
	}
	moderateUrgencyKeywords = []string{
		"pain", "injury", "burn", "cut", "sprain", "fever",
	}
)

// AssessUrgency scores a query independently of its advice category
func AssessUrgency(query string) models.UrgencyLevel {
	lower := strings.ToLower(query)

	if containsAny(lower, highUrgencyKeywords) {
		return models.UrgencyHigh
	}
	if containsAny(lower, moderateUrgencyKeywords) {
		return models.UrgencyModerate
	}
	return models.UrgencyNormal
}

const emergencyFallback = `🚨 EMERGENCY: This appears to be a serious medical situation. Call emergency services immediately (911, 999, 112).

While waiting for help:
1. Ensure the person is safe and breathing
2. Do not move them unless necessary
3. Apply direct pressure to any bleeding wounds
4. Stay calm and provide reassurance
5. Be ready to provide CPR if trained

Seek immediate professional medical attention.`

const basicFallback = `🩹 Basic First Aid Guidance:

1. Assess the situation and ensure safety
2. Check for consciousness and breathing
3. Control any bleeding with direct pressure
4. Treat for shock if necessary
5. Seek professional medical help if symptoms worsen

Remember: This is general guidance only. Always consult healthcare professionals for proper medical advice.`

// FallbackAdvice returns short guidance used when a full answer cannot be produced
func FallbackAdvice(query string) string {
	if AssessUrgency(query) == models.UrgencyHigh {
		return emergencyFallback
	}
	return basicFallback
}
