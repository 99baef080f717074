package triage

import (
	"afyabuddy/internal/models"
)

// Classifier defines the interface for first-aid query classification
type Classifier interface {
	// Classify maps a free-text query to canned advice, a confidence and an urgency level
	Classify(query string) models.TriageResult
}

// ClassifierConfig contains configuration options for the classifier
type ClassifierConfig struct {
	// Categories overrides the built-in category table. Order is priority.
	Categories []Category
	// General is returned when no category matches. Its Content may contain
	// one %s verb that receives the original query.
	General *Category
}

var defaultClassifier = NewRuleBasedClassifier(ClassifierConfig{})

// Classify runs the built-in rule table over query
func Classify(query string) models.TriageResult {
	return defaultClassifier.Classify(query)
}
