package triage

import (
	"fmt"
	"strings"

	"afyabuddy/internal/models"
)

// RuleBasedClassifier implements first-match-wins keyword classification.
//
// Keywords are matched as plain substrings of the lower-cased query, not as
// whole words, so "haircut" selects the wound category.
type RuleBasedClassifier struct {
	categories []Category
	general    Category
}

// NewRuleBasedClassifier creates a new rule-based classifier
func NewRuleBasedClassifier(config ClassifierConfig) *RuleBasedClassifier {
	categories := config.Categories
	if len(categories) == 0 {
		categories = defaultCategories
	}

	general := generalCategory
	if config.General != nil {
		general = *config.General
	}

	return &RuleBasedClassifier{
		categories: categories,
		general:    general,
	}
}

// Classify implements the Classifier interface. Keywords match as plain
// substrings, so "haircut" selects the wound category.
func (c *RuleBasedClassifier) Classify(query string) models.TriageResult {
	lower := strings.ToLower(query)

	category, ok := c.match(lower)
	content := category.Content
	if !ok {
		category = c.general
		content = fmt.Sprintf(category.Content, query)
	}

	return models.TriageResult{
		Category:        category.ID,
		Content:         content,
		Confidence:      category.Confidence,
		UrgencyLevel:    AssessUrgency(query),
		Recommendations: append([]string(nil), category.Recommendations...),
	}
}

// Categories returns the IDs of the configured categories in priority order
func (c *RuleBasedClassifier) Categories() []string {
	ids := make([]string, 0, len(c.categories)+1)
	for _, cat := range c.categories {
		ids = append(ids, cat.ID)
	}
	return append(ids, c.general.ID)
}

func (c *RuleBasedClassifier) match(lower string) (Category, bool) {
	for _, cat := range c.categories {
		if containsAny(lower, cat.Keywords) {
			return cat, true
		}
	}
	return Category{}, false
}

// containsAny reports whether text contains any of the keywords
func containsAny(text string, keywords []string) bool {
	for _, keyword := range keywords {
		if strings.Contains(text, keyword) {
			return true
		}
	}
	return false
}
