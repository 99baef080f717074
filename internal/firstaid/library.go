// Package firstaid serves structured step-by-step guides for common emergencies.
package firstaid

import (
	_ "embed"
	"fmt"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"

	"afyabuddy/internal/models"
)

//go:embed guides.yaml
var guidesYAML []byte

// NoGuideContent is returned for situations without a hardcoded guide
const NoGuideContent = "No hardcoded steps available for this situation."

// synonym maps a phrase found in the user's description to a guide
type synonym struct {
	phrase    string
	condition string
}

// synonyms are checked in order; the first phrase contained in the
// description selects the guide.
var synonyms = []synonym{
	{"low blood sugar", "low blood sugar"},
	{"hypoglycemia", "low blood sugar"},
	{"diabetic episode", "low blood sugar"},
	{"burn", "burn"},
	{"choking", "choking"},
	{"bleeding", "bleeding"},
	{"snake bite", "snake bite"},
	{"asthma", "asthma"},
	{"asthma attack", "asthma"},
	{"heart attack", "heart attack"},
	{"stroke", "stroke"},
	{"seizure", "seizure"},
	{"nosebleed", "nosebleed"},
	{"anaphylaxis", "anaphylaxis"},
}

// Library holds the parsed guides. It is read-only after Load.
type Library struct {
	guides map[string]models.FirstAidGuide
}

// Load parses a YAML document of guides keyed by condition name
func Load(data []byte) (*Library, error) {
	var guides map[string]models.FirstAidGuide
	if err := yaml.Unmarshal(data, &guides); err != nil {
		return nil, fmt.Errorf("failed to parse first aid guides: %w", err)
	}

	for name, g := range guides {
		if len(g.Steps) == 0 {
			return nil, fmt.Errorf("guide %q has no steps", name)
		}
		g.Condition = name
		guides[name] = g
	}

	for _, s := range synonyms {
		if _, ok := guides[s.condition]; !ok {
			return nil, fmt.Errorf("synonym %q refers to missing guide %q", s.phrase, s.condition)
		}
	}

	return &Library{guides: guides}, nil
}

// Default parses the embedded guide library
func Default() (*Library, error) {
	return Load(guidesYAML)
}

// Conditions returns the canonical condition names in sorted order
func (l *Library) Conditions() []string {
	names := make([]string, 0, len(l.guides))
	for name := range l.guides {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Lookup finds the guide for a free-text situation. Unknown situations yield a
// guide with NoGuideContent and zero confidence.
func (l *Library) Lookup(situation string) models.FirstAidGuide {
	key := strings.ToLower(situation)

	for _, s := range synonyms {
		if strings.Contains(key, s.phrase) {
			return clone(l.guides[s.condition])
		}
	}

	return models.FirstAidGuide{
		Content:         NoGuideContent,
		Confidence:      0,
		Recommendations: []string{},
	}
}

// Translate returns a copy of g with every text field passed through fn
func Translate(g models.FirstAidGuide, fn func(string) string) models.FirstAidGuide {
	out := clone(g)
	if out.Title != "" {
		out.Title = fn(out.Title)
	}
	if out.Content != "" {
		out.Content = fn(out.Content)
	}
	for _, list := range [][]string{out.Steps, out.DoNot, out.SeekHelpIf, out.Symptoms, out.Recommendations} {
		for i := range list {
			list[i] = fn(list[i])
		}
	}
	return out
}

func clone(g models.FirstAidGuide) models.FirstAidGuide {
	g.Steps = cloneStrings(g.Steps)
	g.DoNot = cloneStrings(g.DoNot)
	g.SeekHelpIf = cloneStrings(g.SeekHelpIf)
	g.Symptoms = cloneStrings(g.Symptoms)
	g.Recommendations = cloneStrings(g.Recommendations)
	return g
}

func cloneStrings(s []string) []string {
	if s == nil {
		return nil
	}
	return append([]string(nil), s...)
}
