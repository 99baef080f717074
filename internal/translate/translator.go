package translate

import (
	"regexp"
	"sort"
	"strings"

	"afyabuddy/internal/models"
)

// Mode selects how dictionary entries are applied to the text
type Mode string

const (
	// ModeSequential applies entries one after another in dictionary order.
	// A later entry can match text produced by an earlier substitution.
	ModeSequential Mode = "sequential"

	// ModeSinglePass replaces all terms in one scan with a combined pattern,
	// preferring the longest term at each position. Substituted text is never
	// re-matched.
	ModeSinglePass Mode = "single_pass"
)

// ParseMode converts a configuration string to a Mode, defaulting to sequential
func ParseMode(s string) Mode {
	if Mode(strings.ToLower(strings.TrimSpace(s))) == ModeSinglePass {
		return ModeSinglePass
	}
	return ModeSequential
}

// translationConfidence is reported for every dictionary translation
const translationConfidence = 0.95

type rule struct {
	pattern     *regexp.Regexp
	replacement string
}

type compiledDictionary struct {
	rules    []rule
	combined *regexp.Regexp
	lookup   map[string]string
}

// Translator substitutes known English medical terms with their equivalents in
// a target language. It holds only immutable state and is safe for concurrent use.
type Translator struct {
	mode     Mode
	dicts    map[string]*compiledDictionary
	fallback []rule
}

// New creates a translator over the built-in dictionaries
func New(mode Mode) *Translator {
	t := &Translator{
		mode:  mode,
		dicts: make(map[string]*compiledDictionary, len(dictionaries)),
	}

	for lang, dict := range dictionaries {
		t.dicts[lang] = compile(dict)
	}

	for _, e := range swahiliFallback {
		t.fallback = append(t.fallback, rule{
			pattern:     regexp.MustCompile(`(?i)` + regexp.QuoteMeta(e.English)),
			replacement: e.Translated,
		})
	}

	return t
}

func compile(dict Dictionary) *compiledDictionary {
	cd := &compiledDictionary{
		rules:  make([]rule, 0, len(dict)),
		lookup: make(map[string]string, len(dict)),
	}

	terms := make([]string, 0, len(dict))
	for _, e := range dict {
		cd.rules = append(cd.rules, rule{
			pattern:     regexp.MustCompile(`(?i)\b` + regexp.QuoteMeta(e.English) + `\b`),
			replacement: e.Translated,
		})

		key := strings.ToLower(e.English)
		if _, dup := cd.lookup[key]; !dup {
			cd.lookup[key] = e.Translated
			terms = append(terms, regexp.QuoteMeta(e.English))
		}
	}

	// Alternation is leftmost-first, so longer terms must come first for
	// "Emergency Room" to win over "Emergency".
	sort.SliceStable(terms, func(i, j int) bool { return len(terms[i]) > len(terms[j]) })
	cd.combined = regexp.MustCompile(`(?i)\b(?:` + strings.Join(terms, "|") + `)\b`)

	return cd
}

// Mode returns the substitution mode in use
func (t *Translator) Mode() Mode {
	return t.mode
}

// Supports reports whether a dictionary exists for the language code
func (t *Translator) Supports(lang string) bool {
	_, ok := t.dicts[normalize(lang)]
	return ok
}

// Translate returns text with known terms replaced for toLang. fromLang is
// informational only. Unknown languages and unmatched text are returned as is.
func (t *Translator) Translate(text, fromLang, toLang string) string {
	to := normalize(toLang)

	if dict, ok := t.dicts[to]; ok {
		var out string
		if t.mode == ModeSinglePass {
			out = dict.replaceOnce(text)
		} else {
			out = dict.replaceSequential(text)
		}
		if out != text {
			return out
		}
	}

	if to == fallbackLanguage {
		out := text
		for _, r := range t.fallback {
			out = r.pattern.ReplaceAllLiteralString(out, r.replacement)
		}
		return out
	}

	return text
}

// TranslateDetailed wraps Translate with the metadata returned to API clients
func (t *Translator) TranslateDetailed(text, fromLang, toLang, context string) models.TranslationResult {
	return models.TranslationResult{
		TranslatedText:         t.Translate(text, fromLang, toLang),
		Confidence:             translationConfidence,
		DetectedSourceLanguage: fromLang,
		CulturalNotes:          CulturalNotes(toLang, context),
	}
}

func (d *compiledDictionary) replaceSequential(text string) string {
	out := text
	for _, r := range d.rules {
		out = r.pattern.ReplaceAllLiteralString(out, r.replacement)
	}
	return out
}

func (d *compiledDictionary) replaceOnce(text string) string {
	return d.combined.ReplaceAllStringFunc(text, func(match string) string {
		if v, ok := d.lookup[strings.ToLower(match)]; ok {
			return v
		}
		return match
	})
}

func normalize(lang string) string {
	return strings.ToLower(strings.TrimSpace(lang))
}

// CulturalNotes returns translator notes for the target language and context
func CulturalNotes(language, context string) []string {
	var notes []string

	if normalize(language) == "sw" {
		notes = append(notes,
			"Translation adapted for Kenyan Swahili dialect",
			"Medical terms simplified for better understanding",
		)
	}

	if context == "medical" {
		notes = append(notes, "Cultural sensitivity applied to medical terminology")
	}

	return notes
}
