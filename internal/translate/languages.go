package translate

import (
	"golang.org/x/text/language"
)

// DefaultLanguage is the source language of all canned advice
const DefaultLanguage = "en"

// Language describes one language offered in the assistant's language picker
type Language struct {
	Code          string `json:"code"`
	Name          string `json:"name"`
	NativeName    string `json:"nativeName"`
	HasDictionary bool   `json:"hasDictionary"`
}

var catalogue = []Language{
	{Code: "en", Name: "English", NativeName: "English"},
	{Code: "sw", Name: "Swahili", NativeName: "Kiswahili"},
	{Code: "ki", Name: "Kikuyu", NativeName: "Gĩkũyũ"},
	{Code: "lu", Name: "Luhya", NativeName: "Luluhya"},
	{Code: "luo", Name: "Luo", NativeName: "Dholuo"},
	{Code: "kam", Name: "Kamba", NativeName: "Kikamba"},
	{Code: "kis", Name: "Kisii", NativeName: "Ekegusii"},
	{Code: "mer", Name: "Meru", NativeName: "Kimeru"},
	{Code: "mij", Name: "Mijikenda", NativeName: "Kimijikenda"},
	{Code: "tur", Name: "Turkana", NativeName: "Ngaturkana"},
	{Code: "mas", Name: "Maasai", NativeName: "Maa"},
	{Code: "kal", Name: "Kalenjin", NativeName: "Kalenjin"},
	{Code: "som", Name: "Somali", NativeName: "Soomaali"},
}

// Languages returns the language catalogue, marking which entries have a dictionary
func Languages() []Language {
	out := make([]Language, len(catalogue))
	for i, l := range catalogue {
		_, l.HasDictionary = dictionaries[l.Code]
		out[i] = l
	}
	return out
}

// Only languages the translator can actually produce take part in negotiation.
// The first entry is the matcher's default.
var (
	negotiable = []string{DefaultLanguage, "sw", "ki", "luo", "kam"}
	matcher    = newMatcher(negotiable)
)

func newMatcher(codes []string) language.Matcher {
	tags := make([]language.Tag, 0, len(codes))
	for _, c := range codes {
		tags = append(tags, language.Make(c))
	}
	return language.NewMatcher(tags)
}

// Match resolves the response language for a request. A non-empty explicit
// code ends negotiation: it resolves to a supported code or, when the
// translator has no dictionary for it, to DefaultLanguage. Without one the
// Accept-Language header is negotiated.
func Match(explicit, acceptLanguage string) string {
	if code := normalize(explicit); code != "" {
		if code == DefaultLanguage {
			return code
		}
		if _, ok := dictionaries[code]; ok {
			return code
		}
		if base, ok := baseCode(code); ok {
			return base
		}
		return DefaultLanguage
	}

	if acceptLanguage == "" {
		return DefaultLanguage
	}

	prefs, _, err := language.ParseAcceptLanguage(acceptLanguage)
	if err != nil || len(prefs) == 0 {
		return DefaultLanguage
	}

	_, idx, conf := matcher.Match(prefs...)
	if conf == language.No || idx < 0 || idx >= len(negotiable) {
		return DefaultLanguage
	}
	return negotiable[idx]
}

// baseCode maps a regional tag such as "sw-KE" onto a negotiable base language
func baseCode(code string) (string, bool) {
	tag, err := language.Parse(code)
	if err != nil {
		return "", false
	}
	base, _ := tag.Base()
	for _, c := range negotiable {
		if base.String() == c {
			return c, true
		}
	}
	return "", false
}
