package translate

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMatch_ExplicitWins(t *testing.T) {
	assert.Equal(t, "sw", Match("sw", "en-US,en;q=0.9"))
	assert.Equal(t, "luo", Match("luo", ""))
	assert.Equal(t, "sw", Match("SW-ke", ""))
	assert.Equal(t, "en", Match("en", "sw"))
}

func TestMatch_ExplicitWithoutDictionaryIgnoresHeader(t *testing.T) {
	for _, code := range []string{"lu", "som", "mas", "xx", "fr-FR"} {
		assert.Equal(t, DefaultLanguage, Match(code, "sw"), code)
	}
	assert.Equal(t, "ki", Match("", "ki"))
}

func TestMatch_AcceptLanguage(t *testing.T) {
	assert.Equal(t, "sw", Match("", "sw-KE,en;q=0.5"))
	assert.Equal(t, "en", Match("", "en-US,sw;q=0.9"))
}

func TestMatch_DefaultFallback(t *testing.T) {
	assert.Equal(t, DefaultLanguage, Match("", ""))
	assert.Equal(t, DefaultLanguage, Match("", "fr-FR"))
	assert.Equal(t, DefaultLanguage, Match("xx", ""))
	assert.Equal(t, DefaultLanguage, Match("", ";;;garbage"))
}

func TestLanguages(t *testing.T) {
	langs := Languages()
	assert.Len(t, langs, 13)

	byCode := map[string]Language{}
	for _, l := range langs {
		byCode[l.Code] = l
	}
	assert.True(t, byCode["sw"].HasDictionary)
	assert.True(t, byCode["kam"].HasDictionary)
	assert.False(t, byCode["lu"].HasDictionary)
	assert.False(t, byCode["en"].HasDictionary)
	assert.Equal(t, "Dholuo", byCode["luo"].NativeName)
}
