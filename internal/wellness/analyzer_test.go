package wellness

import (
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"

	"afyabuddy/internal/models"
)

func TestAnalyze_Ranges(t *testing.T) {
	a := NewAnalyzer(rand.NewPCG(1, 2))

	for i := 0; i < 200; i++ {
		got := a.Analyze()
		assert.GreaterOrEqual(t, got.StressLevel, 0)
		assert.Less(t, got.StressLevel, 100)
		assert.Less(t, got.PainLevel, 100)
		assert.Less(t, got.FatigueLevel, 100)
		assert.GreaterOrEqual(t, got.MentalHealthScore, 60)
		assert.Less(t, got.MentalHealthScore, 100)
		assert.GreaterOrEqual(t, got.OverallWellness, 70)
		assert.Less(t, got.OverallWellness, 100)
		assert.Equal(t, 0.85, got.Confidence)
		assert.Len(t, got.KeyFindings, 4)
	}
}

func TestAnalyze_SeededIsReproducible(t *testing.T) {
	a := NewAnalyzer(rand.NewPCG(7, 7))
	b := NewAnalyzer(rand.NewPCG(7, 7))
	assert.Equal(t, a.Analyze(), b.Analyze())
}

func TestRecommendations(t *testing.T) {
	calm := models.WellnessAnalysis{StressLevel: 10, PainLevel: 10, MentalHealthScore: 90}
	assert.Equal(t, []string{
		"Maintain regular sleep schedule and healthy diet",
		"Stay hydrated and exercise regularly",
	}, Recommendations(calm))

	strained := models.WellnessAnalysis{StressLevel: 71, PainLevel: 51, MentalHealthScore: 69}
	recs := Recommendations(strained)
	assert.Len(t, recs, 8)
	assert.Equal(t, "Consider stress reduction techniques like deep breathing", recs[0])
	assert.Equal(t, "Monitor pain levels and consider medical consultation", recs[2])
	assert.Equal(t, "Consider speaking with a mental health professional", recs[4])

	// thresholds are strict
	edge := models.WellnessAnalysis{StressLevel: 70, PainLevel: 50, MentalHealthScore: 70}
	assert.Len(t, Recommendations(edge), 2)
}

func TestBasic(t *testing.T) {
	b := Basic()
	assert.Equal(t, 78, b.MentalHealthScore)
	assert.Len(t, Recommendations(b), 2)
}
