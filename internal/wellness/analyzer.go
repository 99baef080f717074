// Package wellness produces mock facial wellness assessments. No image is
// inspected; scores are drawn from a random source.
package wellness

import (
	"math/rand/v2"
	"sync"

	"afyabuddy/internal/models"
)

const analysisConfidence = 0.85

var keyFindings = []string{
	"Facial symmetry analysis completed",
	"Eye movement patterns analyzed",
	"Stress indicators detected in facial expressions",
	"Overall health indicators within normal range",
}

// Analyzer generates randomized assessments
type Analyzer struct {
	mu  sync.Mutex
	rng *rand.Rand
}

// NewAnalyzer creates an analyzer. A nil source uses a randomly seeded PCG.
func NewAnalyzer(src rand.Source) *Analyzer {
	if src == nil {
		src = rand.NewPCG(rand.Uint64(), rand.Uint64())
	}
	return &Analyzer{rng: rand.New(src)}
}

// Analyze returns a new mock assessment
func (a *Analyzer) Analyze() models.WellnessAnalysis {
	a.mu.Lock()
	defer a.mu.Unlock()

	return models.WellnessAnalysis{
		StressLevel:       a.rng.IntN(100),
		PainLevel:         a.rng.IntN(100),
		FatigueLevel:      a.rng.IntN(100),
		MentalHealthScore: a.rng.IntN(40) + 60,
		OverallWellness:   a.rng.IntN(30) + 70,
		KeyFindings:       append([]string(nil), keyFindings...),
		Confidence:        analysisConfidence,
	}
}

// Basic is the fixed assessment used when analysis is unavailable
func Basic() models.WellnessAnalysis {
	return models.WellnessAnalysis{
		StressLevel:       45,
		PainLevel:         25,
		FatigueLevel:      35,
		MentalHealthScore: 78,
		OverallWellness:   82,
		KeyFindings: []string{
			"Basic visual assessment completed",
			"No immediate health concerns detected",
			"Recommend professional evaluation for detailed analysis",
		},
	}
}

// Recommendations derives advice from an assessment's scores
func Recommendations(a models.WellnessAnalysis) []string {
	var recs []string

	if a.StressLevel > 70 {
		recs = append(recs,
			"Consider stress reduction techniques like deep breathing",
			"Take regular breaks and practice mindfulness",
		)
	}

	if a.PainLevel > 50 {
		recs = append(recs,
			"Monitor pain levels and consider medical consultation",
			"Apply appropriate pain management techniques",
		)
	}

	if a.MentalHealthScore < 70 {
		recs = append(recs,
			"Consider speaking with a mental health professional",
			"Engage in activities that promote mental wellness",
		)
	}

	return append(recs,
		"Maintain regular sleep schedule and healthy diet",
		"Stay hydrated and exercise regularly",
	)
}
