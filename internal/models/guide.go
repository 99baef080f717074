package models

// FirstAidGuide holds structured step-by-step instructions for one condition
type FirstAidGuide struct {
	Condition       string   `json:"condition,omitempty" yaml:"-"`
	Title           string   `json:"title,omitempty" yaml:"title"`
	Content         string   `json:"content,omitempty" yaml:"content"`
	Steps           []string `json:"steps,omitempty" yaml:"steps"`
	DoNot           []string `json:"do_not,omitempty" yaml:"do_not"`
	SeekHelpIf      []string `json:"seek_help_if,omitempty" yaml:"seek_help_if"`
	Symptoms        []string `json:"symptoms,omitempty" yaml:"symptoms"`
	Confidence      float64  `json:"confidence" yaml:"confidence"`
	Recommendations []string `json:"recommendations" yaml:"recommendations"`
}

// WellnessAnalysis is a mock facial wellness assessment
type WellnessAnalysis struct {
	StressLevel       int      `json:"stressLevel"`
	PainLevel         int      `json:"painLevel"`
	FatigueLevel      int      `json:"fatigueLevel"`
	MentalHealthScore int      `json:"mentalHealthScore"`
	OverallWellness   int      `json:"overallWellness"`
	KeyFindings       []string `json:"keyFindings"`
	Confidence        float64  `json:"confidence,omitempty"`
}
