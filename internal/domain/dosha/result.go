// Package dosha implements the rule-based pattern detectors over a birth
// chart: each detector tests a geometric precondition, scores an intensity,
// classifies it and emits remedies. Detectors are pure functions of the
// chart; the analyzer runs them all and aggregates.
package dosha

// Level is the ordinal severity classification of a detected pattern.
type Level string

const (
	LevelNone     Level = "None"
	LevelMild     Level = "Mild"
	LevelModerate Level = "Moderate"
	LevelSevere   Level = "Severe"
	LevelCritical Level = "Critical"
)

// Thresholds maps an intensity score to a Level. The cut points are
// configuration, shared by every detector rather than hard-coded per family.
type Thresholds struct {
	Mild     float64 `yaml:"mild" json:"mild"`
	Moderate float64 `yaml:"moderate" json:"moderate"`
	Severe   float64 `yaml:"severe" json:"severe"`
}

// DefaultThresholds returns the reference cut points: Mild <=3,
// Moderate <=6, Severe <=8, Critical above.
func DefaultThresholds() Thresholds {
	return Thresholds{Mild: 3, Moderate: 6, Severe: 8}
}

// Classify maps an intensity to its level. Zero intensity means the pattern
// is absent.
func (t Thresholds) Classify(intensity float64) Level {
	switch {
	case intensity <= 0:
		return LevelNone
	case intensity <= t.Mild:
		return LevelMild
	case intensity <= t.Moderate:
		return LevelModerate
	case intensity <= t.Severe:
		return LevelSevere
	default:
		return LevelCritical
	}
}

// Remedies groups remedy entries by category (ritual, gemstone, mantra,
// lifestyle, escalation).
type Remedies map[string][]string

// Result is the common envelope every detector produces. Indicators carry
// the detector-specific payload (which placements fired); Diagnostic explains
// an unmet precondition (a computation gap, not an error). Failed marks the
// stand-in the analyzer substitutes when a detector panics.
type Result struct {
	Name       string   `json:"name"`
	Present    bool     `json:"present"`
	Intensity  float64  `json:"intensity"`
	Level      Level    `json:"intensityLevel"`
	Indicators []string `json:"indicators,omitempty"`
	Effects    []string `json:"effects,omitempty"`
	Remedies   Remedies `json:"remedies,omitempty"`
	Diagnostic string   `json:"diagnostic,omitempty"`
	Failed     bool     `json:"error,omitempty"`
	Message    string   `json:"message,omitempty"`
}

// absent builds a present:false result with a diagnostic explaining how far
// the precondition fell short.
func absent(name, diagnostic string) Result {
	return Result{
		Name:       name,
		Present:    false,
		Intensity:  0,
		Level:      LevelNone,
		Diagnostic: diagnostic,
	}
}
