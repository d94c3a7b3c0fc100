package scoring

import "github.com/jvdt-hub/backend/internal/models"

// PreferenceRule selects how an axis result is labelled.
type PreferenceRule int

const (
	// MarginRule labels an axis balanced when its margin is below Band,
	// otherwise first or second.
	MarginRule PreferenceRule = iota
	// ShareRule names a pole when its normalized share exceeds Band,
	// otherwise balanced. Strength is reported alongside.
	ShareRule
)

// RecommendationStyle selects the recommendation shape a variant emits.
type RecommendationStyle int

const (
	TextRecommendations RecommendationStyle = iota
	PracticeRecommendations
)

// AxisSpec names one axis in canonical code order.
type AxisSpec struct {
	Axis    string
	LetterA string
	LetterB string
	NameA   string
	NameB   string
}

// Policy carries everything that differs between the axis-based variants.
// The pipeline in this package is shared; only these values change.
type Policy struct {
	Methodology string
	Axes        []AxisSpec

	// ForwardFavorsA: a high answer on a forward scale question adds to pole A.
	ForwardFavorsA bool

	Rule PreferenceRule
	Band float64

	// MissingLetter is emitted for an axis with no result. BalancedLetter, when
	// set, is emitted for balanced or neutral axes; when empty the larger pole
	// wins and ties go to pole A.
	MissingLetter  string
	BalancedLetter string

	// IntegrationScale multiplies the mean balance (1 or 100). HighIntegration
	// is the balanced_high_ii cut on that same scale.
	IntegrationScale float64
	RoundIntegration bool
	HighIntegration  float64

	Thresholds models.MarginThresholds
	Stages     models.StageMapping
	// FixedStages ignores the definition's stage_mapping block.
	FixedStages bool

	Recommend          RecommendationStyle
	MaxRecommendations int
}

var Policy7 = Policy{
	Methodology: "jvdt-7-authentic",
	Axes: []AxisSpec{
		{Axis: "perception", LetterA: "A", LetterB: "N", NameA: "association", NameB: "analysis"},
		{Axis: "interpretation", LetterA: "R", LetterB: "C", NameA: "root", NameB: "context"},
		{Axis: "reflection", LetterA: "I", LetterB: "E", NameA: "internal", NameB: "external"},
		{Axis: "application", LetterA: "D", LetterB: "P", NameA: "dream", NameB: "pragmatic"},
		{Axis: "motivation", LetterA: "S", LetterB: "M", NameA: "self", NameB: "mission"},
		{Axis: "orientation", LetterA: "T", LetterB: "H", NameA: "task", NameB: "horizon"},
		{Axis: "value_expression", LetterA: "L", LetterB: "R", NameA: "love", NameB: "respect"},
	},
	ForwardFavorsA:   true,
	Rule:             MarginRule,
	Band:             0.1,
	MissingLetter:    "?",
	IntegrationScale: 1,
	HighIntegration:  0.7,
	Thresholds: models.MarginThresholds{
		HighlySkewed:        0.6,
		StrongPreference:    0.4,
		DirectionalFlexible: 0.2,
		Balanced:            0.1,
	},
	Stages: models.StageMapping{
		HighlySkewed:        2,
		StrongPreference:    3,
		DirectionalFlexible: 4,
		BalancedHighII:      5,
		BalancedLowII:       4,
	},
	Recommend:          TextRecommendations,
	MaxRecommendations: 6,
}

var Policy4 = Policy{
	Methodology: "jvdt-4-cognitive",
	Axes: []AxisSpec{
		{Axis: "seeing", LetterA: "S", LetterB: "F", NameA: "story", NameB: "facts"},
		{Axis: "thinking", LetterA: "W", LetterB: "H", NameA: "why", NameB: "how"},
		{Axis: "doing", LetterA: "D", LetterB: "P", NameA: "dream", NameB: "plan"},
		{Axis: "caring", LetterA: "K", LetterB: "R", NameA: "kind", NameB: "fair"},
	},
	ForwardFavorsA:   false,
	Rule:             ShareRule,
	Band:             0.55,
	MissingLetter:    "B",
	BalancedLetter:   "B",
	IntegrationScale: 100,
	RoundIntegration: true,
	HighIntegration:  70,
	Thresholds: models.MarginThresholds{
		HighlySkewed:        0.8,
		StrongPreference:    0.65,
		DirectionalFlexible: 0.55,
		Balanced:            0.54,
	},
	Stages: models.StageMapping{
		HighlySkewed:        1,
		StrongPreference:    2,
		DirectionalFlexible: 3,
		BalancedHighII:      5,
		BalancedLowII:       4,
	},
	FixedStages: true,
	Recommend:   PracticeRecommendations,
}

// PolicyFor returns the policy registered for an axis-based scoring method.
func PolicyFor(method models.ScoringMethod) (Policy, bool) {
	switch method {
	case models.MethodAxes7:
		return Policy7, true
	case models.MethodAxes4:
		return Policy4, true
	}
	return Policy{}, false
}

// Spec returns the axis spec for axis, or false when the policy does not
// list it.
func (p Policy) Spec(axis string) (AxisSpec, bool) {
	for _, s := range p.Axes {
		if s.Axis == axis {
			return s, true
		}
	}
	return AxisSpec{}, false
}

func (p Policy) thresholds(cfg models.ScoringConfig) models.MarginThresholds {
	if cfg.MarginThresholds.IsZero() {
		return p.Thresholds
	}
	return cfg.MarginThresholds
}

func (p Policy) stageMapping(cfg models.ScoringConfig) models.StageMapping {
	if p.FixedStages || cfg.StageMapping.IsZero() {
		return p.Stages
	}
	return cfg.StageMapping
}
