package scoring

import (
	"math"

	"github.com/jvdt-hub/backend/internal/models"
)

// IntegrationIndex is the mean axis balance on the policy's scale.
// An empty result set yields 0.
func IntegrationIndex(results map[string]models.AxisResult, p Policy) float64 {
	if len(results) == 0 {
		return 0
	}
	var total float64
	for _, r := range results {
		total += r.Balance
	}
	ii := total / float64(len(results))

	scale := p.IntegrationScale
	if scale == 0 {
		scale = 1
	}
	ii *= scale
	if p.RoundIntegration {
		ii = math.Round(ii)
	}
	return ii
}

// MapStages assigns each axis a stage 1..5. The first matching margin band
// wins; axes below every band branch on the global integration index.
func MapStages(results map[string]models.AxisResult, ii float64, cfg models.ScoringConfig, p Policy) map[string]int {
	th := p.thresholds(cfg)
	sm := p.stageMapping(cfg)

	stages := make(map[string]int, len(results))
	for axis, r := range results {
		margin := math.Abs(r.PoleAScore - r.PoleBScore)

		var stage int
		switch {
		case margin >= th.HighlySkewed:
			stage = sm.HighlySkewed
		case margin >= th.StrongPreference:
			stage = sm.StrongPreference
		case margin >= th.DirectionalFlexible:
			stage = sm.DirectionalFlexible
		case ii >= p.HighIntegration:
			stage = sm.BalancedHighII
		default:
			stage = sm.BalancedLowII
		}
		stages[axis] = clampStage(stage)
	}
	return stages
}

func clampStage(stage int) int {
	if stage < 1 {
		return 1
	}
	if stage > 5 {
		return 5
	}
	return stage
}

// ── Overall Stage ───────────────────────────────────────

var stageNames = map[int]string{
	1: "Instinct",
	2: "Awareness",
	3: "Balance",
	4: "Mastery",
	5: "Wisdom",
}

var stageDescriptions = map[int]string{
	1: "Foundation stage - developing basic awareness of different approaches",
	2: "Recognition stage - noticing tensions and alternatives in thinking and acting",
	3: "Integration stage - learning to balance and alternate between different modes",
	4: "Application stage - consistently integrating different approaches and teaching others",
	5: "Transcendence stage - seamless unity between apparently opposite ways of being",
}

// StageName returns the ladder name for stage, or "Unknown".
func StageName(stage int) string {
	if name, ok := stageNames[stage]; ok {
		return name
	}
	return "Unknown"
}

// AggregateOverallStage rounds the mean axis stage to a named ladder stage.
func AggregateOverallStage(stages map[string]int) models.OverallStage {
	if len(stages) == 0 {
		return models.OverallStage{
			Name:        "Unknown",
			Description: "Stage description not available",
		}
	}

	var total int
	for _, s := range stages {
		total += s
	}
	avg := float64(total) / float64(len(stages))
	rounded := int(math.Round(avg))

	desc, ok := stageDescriptions[rounded]
	if !ok {
		desc = "Stage description not available"
	}
	return models.OverallStage{
		Stage:        rounded,
		Name:         StageName(rounded),
		Description:  desc,
		AverageStage: math.Round(avg*10) / 10,
	}
}
