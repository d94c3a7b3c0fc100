package scoring

import (
	"fmt"

	"github.com/jvdt-hub/backend/internal/models"
)

var integrationTiers = []struct {
	below float64
	lines []string
}{
	{0.4, []string{
		"Focus on developing balance: Practice seeing situations from multiple perspectives before making decisions.",
		"Experiment with your non-preferred approaches: Try using your less natural thinking style in low-stakes situations.",
	}},
	{0.7, []string{
		"Build consistent integration: Look for opportunities to combine different approaches in your daily work.",
		"Develop teaching abilities: Share your balanced perspective with others to deepen your own understanding.",
	}},
}

var highIntegrationLines = []string{
	"Mentor others: Your high integration makes you well-suited to guide others in developing balance.",
	"Explore wisdom practices: Engage in reflection and contemplation to deepen your seamless integration.",
}

// GenerateRecommendations builds guidance for scored results. Axes are
// visited in the definition's category order; a stage with no table entry
// is skipped.
func GenerateRecommendations(res *models.Results, def *models.TestDefinition, p Policy) []models.Recommendation {
	var out []models.Recommendation

	if p.Recommend == TextRecommendations {
		for _, line := range globalTier(res.IntegrationIndex, p) {
			out = append(out, textRecommendation(line))
		}
	}

	for _, cat := range def.Categories {
		if cat.Axis == "" {
			continue
		}
		stage, ok := res.AxisStages[cat.Axis]
		if !ok {
			continue
		}
		info := cat.StageFor(stage)
		if info == nil {
			continue
		}

		switch p.Recommend {
		case PracticeRecommendations:
			out = append(out, models.Recommendation{
				Kind:        models.RecommendationPractice,
				Axis:        cat.Axis,
				Stage:       StageName(stage),
				Practice:    info.Practice,
				Reflection:  info.Reflection,
				Description: info.Description,
			})
		default:
			if info.Practice == "" {
				continue
			}
			out = append(out, textRecommendation(fmt.Sprintf("%s: %s", cat.Name, info.Practice)))
		}
	}

	if p.MaxRecommendations > 0 && len(out) > p.MaxRecommendations {
		out = out[:p.MaxRecommendations]
	}
	return out
}

// globalTier picks the encouragement lines for the index, read as a 0..1 fraction.
func globalTier(ii float64, p Policy) []string {
	if p.IntegrationScale > 0 {
		ii /= p.IntegrationScale
	}
	for _, tier := range integrationTiers {
		if ii < tier.below {
			return tier.lines
		}
	}
	return highIntegrationLines
}

func textRecommendation(s string) models.Recommendation {
	return models.Recommendation{Kind: models.RecommendationText, Text: s}
}
