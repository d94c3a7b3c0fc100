package scoring

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/jvdt-hub/backend/internal/models"
)

func TestGlobalTier(t *testing.T) {
	tests := []struct {
		ii   float64
		p    Policy
		want string
	}{
		{0, Policy7, integrationTiers[0].lines[0]},
		{0.39, Policy7, integrationTiers[0].lines[0]},
		{0.4, Policy7, integrationTiers[1].lines[0]},
		{0.69, Policy7, integrationTiers[1].lines[0]},
		{0.7, Policy7, highIntegrationLines[0]},
		{1, Policy7, highIntegrationLines[0]},
		{39, Policy4, integrationTiers[0].lines[0]},
		{70, Policy4, highIntegrationLines[0]},
	}
	for _, tt := range tests {
		got := globalTier(tt.ii, tt.p)
		if len(got) != 2 || got[0] != tt.want {
			t.Errorf("globalTier(%v, %s) = %v, want first line %q", tt.ii, tt.p.Methodology, got, tt.want)
		}
	}
}

func TestGenerateRecommendationsText(t *testing.T) {
	def := axisDefinition(models.MethodAxes7, Policy7, 1)
	stages := map[string]int{}
	for _, spec := range Policy7.Axes {
		stages[spec.Axis] = 4
	}
	res := &models.Results{IntegrationIndex: 0.3, AxisStages: stages}

	got := GenerateRecommendations(res, def, Policy7)
	if len(got) != 6 {
		t.Fatalf("len = %d, want 6", len(got))
	}
	want := []models.Recommendation{
		{Kind: models.RecommendationText, Text: integrationTiers[0].lines[0]},
		{Kind: models.RecommendationText, Text: integrationTiers[0].lines[1]},
		{Kind: models.RecommendationText, Text: "Perception: practice Perception 4"},
		{Kind: models.RecommendationText, Text: "Interpretation: practice Interpretation 4"},
		{Kind: models.RecommendationText, Text: "Reflection: practice Reflection 4"},
		{Kind: models.RecommendationText, Text: "Application: practice Application 4"},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("recommendations mismatch (-want +got):\n%s", diff)
	}
}

func TestGenerateRecommendationsSkipsMissingStage(t *testing.T) {
	def := axisDefinition(models.MethodAxes7, Policy7, 1)
	def.Categories[0].Stages = def.Categories[0].Stages[:2]
	res := &models.Results{
		IntegrationIndex: 0.9,
		AxisStages:       map[string]int{"perception": 5, "interpretation": 5},
	}

	got := GenerateRecommendations(res, def, Policy7)
	want := []models.Recommendation{
		{Kind: models.RecommendationText, Text: highIntegrationLines[0]},
		{Kind: models.RecommendationText, Text: highIntegrationLines[1]},
		{Kind: models.RecommendationText, Text: "Interpretation: practice Interpretation 5"},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("recommendations mismatch (-want +got):\n%s", diff)
	}
}

func TestGenerateRecommendationsPractice(t *testing.T) {
	def := axisDefinition(models.MethodAxes4, Policy4, 1)
	res := &models.Results{
		IntegrationIndex: 20,
		AxisStages:       map[string]int{"seeing": 1, "doing": 4},
	}

	got := GenerateRecommendations(res, def, Policy4)
	want := []models.Recommendation{
		{
			Kind:        models.RecommendationPractice,
			Axis:        "seeing",
			Stage:       "Instinct",
			Practice:    "practice Seeing 1",
			Reflection:  "reflect Seeing 1",
			Description: "Seeing stage 1",
		},
		{
			Kind:        models.RecommendationPractice,
			Axis:        "doing",
			Stage:       "Mastery",
			Practice:    "practice Doing 4",
			Reflection:  "reflect Doing 4",
			Description: "Doing stage 4",
		},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("recommendations mismatch (-want +got):\n%s", diff)
	}
}
