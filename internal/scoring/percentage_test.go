package scoring

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/jvdt-hub/backend/internal/models"
)

func intPtr(i int) *int { return &i }

func fluencyDefinition() *models.TestDefinition {
	return &models.TestDefinition{
		ID: "english-fluency",
		Categories: []models.AxisCategory{
			{ID: "grammar", Name: "Grammar"},
			{ID: "speaking", Name: "Speaking"},
		},
		Questions: []models.Question{
			{ID: "g1", Type: models.QuestionMultipleChoice, Category: "grammar", CorrectAnswer: intPtr(0), Points: 1},
			{ID: "g2", Type: models.QuestionMultipleChoice, Category: "grammar", CorrectAnswer: intPtr(2), Points: 1},
			{ID: "s1", Type: models.QuestionScale, Category: "speaking", Points: 2},
		},
		Scoring: models.ScoringConfig{
			Method: models.MethodPercentage,
			Levels: []models.Level{
				{Name: "Beginner", Range: [2]float64{0, 0.49}, Description: "Just starting", Recommendations: []string{"Read daily"}},
				{Name: "Intermediate", Range: [2]float64{0.5, 0.79}, Description: "Getting there", Recommendations: []string{"Speak daily"}},
				{Name: "Advanced", Range: [2]float64{0.8, 1}, Description: "Fluent", Recommendations: []string{"Teach"}},
			},
		},
	}
}

func TestScorePercentage(t *testing.T) {
	answers := models.Answers{"g1": 0, "g2": 1, "s1": 5}
	res, err := testEngine().ScorePercentage(fluencyDefinition(), answers)
	if err != nil {
		t.Fatalf("ScorePercentage: %v", err)
	}

	if !almostEqual(res.TotalScore, 0.75) {
		t.Errorf("total = %f, want 0.75", res.TotalScore)
	}
	want := map[string]models.CategoryScore{
		"grammar":  {Score: 1, MaxScore: 2, Normalized: 0.5},
		"speaking": {Score: 2, MaxScore: 2, Normalized: 1},
	}
	if diff := cmp.Diff(want, res.CategoryScores); diff != "" {
		t.Errorf("category scores mismatch (-want +got):\n%s", diff)
	}
	if res.Level != "Intermediate" || res.LevelDescription != "Getting there" {
		t.Errorf("level = %q/%q, want Intermediate", res.Level, res.LevelDescription)
	}
	if diff := cmp.Diff([]string{"Speak daily"}, res.Recommendations); diff != "" {
		t.Errorf("recommendations mismatch (-want +got):\n%s", diff)
	}
}

func TestScorePercentageScaleMidpoint(t *testing.T) {
	res, err := testEngine().ScorePercentage(fluencyDefinition(), models.Answers{"s1": 3})
	if err != nil {
		t.Fatalf("ScorePercentage: %v", err)
	}
	if got := res.CategoryScores["speaking"].Score; got != 1 {
		t.Errorf("speaking score = %f, want 1", got)
	}
	if !almostEqual(res.TotalScore, 0.25) || res.Level != "Beginner" {
		t.Errorf("total/level = %f/%q, want 0.25/Beginner", res.TotalScore, res.Level)
	}
}

func TestScorePercentageNoLevel(t *testing.T) {
	def := fluencyDefinition()
	def.Scoring.Levels = nil
	res, err := testEngine().ScorePercentage(def, models.Answers{})
	if err != nil {
		t.Fatalf("ScorePercentage: %v", err)
	}
	if res.Level != "Unknown" || len(res.Recommendations) != 0 {
		t.Errorf("level = %q, recs = %v, want Unknown and none", res.Level, res.Recommendations)
	}
	if res.TotalScore != 0 {
		t.Errorf("total = %f, want 0", res.TotalScore)
	}
}

func TestQuickCode(t *testing.T) {
	scores := map[string]int{
		"perception":       50,
		"interpretation":   49,
		"reflection":       100,
		"application":      0,
		"motivation":       75,
		"orientation":      10,
		"value_expression": 51,
	}
	got, err := QuickCode(scores)
	if err != nil {
		t.Fatalf("QuickCode: %v", err)
	}
	if got.Code != "ACIPSHL" {
		t.Errorf("code = %q, want ACIPSHL", got.Code)
	}
	if got.Normalized["motivation"] != 0.75 {
		t.Errorf("normalized motivation = %f, want 0.75", got.Normalized["motivation"])
	}

	got, err = QuickCode(map[string]int{"perception": 10})
	if err != nil {
		t.Fatalf("QuickCode: %v", err)
	}
	if got.Code != "N??????" {
		t.Errorf("partial code = %q, want N??????", got.Code)
	}

	if _, err := QuickCode(map[string]int{"perception": 101}); !errors.Is(err, ErrScoreRange) {
		t.Errorf("QuickCode(101) error = %v, want ErrScoreRange", err)
	}
}
