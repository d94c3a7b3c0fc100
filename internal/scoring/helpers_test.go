package scoring

import (
	"fmt"
	"math"
	"time"

	"github.com/jvdt-hub/backend/internal/models"
)

var fixedNow = time.Date(2025, 3, 14, 9, 30, 0, 0, time.UTC)

func testEngine() *Engine {
	return &Engine{Now: func() time.Time { return fixedNow }}
}

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func scaleQuestions(axis string, n int, dir models.ScaleDirection) []models.Question {
	qs := make([]models.Question, n)
	for i := range qs {
		qs[i] = models.Question{
			ID:      fmt.Sprintf("%s-%d", axis, i+1),
			Type:    models.QuestionScale,
			Axis:    axis,
			Scoring: dir,
		}
	}
	return qs
}

func ladder(name string) []models.StageInfo {
	out := make([]models.StageInfo, 5)
	for i := range out {
		stage := i + 1
		out[i] = models.StageInfo{
			Stage:       stage,
			Name:        StageName(stage),
			Description: fmt.Sprintf("%s stage %d", name, stage),
			Practice:    fmt.Sprintf("practice %s %d", name, stage),
			Reflection:  fmt.Sprintf("reflect %s %d", name, stage),
		}
	}
	return out
}

// axisDefinition builds a definition with perAxis forward scale questions on
// every axis of p, each category carrying a full stage ladder.
func axisDefinition(method models.ScoringMethod, p Policy, perAxis int) *models.TestDefinition {
	def := &models.TestDefinition{
		ID:      string(method),
		Scoring: models.ScoringConfig{Method: method},
	}
	for _, spec := range p.Axes {
		name := capitalize(spec.Axis)
		def.Categories = append(def.Categories, models.AxisCategory{
			ID:     spec.Axis,
			Axis:   spec.Axis,
			Name:   name,
			Poles:  models.Poles{{Key: spec.NameA, Label: spec.NameA}, {Key: spec.NameB, Label: spec.NameB}},
			Stages: ladder(name),
		})
		def.Questions = append(def.Questions, scaleQuestions(spec.Axis, perAxis, models.ScoringForward)...)
	}
	return def
}

func answerAxis(answers models.Answers, def *models.TestDefinition, axis string, values ...int) {
	for i, q := range def.AxisQuestions(axis) {
		if i >= len(values) {
			return
		}
		answers[q.ID] = values[i]
	}
}

func answerAll(def *models.TestDefinition, value int) models.Answers {
	answers := models.Answers{}
	for _, q := range def.Questions {
		answers[q.ID] = value
	}
	return answers
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return string(s[0]-'a'+'A') + s[1:]
}
