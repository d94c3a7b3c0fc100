package scoring

import (
	"errors"
	"fmt"
	"time"

	"github.com/jvdt-hub/backend/internal/models"
)

var (
	// ErrNilDefinition is the only hard failure: a missing definition is a
	// configuration error, never a user-data problem.
	ErrNilDefinition = errors.New("scoring: nil test definition")
	// ErrUnsupportedMethod is returned by Evaluate for a method it cannot dispatch.
	ErrUnsupportedMethod = errors.New("scoring: unsupported scoring method")
)

// Engine runs the variant pipelines. It holds no state besides the clock
// and is safe for concurrent use.
type Engine struct {
	Now func() time.Time
}

func NewEngine() *Engine {
	return &Engine{Now: time.Now}
}

func (e *Engine) now() time.Time {
	if e == nil || e.Now == nil {
		return time.Now().UTC()
	}
	return e.Now().UTC()
}

// ScoreAxes runs the shared axis pipeline under policy p. Categories without
// an axis and questions whose axis has no category are ignored.
func (e *Engine) ScoreAxes(def *models.TestDefinition, answers models.Answers, p Policy) (*models.Results, error) {
	if def == nil {
		return nil, ErrNilDefinition
	}

	axisResults := make(map[string]models.AxisResult)
	for _, cat := range def.Categories {
		if cat.Axis == "" {
			continue
		}
		axisResults[cat.Axis] = ScoreAxis(cat.Axis, def.AxisQuestions(cat.Axis), answers, p)
	}

	ii := IntegrationIndex(axisResults, p)
	stages := MapStages(axisResults, ii, def.Scoring, p)

	res := &models.Results{
		TestID:           def.ID,
		AxisResults:      axisResults,
		AxisStages:       stages,
		IntegrationIndex: ii,
		IntegrationScale: scaleOf(p),
		JVDTCode:         GenerateCode(axisResults, p),
		OverallStage:     AggregateOverallStage(stages),
		CompletedAt:      e.now(),
		Methodology:      p.Methodology,
	}
	res.Recommendations = GenerateRecommendations(res, def, p)
	return res, nil
}

func scaleOf(p Policy) float64 {
	if p.IntegrationScale == 0 {
		return 1
	}
	return p.IntegrationScale
}

// Evaluate dispatches on the definition's scoring method.
func (e *Engine) Evaluate(def *models.TestDefinition, answers models.Answers) (*models.Outcome, error) {
	if def == nil {
		return nil, ErrNilDefinition
	}

	out := &models.Outcome{TestID: def.ID}
	switch method := def.Scoring.Method; method {
	case models.MethodAxes7, models.MethodAxes4:
		p, _ := PolicyFor(method)
		res, err := e.ScoreAxes(def, answers, p)
		if err != nil {
			return nil, err
		}
		out.Methodology = res.Methodology
		out.Axes = res
	case models.MethodKids:
		res, err := e.ScoreKids(def, answers)
		if err != nil {
			return nil, err
		}
		out.Methodology = res.Methodology
		out.Kids = res
	case models.MethodPercentage, "":
		res, err := e.ScorePercentage(def, answers)
		if err != nil {
			return nil, err
		}
		out.Methodology = res.Methodology
		out.Percentage = res
	default:
		return nil, fmt.Errorf("evaluate %s: %w: %q", def.ID, ErrUnsupportedMethod, method)
	}
	return out, nil
}
