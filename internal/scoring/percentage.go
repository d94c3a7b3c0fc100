package scoring

import "github.com/jvdt-hub/backend/internal/models"

const percentageMethodology = "percentage"

// ScorePercentage grades a plain points-based test. Multiple-choice questions
// earn full points for the correct option; scale answers earn (a-1)/4 of them.
// Unanswered questions still count toward the maximum; questions with an
// undeclared category count only toward the overall score.
func (e *Engine) ScorePercentage(def *models.TestDefinition, answers models.Answers) (*models.PercentageResults, error) {
	if def == nil {
		return nil, ErrNilDefinition
	}

	cats := make(map[string]models.CategoryScore, len(def.Categories))
	for _, c := range def.Categories {
		cats[c.ID] = models.CategoryScore{}
	}

	var total, possible float64
	for _, q := range def.Questions {
		earned := questionPoints(q, answers)

		if cs, ok := cats[q.Category]; ok {
			cs.Score += earned
			cs.MaxScore += q.Points
			cats[q.Category] = cs
		}

		total += earned
		possible += q.Points
	}

	for id, cs := range cats {
		if cs.MaxScore > 0 {
			cs.Normalized = cs.Score / cs.MaxScore
		}
		cats[id] = cs
	}

	var overall float64
	if possible > 0 {
		overall = total / possible
	}

	res := &models.PercentageResults{
		TestID:          def.ID,
		Methodology:     percentageMethodology,
		TotalScore:      overall,
		CategoryScores:  cats,
		Level:           "Unknown",
		Recommendations: []string{},
		Answers:         answers,
		CompletedAt:     e.now(),
	}
	if lvl := levelFor(def.Scoring.Levels, overall); lvl != nil {
		res.Level = lvl.Name
		res.LevelDescription = lvl.Description
		res.Recommendations = lvl.Recommendations
	}
	return res, nil
}

func questionPoints(q models.Question, answers models.Answers) float64 {
	answer, ok := answers[q.ID]
	if !ok {
		return 0
	}
	switch q.Type {
	case models.QuestionMultipleChoice:
		if q.CorrectAnswer != nil && answer == *q.CorrectAnswer {
			return q.Points
		}
	case models.QuestionScale:
		a, _ := scalePoles(answer, models.ScoringForward, true)
		return a * q.Points
	}
	return 0
}

// levelFor returns the first level whose inclusive range holds score.
func levelFor(levels []models.Level, score float64) *models.Level {
	for i := range levels {
		if score >= levels[i].Range[0] && score <= levels[i].Range[1] {
			return &levels[i]
		}
	}
	return nil
}
