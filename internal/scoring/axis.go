package scoring

import (
	"math"

	"github.com/jvdt-hub/backend/internal/models"
)

// ScoreAxis scores one axis from its own questions. Unanswered questions
// are skipped; an axis with nothing answered gets the neutral placeholder.
func ScoreAxis(axis string, questions []models.Question, answers models.Answers, p Policy) models.AxisResult {
	var poleA, poleB float64
	answered := 0

	for _, q := range questions {
		answer, ok := answers[q.ID]
		if !ok {
			continue
		}
		answered++

		switch q.Type {
		case models.QuestionScale:
			a, b := scalePoles(answer, q.Scoring, p.ForwardFavorsA)
			poleA += a
			poleB += b
		case models.QuestionMultipleChoice:
			a, b, ok := weightedPoles(q.PoleWeights, answer)
			if ok {
				poleA += a
				poleB += b
			}
		}
	}

	if answered == 0 {
		return models.AxisResult{
			PoleAScore: 0.5,
			PoleBScore: 0.5,
			Preference: models.PreferenceNeutral,
			Total:      len(questions),
		}
	}

	a, b := 0.5, 0.5
	if sum := poleA + poleB; sum > 0 {
		a, b = poleA/sum, poleB/sum
	}
	margin := math.Abs(a - b)

	result := models.AxisResult{
		PoleAScore: a,
		PoleBScore: b,
		Balance:    1 - margin,
		Margin:     margin,
		Answered:   answered,
		Total:      len(questions),
	}
	classify(&result, axis, p)
	return result
}

// scalePoles converts a 1..5 answer to a pair of pole contributions that sum to 1.
func scalePoles(answer int, dir models.ScaleDirection, forwardFavorsA bool) (float64, float64) {
	if answer < 1 {
		answer = 1
	}
	if answer > 5 {
		answer = 5
	}
	n := float64(answer-1) / 4

	favorsA := forwardFavorsA
	if dir == models.ScoringReverse {
		favorsA = !favorsA
	}
	if favorsA {
		return n, 1 - n
	}
	return 1 - n, n
}

// weightedPoles reads the first two poles' weights for the chosen option,
// scaled from 0..4 to 0..1.
func weightedPoles(weights models.PoleWeights, option int) (float64, float64, bool) {
	if len(weights) < 2 {
		return 0, 0, false
	}
	wa, wb := weights[0].Weights, weights[1].Weights
	if option < 0 || option >= len(wa) || option >= len(wb) {
		return 0, 0, false
	}
	return wa[option] / 4, wb[option] / 4, true
}

func classify(r *models.AxisResult, axis string, p Policy) {
	switch p.Rule {
	case ShareRule:
		spec, _ := p.Spec(axis)
		switch {
		case r.PoleAScore > p.Band:
			r.Preference = poleName(spec.NameA, models.PreferenceFirst)
			r.Strength = r.PoleAScore
		case r.PoleBScore > p.Band:
			r.Preference = poleName(spec.NameB, models.PreferenceSecond)
			r.Strength = r.PoleBScore
		default:
			r.Preference = models.PreferenceBalanced
			r.Strength = r.Balance
		}
	default:
		switch {
		case r.Margin < p.Band:
			r.Preference = models.PreferenceBalanced
		case r.PoleAScore > r.PoleBScore:
			r.Preference = models.PreferenceFirst
		default:
			r.Preference = models.PreferenceSecond
		}
	}
}

func poleName(name string, fallback models.Preference) models.Preference {
	if name == "" {
		return fallback
	}
	return models.Preference(name)
}

// undecided reports whether a preference names no pole.
func undecided(p models.Preference) bool {
	return p == models.PreferenceBalanced || p == models.PreferenceNeutral
}
