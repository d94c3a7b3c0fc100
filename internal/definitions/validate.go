package definitions

import (
	"fmt"

	"github.com/jvdt-hub/backend/internal/models"
)

// Validate reports structural problems that the scoring engine tolerates but
// an author probably did not intend. An empty result means the definition is clean.
func Validate(def *models.TestDefinition) []string {
	if def == nil {
		return []string{"definition is nil"}
	}

	var warnings []string
	warn := func(format string, args ...any) {
		warnings = append(warnings, fmt.Sprintf(format, args...))
	}

	axes := map[string]bool{}
	categories := map[string]bool{}
	for _, c := range def.Categories {
		if categories[c.ID] {
			warn("duplicate category id %q", c.ID)
		}
		categories[c.ID] = true
		if c.Axis != "" {
			axes[c.Axis] = true
		}
	}

	seen := map[string]bool{}
	used := map[string]bool{}
	for _, q := range def.Questions {
		if q.ID == "" {
			warn("question with empty id: %q", q.Question)
			continue
		}
		if seen[q.ID] {
			warn("duplicate question id %q", q.ID)
		}
		seen[q.ID] = true

		if q.Axis != "" {
			used[q.Axis] = true
			if !axes[q.Axis] {
				warn("question %s: axis %q has no category and will be ignored", q.ID, q.Axis)
			}
		}

		switch def.Scoring.Method {
		case models.MethodAxes7, models.MethodAxes4:
			validateAxisQuestion(q, warn)
		case models.MethodKids:
			validateKidsQuestion(q, warn)
		case models.MethodPercentage, "":
			validatePercentageQuestion(q, categories, warn)
		}
	}

	if def.Scoring.Method == models.MethodAxes7 || def.Scoring.Method == models.MethodAxes4 {
		for _, c := range def.Categories {
			if c.Axis == "" {
				continue
			}
			if !used[c.Axis] {
				warn("category %s: no questions load onto axis %q", c.ID, c.Axis)
			}
			for stage := 1; stage <= 5; stage++ {
				if c.StageFor(stage) == nil {
					warn("category %s: no stage %d entry", c.ID, stage)
				}
			}
		}
		if th := def.Scoring.MarginThresholds; !th.IsZero() {
			if !(th.HighlySkewed > th.StrongPreference && th.StrongPreference > th.DirectionalFlexible && th.DirectionalFlexible > th.Balanced) {
				warn("margin thresholds are not strictly decreasing: %+v", th)
			}
		}
	}

	if def.Scoring.Method == models.MethodPercentage && len(def.Scoring.Levels) == 0 {
		warn("percentage test has no levels")
	}
	return warnings
}

func validateAxisQuestion(q models.Question, warn func(string, ...any)) {
	switch q.Type {
	case models.QuestionScale:
		if q.Scoring != models.ScoringForward && q.Scoring != models.ScoringReverse {
			warn("question %s: scale question has scoring %q, want forward or reverse", q.ID, q.Scoring)
		}
	case models.QuestionMultipleChoice:
		if len(q.PoleWeights) < 2 {
			warn("question %s: multiple-choice question needs pole_weights for two poles", q.ID)
			return
		}
		for _, w := range q.PoleWeights[:2] {
			if len(w.Weights) != len(q.Options) {
				warn("question %s: pole %q has %d weights for %d options", q.ID, w.Pole, len(w.Weights), len(q.Options))
			}
		}
	default:
		warn("question %s: unsupported type %q", q.ID, q.Type)
	}
}

func validateKidsQuestion(q models.Question, warn func(string, ...any)) {
	if len(q.Options) != 2 {
		warn("question %s: kids question has %d options, want 2", q.ID, len(q.Options))
	}
	for i, o := range q.Options {
		if o.Pole == "" {
			warn("question %s: option %d has no pole", q.ID, i)
		}
	}
}

func validatePercentageQuestion(q models.Question, categories map[string]bool, warn func(string, ...any)) {
	if !categories[q.Category] {
		warn("question %s: category %q is not declared", q.ID, q.Category)
	}
	if q.Points <= 0 {
		warn("question %s: no points", q.ID)
	}
	if q.Type == models.QuestionMultipleChoice {
		if q.CorrectAnswer == nil {
			warn("question %s: multiple-choice question has no correct_answer", q.ID)
		} else if *q.CorrectAnswer < 0 || *q.CorrectAnswer >= len(q.Options) {
			warn("question %s: correct_answer %d out of range", q.ID, *q.CorrectAnswer)
		}
	}
}
