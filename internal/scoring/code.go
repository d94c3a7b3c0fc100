package scoring

import (
	"strings"

	"github.com/jvdt-hub/backend/internal/models"
)

// GenerateCode emits one letter per policy axis in canonical order, so the
// code length never depends on which axes were scored.
func GenerateCode(results map[string]models.AxisResult, p Policy) string {
	var b strings.Builder
	for _, spec := range p.Axes {
		r, ok := results[spec.Axis]
		switch {
		case !ok:
			b.WriteString(p.MissingLetter)
		case p.BalancedLetter != "" && undecided(r.Preference):
			b.WriteString(p.BalancedLetter)
		case r.PoleAScore >= r.PoleBScore:
			b.WriteString(spec.LetterA)
		default:
			b.WriteString(spec.LetterB)
		}
	}
	return b.String()
}
