package scoring

import (
	"errors"
	"fmt"
	"strings"

	"github.com/jvdt-hub/backend/internal/models"
)

var ErrScoreRange = errors.New("scoring: raw axis score must be between 0 and 100")

// QuickCode turns raw 0..100 JVDT-7 axis scores into a normalized map and a
// seven-letter code. A score of 50 or more selects pole A.
func QuickCode(scores map[string]int) (*models.QuickCodeResponse, error) {
	resp := &models.QuickCodeResponse{Normalized: make(map[string]float64, len(Policy7.Axes))}

	var b strings.Builder
	for _, spec := range Policy7.Axes {
		s, ok := scores[spec.Axis]
		if !ok {
			b.WriteString(Policy7.MissingLetter)
			continue
		}
		if s < 0 || s > 100 {
			return nil, fmt.Errorf("quick code %s=%d: %w", spec.Axis, s, ErrScoreRange)
		}
		resp.Normalized[spec.Axis] = float64(s) / 100
		if s >= 50 {
			b.WriteString(spec.LetterA)
		} else {
			b.WriteString(spec.LetterB)
		}
	}
	resp.Code = b.String()
	return resp, nil
}
