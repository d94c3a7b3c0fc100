package format

import (
	"fmt"
	"sort"
	"strings"

	"github.com/jvdt-hub/backend/internal/models"
	"github.com/jvdt-hub/backend/internal/scoring"
)

// Outcome renders whichever result shape the outcome carries. def supplies
// axis order and display names; it may be nil.
func Outcome(o *models.Outcome, def *models.TestDefinition, m Mode) string {
	switch {
	case o == nil:
		return ""
	case o.Axes != nil:
		return Axes(o.Axes, def, m)
	case o.Kids != nil:
		return Kids(o.Kids, m)
	case o.Percentage != nil:
		return Percentage(o.Percentage, def, m)
	}
	return ""
}

func Axes(res *models.Results, def *models.TestDefinition, m Mode) string {
	tb := NewTable(m)
	tb.Header("Axis", "Pole A", "Pole B", "Balance", "Preference", "Stage")
	tb.Columns(
		ColumnConfig{Number: 2, Align: AlignRight},
		ColumnConfig{Number: 3, Align: AlignRight},
		ColumnConfig{Number: 4, Align: AlignRight},
		ColumnConfig{Number: 6, Align: AlignCenter},
	)
	for _, axis := range axisOrder(res, def) {
		r := res.AxisResults[axis]
		name := axis
		if def != nil {
			if c := def.Category(axis); c != nil && c.Name != "" {
				name = c.Name
			}
		}
		tb.Row(name, pct(r.PoleAScore), pct(r.PoleBScore), fmt.Sprintf("%.2f", r.Balance), r.Preference, res.AxisStages[axis])
	}
	tb.Footer("Code "+res.JVDTCode, "", "", "", res.OverallStage.Name, res.OverallStage.Stage)

	var b strings.Builder
	b.WriteString(tb.String())
	fmt.Fprintf(&b, "\nIntegration index: %s\n", integration(res))
	for _, rec := range res.Recommendations {
		if rec.Kind == models.RecommendationPractice {
			fmt.Fprintf(&b, "- %s (%s): %s\n", rec.Axis, rec.Stage, rec.Practice)
		} else {
			fmt.Fprintf(&b, "- %s\n", rec.Text)
		}
	}
	return b.String()
}

func integration(res *models.Results) string {
	if res.IntegrationScale > 1 {
		return fmt.Sprintf("%.0f/%.0f", res.IntegrationIndex, res.IntegrationScale)
	}
	return fmt.Sprintf("%.2f", res.IntegrationIndex)
}

func axisOrder(res *models.Results, def *models.TestDefinition) []string {
	var order []string
	seen := map[string]bool{}
	if def != nil {
		for _, c := range def.Categories {
			if _, ok := res.AxisResults[c.Axis]; ok && !seen[c.Axis] {
				order = append(order, c.Axis)
				seen[c.Axis] = true
			}
		}
	}
	var rest []string
	for axis := range res.AxisResults {
		if !seen[axis] {
			rest = append(rest, axis)
		}
	}
	sort.Strings(rest)
	return append(order, rest...)
}

func Kids(res *models.KidsResults, m Mode) string {
	tb := NewTable(m)
	tb.Header("Axis", "Pole A", "Pole B", "Leaning", "Strong")
	for _, ax := range scoring.KidsAxes {
		d, ok := res.AxisDetails[ax.Name]
		if !ok {
			continue
		}
		strong := ""
		if d.IsStrong {
			strong = "yes"
		}
		tb.Row(ax.Name,
			fmt.Sprintf("%s %d%%", d.PoleA, d.PercentageA),
			fmt.Sprintf("%s %d%%", d.PoleB, d.PercentageB),
			d.DominantPole, strong)
	}

	var b strings.Builder
	fmt.Fprintf(&b, "%s\n%s\n\n", res.Archetype.Title, res.Archetype.Tagline)
	b.WriteString(tb.String())
	fmt.Fprintf(&b, "\nIntegration score: %d (%s)\n", res.IntegrationScore.Score, res.IntegrationScore.Description)
	fmt.Fprintf(&b, "Answered %d of %d questions\n", res.AnsweredQuestions, res.TotalQuestions)
	return b.String()
}

func Percentage(res *models.PercentageResults, def *models.TestDefinition, m Mode) string {
	tb := NewTable(m)
	tb.Header("Category", "Score", "Max", "Percent")
	tb.Columns(
		ColumnConfig{Number: 2, Align: AlignRight},
		ColumnConfig{Number: 3, Align: AlignRight},
		ColumnConfig{Number: 4, Align: AlignRight},
	)

	ids := make([]string, 0, len(res.CategoryScores))
	names := map[string]string{}
	if def != nil {
		for _, c := range def.Categories {
			if _, ok := res.CategoryScores[c.ID]; ok {
				ids = append(ids, c.ID)
				names[c.ID] = c.Name
			}
		}
	} else {
		for id := range res.CategoryScores {
			ids = append(ids, id)
		}
		sort.Strings(ids)
	}
	for _, id := range ids {
		cs := res.CategoryScores[id]
		name := names[id]
		if name == "" {
			name = id
		}
		tb.Row(name, fmt.Sprintf("%g", cs.Score), fmt.Sprintf("%g", cs.MaxScore), pct(cs.Normalized))
	}
	tb.Footer("Overall", "", "", pct(res.TotalScore))

	var b strings.Builder
	b.WriteString(tb.String())
	fmt.Fprintf(&b, "\nLevel: %s\n", res.Level)
	for _, rec := range res.Recommendations {
		fmt.Fprintf(&b, "- %s\n", rec)
	}
	return b.String()
}

// Archetypes lists the archetype table sorted by key.
func Archetypes(archetypes map[scoring.ArchetypeKey]models.Archetype, m Mode) string {
	keys := make([]scoring.ArchetypeKey, 0, len(archetypes))
	for k := range archetypes {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i].String() < keys[j].String() })

	tb := NewTable(m)
	tb.Header("Key", "Title", "Tagline")
	tb.Columns(ColumnConfig{Number: 3, MaxWidth: 60})
	for _, k := range keys {
		a := archetypes[k]
		tb.Row(k.String(), a.Title, a.Tagline)
	}
	return tb.String()
}

func pct(f float64) string {
	return fmt.Sprintf("%.0f%%", f*100)
}
