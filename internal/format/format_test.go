package format_test

import (
	"fmt"
	"strings"
	"testing"

	"github.com/jvdt-hub/backend/internal/definitions"
	"github.com/jvdt-hub/backend/internal/format"
	"github.com/jvdt-hub/backend/internal/models"
	"github.com/jvdt-hub/backend/internal/scoring"
)

func TestASCII_BasicTable(t *testing.T) {
	tb := format.NewTable(format.ASCII)
	tb.Header("Axis", "Score")
	tb.Row("Perception", "62%")
	out := tb.String()

	if !strings.Contains(out, "Perception") {
		t.Errorf("expected row in output:\n%s", out)
	}
	if !strings.Contains(out, "───") {
		t.Errorf("expected box-drawing characters in ASCII output:\n%s", out)
	}
}

func TestMarkdown_WithFooter(t *testing.T) {
	tb := format.NewTable(format.Markdown)
	tb.Header("Category", "Percent")
	tb.Row("Grammar", "50%")
	tb.Footer("Overall", "50%")
	out := tb.String()

	if !strings.Contains(out, "| Category") {
		t.Errorf("expected markdown header:\n%s", out)
	}
	if !strings.Contains(out, "Overall") {
		t.Errorf("expected footer row:\n%s", out)
	}
}

func TestParseMode(t *testing.T) {
	for in, want := range map[string]format.Mode{"md": format.Markdown, "markdown": format.Markdown, "": format.ASCII, "table": format.ASCII} {
		if got := format.ParseMode(in); got != want {
			t.Errorf("ParseMode(%q) = %v, want %v", in, got, want)
		}
	}
}

func evaluate(t *testing.T, id string, answers models.Answers) (*models.Outcome, *models.TestDefinition) {
	t.Helper()
	def, err := definitions.Load(id)
	if err != nil {
		t.Fatal(err)
	}
	out, err := scoring.NewEngine().Evaluate(def, answers)
	if err != nil {
		t.Fatal(err)
	}
	return out, def
}

func TestOutcome_Axes(t *testing.T) {
	out, def := evaluate(t, "jvdt-7", models.Answers{"p1": 5, "p2": 1})
	s := format.Outcome(out, def, format.Markdown)

	for _, want := range []string{"Perception", "Value Expression", "Code " + out.Axes.JVDTCode, "Integration index:"} {
		if !strings.Contains(s, want) {
			t.Errorf("expected %q in output:\n%s", want, s)
		}
	}
	// axis rows follow definition order
	if strings.Index(s, "Perception") > strings.Index(s, "Orientation") {
		t.Errorf("axes out of order:\n%s", s)
	}
}

func TestOutcome_Kids(t *testing.T) {
	out, _ := evaluate(t, "jvdt-2", models.Answers{})
	s := format.Outcome(out, nil, format.ASCII)
	if !strings.Contains(s, out.Kids.Archetype.Title) {
		t.Errorf("expected archetype title in output:\n%s", s)
	}
	for _, ax := range scoring.KidsAxes {
		d, ok := out.Kids.AxisDetails[ax.Name]
		if !ok {
			t.Fatalf("no axis detail for %s", ax.Name)
		}
		row := fmt.Sprintf("%s %d%%", d.PoleA, d.PercentageA)
		if !strings.Contains(s, row) {
			t.Errorf("expected %s row with %q in output:\n%s", ax.Name, row, s)
		}
	}
}

func TestOutcome_Percentage(t *testing.T) {
	out, def := evaluate(t, "english-fluency", models.Answers{})
	s := format.Outcome(out, def, format.ASCII)
	for _, want := range []string{"Grammar & Structure", "Overall", "Level: Beginner"} {
		if !strings.Contains(strings.ToLower(s), strings.ToLower(want)) {
			t.Errorf("expected %q in output:\n%s", want, s)
		}
	}
	// light style upper-cases the footer row
	if !strings.Contains(s, "OVERALL") {
		t.Errorf("expected upper-cased footer in output:\n%s", s)
	}
}

func TestOutcome_Nil(t *testing.T) {
	if got := format.Outcome(nil, nil, format.ASCII); got != "" {
		t.Errorf("Outcome(nil) = %q, want empty", got)
	}
}

func TestArchetypes(t *testing.T) {
	s := format.Archetypes(scoring.Archetypes, format.Markdown)
	if got := strings.Count(s, "\n"); got < 17 {
		t.Errorf("expected a row per archetype, got %d lines:\n%s", got, s)
	}
	if !strings.Contains(s, "The Inventive Maker") {
		t.Errorf("expected The Inventive Maker in output:\n%s", s)
	}
}
