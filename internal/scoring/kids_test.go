package scoring

import (
	"fmt"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/jvdt-hub/backend/internal/models"
)

// kidsDefinition builds the 36-question layout: nine two-option questions per
// axis, option 0 voting pole A and option 1 voting pole B.
func kidsDefinition() *models.TestDefinition {
	def := &models.TestDefinition{
		ID:      "jvdt-2",
		Scoring: models.ScoringConfig{Method: models.MethodKids},
	}
	for _, ax := range KidsAxes {
		for i := 1; i <= 9; i++ {
			def.Questions = append(def.Questions, models.Question{
				ID:   fmt.Sprintf("%s-%d", ax.ID, i),
				Type: models.QuestionChoice,
				Axis: ax.ID,
				Options: []models.Option{
					{Text: "a", Pole: string(ax.PoleA)},
					{Text: "b", Pole: string(ax.PoleB)},
				},
			})
		}
	}
	return def
}

// vote answers the first a questions of axis with pole A and the next b with pole B.
func vote(answers models.Answers, axis string, a, b int) {
	for i := 1; i <= a+b; i++ {
		option := 0
		if i > a {
			option = 1
		}
		answers[fmt.Sprintf("%s-%d", axis, i)] = option
	}
}

func TestScoreKidsStrongStory(t *testing.T) {
	answers := models.Answers{}
	vote(answers, "seeing", 8, 1)

	res, err := testEngine().ScoreKids(kidsDefinition(), answers)
	if err != nil {
		t.Fatalf("ScoreKids: %v", err)
	}

	seeing := res.AxisDetails["Seeing"]
	if !seeing.IsStrong {
		t.Error("8 of 9 votes should be a strong preference")
	}
	if seeing.DominantPole != "Story" {
		t.Errorf("dominant = %q, want Story", seeing.DominantPole)
	}
	if seeing.PercentageA != 89 || seeing.Percentage != 89 {
		t.Errorf("percentage = %d/%d, want 89/89", seeing.PercentageA, seeing.Percentage)
	}

	want := []string{"Story", "Balanced", "Balanced", "Balanced"}
	if diff := cmp.Diff(want, res.DominantCode); diff != "" {
		t.Errorf("dominant code mismatch (-want +got):\n%s", diff)
	}
	if res.Archetype.Title != DefaultArchetype.Title {
		t.Errorf("archetype = %q, want %q", res.Archetype.Title, DefaultArchetype.Title)
	}
	if res.Archetype.Key != "Story-Balanced-Balanced-Balanced" {
		t.Errorf("archetype key = %q", res.Archetype.Key)
	}

	// |89-50| = 39 over four axes
	wantScore := models.IntegrationScore{
		Score:        90,
		BalancedAxes: 3,
		StrongAxes:   1,
		Description:  "Highly integrated learner - uses many different approaches",
	}
	if diff := cmp.Diff(wantScore, res.IntegrationScore); diff != "" {
		t.Errorf("integration score mismatch (-want +got):\n%s", diff)
	}

	if len(res.TeacherTips) != 1 || res.TeacherTips[0].Tip != teacherTips[PoleStory] || !res.TeacherTips[0].Strong {
		t.Errorf("teacher tips = %+v", res.TeacherTips)
	}
	wantSteps := []string{"Try activities that develop Facts skills in Seeing"}
	if diff := cmp.Diff(wantSteps, res.Recommendations.NextSteps); diff != "" {
		t.Errorf("next steps mismatch (-want +got):\n%s", diff)
	}
	if res.AnsweredQuestions != 9 || res.CompletionRate != 25 {
		t.Errorf("answered/completion = %d/%d, want 9/25", res.AnsweredQuestions, res.CompletionRate)
	}
}

func TestScoreKidsFullArchetype(t *testing.T) {
	answers := models.Answers{}
	vote(answers, "seeing", 9, 0)
	vote(answers, "thinking", 2, 7)
	vote(answers, "doing", 6, 3)
	vote(answers, "caring", 1, 8)

	res, err := testEngine().ScoreKids(kidsDefinition(), answers)
	if err != nil {
		t.Fatalf("ScoreKids: %v", err)
	}

	if res.Archetype.Key != "Story-How-Dream-Fair" {
		t.Errorf("archetype key = %q, want Story-How-Dream-Fair", res.Archetype.Key)
	}
	if res.Archetype.Title != "The Inventive Maker" {
		t.Errorf("archetype = %q, want The Inventive Maker", res.Archetype.Title)
	}
	if res.CompletionRate != 100 {
		t.Errorf("completion = %d, want 100", res.CompletionRate)
	}

	// pctA: 100, 22, 67, 11 -> variance 50+28+17+39 = 134 -> 100 - 33.5
	if res.IntegrationScore.Score != 67 {
		t.Errorf("integration score = %d, want 67", res.IntegrationScore.Score)
	}
	if res.IntegrationScore.StrongAxes != 2 {
		t.Errorf("strong axes = %d, want 2", res.IntegrationScore.StrongAxes)
	}

	wantSteps := []string{
		"Try activities that develop Facts skills in Seeing",
		"Try activities that develop Kind skills in Caring",
	}
	if diff := cmp.Diff(wantSteps, res.Recommendations.NextSteps); diff != "" {
		t.Errorf("next steps mismatch (-want +got):\n%s", diff)
	}

	wantParent := "They learn best when you: use stories and pictures to explain things, " +
		"show practical examples and real-world uses, encourage big ideas and creative thinking, " +
		"focus on rules, fairness, and treating everyone equally"
	if got := res.Recommendations.ForParent[2]; got != wantParent {
		t.Errorf("parent tips = %q, want %q", got, wantParent)
	}
	if got := res.Recommendations.ForTeacher[0]; got != "Learning Style: "+res.Archetype.TeacherNote {
		t.Errorf("teacher line = %q", got)
	}
}

func TestScoreKidsTooFewAnswers(t *testing.T) {
	answers := models.Answers{}
	vote(answers, "doing", 6, 0)

	res, err := testEngine().ScoreKids(kidsDefinition(), answers)
	if err != nil {
		t.Fatalf("ScoreKids: %v", err)
	}
	doing := res.AxisDetails["Doing"]
	if !doing.IsBalanced || doing.DominantIcon != "🤝" {
		t.Errorf("six votes = %+v, want balanced", doing)
	}
	if doing.PercentageA != 100 {
		t.Errorf("percentageA = %d, want 100", doing.PercentageA)
	}
}

func TestScoreKidsEmpty(t *testing.T) {
	res, err := testEngine().ScoreKids(kidsDefinition(), models.Answers{})
	if err != nil {
		t.Fatalf("ScoreKids: %v", err)
	}
	if res.IntegrationScore.Score != 100 {
		t.Errorf("empty integration score = %d, want 100", res.IntegrationScore.Score)
	}
	if res.Archetype.Title != DefaultArchetype.Title {
		t.Errorf("archetype = %q", res.Archetype.Title)
	}
	want := []string{"Continue exploring and developing all learning styles"}
	if diff := cmp.Diff(want, res.Recommendations.NextSteps); diff != "" {
		t.Errorf("next steps mismatch (-want +got):\n%s", diff)
	}
	if len(res.Recommendations.ForParent) != 2 {
		t.Errorf("parent lines = %d, want 2", len(res.Recommendations.ForParent))
	}
}

func TestScoreKidsIgnoresBadOptions(t *testing.T) {
	answers := models.Answers{"seeing-1": 5, "seeing-2": -1, "nope": 0}
	res, err := testEngine().ScoreKids(kidsDefinition(), answers)
	if err != nil {
		t.Fatalf("ScoreKids: %v", err)
	}
	if res.AnsweredQuestions != 0 {
		t.Errorf("answered = %d, want 0", res.AnsweredQuestions)
	}
}

func TestArchetypesExhaustive(t *testing.T) {
	seeing := []KidsPole{PoleStory, PoleFacts}
	thinking := []KidsPole{PoleWhy, PoleHow}
	doing := []KidsPole{PoleDream, PolePlan}
	caring := []KidsPole{PoleKind, PoleFair}

	titles := map[string]bool{}
	for _, s := range seeing {
		for _, th := range thinking {
			for _, d := range doing {
				for _, c := range caring {
					key := ArchetypeKey{s, th, d, c}
					a, ok := Archetypes[key]
					if !ok {
						t.Errorf("missing archetype %s", key)
						continue
					}
					if a.Title == "" || a.Badge == "" || a.TeacherNote == "" {
						t.Errorf("archetype %s incomplete: %+v", key, a)
					}
					if titles[a.Title] {
						t.Errorf("duplicate title %q", a.Title)
					}
					titles[a.Title] = true
				}
			}
		}
	}
	if len(Archetypes) != 16 {
		t.Errorf("len(Archetypes) = %d, want 16", len(Archetypes))
	}
}

func TestLookupArchetypeBalanced(t *testing.T) {
	got := LookupArchetype(ArchetypeKey{PoleFacts, PoleBalanced, PolePlan, PoleFair})
	if got.Title != DefaultArchetype.Title {
		t.Errorf("LookupArchetype(balanced) = %q, want %q", got.Title, DefaultArchetype.Title)
	}
	got = LookupArchetype(ArchetypeKey{PoleFacts, PoleHow, PolePlan, PoleFair})
	if got.Title != "The Logical Leader" || got.Key != "Facts-How-Plan-Fair" {
		t.Errorf("LookupArchetype = %q/%q", got.Title, got.Key)
	}
}
