package scoring

import (
	"fmt"
	"math"
	"strings"

	"github.com/jvdt-hub/backend/internal/models"
)

const (
	kidsMethodology = "jvdt-2-kids"

	// kidsMinAnswered is the per-axis vote count below which no pole is declared.
	kidsMinAnswered = 7
	// kidsStrongVotes marks a strong preference, out of nine questions per axis.
	kidsStrongVotes = 8
	kidsStrongPct   = 89

	balancedIcon = "🤝"
)

type KidsAxis struct {
	ID    string
	Name  string
	PoleA KidsPole
	PoleB KidsPole
	IconA string
	IconB string
}

// KidsAxes lists the JVDT-2 axes in archetype key order.
var KidsAxes = []KidsAxis{
	{ID: "seeing", Name: "Seeing", PoleA: PoleStory, PoleB: PoleFacts, IconA: "🖼️", IconB: "📊"},
	{ID: "thinking", Name: "Thinking", PoleA: PoleWhy, PoleB: PoleHow, IconA: "❓", IconB: "⚙️"},
	{ID: "doing", Name: "Doing", PoleA: PoleDream, PoleB: PolePlan, IconA: "💭", IconB: "🗺️"},
	{ID: "caring", Name: "Caring", PoleA: PoleKind, PoleB: PoleFair, IconA: "💖", IconB: "⚖️"},
}

// ScoreKids counts pole votes per axis and resolves the learner's archetype.
// Each answer is the chosen option index; the option names the pole.
func (e *Engine) ScoreKids(def *models.TestDefinition, answers models.Answers) (*models.KidsResults, error) {
	if def == nil {
		return nil, ErrNilDefinition
	}

	votes := make(map[string]map[KidsPole]int, len(KidsAxes))
	for _, ax := range KidsAxes {
		votes[ax.ID] = map[KidsPole]int{}
	}

	answered := 0
	for _, q := range def.Questions {
		idx, ok := answers[q.ID]
		if !ok || idx < 0 || idx >= len(q.Options) {
			continue
		}
		axisVotes, ok := votes[strings.ToLower(q.Axis)]
		if !ok {
			continue
		}
		pole := KidsPole(q.Options[idx].Pole)
		if pole == "" {
			continue
		}
		axisVotes[pole]++
		answered++
	}

	res := &models.KidsResults{
		TestID:      def.ID,
		Methodology: kidsMethodology,
		AxisDetails: make(map[string]models.KidsAxisDetail, len(KidsAxes)),
		CompletedAt: e.now(),
	}

	var key []KidsPole
	for _, ax := range KidsAxes {
		d := kidsDetail(ax, votes[ax.ID][ax.PoleA], votes[ax.ID][ax.PoleB])
		res.AxisDetails[ax.Name] = d
		res.DominantCode = append(res.DominantCode, d.DominantPole)
		res.DominantIcons = append(res.DominantIcons, d.DominantIcon)
		key = append(key, KidsPole(d.DominantPole))
	}

	res.Archetype = LookupArchetype(ArchetypeKey{Seeing: key[0], Thinking: key[1], Doing: key[2], Caring: key[3]})
	res.TeacherTips = kidsTeacherTips(res)
	res.IntegrationScore = kidsIntegration(res.AxisDetails)
	res.Recommendations = kidsRecommendations(res)

	res.TotalQuestions = def.TotalQuestions()
	res.AnsweredQuestions = answered
	if res.TotalQuestions > 0 {
		res.CompletionRate = roundInt(float64(answered) / float64(res.TotalQuestions) * 100)
	}
	return res, nil
}

func kidsDetail(ax KidsAxis, scoreA, scoreB int) models.KidsAxisDetail {
	total := scoreA + scoreB
	d := models.KidsAxisDetail{
		PoleA:         string(ax.PoleA),
		PoleB:         string(ax.PoleB),
		IconA:         ax.IconA,
		IconB:         ax.IconB,
		ScoreA:        scoreA,
		ScoreB:        scoreB,
		TotalAnswered: total,
		PercentageA:   50,
		PercentageB:   50,
	}
	if total > 0 {
		d.PercentageA = roundInt(float64(scoreA) / float64(total) * 100)
		d.PercentageB = roundInt(float64(scoreB) / float64(total) * 100)
	}

	switch {
	case scoreA == scoreB || total < kidsMinAnswered:
		d.DominantPole = string(PoleBalanced)
		d.DominantIcon = balancedIcon
		d.Percentage = 50
		d.IsBalanced = true
	case scoreA > scoreB:
		d.DominantPole = string(ax.PoleA)
		d.DominantIcon = ax.IconA
		d.Percentage = d.PercentageA
	default:
		d.DominantPole = string(ax.PoleB)
		d.DominantIcon = ax.IconB
		d.Percentage = d.PercentageB
	}

	d.IsStrong = scoreA >= kidsStrongVotes || scoreB >= kidsStrongVotes ||
		(total >= kidsStrongVotes && d.Percentage >= kidsStrongPct)
	return d
}

func kidsTeacherTips(res *models.KidsResults) []models.TeacherTip {
	var tips []models.TeacherTip
	for _, ax := range KidsAxes {
		d := res.AxisDetails[ax.Name]
		if d.IsBalanced {
			continue
		}
		tip, ok := teacherTips[KidsPole(d.DominantPole)]
		if !ok {
			tip = "Encourage exploring the other side."
		}
		tips = append(tips, models.TeacherTip{
			Axis:       ax.Name,
			Pole:       d.DominantPole,
			Tip:        tip,
			Strong:     d.IsStrong,
			Suggestion: tip,
		})
	}
	return tips
}

// kidsIntegration scores closeness to 50/50 across axes, 100 being perfectly balanced.
func kidsIntegration(details map[string]models.KidsAxisDetail) models.IntegrationScore {
	var balanced, strong int
	var variance float64
	for _, ax := range KidsAxes {
		d := details[ax.Name]
		if d.IsBalanced {
			balanced++
		}
		if d.IsStrong {
			strong++
		}
		variance += math.Abs(float64(d.PercentageA - 50))
	}

	score := roundInt(100 - variance/float64(len(KidsAxes)))
	if score < 0 {
		score = 0
	}
	return models.IntegrationScore{
		Score:        score,
		BalancedAxes: balanced,
		StrongAxes:   strong,
		Description:  integrationDescription(balanced, strong),
	}
}

func integrationDescription(balanced, strong int) string {
	switch {
	case balanced >= 3:
		return "Highly integrated learner - uses many different approaches"
	case balanced >= 2:
		return "Well-balanced learner with some specific strengths"
	case strong >= 3:
		return "Specialized learner with clear preferences"
	default:
		return "Developing learner with emerging preferences"
	}
}

func kidsRecommendations(res *models.KidsResults) models.KidsRecommendations {
	var rec models.KidsRecommendations

	rec.ForTeacher = []string{
		"Learning Style: " + res.Archetype.TeacherNote,
		"Integration Level: " + res.IntegrationScore.Description,
	}
	for _, tip := range res.TeacherTips {
		rec.ForTeacher = append(rec.ForTeacher, fmt.Sprintf("%s (%s): %s", tip.Axis, tip.Pole, tip.Suggestion))
	}

	rec.ForParent = []string{
		fmt.Sprintf("Your child is %q - %s", res.Archetype.Title, res.Archetype.Tagline),
		res.Archetype.KidDescription,
	}
	var parent []string
	for _, pole := range res.DominantCode {
		if tip, ok := parentTips[KidsPole(pole)]; ok {
			parent = append(parent, tip)
		}
	}
	if len(parent) > 0 {
		rec.ForParent = append(rec.ForParent, "They learn best when you: "+strings.Join(parent, ", "))
	}

	for _, ax := range KidsAxes {
		d := res.AxisDetails[ax.Name]
		if !d.IsStrong || d.IsBalanced {
			continue
		}
		opposite := d.PoleA
		if d.DominantPole == d.PoleA {
			opposite = d.PoleB
		}
		rec.NextSteps = append(rec.NextSteps, fmt.Sprintf("Try activities that develop %s skills in %s", opposite, ax.Name))
	}
	if res.IntegrationScore.Score < 50 {
		rec.NextSteps = append(rec.NextSteps, "Work on balancing different learning approaches")
	}
	if len(rec.NextSteps) == 0 {
		rec.NextSteps = []string{"Continue exploring and developing all learning styles"}
	}
	return rec
}

func roundInt(f float64) int {
	return int(math.Round(f))
}
