package models

import "time"

// Answers maps question ID to the raw response: 1..5 for scale questions,
// the 0-based option index otherwise. A missing key means unanswered.
type Answers map[string]int

type Preference string

const (
	PreferenceNeutral  Preference = "neutral"
	PreferenceBalanced Preference = "balanced"
	PreferenceFirst    Preference = "first"
	PreferenceSecond   Preference = "second"
)

// ── Axis Results ────────────────────────────────────────

// AxisResult is the score of one bipolar axis. When Answered is 0 the
// 0.5/0.5 split is a placeholder, not a balanced reading.
type AxisResult struct {
	PoleAScore float64    `json:"poleAScore"`
	PoleBScore float64    `json:"poleBScore"`
	Balance    float64    `json:"balance"`
	Margin     float64    `json:"margin"`
	Preference Preference `json:"preference"`
	Strength   float64    `json:"strength,omitempty"`
	Answered   int        `json:"answered"`
	Total      int        `json:"total"`
}

// Insufficient reports whether no question on the axis was answered.
func (r AxisResult) Insufficient() bool {
	return r.Answered == 0
}

type OverallStage struct {
	Stage        int     `json:"stage"`
	Name         string  `json:"name"`
	Description  string  `json:"description,omitempty"`
	AverageStage float64 `json:"averageStage"`
}

type RecommendationKind string

const (
	RecommendationText     RecommendationKind = "text"
	RecommendationPractice RecommendationKind = "practice"
)

// Recommendation is a tagged union: Text is set for RecommendationText,
// the Axis/Stage/Practice fields for RecommendationPractice.
type Recommendation struct {
	Kind        RecommendationKind `json:"kind"`
	Text        string             `json:"text,omitempty"`
	Axis        string             `json:"axis,omitempty"`
	Stage       string             `json:"stage,omitempty"`
	Practice    string             `json:"practice,omitempty"`
	Reflection  string             `json:"reflection,omitempty"`
	Description string             `json:"description,omitempty"`
}

// Results is the output of an axis-based engine (JVDT-7, JVDT-4).
// IntegrationIndex is 0..1 for jvdt-7-authentic and 0..100 for jvdt-4-cognitive;
// IntegrationScale says which.
type Results struct {
	TestID           string                `json:"testId"`
	AxisResults      map[string]AxisResult `json:"axisResults"`
	AxisStages       map[string]int        `json:"axisStages"`
	IntegrationIndex float64               `json:"integrationIndex"`
	IntegrationScale float64               `json:"integrationScale"`
	JVDTCode         string                `json:"jvdtCode"`
	OverallStage     OverallStage          `json:"overallStage"`
	Recommendations  []Recommendation      `json:"recommendations"`
	CompletedAt      time.Time             `json:"completedAt"`
	Methodology      string                `json:"methodology"`
}

// ── Kids (JVDT-2) Results ───────────────────────────────

type KidsAxisDetail struct {
	PoleA         string `json:"poleA"`
	PoleB         string `json:"poleB"`
	IconA         string `json:"iconA"`
	IconB         string `json:"iconB"`
	ScoreA        int    `json:"scoreA"`
	ScoreB        int    `json:"scoreB"`
	TotalAnswered int    `json:"totalAnswered"`
	DominantPole  string `json:"dominantPole"`
	DominantIcon  string `json:"dominantIcon"`
	Percentage    int    `json:"percentage"`
	PercentageA   int    `json:"percentageA"`
	PercentageB   int    `json:"percentageB"`
	IsStrong      bool   `json:"isStrong"`
	IsBalanced    bool   `json:"isBalanced"`
}

type Archetype struct {
	Key            string `json:"key"`
	Title          string `json:"title"`
	Tagline        string `json:"tagline"`
	KidDescription string `json:"kidDescription"`
	TeacherNote    string `json:"teacher"`
	Badge          string `json:"badge"`
	Gradient       string `json:"gradient"`
}

type TeacherTip struct {
	Axis       string `json:"axis"`
	Pole       string `json:"pole"`
	Tip        string `json:"tip"`
	Strong     bool   `json:"strength"`
	Suggestion string `json:"suggestion"`
}

type IntegrationScore struct {
	Score        int    `json:"score"`
	BalancedAxes int    `json:"balancedAxes"`
	StrongAxes   int    `json:"strongAxes"`
	Description  string `json:"description"`
}

type KidsRecommendations struct {
	ForTeacher []string `json:"forTeacher"`
	ForParent  []string `json:"forParent"`
	NextSteps  []string `json:"nextSteps"`
}

type KidsResults struct {
	TestID            string                    `json:"testId"`
	Methodology       string                    `json:"methodology"`
	DominantCode      []string                  `json:"dominantCode"`
	DominantIcons     []string                  `json:"dominantIcons"`
	Archetype         Archetype                 `json:"archetype"`
	AxisDetails       map[string]KidsAxisDetail `json:"axisDetails"` // keyed by axis display name ("Seeing")
	TeacherTips       []TeacherTip              `json:"teacherTips"`
	IntegrationScore  IntegrationScore          `json:"integrationScore"`
	Recommendations   KidsRecommendations       `json:"recommendations"`
	TotalQuestions    int                       `json:"totalQuestions"`
	AnsweredQuestions int                       `json:"answeredQuestions"`
	CompletionRate    int                       `json:"completionRate"`
	CompletedAt       time.Time                 `json:"completedAt"`
}

// ── Percentage Results ──────────────────────────────────

type CategoryScore struct {
	Score      float64 `json:"score"`
	MaxScore   float64 `json:"maxScore"`
	Normalized float64 `json:"normalized"`
}

type PercentageResults struct {
	TestID           string                   `json:"testId"`
	Methodology      string                   `json:"methodology"`
	TotalScore       float64                  `json:"totalScore"`
	CategoryScores   map[string]CategoryScore `json:"categoryScores"`
	Level            string                   `json:"level"`
	LevelDescription string                   `json:"levelDescription"`
	Recommendations  []string                 `json:"recommendations"`
	Answers          Answers                  `json:"answers"`
	CompletedAt      time.Time                `json:"completedAt"`
}

// ── Persistence Records ─────────────────────────────────

// Progress is the in-flight state of a quiz, saved on every answer.
type Progress struct {
	TestID          string    `json:"testId"`
	CurrentQuestion int       `json:"currentQuestion"`
	Answers         Answers   `json:"answers"`
	StartTime       time.Time `json:"startTime"`
	TimeSpent       int       `json:"timeSpent"`
}

// HistoryEntry is the condensed record appended after every completion.
type HistoryEntry struct {
	TestID      string    `json:"testId"`
	CompletedAt time.Time `json:"completedAt"`
	Methodology string    `json:"methodology"`
	JVDTCode    string    `json:"jvdtCode,omitempty"`
	Stage       string    `json:"stage,omitempty"`
	Archetype   string    `json:"archetype,omitempty"`
	Score       *float64  `json:"score,omitempty"`
	Level       string    `json:"level,omitempty"`
}
