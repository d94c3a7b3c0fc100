package models

import (
	"bytes"
	"encoding/json"
	"fmt"

	"gopkg.in/yaml.v3"
)

type QuestionType string

const (
	QuestionScale          QuestionType = "scale"
	QuestionMultipleChoice QuestionType = "multiple-choice"
	QuestionChoice         QuestionType = "choice" // two-option kids question, one pole per option
)

type ScaleDirection string

const (
	ScoringForward ScaleDirection = "forward"
	ScoringReverse ScaleDirection = "reverse"
)

type ScoringMethod string

const (
	MethodAxes7      ScoringMethod = "jvdt_axes"
	MethodAxes4      ScoringMethod = "jvdt_4_axes"
	MethodKids       ScoringMethod = "jvdt_2_kids"
	MethodPercentage ScoringMethod = "percentage"
)

// ── Test Definition ─────────────────────────────────────

// TestDefinition is a static, immutable description of one diagnostic instrument.
type TestDefinition struct {
	ID            string         `json:"id" yaml:"id"`
	Title         string         `json:"title" yaml:"title"`
	Description   string         `json:"description" yaml:"description"`
	EstimatedTime string         `json:"estimatedTime,omitempty" yaml:"estimated_time"`
	Icon          string         `json:"icon,omitempty" yaml:"icon"`
	Audience      string         `json:"audience,omitempty" yaml:"audience"`
	Questions     []Question     `json:"questions" yaml:"questions"`
	Categories    []AxisCategory `json:"categories" yaml:"categories"`
	Scoring       ScoringConfig  `json:"scoring" yaml:"scoring"`
}

// TotalQuestions is the number of questions presented, in order.
func (d *TestDefinition) TotalQuestions() int {
	return len(d.Questions)
}

// Category returns the category whose axis matches, or nil.
func (d *TestDefinition) Category(axis string) *AxisCategory {
	for i := range d.Categories {
		if d.Categories[i].Axis != "" && d.Categories[i].Axis == axis {
			return &d.Categories[i]
		}
	}
	return nil
}

// AxisQuestions returns the questions loading onto axis, in presentation order.
func (d *TestDefinition) AxisQuestions(axis string) []Question {
	var out []Question
	for _, q := range d.Questions {
		if q.Axis == axis {
			out = append(out, q)
		}
	}
	return out
}

type Question struct {
	ID            string         `json:"id" yaml:"id"`
	Question      string         `json:"question" yaml:"question"`
	Type          QuestionType   `json:"type" yaml:"type"`
	Axis          string         `json:"axis,omitempty" yaml:"axis"`
	Category      string         `json:"category,omitempty" yaml:"category"`
	Scoring       ScaleDirection `json:"scoring,omitempty" yaml:"scoring"`
	Options       []Option       `json:"options,omitempty" yaml:"options"`
	PoleWeights   PoleWeights    `json:"pole_weights,omitempty" yaml:"pole_weights"`
	Scale         *ScaleLabels   `json:"scale,omitempty" yaml:"scale"`
	CorrectAnswer *int           `json:"correctAnswer,omitempty" yaml:"correct_answer"`
	Points        float64        `json:"points,omitempty" yaml:"points"`
}

// Option is one selectable answer. Kids questions tag each option with a pole.
type Option struct {
	Text string `json:"text" yaml:"text"`
	Pole string `json:"pole,omitempty" yaml:"pole"`
}

// UnmarshalYAML accepts either a bare string or a {text, pole} mapping.
func (o *Option) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind == yaml.ScalarNode {
		o.Text = node.Value
		return nil
	}
	type plain Option
	var p plain
	if err := node.Decode(&p); err != nil {
		return err
	}
	*o = Option(p)
	return nil
}

type ScaleLabels struct {
	Min    int      `json:"min" yaml:"min"`
	Max    int      `json:"max" yaml:"max"`
	Labels []string `json:"labels" yaml:"labels"`
}

// ── Axis Categories ─────────────────────────────────────

type AxisCategory struct {
	ID          string      `json:"id" yaml:"id"`
	Axis        string      `json:"axis,omitempty" yaml:"axis"`
	Name        string      `json:"name" yaml:"name"`
	Description string      `json:"description,omitempty" yaml:"description"`
	Poles       Poles       `json:"poles,omitempty" yaml:"poles"`
	Stages      []StageInfo `json:"stages,omitempty" yaml:"stages"`
}

// StageFor returns the stage table entry for stage, or nil.
func (c *AxisCategory) StageFor(stage int) *StageInfo {
	for i := range c.Stages {
		if c.Stages[i].Stage == stage {
			return &c.Stages[i]
		}
	}
	return nil
}

type StageInfo struct {
	Stage       int    `json:"stage" yaml:"stage"`
	Name        string `json:"name" yaml:"name"`
	Description string `json:"description,omitempty" yaml:"description"`
	Practice    string `json:"practice,omitempty" yaml:"practice"`
	Reflection  string `json:"reflection,omitempty" yaml:"reflection"`
}

// ── Scoring Config ──────────────────────────────────────

type ScoringConfig struct {
	Method           ScoringMethod    `json:"method" yaml:"method"`
	MarginThresholds MarginThresholds `json:"margin_thresholds,omitempty" yaml:"margin_thresholds"`
	StageMapping     StageMapping     `json:"stage_mapping,omitempty" yaml:"stage_mapping"`
	Levels           []Level          `json:"levels,omitempty" yaml:"levels"`
}

// MarginThresholds are strictly decreasing cut points on an axis margin.
type MarginThresholds struct {
	HighlySkewed        float64 `json:"highly_skewed" yaml:"highly_skewed"`
	StrongPreference    float64 `json:"strong_preference" yaml:"strong_preference"`
	DirectionalFlexible float64 `json:"directional_flexible" yaml:"directional_flexible"`
	Balanced            float64 `json:"balanced" yaml:"balanced"`
}

func (m MarginThresholds) IsZero() bool {
	return m == MarginThresholds{}
}

type StageMapping struct {
	HighlySkewed        int `json:"highly_skewed" yaml:"highly_skewed"`
	StrongPreference    int `json:"strong_preference" yaml:"strong_preference"`
	DirectionalFlexible int `json:"directional_flexible" yaml:"directional_flexible"`
	BalancedHighII      int `json:"balanced_high_ii" yaml:"balanced_high_ii"`
	BalancedLowII       int `json:"balanced_low_ii" yaml:"balanced_low_ii"`
}

func (m StageMapping) IsZero() bool {
	return m == StageMapping{}
}

// Level is one band of a percentage-scored test. Range bounds are inclusive.
type Level struct {
	Name            string     `json:"name" yaml:"name"`
	Range           [2]float64 `json:"range" yaml:"range"`
	Description     string     `json:"description" yaml:"description"`
	Recommendations []string   `json:"recommendations" yaml:"recommendations"`
}

// ── Ordered pole maps ───────────────────────────────────
//
// Pole order is meaningful: the first key is pole A. Go maps lose insertion
// order, so both pole tables are kept as slices and decoded from mappings
// key by key.

type Pole struct {
	Key   string
	Label string
}

type Poles []Pole

// Label returns the display label for key, falling back to the key itself.
func (p Poles) Label(key string) string {
	for _, pole := range p {
		if pole.Key == key {
			return pole.Label
		}
	}
	return key
}

func (p *Poles) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.MappingNode {
		return fmt.Errorf("poles: expected mapping, got %v", node.Tag)
	}
	out := make(Poles, 0, len(node.Content)/2)
	for i := 0; i+1 < len(node.Content); i += 2 {
		out = append(out, Pole{Key: node.Content[i].Value, Label: node.Content[i+1].Value})
	}
	*p = out
	return nil
}

func (p Poles) MarshalJSON() ([]byte, error) {
	return marshalOrdered(len(p), func(i int) (string, any) { return p[i].Key, p[i].Label })
}

func (p *Poles) UnmarshalJSON(data []byte) error {
	var out Poles
	err := unmarshalOrdered(data, func(key string, raw json.RawMessage) error {
		var label string
		if err := json.Unmarshal(raw, &label); err != nil {
			return fmt.Errorf("pole %q: %w", key, err)
		}
		out = append(out, Pole{Key: key, Label: label})
		return nil
	})
	if err != nil {
		return err
	}
	*p = out
	return nil
}

// PoleWeight lists the weight (0..4) a pole receives for each option index.
type PoleWeight struct {
	Pole    string
	Weights []float64
}

type PoleWeights []PoleWeight

func (w *PoleWeights) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.MappingNode {
		return fmt.Errorf("pole_weights: expected mapping, got %v", node.Tag)
	}
	out := make(PoleWeights, 0, len(node.Content)/2)
	for i := 0; i+1 < len(node.Content); i += 2 {
		var weights []float64
		if err := node.Content[i+1].Decode(&weights); err != nil {
			return fmt.Errorf("pole_weights %q: %w", node.Content[i].Value, err)
		}
		out = append(out, PoleWeight{Pole: node.Content[i].Value, Weights: weights})
	}
	*w = out
	return nil
}

func (w PoleWeights) MarshalJSON() ([]byte, error) {
	return marshalOrdered(len(w), func(i int) (string, any) { return w[i].Pole, w[i].Weights })
}

func (w *PoleWeights) UnmarshalJSON(data []byte) error {
	var out PoleWeights
	err := unmarshalOrdered(data, func(key string, raw json.RawMessage) error {
		var weights []float64
		if err := json.Unmarshal(raw, &weights); err != nil {
			return fmt.Errorf("pole_weights %q: %w", key, err)
		}
		out = append(out, PoleWeight{Pole: key, Weights: weights})
		return nil
	})
	if err != nil {
		return err
	}
	*w = out
	return nil
}

func marshalOrdered(n int, entry func(i int) (string, any)) ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i := 0; i < n; i++ {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, value := entry(i)
		k, err := json.Marshal(key)
		if err != nil {
			return nil, err
		}
		v, err := json.Marshal(value)
		if err != nil {
			return nil, err
		}
		buf.Write(k)
		buf.WriteByte(':')
		buf.Write(v)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

func unmarshalOrdered(data []byte, field func(key string, raw json.RawMessage) error) error {
	if bytes.Equal(bytes.TrimSpace(data), []byte("null")) {
		return nil
	}
	dec := json.NewDecoder(bytes.NewReader(data))
	tok, err := dec.Token()
	if err != nil {
		return err
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return fmt.Errorf("expected JSON object")
	}
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return err
		}
		key, ok := tok.(string)
		if !ok {
			return fmt.Errorf("expected object key")
		}
		var raw json.RawMessage
		if err := dec.Decode(&raw); err != nil {
			return err
		}
		if err := field(key, raw); err != nil {
			return err
		}
	}
	_, err = dec.Token()
	return err
}
