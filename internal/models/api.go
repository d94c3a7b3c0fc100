package models

import "time"

// ── Catalog ─────────────────────────────────────────────

type TestSummary struct {
	ID             string        `json:"id"`
	Title          string        `json:"title"`
	Description    string        `json:"description"`
	EstimatedTime  string        `json:"estimatedTime,omitempty"`
	Icon           string        `json:"icon,omitempty"`
	Audience       string        `json:"audience,omitempty"`
	Method         ScoringMethod `json:"method"`
	TotalQuestions int           `json:"totalQuestions"`
	Categories     []string      `json:"categories"`
	LastResult     *HistoryEntry `json:"lastResult,omitempty"`
}

// ── Submission ──────────────────────────────────────────

type SubmitRequest struct {
	Answers   Answers `json:"answers"`
	TimeSpent int     `json:"timeSpent,omitempty"`
}

// Outcome carries exactly one of the engine result shapes, selected by Methodology.
type Outcome struct {
	TestID      string             `json:"testId"`
	Methodology string             `json:"methodology"`
	Axes        *Results           `json:"axes,omitempty"`
	Kids        *KidsResults       `json:"kids,omitempty"`
	Percentage  *PercentageResults `json:"percentage,omitempty"`
	TimeSpent   int                `json:"timeSpent,omitempty"`
}

// CompletedAt returns the completion time of whichever result is set.
func (o *Outcome) CompletedAt() time.Time {
	switch {
	case o.Axes != nil:
		return o.Axes.CompletedAt
	case o.Kids != nil:
		return o.Kids.CompletedAt
	case o.Percentage != nil:
		return o.Percentage.CompletedAt
	}
	return time.Time{}
}

// Summary condenses the outcome into a history record.
func (o *Outcome) Summary() HistoryEntry {
	entry := HistoryEntry{
		TestID:      o.TestID,
		CompletedAt: o.CompletedAt(),
		Methodology: o.Methodology,
	}
	switch {
	case o.Axes != nil:
		entry.JVDTCode = o.Axes.JVDTCode
		entry.Stage = o.Axes.OverallStage.Name
	case o.Kids != nil:
		entry.Archetype = o.Kids.Archetype.Title
		score := float64(o.Kids.IntegrationScore.Score)
		entry.Score = &score
	case o.Percentage != nil:
		score := o.Percentage.TotalScore
		entry.Score = &score
		entry.Level = o.Percentage.Level
	}
	return entry
}

// ── Quick Code / Practices ──────────────────────────────

type QuickCodeRequest struct {
	Scores map[string]int `json:"scores"`
}

type QuickCodeResponse struct {
	Normalized map[string]float64 `json:"normalized"`
	Code       string             `json:"code"`
}

type PracticesResponse struct {
	Axis      string   `json:"axis"`
	Stage     string   `json:"stage"`
	Practices []string `json:"practices"`
}

// ── Journal ─────────────────────────────────────────────

type JournalEntry struct {
	ID        string    `json:"id"`
	Text      string    `json:"text"`
	Tags      []string  `json:"tags,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}

type JournalRequest struct {
	Text string `json:"text"`
}

type JournalTagsResponse struct {
	Tags []string `json:"tags"`
}

type HistoryResponse struct {
	Entries []HistoryEntry `json:"entries"`
	Total   int            `json:"total"`
}
