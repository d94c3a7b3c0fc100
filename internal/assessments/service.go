// Package assessments orchestrates the instrument catalog, scoring and the
// persistence of progress, results and history.
package assessments

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sort"
	"time"

	"github.com/jvdt-hub/backend/internal/definitions"
	"github.com/jvdt-hub/backend/internal/logging"
	"github.com/jvdt-hub/backend/internal/metrics"
	"github.com/jvdt-hub/backend/internal/models"
	"github.com/jvdt-hub/backend/internal/progress"
	"github.com/jvdt-hub/backend/internal/scoring"
)

// ErrAssessmentFailed hides scoring and persistence failures from clients.
var ErrAssessmentFailed = errors.New("could not complete assessment")

type Service struct {
	registry *definitions.Registry
	engine   *scoring.Engine
	progress *progress.Store
	metrics  *metrics.Metrics
	log      *slog.Logger
	now      func() time.Time
}

func NewService(registry *definitions.Registry, engine *scoring.Engine, store *progress.Store, m *metrics.Metrics) *Service {
	return &Service{
		registry: registry,
		engine:   engine,
		progress: store,
		metrics:  m,
		log:      logging.New("assessments"),
		now:      time.Now,
	}
}

// ── Catalog ─────────────────────────────────────────────

// Catalog lists every instrument. With a non-zero userID each entry carries
// the user's most recent result for that test.
func (s *Service) Catalog(ctx context.Context, userID int64) ([]models.TestSummary, error) {
	var last map[string]models.HistoryEntry
	if userID != 0 {
		var err error
		if last, err = s.progress.LastResults(ctx, userID); err != nil {
			return nil, fmt.Errorf("catalog: %w", err)
		}
	}

	defs := s.registry.All()
	out := make([]models.TestSummary, 0, len(defs))
	for _, def := range defs {
		summary := models.TestSummary{
			ID:             def.ID,
			Title:          def.Title,
			Description:    def.Description,
			EstimatedTime:  def.EstimatedTime,
			Icon:           def.Icon,
			Audience:       def.Audience,
			Method:         def.Scoring.Method,
			TotalQuestions: def.TotalQuestions(),
			Categories:     categoryNames(def),
		}
		if entry, ok := last[def.ID]; ok {
			summary.LastResult = &entry
		}
		out = append(out, summary)
	}
	return out, nil
}

func categoryNames(def *models.TestDefinition) []string {
	names := make([]string, 0, len(def.Categories))
	for _, c := range def.Categories {
		names = append(names, c.Name)
	}
	return names
}

func (s *Service) Definition(id string) (*models.TestDefinition, error) {
	return s.registry.Get(id)
}

// ── Submission ──────────────────────────────────────────

// Submit scores the answers, merged over any saved progress, and records the
// outcome. Unknown tests return definitions.ErrUnknownTest; every other
// failure is reported as ErrAssessmentFailed.
func (s *Service) Submit(ctx context.Context, userID int64, testID string, req models.SubmitRequest) (*models.Outcome, error) {
	def, err := s.registry.Get(testID)
	if err != nil {
		return nil, err
	}

	start := s.now()
	outcome, err := s.submit(ctx, userID, def, req)
	s.metrics.RecordAssessment(methodologyLabel(def, outcome), s.now().Sub(start), err)
	if err != nil {
		s.log.Error("assessment failed", "test", testID, "user", userID, "error", err)
		return nil, ErrAssessmentFailed
	}

	s.log.Info("assessment completed", "test", testID, "user", userID, "methodology", outcome.Methodology)
	return outcome, nil
}

func (s *Service) submit(ctx context.Context, userID int64, def *models.TestDefinition, req models.SubmitRequest) (*models.Outcome, error) {
	answers := models.Answers{}
	timeSpent := req.TimeSpent

	saved, err := s.progress.LoadProgress(ctx, userID, def.ID)
	if err != nil {
		return nil, err
	}
	if saved != nil {
		for q, a := range saved.Answers {
			answers[q] = a
		}
		if timeSpent == 0 {
			timeSpent = saved.TimeSpent
		}
	}
	for q, a := range req.Answers {
		answers[q] = a
	}

	outcome, err := s.engine.Evaluate(def, answers)
	if err != nil {
		return nil, err
	}
	outcome.TimeSpent = timeSpent

	if err := s.progress.Complete(ctx, userID, outcome); err != nil {
		return nil, err
	}
	return outcome, nil
}

func methodologyLabel(def *models.TestDefinition, outcome *models.Outcome) string {
	if outcome != nil && outcome.Methodology != "" {
		return outcome.Methodology
	}
	if def.Scoring.Method == "" {
		return string(models.MethodPercentage)
	}
	return string(def.Scoring.Method)
}

// ── Progress ────────────────────────────────────────────

func (s *Service) SaveProgress(ctx context.Context, userID int64, testID string, p models.Progress) (*models.Progress, error) {
	if _, err := s.registry.Get(testID); err != nil {
		return nil, err
	}
	p.TestID = testID
	if p.StartTime.IsZero() {
		p.StartTime = s.now().UTC()
	}
	if err := s.progress.SaveProgress(ctx, userID, p); err != nil {
		return nil, err
	}
	return &p, nil
}

func (s *Service) Progress(ctx context.Context, userID int64, testID string) (*models.Progress, error) {
	if _, err := s.registry.Get(testID); err != nil {
		return nil, err
	}
	return s.progress.LoadProgress(ctx, userID, testID)
}

func (s *Service) ClearProgress(ctx context.Context, userID int64, testID string) error {
	if _, err := s.registry.Get(testID); err != nil {
		return err
	}
	return s.progress.ClearProgress(ctx, userID, testID)
}

// ── Results & History ───────────────────────────────────

func (s *Service) Results(ctx context.Context, userID int64, testID string) (*models.Outcome, error) {
	if _, err := s.registry.Get(testID); err != nil {
		return nil, err
	}
	return s.progress.Results(ctx, userID, testID)
}

// History pages through completions, newest first.
func (s *Service) History(ctx context.Context, userID int64, page, pageSize int) (*models.HistoryResponse, error) {
	entries, err := s.progress.History(ctx, userID)
	if err != nil {
		return nil, err
	}
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].CompletedAt.After(entries[j].CompletedAt)
	})

	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > 100 {
		pageSize = 20
	}
	total := len(entries)
	lo := (page - 1) * pageSize
	if lo > total {
		lo = total
	}
	hi := lo + pageSize
	if hi > total {
		hi = total
	}
	return &models.HistoryResponse{Entries: entries[lo:hi], Total: total}, nil
}

// ── Diagnostics ─────────────────────────────────────────

func (s *Service) QuickCode(scores map[string]int) (*models.QuickCodeResponse, error) {
	return scoring.QuickCode(scores)
}

func (s *Service) Practices(axis, stage string) models.PracticesResponse {
	return models.PracticesResponse{
		Axis:      axis,
		Stage:     stage,
		Practices: s.registry.Practices(axis, stage),
	}
}
