// Package progress persists in-flight quiz answers, completed results and the
// per-user history log on top of a key-value store.
package progress

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"github.com/jvdt-hub/backend/internal/kvstore"
	"github.com/jvdt-hub/backend/internal/logging"
	"github.com/jvdt-hub/backend/internal/models"
)

type Store struct {
	kv  kvstore.Store
	log *slog.Logger

	// serializes the read-modify-write of history logs
	historyMu sync.Mutex
}

func NewStore(kv kvstore.Store) *Store {
	return &Store{kv: kv, log: logging.New("progress")}
}

func progressKey(userID int64, testID string) string {
	return kvstore.UserKey(userID, "test-progress-"+testID)
}

func resultsKey(userID int64, testID string) string {
	return kvstore.UserKey(userID, "test-results-"+testID)
}

func historyKey(userID int64) string {
	return kvstore.UserKey(userID, "test-history")
}

// ── Progress ────────────────────────────────────────────

func (s *Store) SaveProgress(ctx context.Context, userID int64, p models.Progress) error {
	if p.TestID == "" {
		return errors.New("save progress: missing test id")
	}
	if p.Answers == nil {
		p.Answers = models.Answers{}
	}
	return s.put(ctx, progressKey(userID, p.TestID), p)
}

// LoadProgress returns nil without error when nothing is saved or the saved
// record is unreadable.
func (s *Store) LoadProgress(ctx context.Context, userID int64, testID string) (*models.Progress, error) {
	var p models.Progress
	ok, err := s.get(ctx, progressKey(userID, testID), &p)
	if err != nil || !ok {
		return nil, err
	}
	return &p, nil
}

func (s *Store) ClearProgress(ctx context.Context, userID int64, testID string) error {
	if err := s.kv.Remove(ctx, progressKey(userID, testID)); err != nil {
		return fmt.Errorf("clear progress: %w", err)
	}
	return nil
}

// ── Results & History ───────────────────────────────────

// Complete stores the outcome as the latest result, appends its summary to
// the history log and clears any saved progress for the test.
func (s *Store) Complete(ctx context.Context, userID int64, outcome *models.Outcome) error {
	if outcome == nil || outcome.TestID == "" {
		return errors.New("complete: missing outcome")
	}
	if err := s.put(ctx, resultsKey(userID, outcome.TestID), outcome); err != nil {
		return err
	}
	if err := s.appendHistory(ctx, userID, outcome.Summary()); err != nil {
		return err
	}
	return s.ClearProgress(ctx, userID, outcome.TestID)
}

func (s *Store) Results(ctx context.Context, userID int64, testID string) (*models.Outcome, error) {
	var o models.Outcome
	ok, err := s.get(ctx, resultsKey(userID, testID), &o)
	if err != nil || !ok {
		return nil, err
	}
	return &o, nil
}

// History returns every completion in the order it was recorded.
func (s *Store) History(ctx context.Context, userID int64) ([]models.HistoryEntry, error) {
	var entries []models.HistoryEntry
	ok, err := s.get(ctx, historyKey(userID), &entries)
	if err != nil {
		return nil, err
	}
	if !ok || entries == nil {
		entries = []models.HistoryEntry{}
	}
	return entries, nil
}

// LastResults picks the entry with the latest completedAt per test.
func (s *Store) LastResults(ctx context.Context, userID int64) (map[string]models.HistoryEntry, error) {
	entries, err := s.History(ctx, userID)
	if err != nil {
		return nil, err
	}
	last := make(map[string]models.HistoryEntry)
	for _, e := range entries {
		if prev, ok := last[e.TestID]; !ok || e.CompletedAt.After(prev.CompletedAt) {
			last[e.TestID] = e
		}
	}
	return last, nil
}

func (s *Store) appendHistory(ctx context.Context, userID int64, entry models.HistoryEntry) error {
	s.historyMu.Lock()
	defer s.historyMu.Unlock()

	entries, err := s.History(ctx, userID)
	if err != nil {
		return err
	}
	entries = append(entries, entry)
	return s.put(ctx, historyKey(userID), entries)
}

// ── Encoding ────────────────────────────────────────────

func (s *Store) put(ctx context.Context, key string, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("encode %s: %w", key, err)
	}
	if err := s.kv.Set(ctx, key, data); err != nil {
		return fmt.Errorf("save %s: %w", key, err)
	}
	return nil
}

// get reports false when the key is absent. Corrupt records are logged and
// treated as absent.
func (s *Store) get(ctx context.Context, key string, v any) (bool, error) {
	data, err := s.kv.Get(ctx, key)
	if errors.Is(err, kvstore.ErrNotFound) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("load %s: %w", key, err)
	}
	if err := json.Unmarshal(data, v); err != nil {
		s.log.Warn("discarding unreadable record", "key", key, "error", err)
		return false, nil
	}
	return true, nil
}
