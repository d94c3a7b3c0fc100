// Package journal keeps per-user reflection entries and an autosaved draft.
package journal

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/jvdt-hub/backend/internal/kvstore"
	"github.com/jvdt-hub/backend/internal/models"
)

var ErrEmptyEntry = errors.New("journal entry is empty")

type Journal struct {
	kv    kvstore.Store
	now   func() time.Time
	newID func() string

	mu sync.Mutex
}

func New(kv kvstore.Store) *Journal {
	return &Journal{
		kv:    kv,
		now:   time.Now,
		newID: func() string { return uuid.NewString() },
	}
}

func entriesKey(userID int64) string { return kvstore.UserKey(userID, "journal-entries") }
func draftKey(userID int64) string   { return kvstore.UserKey(userID, "journal-draft") }

// ── Entries ─────────────────────────────────────────────

// Add tags and saves a new entry at the front of the user's journal.
func (j *Journal) Add(ctx context.Context, userID int64, text string) (models.JournalEntry, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return models.JournalEntry{}, ErrEmptyEntry
	}

	entry := models.JournalEntry{
		ID:        j.newID(),
		Text:      text,
		Tags:      Tag(text),
		CreatedAt: j.now().UTC(),
	}

	j.mu.Lock()
	defer j.mu.Unlock()

	entries, err := j.Entries(ctx, userID)
	if err != nil {
		return models.JournalEntry{}, err
	}
	entries = append([]models.JournalEntry{entry}, entries...)

	data, err := json.Marshal(entries)
	if err != nil {
		return models.JournalEntry{}, fmt.Errorf("encode journal: %w", err)
	}
	if err := j.kv.Set(ctx, entriesKey(userID), data); err != nil {
		return models.JournalEntry{}, fmt.Errorf("save journal: %w", err)
	}
	return entry, nil
}

// Entries returns the user's journal, newest first.
func (j *Journal) Entries(ctx context.Context, userID int64) ([]models.JournalEntry, error) {
	data, err := j.kv.Get(ctx, entriesKey(userID))
	if errors.Is(err, kvstore.ErrNotFound) {
		return []models.JournalEntry{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("load journal: %w", err)
	}
	var entries []models.JournalEntry
	if err := json.Unmarshal(data, &entries); err != nil {
		return nil, fmt.Errorf("decode journal: %w", err)
	}
	if entries == nil {
		entries = []models.JournalEntry{}
	}
	return entries, nil
}

// Clear removes every entry and the draft.
func (j *Journal) Clear(ctx context.Context, userID int64) error {
	j.mu.Lock()
	defer j.mu.Unlock()

	if err := j.kv.Remove(ctx, entriesKey(userID)); err != nil {
		return fmt.Errorf("clear journal: %w", err)
	}
	return j.ClearDraft(ctx, userID)
}

// ── Draft ───────────────────────────────────────────────

func (j *Journal) Draft(ctx context.Context, userID int64) (string, error) {
	data, err := j.kv.Get(ctx, draftKey(userID))
	if errors.Is(err, kvstore.ErrNotFound) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("load draft: %w", err)
	}
	return string(data), nil
}

// SaveDraft overwrites the draft. An empty draft clears it.
func (j *Journal) SaveDraft(ctx context.Context, userID int64, text string) error {
	if text == "" {
		return j.ClearDraft(ctx, userID)
	}
	if err := j.kv.Set(ctx, draftKey(userID), []byte(text)); err != nil {
		return fmt.Errorf("save draft: %w", err)
	}
	return nil
}

func (j *Journal) ClearDraft(ctx context.Context, userID int64) error {
	if err := j.kv.Remove(ctx, draftKey(userID)); err != nil {
		return fmt.Errorf("clear draft: %w", err)
	}
	return nil
}
