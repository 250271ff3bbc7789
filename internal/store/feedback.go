package store

import (
	"encoding/json"
	"log/slog"
	"sync"
	"time"

	"github.com/Mny978/track-and-treat/internal/model"
)

// FeedbackStore maintains the feedback list. Entries are append-only from the
// caller's perspective; ids are derived from the submission timestamp.
type FeedbackStore struct {
	persist Persistence
	logger  *slog.Logger
	clock   Clock

	mu      sync.RWMutex
	entries []model.FeedbackEntry
}

// NewFeedbackStore creates a FeedbackStore, loading any persisted entries.
func NewFeedbackStore(p Persistence) *FeedbackStore {
	return newFeedbackStore(p, realClock{})
}

// newFeedbackStore allows tests to inject a deterministic clock.
func newFeedbackStore(p Persistence, clock Clock) *FeedbackStore {
	s := &FeedbackStore{
		persist: p,
		logger:  slog.Default(),
		clock:   clock,
	}
	s.entries = s.load()
	return s
}

func (s *FeedbackStore) load() []model.FeedbackEntry {
	raw, err := s.persist.Get(FeedbackKey)
	if err != nil {
		return nil
	}
	var entries []model.FeedbackEntry
	if err := json.Unmarshal([]byte(raw), &entries); err != nil {
		s.logger.Warn("discarding malformed stored feedback", "error", err)
		return nil
	}
	return entries
}

// List returns a copy of the feedback entries in submission order.
func (s *FeedbackStore) List() []model.FeedbackEntry {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]model.FeedbackEntry, len(s.entries))
	copy(out, s.entries)
	return out
}

// Add appends a feedback entry and rewrites the whole list to persistence.
func (s *FeedbackStore) Add(typ model.FeedbackType, content string) model.FeedbackEntry {
	now := s.clock.Now()
	e := model.FeedbackEntry{
		ID:        now.UTC().Format(time.RFC3339Nano),
		Type:      typ,
		Content:   content,
		Timestamp: now.Format("2/1/2006, 15:04:05"),
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries = append(s.entries, e)
	s.persistLocked()
	return e
}

// Delete removes the entry with the given id. Unknown ids are a no-op.
func (s *FeedbackStore) Delete(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	kept := s.entries[:0]
	for _, e := range s.entries {
		if e.ID != id {
			kept = append(kept, e)
		}
	}
	if len(kept) == len(s.entries) {
		return
	}
	s.entries = kept
	s.persistLocked()
}

func (s *FeedbackStore) persistLocked() {
	data, err := json.Marshal(s.entries)
	if err != nil {
		s.logger.Warn("failed to serialize feedback", "error", err)
		return
	}
	if err := s.persist.Set(FeedbackKey, string(data)); err != nil {
		s.logger.Warn("failed to persist feedback", "error", err)
	}
}
