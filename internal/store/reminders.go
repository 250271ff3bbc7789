package store

import (
	"encoding/json"
	"log/slog"
	"sort"
	"sync"

	"github.com/google/uuid"

	"github.com/Mny978/track-and-treat/internal/model"
)

// ReminderStore maintains the reminder list, kept sorted ascending by "HH:MM"
// time string and rewritten in full on every mutation.
type ReminderStore struct {
	persist Persistence
	logger  *slog.Logger

	mu        sync.RWMutex
	reminders []model.Reminder
}

// NewReminderStore creates a ReminderStore, loading any persisted reminders.
// Malformed persisted data is discarded in favor of an empty list.
func NewReminderStore(p Persistence) *ReminderStore {
	s := &ReminderStore{
		persist: p,
		logger:  slog.Default(),
	}
	s.reminders = s.load()
	return s
}

func (s *ReminderStore) load() []model.Reminder {
	raw, err := s.persist.Get(RemindersKey)
	if err != nil {
		return nil
	}
	var reminders []model.Reminder
	if err := json.Unmarshal([]byte(raw), &reminders); err != nil {
		s.logger.Warn("discarding malformed stored reminders", "error", err)
		return nil
	}
	return reminders
}

// List returns a copy of the reminders, sorted ascending by time.
func (s *ReminderStore) List() []model.Reminder {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]model.Reminder, len(s.reminders))
	copy(out, s.reminders)
	return out
}

// Add appends a reminder at the given "HH:MM" time, re-sorts the collection,
// and rewrites the whole list to persistence.
func (s *ReminderStore) Add(timeHHMM string, typ model.ReminderType) model.Reminder {
	r := model.Reminder{
		ID:   uuid.New().String(),
		Time: timeHHMM,
		Type: typ,
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.reminders = append(s.reminders, r)
	sort.SliceStable(s.reminders, func(i, j int) bool {
		return s.reminders[i].Time < s.reminders[j].Time
	})
	s.persistLocked()
	return r
}

// Delete removes the reminder with the given id. Deleting an unknown id is a
// no-op.
func (s *ReminderStore) Delete(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	kept := s.reminders[:0]
	for _, r := range s.reminders {
		if r.ID != id {
			kept = append(kept, r)
		}
	}
	if len(kept) == len(s.reminders) {
		return
	}
	s.reminders = kept
	s.persistLocked()
}

func (s *ReminderStore) persistLocked() {
	data, err := json.Marshal(s.reminders)
	if err != nil {
		s.logger.Warn("failed to serialize reminders", "error", err)
		return
	}
	if err := s.persist.Set(RemindersKey, string(data)); err != nil {
		s.logger.Warn("failed to persist reminders", "error", err)
	}
}
