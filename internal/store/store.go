// Package store owns the canonical application state: the user Profile, the
// active display language, and the reminder/feedback collections. Every store
// follows the same pattern: load-and-validate from persistence (falling back
// to a fixed default on any failure), mutate in memory, then best-effort
// rewrite the whole value. Persistence failures are logged, never propagated;
// in-memory state stays authoritative for the session.
package store

import (
	"encoding/json"
	"log/slog"
	"sync"
	"time"

	"github.com/Mny978/track-and-treat/internal/assess"
	"github.com/Mny978/track-and-treat/internal/i18n"
	"github.com/Mny978/track-and-treat/internal/model"
)

// Persistence keys. Fixed for compatibility with the web app's storage layout.
const (
	ProfileKey   = "trackandtreat-profile"
	RemindersKey = "trackandtreat-reminders"
	FeedbackKey  = "trackandtreat-feedback"
)

// Persistence defines the storage operations the stores need.
// Implemented by storage.Store.
type Persistence interface {
	Get(key string) (string, error)
	Set(key, value string) error
}

// Clock abstracts time for testability.
type Clock interface {
	Now() time.Time
}

type realClock struct{}

func (realClock) Now() time.Time { return time.Now() }

// Store holds the resident Profile and mediates all profile mutations.
type Store struct {
	persist Persistence
	logger  *slog.Logger

	mu      sync.RWMutex
	profile model.Profile
	lang    i18n.Language
	subs    []func(model.Profile)
}

// New creates a Store and loads the profile from persistence. A missing,
// malformed, or shape-invalid persisted profile falls back to the default;
// New never fails because of persistence content.
func New(p Persistence) *Store {
	s := &Store{
		persist: p,
		logger:  slog.Default(),
		lang:    i18n.English,
	}
	s.profile = s.load()
	return s
}

// load reads and validates the persisted profile, falling back to the
// default on any failure.
func (s *Store) load() model.Profile {
	placeholder := i18n.Table(s.lang).DashBMICalc

	raw, err := s.persist.Get(ProfileKey)
	if err != nil {
		s.logger.Info("no stored profile, using defaults", "error", err)
		return model.DefaultProfile(placeholder)
	}

	p, err := decodeProfile([]byte(raw))
	if err != nil {
		s.logger.Warn("discarding malformed stored profile", "error", err)
		return model.DefaultProfile(placeholder)
	}
	return p
}

// Profile returns a deep copy of the resident profile.
func (s *Store) Profile() model.Profile {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return copyProfile(s.profile)
}

// Save replaces the resident profile. The Assessment is recomputed from the
// candidate's fields before anything is stored, so a saved profile can never
// carry a stale assessment. The write to persistence is best-effort: failures
// are logged and the in-memory state remains authoritative.
func (s *Store) Save(p model.Profile) model.Profile {
	s.mu.Lock()
	p.Assessment = assess.Calculate(p, i18n.Table(s.lang).DashBMICalc)
	s.profile = p

	if data, err := json.Marshal(p); err != nil {
		s.logger.Warn("failed to serialize profile", "error", err)
	} else if err := s.persist.Set(ProfileKey, string(data)); err != nil {
		s.logger.Warn("failed to persist profile", "error", err)
	}

	subs := make([]func(model.Profile), len(s.subs))
	copy(subs, s.subs)
	saved := copyProfile(p)
	s.mu.Unlock()

	for _, fn := range subs {
		fn(copyProfile(saved))
	}
	return saved
}

// Subscribe registers fn to be called after every successful save.
func (s *Store) Subscribe(fn func(model.Profile)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.subs = append(s.subs, fn)
}

// SetLanguage switches the active string table. Unknown languages are
// ignored.
func (s *Store) SetLanguage(lang i18n.Language) {
	if !i18n.Valid(lang) {
		s.logger.Warn("ignoring unknown language", "lang", string(lang))
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.lang = lang
}

// Language returns the active display language.
func (s *Store) Language() i18n.Language {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.lang
}

// Strings returns the active string table.
func (s *Store) Strings() i18n.Strings {
	return i18n.Table(s.Language())
}

// requiredProfileFields enumerates the keys a persisted profile must carry to
// be accepted. Anything less is treated as corrupt and discarded wholesale.
var requiredProfileFields = []string{
	"name", "gender", "activity", "dietaryPreference", "goal", "assessment",
}

// decodeProfile validates the raw JSON structurally before unmarshalling:
// it must be an object containing every required field.
func decodeProfile(raw []byte) (model.Profile, error) {
	var shape map[string]json.RawMessage
	if err := json.Unmarshal(raw, &shape); err != nil {
		return model.Profile{}, err
	}
	for _, field := range requiredProfileFields {
		if _, ok := shape[field]; !ok {
			return model.Profile{}, &missingFieldError{field}
		}
	}

	var p model.Profile
	if err := json.Unmarshal(raw, &p); err != nil {
		return model.Profile{}, err
	}
	return p, nil
}

type missingFieldError struct{ field string }

func (e *missingFieldError) Error() string {
	return "stored profile missing required field " + e.field
}

// copyProfile returns a deep copy so callers cannot alias the store's
// pointer fields.
func copyProfile(p model.Profile) model.Profile {
	cp := p
	if p.Age != nil {
		cp.Age = model.IntPtr(*p.Age)
	}
	if p.Weight != nil {
		cp.Weight = model.FloatPtr(*p.Weight)
	}
	if p.Height != nil {
		cp.Height = model.FloatPtr(*p.Height)
	}
	if p.PhotoURL != nil {
		cp.PhotoURL = model.StringPtr(*p.PhotoURL)
	}
	if p.ProteinGoal != nil {
		cp.ProteinGoal = model.FloatPtr(*p.ProteinGoal)
	}
	if p.CarbGoal != nil {
		cp.CarbGoal = model.FloatPtr(*p.CarbGoal)
	}
	if p.FatGoal != nil {
		cp.FatGoal = model.FloatPtr(*p.FatGoal)
	}
	if p.Assessment.BMI != nil {
		cp.Assessment.BMI = model.FloatPtr(*p.Assessment.BMI)
	}
	if p.Assessment.TDEE != nil {
		cp.Assessment.TDEE = model.IntPtr(*p.Assessment.TDEE)
	}
	if p.Assessment.Target != nil {
		cp.Assessment.Target = model.IntPtr(*p.Assessment.Target)
	}
	return cp
}
