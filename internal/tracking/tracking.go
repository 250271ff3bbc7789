// Package tracking holds the day's ephemeral tracking state: water intake,
// fruit/veg servings, and the meal log. The state lives for the process only
// and is never persisted; each session starts from zero.
package tracking

import (
	"math/rand"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/Mny978/track-and-treat/internal/model"
)

// MaxFruitVegServings caps the daily servings counter.
const MaxFruitVegServings = 5

// Estimated kcal bounds used when a logged meal has no known calorie count.
const (
	minKcalEstimate = 200
	maxKcalEstimate = 500
)

// Clock abstracts time for testability.
type Clock interface {
	Now() time.Time
}

type realClock struct{}

func (realClock) Now() time.Time { return time.Now() }

// Tracker owns the session's TrackingState.
type Tracker struct {
	clock Clock

	mu    sync.RWMutex
	state model.TrackingState
}

// New creates an empty Tracker.
func New() *Tracker {
	return &Tracker{clock: realClock{}}
}

// NewWithClock creates a Tracker with a custom clock (for testing).
func NewWithClock(clock Clock) *Tracker {
	return &Tracker{clock: clock}
}

// State returns a copy of the current tracking state.
func (t *Tracker) State() model.TrackingState {
	t.mu.RLock()
	defer t.mu.RUnlock()
	st := t.state
	st.MealLog = make([]model.MealLogEntry, len(t.state.MealLog))
	copy(st.MealLog, t.state.MealLog)
	return st
}

// AddWater adds ml milliliters to the day's water intake. Non-positive
// amounts are ignored.
func (t *Tracker) AddWater(ml int) int {
	t.mu.Lock()
	defer t.mu.Unlock()
	if ml > 0 {
		t.state.WaterIntake += ml
	}
	return t.state.WaterIntake
}

// AddServing increments the fruit/veg servings counter, clamped at
// MaxFruitVegServings.
func (t *Tracker) AddServing() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.state.FruitVegServings < MaxFruitVegServings {
		t.state.FruitVegServings++
	}
	return t.state.FruitVegServings
}

// LogMeal prepends a meal to the log (most recent first). When kcal is
// non-positive a rough estimate is substituted for free-text entries.
func (t *Tracker) LogMeal(text string, kcal int) model.MealLogEntry {
	if kcal <= 0 {
		kcal = minKcalEstimate + rand.Intn(maxKcalEstimate-minKcalEstimate+1)
	}
	entry := model.MealLogEntry{
		ID:   uuid.New().String(),
		Text: text,
		Time: t.clock.Now().Format("15:04"),
		Kcal: kcal,
	}

	t.mu.Lock()
	defer t.mu.Unlock()
	t.state.MealLog = append([]model.MealLogEntry{entry}, t.state.MealLog...)
	return entry
}

// RemoveMeal deletes the meal with the given id. Unknown ids are a no-op.
func (t *Tracker) RemoveMeal(id string) {
	t.mu.Lock()
	defer t.mu.Unlock()

	kept := t.state.MealLog[:0]
	for _, m := range t.state.MealLog {
		if m.ID != id {
			kept = append(kept, m)
		}
	}
	t.state.MealLog = kept
}

// TotalKcal sums the calories of every logged meal.
func (t *Tracker) TotalKcal() int {
	t.mu.RLock()
	defer t.mu.RUnlock()
	total := 0
	for _, m := range t.state.MealLog {
		total += m.Kcal
	}
	return total
}
