package tracking

import (
	"testing"
	"time"
)

type fixedClock struct{ now time.Time }

func (c *fixedClock) Now() time.Time { return c.now }

func TestAddWater(t *testing.T) {
	tr := New()

	if got := tr.AddWater(250); got != 250 {
		t.Errorf("AddWater(250) = %d, want 250", got)
	}
	if got := tr.AddWater(500); got != 750 {
		t.Errorf("second AddWater = %d, want 750", got)
	}
	if got := tr.AddWater(-100); got != 750 {
		t.Errorf("negative amount should be ignored, got %d", got)
	}
}

func TestAddServing_ClampsAtFive(t *testing.T) {
	tr := New()

	for i := 0; i < 8; i++ {
		tr.AddServing()
	}
	if got := tr.State().FruitVegServings; got != MaxFruitVegServings {
		t.Errorf("servings = %d, want %d", got, MaxFruitVegServings)
	}
}

func TestLogMeal_MostRecentFirst(t *testing.T) {
	clock := &fixedClock{now: time.Date(2024, 6, 1, 9, 5, 0, 0, time.UTC)}
	tr := NewWithClock(clock)

	tr.LogMeal("poha", 280)
	clock.now = clock.now.Add(4 * time.Hour)
	tr.LogMeal("dal rice", 450)

	log := tr.State().MealLog
	if len(log) != 2 {
		t.Fatalf("len = %d, want 2", len(log))
	}
	if log[0].Text != "dal rice" || log[1].Text != "poha" {
		t.Errorf("order wrong: %+v", log)
	}
	if log[0].Time != "13:05" || log[1].Time != "09:05" {
		t.Errorf("times = %q, %q", log[0].Time, log[1].Time)
	}
	if log[0].ID == log[1].ID {
		t.Error("ids should be unique")
	}
}

func TestLogMeal_EstimatesKcalWhenUnknown(t *testing.T) {
	tr := New()

	e := tr.LogMeal("mystery snack", 0)
	if e.Kcal < minKcalEstimate || e.Kcal > maxKcalEstimate {
		t.Errorf("estimated kcal = %d, want within [%d, %d]", e.Kcal, minKcalEstimate, maxKcalEstimate)
	}
}

func TestRemoveMeal(t *testing.T) {
	tr := New()

	e := tr.LogMeal("poha", 280)
	tr.LogMeal("chai", 90)

	tr.RemoveMeal(e.ID)
	log := tr.State().MealLog
	if len(log) != 1 || log[0].Text != "chai" {
		t.Errorf("after remove: %+v", log)
	}

	tr.RemoveMeal("unknown")
	if len(tr.State().MealLog) != 1 {
		t.Error("removing unknown id should be a no-op")
	}
}

func TestTotalKcal(t *testing.T) {
	tr := New()
	tr.LogMeal("poha", 280)
	tr.LogMeal("chai", 90)

	if got := tr.TotalKcal(); got != 370 {
		t.Errorf("TotalKcal = %d, want 370", got)
	}
}

func TestState_ReturnsCopy(t *testing.T) {
	tr := New()
	tr.LogMeal("poha", 280)

	st := tr.State()
	st.MealLog[0].Text = "mutated"

	if tr.State().MealLog[0].Text != "poha" {
		t.Error("state mutated through returned copy")
	}
}
