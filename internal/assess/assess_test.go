package assess

import (
	"testing"

	"github.com/Mny978/track-and-treat/internal/model"
)

const placeholder = "Enter details to calculate."

func baseProfile() model.Profile {
	return model.Profile{
		Name:              "Test",
		Age:               model.IntPtr(30),
		Gender:            model.Male,
		Weight:            model.FloatPtr(80),
		Height:            model.FloatPtr(180),
		Activity:          model.Moderate,
		DietaryPreference: model.Veg,
		Goal:              model.Maintenance,
	}
}

// Hand-computed Harris-Benedict reference for the base profile:
// male BMR = 88.362 + 13.397*80 + 4.799*180 - 5.677*30 = 1853.632,
// TDEE = round(1853.632 * 1.55) = 2873.
func TestCalculate_MaleMaintenance(t *testing.T) {
	a := Calculate(baseProfile(), placeholder)

	if a.BMI == nil || *a.BMI != 24.7 {
		t.Errorf("BMI = %v, want 24.7", a.BMI)
	}
	if a.TDEE == nil || *a.TDEE != 2873 {
		t.Errorf("TDEE = %v, want 2873", a.TDEE)
	}
	if a.Target == nil || *a.Target != 2873 {
		t.Errorf("Target = %v, want 2873 (maintenance keeps TDEE)", a.Target)
	}
	if a.BMIStatus != StatusOverweightRisk {
		t.Errorf("BMIStatus = %q, want %q", a.BMIStatus, StatusOverweightRisk)
	}
}

// Female BMR = 447.593 + 9.247*80 + 3.098*180 - 4.330*30 = 1615.093,
// TDEE = round(1615.093 * 1.55) = 2503.
func TestCalculate_Female(t *testing.T) {
	p := baseProfile()
	p.Gender = model.Female

	a := Calculate(p, placeholder)

	if a.BMI == nil || *a.BMI != 24.7 {
		t.Errorf("BMI = %v, want 24.7", a.BMI)
	}
	if a.TDEE == nil || *a.TDEE != 2503 {
		t.Errorf("TDEE = %v, want 2503", a.TDEE)
	}
	if a.Target == nil || *a.Target != 2503 {
		t.Errorf("Target = %v, want 2503", a.Target)
	}
}

// Non-male genders use the female coefficients.
func TestCalculate_OtherUsesFemaleFormula(t *testing.T) {
	p := baseProfile()
	p.Gender = model.Other

	a := Calculate(p, placeholder)
	if a.TDEE == nil || *a.TDEE != 2503 {
		t.Errorf("TDEE = %v, want 2503 (female coefficients)", a.TDEE)
	}
}

func TestCalculate_GoalAdjustments(t *testing.T) {
	tests := []struct {
		goal   model.Goal
		target int
	}{
		{model.Maintenance, 2873},
		{model.WeightLoss, 2373},
		{model.WeightGain, 3373},
		{model.MuscleGain, 3173},
	}
	for _, tt := range tests {
		t.Run(string(tt.goal), func(t *testing.T) {
			p := baseProfile()
			p.Goal = tt.goal
			a := Calculate(p, placeholder)
			if a.Target == nil || *a.Target != tt.target {
				t.Errorf("Target = %v, want %d", a.Target, tt.target)
			}
		})
	}
}

func TestCalculate_ActivityFactors(t *testing.T) {
	// BMR for the base profile is 1853.632.
	tests := []struct {
		activity model.ActivityLevel
		tdee     int
	}{
		{model.Sedentary, 2224}, // round(1853.632 * 1.2)
		{model.Light, 2549},     // round(1853.632 * 1.375)
		{model.Moderate, 2873},  // round(1853.632 * 1.55)
		{model.High, 3198},      // round(1853.632 * 1.725)
		{model.Extreme, 3522},   // round(1853.632 * 1.9)
		{"", 2224},              // unknown falls back to sedentary factor
	}
	for _, tt := range tests {
		t.Run(string(tt.activity), func(t *testing.T) {
			p := baseProfile()
			p.Activity = tt.activity
			a := Calculate(p, placeholder)
			if a.TDEE == nil || *a.TDEE != tt.tdee {
				t.Errorf("TDEE = %v, want %d", a.TDEE, tt.tdee)
			}
		})
	}
}

func TestCalculate_IncompleteInput(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*model.Profile)
	}{
		{"missing weight", func(p *model.Profile) { p.Weight = nil }},
		{"missing height", func(p *model.Profile) { p.Height = nil }},
		{"missing age", func(p *model.Profile) { p.Age = nil }},
		{"all missing", func(p *model.Profile) { p.Weight, p.Height, p.Age = nil, nil, nil }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := baseProfile()
			tt.mutate(&p)
			a := Calculate(p, placeholder)
			if a.BMI != nil || a.TDEE != nil || a.Target != nil {
				t.Errorf("expected all-nil metrics, got %+v", a)
			}
			if a.BMIStatus != placeholder {
				t.Errorf("BMIStatus = %q, want placeholder %q", a.BMIStatus, placeholder)
			}
		})
	}
}

func TestClassify_Boundaries(t *testing.T) {
	tests := []struct {
		bmi    float64
		status string
	}{
		{18.4, StatusUnderweight},
		{18.5, StatusHealthy},
		{22.9, StatusHealthy},
		{23.0, StatusOverweightRisk},
		{24.9, StatusOverweightRisk},
		{25.0, StatusObese},
	}
	for _, tt := range tests {
		if got := classify(tt.bmi); got != tt.status {
			t.Errorf("classify(%.1f) = %q, want %q", tt.bmi, got, tt.status)
		}
	}
}

// Repeated calls over identical input must be bit-identical.
func TestCalculate_Deterministic(t *testing.T) {
	p := baseProfile()
	first := Calculate(p, placeholder)
	for i := 0; i < 100; i++ {
		a := Calculate(p, placeholder)
		if *a.BMI != *first.BMI || *a.TDEE != *first.TDEE || *a.Target != *first.Target || a.BMIStatus != first.BMIStatus {
			t.Fatalf("call %d diverged: %+v vs %+v", i, a, first)
		}
	}
}

// BMI rounding is half away from zero to one decimal: 77.6kg at 177cm is
// 24.768... which must round to 24.8, not truncate.
func TestCalculate_BMIRounding(t *testing.T) {
	p := baseProfile()
	p.Weight = model.FloatPtr(77.6)
	p.Height = model.FloatPtr(177)

	a := Calculate(p, placeholder)
	if a.BMI == nil || *a.BMI != 24.8 {
		t.Errorf("BMI = %v, want 24.8", a.BMI)
	}
}
