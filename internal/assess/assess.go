// Package assess computes derived health metrics (BMI, TDEE, calorie target)
// from a user profile. Calculate is a total, side-effect-free function: it
// never fails, and incomplete input yields a well-defined degenerate result.
package assess

import (
	"math"

	"github.com/Mny978/track-and-treat/internal/model"
)

// BMI status classifications. Thresholds follow the Asian-BMI cutoffs
// (18.5 / 23 / 25) used by the product, not the WHO 25/30 scale.
const (
	StatusUnderweight    = "Underweight"
	StatusHealthy        = "Healthy Weight"
	StatusOverweightRisk = "Overweight Risk"
	StatusObese          = "Obese"
)

// activityFactors maps activity level to the TDEE multiplier.
var activityFactors = map[model.ActivityLevel]float64{
	model.Sedentary: 1.2,
	model.Light:     1.375,
	model.Moderate:  1.55,
	model.High:      1.725,
	model.Extreme:   1.9,
}

const defaultActivityFactor = 1.2

// Calculate derives an Assessment from the profile's weight, height, age,
// gender, activity level, and goal. If weight, height, or age is unset, every
// numeric field is nil and the status is the given placeholder string; no
// partial results.
func Calculate(p model.Profile, placeholder string) model.Assessment {
	if p.Weight == nil || p.Height == nil || p.Age == nil {
		return model.Assessment{BMIStatus: placeholder}
	}

	weight := *p.Weight
	height := *p.Height
	age := float64(*p.Age)

	heightM := height / 100
	bmi := round1(weight / (heightM * heightM))

	// Harris-Benedict revised. Anything other than Male uses the female
	// coefficients.
	var bmr float64
	if p.Gender == model.Male {
		bmr = 88.362 + 13.397*weight + 4.799*height - 5.677*age
	} else {
		bmr = 447.593 + 9.247*weight + 3.098*height - 4.330*age
	}

	factor, ok := activityFactors[p.Activity]
	if !ok {
		factor = defaultActivityFactor
	}
	tdee := int(math.Round(bmr * factor))

	target := tdee
	switch p.Goal {
	case model.WeightLoss:
		target = tdee - 500
	case model.WeightGain:
		target = tdee + 500
	case model.MuscleGain:
		target = tdee + 300
	}

	return model.Assessment{
		BMI:       &bmi,
		TDEE:      &tdee,
		Target:    &target,
		BMIStatus: classify(bmi),
	}
}

// classify maps a BMI value onto its status band. Intervals are half-open:
// [18.5, 23) is healthy, [23, 25) is at risk.
func classify(bmi float64) string {
	switch {
	case bmi < 18.5:
		return StatusUnderweight
	case bmi < 23:
		return StatusHealthy
	case bmi < 25:
		return StatusOverweightRisk
	default:
		return StatusObese
	}
}

// round1 rounds to one decimal place, half away from zero.
func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
