package utils

import (
	"errors"
	"math"
	"time"

	"github.com/giovaneneves7/mimoo-backend/models"
)

// ErrInvalidInput is returned for malformed or out-of-range biometric input.
// Values are rejected, never clamped.
var ErrInvalidInput = errors.New("invalid input")

// CalculateBMI expects weight in kilograms and height in centimeters.
func CalculateBMI(weightKg, heightCm float64) (float64, error) {
	if !positive(weightKg) || !positive(heightCm) {
		return 0, ErrInvalidInput
	}
	h := heightCm / 100.0
	return weightKg / (h * h), nil
}

func BMICategory(bmi float64) string {
	switch {
	case bmi < 18.5:
		return "Underweight"
	case bmi < 25.0:
		return "Normal weight"
	case bmi < 30.0:
		return "Overweight"
	default:
		return "Obesity"
	}
}

// CalculateBMR computes basal metabolic rate via Mifflin-St Jeor, rounded to
// the nearest kcal. Sex is a closed two-value enum — it only selects the
// formula constant, which is why no further category is modeled.
func CalculateBMR(weightKg, heightCm float64, ageYears int, sex string) (int, error) {
	if !positive(weightKg) || !positive(heightCm) || ageYears <= 0 {
		return 0, ErrInvalidInput
	}
	bmr := 10*weightKg + 6.25*heightCm - 5*float64(ageYears)
	switch sex {
	case models.SexMale:
		bmr += 5
	case models.SexFemale:
		bmr -= 161
	default:
		return 0, ErrInvalidInput
	}
	return int(math.Round(bmr)), nil
}

// weeklyRateKg maps pace to expected weight change per week.
var weeklyRateKg = map[string]float64{
	models.PaceSlow:   0.25,
	models.PaceNormal: 0.5,
	models.PaceFast:   0.75,
}

// CalculateTargetDate estimates when the goal weight will be reached from the
// weekly rate implied by pace. Equal weights yield `from` itself — a zero
// duration, not an error.
func CalculateTargetDate(currentKg, goalKg float64, pace string, from time.Time) (time.Time, error) {
	if !positive(currentKg) || !positive(goalKg) {
		return time.Time{}, ErrInvalidInput
	}
	rate, ok := weeklyRateKg[pace]
	if !ok {
		return time.Time{}, ErrInvalidInput
	}
	weeks := math.Abs(currentKg-goalKg) / rate
	days := int(math.Ceil(weeks * 7))
	return from.AddDate(0, 0, days), nil
}

// WaterTargetML derives the daily water target: 35 ml per kg of body weight.
func WaterTargetML(weightKg float64) (int, error) {
	if !positive(weightKg) {
		return 0, ErrInvalidInput
	}
	return int(math.Round(weightKg * 35)), nil
}

func positive(v float64) bool {
	return !math.IsNaN(v) && v > 0
}
