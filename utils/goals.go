package utils

import (
	"math"

	"github.com/giovaneneves7/mimoo-backend/models"
)

// activityMultipliers maps activity level strings to their TDEE multiplier.
// This is the single source of truth for valid activity levels — also used
// for input validation when profiles are saved.
var activityMultipliers = map[string]float64{
	models.ActivitySedentary:  1.2,
	models.ActivityLight:      1.375,
	models.ActivityModerate:   1.55,
	models.ActivityVeryActive: 1.725,
}

// calorieAdjustments maps (objective, pace) to the kcal delta applied on top
// of the activity-adjusted expenditure. Maintaining ignores pace.
var calorieAdjustments = map[string]map[string]float64{
	models.ObjectiveLose: {
		models.PaceSlow:   -250,
		models.PaceNormal: -500,
		models.PaceFast:   -750,
	},
	models.ObjectiveMaintain: {
		models.PaceSlow:   0,
		models.PaceNormal: 0,
		models.PaceFast:   0,
	},
	models.ObjectiveGain: {
		models.PaceSlow:   250,
		models.PaceNormal: 500,
		models.PaceFast:   750,
	},
}

// ValidActivityLevel reports whether s is one of the four known levels.
func ValidActivityLevel(s string) bool {
	_, ok := activityMultipliers[s]
	return ok
}

// ValidObjective reports whether s is a known objective.
func ValidObjective(s string) bool {
	_, ok := calorieAdjustments[s]
	return ok
}

// ValidPace reports whether s is a known pace.
func ValidPace(s string) bool {
	_, ok := weeklyRateKg[s]
	return ok
}

// ValidSex reports whether s is one of the two modeled values.
func ValidSex(s string) bool {
	return s == models.SexFemale || s == models.SexMale
}

// DailyCalorieTarget scales BMR by the activity factor, then applies the
// (objective, pace) adjustment, rounding to the nearest kcal. Unknown enum
// values fail — the engine never guesses a default.
func DailyCalorieTarget(bmr int, activityLevel, objective, pace string) (int, error) {
	if bmr <= 0 {
		return 0, ErrInvalidInput
	}
	mult, ok := activityMultipliers[activityLevel]
	if !ok {
		return 0, ErrInvalidInput
	}
	byObjective, ok := calorieAdjustments[objective]
	if !ok {
		return 0, ErrInvalidInput
	}
	adj, ok := byObjective[pace]
	if !ok {
		return 0, ErrInvalidInput
	}
	return int(math.Round(float64(bmr)*mult + adj)), nil
}

// MacroTargets splits a calorie target 50/25/25 (carbs/protein/fat) by calorie
// contribution, at 4 kcal/g for carbs and protein and 9 kcal/g for fat.
// Grams are rounded to the nearest whole gram.
func MacroTargets(calorieTarget int) (carbsG, proteinG, fatG int, err error) {
	if calorieTarget <= 0 {
		return 0, 0, 0, ErrInvalidInput
	}
	c := float64(calorieTarget)
	carbsG = int(math.Round(c * 0.5 / 4))
	proteinG = int(math.Round(c * 0.25 / 4))
	fatG = int(math.Round(c * 0.25 / 9))
	return carbsG, proteinG, fatG, nil
}
