package models

import (
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Closed enums. Validation maps live in utils/goals.go — values outside these
// sets are rejected, never defaulted.
const (
	SexFemale = "female"
	SexMale   = "male"

	ObjectiveLose     = "lose_weight"
	ObjectiveMaintain = "maintain_weight"
	ObjectiveGain     = "gain_mass"

	ActivitySedentary  = "sedentary"
	ActivityLight      = "light"
	ActivityModerate   = "moderate"
	ActivityVeryActive = "very_active"

	PaceSlow   = "slow"
	PaceNormal = "normal"
	PaceFast   = "fast"
)

type User struct {
	gorm.Model
	Email    string `gorm:"uniqueIndex;not null"`
	Password string `gorm:"not null"`
	Name     string

	// Profile inputs
	Sex           string  `gorm:"size:10"` // "female" | "male"
	Age           int     // years
	HeightCm      float64
	WeightKg      float64
	GoalWeightKg  float64
	Objective     string `gorm:"size:20"` // lose_weight | maintain_weight | gain_mass
	ActivityLevel string `gorm:"size:20"` // sedentary | light | moderate | very_active
	Pace          string `gorm:"size:10"` // slow | normal | fast

	// Onboarding extras
	Barriers         datatypes.JSON `gorm:"type:json"`
	EmotionalTrigger string
	PhotoURL         string

	// Derived fields — recomputed together from the inputs above, never edited
	// independently (see services.recalculateDerived).
	BMI           float64
	BMR           int
	DailyCalories int
	WaterTargetML int
	TargetDate    string `gorm:"size:10"` // YYYY-MM-DD

	Onboarded            bool
	NotificationsEnabled bool `gorm:"default:true"`

	ResetToken    string
	ResetTokenExp time.Time
}
