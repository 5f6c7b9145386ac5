package models

import "gorm.io/gorm"

// Six time-of-day buckets; assigned from the fixed-zone clock at creation,
// never from a client-supplied timestamp.
const (
	MealBreakfast      = "breakfast"
	MealMorningSnack   = "morning_snack"
	MealLunch          = "lunch"
	MealAfternoonSnack = "afternoon_snack"
	MealDinner         = "dinner"
	MealLateSnack      = "late_snack"
)

// Meal is one logged meal. Rows are immutable once created — there is no edit
// path; corrections happen by logging again. Each creation triggers a full
// recompute of that date's DailyProgress.
type Meal struct {
	gorm.Model
	UserID   uint   `gorm:"index;not null"`
	Date     string `gorm:"size:10;index;not null"` // YYYY-MM-DD, fixed zone
	Time     string `gorm:"size:8"`                 // HH:MM:SS, fixed zone
	Category string `gorm:"size:20"`

	Name     string
	Calories float64
	Carbs    float64 // grams
	Protein  float64 // grams
	Fat      float64 // grams

	Confidence float64 // [0,1] from the vision service
	Notes      string  `gorm:"type:text"`
	PhotoURL   string
}
