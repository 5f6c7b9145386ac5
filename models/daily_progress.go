package models

import "gorm.io/gorm"

// DailyProgress is the per-(user, date) aggregate. It is always rebuilt by
// re-summing every meal of the day — never by applying a delta — so racing
// meal insertions converge to a correct total (last writer wins on the row,
// but every write carries a fresh sum).
// One row per (user, date), enforced by the composite unique index — racing
// first recomputes collapse onto the same row instead of persisting twins.
type DailyProgress struct {
	gorm.Model
	UserID uint   `gorm:"not null;uniqueIndex:idx_daily_user_date"`
	Date   string `gorm:"size:10;not null;uniqueIndex:idx_daily_user_date"` // YYYY-MM-DD, fixed zone

	Calories float64
	Carbs    float64
	Protein  float64
	Fat      float64

	// GoalMet: calories >= 80% of the user's daily target. Overshooting the
	// target does not invalidate the day.
	GoalMet bool
}
