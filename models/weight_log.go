package models

import "gorm.io/gorm"

// WeightLog holds per-date weight samples for trend display. Read-only after
// creation.
type WeightLog struct {
	gorm.Model
	UserID   uint    `gorm:"index;not null"`
	Date     string  `gorm:"size:10;index;not null"` // YYYY-MM-DD, fixed zone
	WeightKg float64
}
