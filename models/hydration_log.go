package models

import "gorm.io/gorm"

const (
	BeverageWater  = "water"
	BeverageTea    = "tea"
	BeverageCoffee = "coffee"
	BeverageJuice  = "juice"
	BeverageOther  = "other"
)

type HydrationLog struct {
	gorm.Model
	UserID   uint   `gorm:"index;not null"`
	Date     string `gorm:"size:10;index;not null"` // YYYY-MM-DD, fixed zone
	Time     string `gorm:"size:8"`                 // HH:MM:SS, fixed zone
	VolumeML float64
	Kind     string `gorm:"size:10"`
}
