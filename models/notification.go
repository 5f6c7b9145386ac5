package models

import "time"

const (
	NotificationGoalMet  = "goal_met"
	NotificationReminder = "reminder"
)

type Notification struct {
	ID        uint      `gorm:"primaryKey"`
	UserID    uint      `gorm:"index"`
	Type      string    `gorm:"size:20"` // "goal_met" | "reminder"
	Message   string    `gorm:"type:text"`
	Date      string    `gorm:"size:10"` // YYYY-MM-DD the event refers to
	CreatedAt time.Time
}
