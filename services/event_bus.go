package services

import (
	"fmt"
	"time"

	"github.com/giovaneneves7/mimoo-backend/models"

	"gorm.io/gorm"
)

type eventDeps struct {
	db *gorm.DB
	rt *RealtimeHub
	ps *PushService
}

var _events eventDeps

// InitEventDeps wires the sinks for goal events. Hub and push may be nil;
// emission then degrades to a persisted Notification row only.
func InitEventDeps(db *gorm.DB, rt *RealtimeHub, ps *PushService) {
	_events = eventDeps{db: db, rt: rt, ps: ps}
}

// EmitGoalMet records that a day's calorie goal was reached for the first
// time, and fans out to the realtime hub and push endpoints. Safe to call
// anywhere; a no-op before InitEventDeps.
func EmitGoalMet(userID uint, date string) {
	if _events.db == nil {
		return
	}
	n := &models.Notification{
		UserID:    userID,
		Type:      models.NotificationGoalMet,
		Message:   fmt.Sprintf("Daily goal reached on %s", date),
		Date:      date,
		CreatedAt: time.Now(),
	}
	_ = _events.db.Create(n).Error

	if _events.rt != nil {
		_events.rt.BroadcastProgress(userID, map[string]any{
			"kind": "goal.met",
			"date": date,
		})
	}
	if _events.ps != nil {
		_events.ps.PushToUser(userID, "Goal reached!", "You hit your calorie goal today. Keep it up!", map[string]string{
			"type": models.NotificationGoalMet, "date": date,
		})
	}
}

// EmitProgressUpdate streams a fresh aggregate to connected clients.
func EmitProgressUpdate(userID uint, dp *models.DailyProgress) {
	if _events.rt == nil || dp == nil {
		return
	}
	_events.rt.BroadcastProgress(userID, map[string]any{
		"kind":     "progress.updated",
		"progress": dp,
	})
}
