package services

import (
	"log"
	"time"

	"github.com/giovaneneves7/mimoo-backend/models"
	"github.com/giovaneneves7/mimoo-backend/utils"

	"gorm.io/gorm"
)

// RolloverWatcher detects the fixed-zone date advancing and re-runs the full
// load-and-aggregate pipeline for the day that just closed, sealing its final
// goal-met state. It owns no core state: the recompute path is the same one
// meal logging uses.
type RolloverWatcher struct {
	db       *gorm.DB
	progress *ProgressService
	today    string
}

func NewRolloverWatcher(db *gorm.DB, progress *ProgressService) *RolloverWatcher {
	return &RolloverWatcher{db: db, progress: progress, today: utils.TodayString()}
}

// Start ticks every minute until stop is closed.
func (w *RolloverWatcher) Start(stop <-chan struct{}) {
	t := time.NewTicker(time.Minute)
	go func() {
		defer t.Stop()
		for {
			select {
			case <-stop:
				return
			case <-t.C:
				w.tick()
			}
		}
	}()
}

func (w *RolloverWatcher) tick() {
	now := utils.TodayString()
	if now == w.today {
		return
	}
	closed := w.today
	w.today = now
	log.Printf("day rollover: %s -> %s, sealing aggregates for %s", closed, now, closed)

	// Only users who logged meals on the closed day have anything to seal;
	// everyone else stays in the "no data" state for that date.
	var userIDs []uint
	if err := w.db.Model(&models.Meal{}).
		Where("date = ?", closed).
		Distinct("user_id").
		Pluck("user_id", &userIDs).Error; err != nil {
		log.Printf("rollover: listing users for %s: %v", closed, err)
		return
	}

	for _, uid := range userIDs {
		if _, err := w.progress.RecomputeDailyProgress(uid, closed); err != nil {
			log.Printf("rollover: recompute user %d date %s: %v", uid, closed, err)
		}
	}
}
