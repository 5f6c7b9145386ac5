package services

import (
	"testing"

	"github.com/giovaneneves7/mimoo-backend/models"
)

// The first recompute that crosses the goal threshold persists exactly one
// goal-met notification; staying above it on later recomputes emits nothing
// new.
func TestRecomputeDailyProgress_EmitsGoalMetOnce(t *testing.T) {
	db := newTestDB(t)
	u := newTestUser(t, db)
	svc := NewProgressService(db)

	InitEventDeps(db, nil, nil)
	t.Cleanup(func() { _events = eventDeps{} })

	// Below the threshold: no notification.
	addMeal(t, db, u.ID, "2026-03-10", 1000, 0, 0, 0)
	if _, err := svc.RecomputeDailyProgress(u.ID, "2026-03-10"); err != nil {
		t.Fatalf("recompute: %v", err)
	}
	var count int64
	db.Model(&models.Notification{}).Where("user_id = ?", u.ID).Count(&count)
	if count != 0 {
		t.Fatalf("notifications before goal = %d, want 0", count)
	}

	// Crossing 80% of 2000 flips the day and emits.
	addMeal(t, db, u.ID, "2026-03-10", 700, 0, 0, 0)
	if _, err := svc.RecomputeDailyProgress(u.ID, "2026-03-10"); err != nil {
		t.Fatalf("recompute: %v", err)
	}
	var n models.Notification
	if err := db.Where("user_id = ?", u.ID).First(&n).Error; err != nil {
		t.Fatalf("goal-met notification missing: %v", err)
	}
	if n.Type != models.NotificationGoalMet {
		t.Errorf("notification type = %q, want %q", n.Type, models.NotificationGoalMet)
	}
	if n.Date != "2026-03-10" {
		t.Errorf("notification date = %q, want 2026-03-10", n.Date)
	}

	// Already met: a further recompute must not emit again.
	addMeal(t, db, u.ID, "2026-03-10", 300, 0, 0, 0)
	if _, err := svc.RecomputeDailyProgress(u.ID, "2026-03-10"); err != nil {
		t.Fatalf("recompute: %v", err)
	}
	db.Model(&models.Notification{}).Where("user_id = ?", u.ID).Count(&count)
	if count != 1 {
		t.Errorf("notifications after repeat recompute = %d, want 1", count)
	}
}

// Before InitEventDeps runs, emission is a silent no-op.
func TestEmitGoalMet_UninitializedNoOp(t *testing.T) {
	db := newTestDB(t)
	u := newTestUser(t, db)

	_events = eventDeps{}
	EmitGoalMet(u.ID, "2026-03-10")

	var count int64
	db.Model(&models.Notification{}).Count(&count)
	if count != 0 {
		t.Errorf("uninitialized emit wrote %d notifications", count)
	}
}
