package services

import (
	"errors"
	"testing"

	"github.com/giovaneneves7/mimoo-backend/models"
	"github.com/giovaneneves7/mimoo-backend/utils"
)

func TestAddHydration_Defaults(t *testing.T) {
	db := newTestDB(t)
	u := newTestUser(t, db)
	svc := NewHydrationService(db)

	log, err := svc.AddHydration(u.ID, 0, "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if log.VolumeML != 250 {
		t.Errorf("default volume = %.0f, want 250", log.VolumeML)
	}
	if log.Kind != models.BeverageWater {
		t.Errorf("default kind = %q, want water", log.Kind)
	}
	if log.Date != utils.TodayString() {
		t.Errorf("date = %q, want today", log.Date)
	}
}

func TestAddHydration_Validation(t *testing.T) {
	db := newTestDB(t)
	u := newTestUser(t, db)
	svc := NewHydrationService(db)

	if _, err := svc.AddHydration(u.ID, -100, models.BeverageWater); !errors.Is(err, utils.ErrInvalidInput) {
		t.Errorf("negative volume: expected ErrInvalidInput, got %v", err)
	}
	if _, err := svc.AddHydration(u.ID, 300, "soda"); !errors.Is(err, utils.ErrInvalidInput) {
		t.Errorf("unknown beverage: expected ErrInvalidInput, got %v", err)
	}
}

func TestTodayHydration_Total(t *testing.T) {
	db := newTestDB(t)
	u := newTestUser(t, db)
	svc := NewHydrationService(db)

	if _, err := svc.AddHydration(u.ID, 250, models.BeverageWater); err != nil {
		t.Fatalf("add: %v", err)
	}
	if _, err := svc.AddHydration(u.ID, 400, models.BeverageTea); err != nil {
		t.Fatalf("add: %v", err)
	}

	total, logs, err := svc.TodayHydration(u.ID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if total != 650 {
		t.Errorf("total = %.0f, want 650", total)
	}
	if len(logs) != 2 {
		t.Errorf("entries = %d, want 2", len(logs))
	}
}

// Undo removes exactly the most recent entry of today.
func TestRemoveLastHydration(t *testing.T) {
	db := newTestDB(t)
	u := newTestUser(t, db)
	svc := NewHydrationService(db)

	if _, err := svc.AddHydration(u.ID, 250, models.BeverageWater); err != nil {
		t.Fatalf("add: %v", err)
	}
	if _, err := svc.AddHydration(u.ID, 500, models.BeverageJuice); err != nil {
		t.Fatalf("add: %v", err)
	}

	if err := svc.RemoveLastHydration(u.ID); err != nil {
		t.Fatalf("undo: %v", err)
	}
	total, logs, err := svc.TodayHydration(u.ID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if total != 250 {
		t.Errorf("total after undo = %.0f, want 250", total)
	}
	if len(logs) != 1 {
		t.Errorf("entries after undo = %d, want 1", len(logs))
	}
}

// Undoing with nothing logged today is a no-op, not an error.
func TestRemoveLastHydration_EmptyNoOp(t *testing.T) {
	db := newTestDB(t)
	u := newTestUser(t, db)
	svc := NewHydrationService(db)

	if err := svc.RemoveLastHydration(u.ID); err != nil {
		t.Errorf("undo on empty day: expected nil, got %v", err)
	}

	// Also a no-op against entries from other days.
	old := &models.HydrationLog{UserID: u.ID, Date: "2020-01-01", Time: "09:00:00", VolumeML: 300, Kind: models.BeverageWater}
	if err := db.Create(old).Error; err != nil {
		t.Fatalf("seed: %v", err)
	}
	if err := svc.RemoveLastHydration(u.ID); err != nil {
		t.Errorf("undo with only past entries: expected nil, got %v", err)
	}
	var count int64
	db.Model(&models.HydrationLog{}).Count(&count)
	if count != 1 {
		t.Errorf("past entry was deleted")
	}
}
