package services

import (
	"errors"
	"math"
	"testing"

	"github.com/giovaneneves7/mimoo-backend/models"
	"github.com/giovaneneves7/mimoo-backend/utils"
)

func TestLogWeight_PropagatesToProfile(t *testing.T) {
	db := newTestDB(t)
	base := &models.User{Email: "marcos@example.com", Password: "x"}
	if err := db.Create(base).Error; err != nil {
		t.Fatalf("seed user: %v", err)
	}
	profile := NewProfileService(db)
	if _, err := profile.CompleteOnboarding(base.ID, onboardingInput()); err != nil {
		t.Fatalf("onboarding: %v", err)
	}
	svc := NewWeightService(db, profile)

	log, err := svc.LogWeight(base.ID, 68.5)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if log.Date != utils.TodayString() {
		t.Errorf("log date = %q, want today", log.Date)
	}

	var u models.User
	if err := db.First(&u, base.ID).Error; err != nil {
		t.Fatalf("reload user: %v", err)
	}
	if u.WeightKg != 68.5 {
		t.Errorf("profile weight = %.1f, want 68.5", u.WeightKg)
	}
	// 10*68.5 + 6.25*175 - 5*30 + 5 = 1633.75 → 1634.
	if u.BMR != 1634 {
		t.Errorf("BMR not recomputed: %d, want 1634", u.BMR)
	}
}

func TestLogWeight_RejectsNonPositive(t *testing.T) {
	db := newTestDB(t)
	u := newTestUser(t, db)
	svc := NewWeightService(db, NewProfileService(db))

	for _, w := range []float64{0, -2, math.NaN()} {
		if _, err := svc.LogWeight(u.ID, w); !errors.Is(err, utils.ErrInvalidInput) {
			t.Errorf("weight %v: expected ErrInvalidInput, got %v", w, err)
		}
	}

	var count int64
	db.Model(&models.WeightLog{}).Count(&count)
	if count != 0 {
		t.Errorf("rejected inputs created %d weight rows", count)
	}
}

// When the profile recompute rejects the sample (here: a profile with no
// height yet), no weight row may be left behind.
func TestLogWeight_FailedRecomputeLeavesNoRow(t *testing.T) {
	db := newTestDB(t)
	bare := &models.User{Email: "bare@example.com", Password: "x"}
	if err := db.Create(bare).Error; err != nil {
		t.Fatalf("seed user: %v", err)
	}
	svc := NewWeightService(db, NewProfileService(db))

	if _, err := svc.LogWeight(bare.ID, 70); err == nil {
		t.Fatal("expected recompute failure for profile without biometrics")
	}
	var count int64
	db.Model(&models.WeightLog{}).Where("user_id = ?", bare.ID).Count(&count)
	if count != 0 {
		t.Errorf("failed log left %d weight rows", count)
	}
}

func TestWeightHistory_NewestFirst(t *testing.T) {
	db := newTestDB(t)
	u := newTestUser(t, db)
	svc := NewWeightService(db, NewProfileService(db))

	rows := []models.WeightLog{
		{UserID: u.ID, Date: "2026-03-08", WeightKg: 70},
		{UserID: u.ID, Date: "2026-03-10", WeightKg: 69},
		{UserID: u.ID, Date: "2026-03-09", WeightKg: 69.5},
	}
	for i := range rows {
		if err := db.Create(&rows[i]).Error; err != nil {
			t.Fatalf("seed: %v", err)
		}
	}

	hist, err := svc.History(u.ID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(hist) != 3 {
		t.Fatalf("history = %d entries, want 3", len(hist))
	}
	if hist[0].Date != "2026-03-10" || hist[2].Date != "2026-03-08" {
		t.Errorf("history not newest first: %s .. %s", hist[0].Date, hist[2].Date)
	}
}
