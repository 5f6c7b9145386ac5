package services

import (
	"errors"
	"testing"

	"github.com/giovaneneves7/mimoo-backend/models"
	"github.com/giovaneneves7/mimoo-backend/utils"

	"github.com/gin-gonic/gin/binding"
)

func TestLogMeal(t *testing.T) {
	db := newTestDB(t)
	u := newTestUser(t, db)
	svc := NewMealService(db, NewProgressService(db))

	meal, dp, err := svc.LogMeal(u.ID, MealInput{
		Name:       "Feijoada",
		Calories:   850,
		Carbs:      60,
		Protein:    45,
		Fat:        40,
		Confidence: 0.9,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// Date and category come from the server clock, never the client.
	if meal.Date != utils.TodayString() {
		t.Errorf("meal date = %q, want today", meal.Date)
	}
	if meal.Category == "" {
		t.Error("meal category not assigned")
	}

	// The day's aggregate is rebuilt in the same call.
	if dp == nil {
		t.Fatal("expected a fresh aggregate")
	}
	if dp.Calories != 850 {
		t.Errorf("aggregate calories = %.0f, want 850", dp.Calories)
	}

	// A second meal re-sums rather than doubling.
	_, dp, err = svc.LogMeal(u.ID, MealInput{Name: "Suco", Calories: 150, Confidence: 0.8})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if dp.Calories != 1000 {
		t.Errorf("aggregate calories = %.0f, want 1000", dp.Calories)
	}
}

// A confirmed zero-calorie item must pass both request binding and the
// service: zero is a value, not a missing field.
func TestLogMeal_ZeroCalories(t *testing.T) {
	db := newTestDB(t)
	u := newTestUser(t, db)
	svc := NewMealService(db, NewProgressService(db))

	var input MealInput
	body := []byte(`{"name":"Espresso","calories":0,"confidence":0.95}`)
	if err := binding.JSON.BindBody(body, &input); err != nil {
		t.Fatalf("binding rejected explicit zero calories: %v", err)
	}

	meal, dp, err := svc.LogMeal(u.ID, input)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if meal.Calories != 0 {
		t.Errorf("meal calories = %.0f, want 0", meal.Calories)
	}
	if dp == nil || dp.Calories != 0 {
		t.Errorf("aggregate = %+v, want zero-calorie day with data", dp)
	}
}

func TestLogMeal_Validation(t *testing.T) {
	db := newTestDB(t)
	u := newTestUser(t, db)
	svc := NewMealService(db, NewProgressService(db))

	cases := []struct {
		name  string
		input MealInput
	}{
		{"negative calories", MealInput{Name: "x", Calories: -10}},
		{"negative protein", MealInput{Name: "x", Calories: 100, Protein: -1}},
		{"confidence above one", MealInput{Name: "x", Calories: 100, Confidence: 1.5}},
		{"negative confidence", MealInput{Name: "x", Calories: 100, Confidence: -0.1}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, _, err := svc.LogMeal(u.ID, tc.input); !errors.Is(err, utils.ErrInvalidInput) {
				t.Errorf("expected ErrInvalidInput, got %v", err)
			}
		})
	}

	var count int64
	db.Model(&models.Meal{}).Count(&count)
	if count != 0 {
		t.Errorf("rejected inputs created %d meal rows", count)
	}
}

func TestListMealsByDate_OrderedByTime(t *testing.T) {
	db := newTestDB(t)
	u := newTestUser(t, db)
	svc := NewMealService(db, NewProgressService(db))

	rows := []models.Meal{
		{UserID: u.ID, Date: "2026-03-10", Time: "19:30:00", Category: models.MealDinner, Name: "dinner", Calories: 700},
		{UserID: u.ID, Date: "2026-03-10", Time: "08:15:00", Category: models.MealBreakfast, Name: "breakfast", Calories: 350},
		{UserID: u.ID, Date: "2026-03-09", Time: "12:00:00", Category: models.MealLunch, Name: "other day", Calories: 600},
	}
	for i := range rows {
		if err := db.Create(&rows[i]).Error; err != nil {
			t.Fatalf("seed: %v", err)
		}
	}

	meals, err := svc.ListMealsByDate(u.ID, "2026-03-10")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(meals) != 2 {
		t.Fatalf("meals = %d, want 2", len(meals))
	}
	if meals[0].Name != "breakfast" || meals[1].Name != "dinner" {
		t.Errorf("meals not ordered by time: %q, %q", meals[0].Name, meals[1].Name)
	}
}
