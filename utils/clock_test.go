package utils

import (
	"testing"
	"time"

	"github.com/giovaneneves7/mimoo-backend/models"
)

// A meal logged just before midnight and one just after belong to different
// calendar days, even when the instants are only minutes apart.
func TestDateString_DayBoundary(t *testing.T) {
	before := time.Date(2026, 3, 10, 23, 59, 0, 0, FixedZone)
	after := time.Date(2026, 3, 11, 0, 1, 0, 0, FixedZone)

	if got := DateString(before); got != "2026-03-10" {
		t.Errorf("DateString(23:59) = %q, want 2026-03-10", got)
	}
	if got := DateString(after); got != "2026-03-11" {
		t.Errorf("DateString(00:01) = %q, want 2026-03-11", got)
	}
}

// Instants are converted into the fixed zone before bucketing: 01:30 UTC is
// still the previous day in UTC-3.
func TestDateString_ConvertsToFixedZone(t *testing.T) {
	utc := time.Date(2026, 3, 11, 1, 30, 0, 0, time.UTC)
	if got := DateString(utc); got != "2026-03-10" {
		t.Errorf("DateString(01:30Z) = %q, want 2026-03-10", got)
	}
}

func TestMealTypeForHour(t *testing.T) {
	cases := []struct {
		hour int
		want string
	}{
		{0, models.MealBreakfast},
		{9, models.MealBreakfast},
		{10, models.MealMorningSnack},
		{11, models.MealMorningSnack},
		{12, models.MealLunch},
		{14, models.MealLunch},
		{15, models.MealAfternoonSnack},
		{17, models.MealAfternoonSnack},
		{18, models.MealDinner},
		{20, models.MealDinner},
		{21, models.MealLateSnack},
		{23, models.MealLateSnack},
	}
	for _, tc := range cases {
		if got := MealTypeForHour(tc.hour); got != tc.want {
			t.Errorf("MealTypeForHour(%d) = %q, want %q", tc.hour, got, tc.want)
		}
	}
}

func TestLastNDaysFrom(t *testing.T) {
	// A Tuesday at mid-day.
	now := time.Date(2026, 3, 10, 12, 0, 0, 0, FixedZone)
	days := lastNDaysFrom(now, 7)

	if len(days) != 7 {
		t.Fatalf("got %d days, want 7", len(days))
	}
	if days[0].DateString != "2026-03-04" {
		t.Errorf("first day = %q, want 2026-03-04", days[0].DateString)
	}
	if days[6].DateString != "2026-03-10" {
		t.Errorf("last day = %q, want 2026-03-10", days[6].DateString)
	}
	if !days[6].IsToday {
		t.Error("last day should be flagged as today")
	}
	for i, d := range days[:6] {
		if d.IsToday {
			t.Errorf("day %d (%s) wrongly flagged as today", i, d.DateString)
		}
	}
	if days[6].DayName != "Tue" {
		t.Errorf("day name = %q, want Tue", days[6].DayName)
	}
	if days[6].DayNumber != 10 {
		t.Errorf("day number = %d, want 10", days[6].DayNumber)
	}
}

// The window must cross month boundaries by calendar arithmetic.
func TestLastNDaysFrom_MonthBoundary(t *testing.T) {
	now := time.Date(2026, 3, 2, 8, 0, 0, 0, FixedZone)
	days := lastNDaysFrom(now, 7)

	want := []string{
		"2026-02-24", "2026-02-25", "2026-02-26", "2026-02-27",
		"2026-02-28", "2026-03-01", "2026-03-02",
	}
	for i, w := range want {
		if days[i].DateString != w {
			t.Errorf("day %d = %q, want %q", i, days[i].DateString, w)
		}
	}
}
