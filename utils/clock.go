package utils

import (
	"time"

	"github.com/giovaneneves7/mimoo-backend/models"
)

// All dates in the system are keyed to Brasília time (UTC-3), regardless of
// where the server or the user's device runs. A fixed offset (not the IANA
// zone) keeps day bucketing deterministic — Brazil abolished DST in 2019.
var FixedZone = time.FixedZone("BRT", -3*60*60)

const DateLayout = "2006-01-02"

// Now returns the current instant in the fixed zone.
func Now() time.Time {
	return time.Now().In(FixedZone)
}

// TodayString returns today's date as YYYY-MM-DD in the fixed zone.
func TodayString() string {
	return DateString(Now())
}

// DateString formats an instant as a fixed-zone YYYY-MM-DD date.
func DateString(t time.Time) string {
	return t.In(FixedZone).Format(DateLayout)
}

// CurrentTimeString returns HH:MM:SS in the fixed zone.
func CurrentTimeString() string {
	return Now().Format("15:04:05")
}

// MealTypeForHour maps an hour of day (fixed zone) to one of the six meal
// buckets. Boundaries follow the product's original mapping.
func MealTypeForHour(hour int) string {
	switch {
	case hour < 10:
		return models.MealBreakfast
	case hour < 12:
		return models.MealMorningSnack
	case hour < 15:
		return models.MealLunch
	case hour < 18:
		return models.MealAfternoonSnack
	case hour < 21:
		return models.MealDinner
	default:
		return models.MealLateSnack
	}
}

// CurrentMealType returns the meal bucket for the current fixed-zone time.
func CurrentMealType() string {
	return MealTypeForHour(Now().Hour())
}

var dayNames = [7]string{"Sun", "Mon", "Tue", "Wed", "Thu", "Fri", "Sat"}

// DayInfo labels one calendar day of a history window.
type DayInfo struct {
	Date       time.Time `json:"-"`
	DateString string    `json:"date"`
	DayName    string    `json:"day_name"`
	DayNumber  int       `json:"day_number"`
	IsToday    bool      `json:"is_today"`
}

// LastNDays returns the last n fixed-zone calendar days ending at today,
// oldest first.
func LastNDays(n int) []DayInfo {
	return lastNDaysFrom(Now(), n)
}

// WeekDays returns the last 7 days including today.
func WeekDays() []DayInfo {
	return LastNDays(7)
}

// lastNDaysFrom walks backward by whole calendar days with AddDate, so each
// entry is exactly one [00:00, 24:00) fixed-zone day. Subtracting 24h
// multiples from an arbitrary instant would break on days that are not 24h
// long in zones that shift.
func lastNDaysFrom(now time.Time, n int) []DayInfo {
	now = now.In(FixedZone)
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, FixedZone)

	days := make([]DayInfo, 0, n)
	for i := n - 1; i >= 0; i-- {
		d := today.AddDate(0, 0, -i)
		days = append(days, DayInfo{
			Date:       d,
			DateString: d.Format(DateLayout),
			DayName:    dayNames[int(d.Weekday())],
			DayNumber:  d.Day(),
			IsToday:    i == 0,
		})
	}
	return days
}
