package services

import (
	"errors"
	"math"

	"github.com/giovaneneves7/mimoo-backend/models"
	"github.com/giovaneneves7/mimoo-backend/utils"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// goalTolerance: a day counts as on-goal from 80% of the calorie target
// upward. There is deliberately no upper bound — overeating never invalidates
// a day.
const goalTolerance = 0.8

type ProgressService struct{ db *gorm.DB }

// clauseOnConflictUserDate folds an insert that collides on the unique
// (user_id, date) index into an update of the existing row.
func clauseOnConflictUserDate() clause.OnConflict {
	return clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}, {Name: "date"}},
		DoUpdates: clause.AssignmentColumns([]string{"calories", "carbs", "protein", "fat", "goal_met", "updated_at"}),
	}
}

func NewProgressService(db *gorm.DB) *ProgressService { return &ProgressService{db: db} }

// RecomputeDailyProgress rebuilds the aggregate for (userID, date) by
// re-summing every meal of that day. It is idempotent and never applies an
// incremental delta: with no row locking against the store, a fresh full sum
// is what makes racing meal insertions converge to a correct total.
//
// A day with zero meals and no existing row persists nothing — an absent row
// is the "no data" state and must stay distinct from "logged but missed".
func (s *ProgressService) RecomputeDailyProgress(userID uint, date string) (*models.DailyProgress, error) {
	var meals []models.Meal
	if err := s.db.
		Where("user_id = ? AND date = ?", userID, date).
		Find(&meals).Error; err != nil {
		return nil, err
	}

	var existing models.DailyProgress
	hasRow := true
	if err := s.db.Where("user_id = ? AND date = ?", userID, date).First(&existing).Error; err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, err
		}
		hasRow = false
	}
	if len(meals) == 0 && !hasRow {
		return nil, nil
	}

	var cals, carbs, prot, fat float64
	for _, m := range meals {
		cals += m.Calories
		carbs += m.Carbs
		prot += m.Protein
		fat += m.Fat
	}

	var user models.User
	if err := s.db.First(&user, userID).Error; err != nil {
		return nil, err
	}

	// Data-integrity guard: refuse to write an aggregate that could only come
	// from corrupt rows or an unconfigured profile.
	if cals < 0 || carbs < 0 || prot < 0 || fat < 0 || user.DailyCalories <= 0 {
		return nil, ErrAggregateInconsistent
	}

	wasMet := hasRow && existing.GoalMet
	goalMet := cals >= goalTolerance*float64(user.DailyCalories)

	dp := models.DailyProgress{
		UserID:   userID,
		Date:     date,
		Calories: cals,
		Carbs:    carbs,
		Protein:  prot,
		Fat:      fat,
		GoalMet:  goalMet,
	}

	if hasRow {
		dp.ID = existing.ID
		dp.CreatedAt = existing.CreatedAt
		if err := s.db.Save(&dp).Error; err != nil {
			return nil, err
		}
	} else {
		// Two racing first recomputes for a day can both see "no row"; the
		// unique (user_id, date) index plus ON CONFLICT turns the loser into
		// an update of the winner's row, so each write still lands a fresh
		// full sum on the single aggregate.
		if err := s.db.Clauses(clauseOnConflictUserDate()).Create(&dp).Error; err != nil {
			return nil, err
		}
	}

	if goalMet && !wasMet {
		EmitGoalMet(userID, date)
	}
	return &dp, nil
}

// GetProgressByDate returns the aggregate for a day, or nil when the user
// logged nothing that day.
func (s *ProgressService) GetProgressByDate(userID uint, date string) (*models.DailyProgress, error) {
	var dp models.DailyProgress
	err := s.db.Where("user_id = ? AND date = ?", userID, date).First(&dp).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &dp, nil
}

func (s *ProgressService) GetAllDailyProgress(userID uint) ([]models.DailyProgress, error) {
	var rows []models.DailyProgress
	err := s.db.
		Where("user_id = ?", userID).
		Order("date desc").
		Find(&rows).Error
	return rows, err
}

// DaySummary is one calendar day of a history window. HasData distinguishes
// "user logged nothing" from "logged but missed the goal" — the UI must never
// conflate the two.
type DaySummary struct {
	Date      string  `json:"date"`
	DayName   string  `json:"day_name"`
	DayNumber int     `json:"day_number"`
	IsToday   bool    `json:"is_today"`
	HasData   bool    `json:"has_data"`
	Calories  float64 `json:"calories"`
	Carbs     float64 `json:"carbs"`
	Protein   float64 `json:"protein"`
	Fat       float64 `json:"fat"`
	GoalMet   bool    `json:"goal_met"`
}

type WeekSummary struct {
	Days        []DaySummary `json:"days"`
	DaysOnTrack int          `json:"days_on_track"`
	AvgCalories int          `json:"avg_calories"`
}

// GetWeekSummary builds the last 7 fixed-zone calendar days. Days without an
// aggregate row appear with HasData=false; they never count toward
// DaysOnTrack, and AvgCalories divides by the number of days with data only,
// so empty days don't drag the average toward zero.
func (s *ProgressService) GetWeekSummary(userID uint) (*WeekSummary, error) {
	days := utils.WeekDays()

	from := days[0].DateString
	to := days[len(days)-1].DateString
	var rows []models.DailyProgress
	if err := s.db.
		Where("user_id = ? AND date >= ? AND date <= ?", userID, from, to).
		Find(&rows).Error; err != nil {
		return nil, err
	}
	idx := make(map[string]models.DailyProgress, len(rows))
	for _, r := range rows {
		idx[r.Date] = r
	}

	out := &WeekSummary{Days: make([]DaySummary, 0, len(days))}
	var total float64
	var withData int
	for _, d := range days {
		ds := DaySummary{
			Date:      d.DateString,
			DayName:   d.DayName,
			DayNumber: d.DayNumber,
			IsToday:   d.IsToday,
		}
		if dp, ok := idx[d.DateString]; ok {
			ds.HasData = true
			ds.Calories = dp.Calories
			ds.Carbs = dp.Carbs
			ds.Protein = dp.Protein
			ds.Fat = dp.Fat
			ds.GoalMet = dp.GoalMet

			total += dp.Calories
			withData++
			if dp.GoalMet {
				out.DaysOnTrack++
			}
		}
		out.Days = append(out.Days, ds)
	}
	if withData > 0 {
		out.AvgCalories = int(math.Round(total / float64(withData)))
	}
	return out, nil
}
