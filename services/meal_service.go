package services

import (
	"github.com/giovaneneves7/mimoo-backend/models"
	"github.com/giovaneneves7/mimoo-backend/utils"

	"gorm.io/gorm"
)

type MealService struct {
	db       *gorm.DB
	progress *ProgressService
}

func NewMealService(db *gorm.DB, progress *ProgressService) *MealService {
	return &MealService{db: db, progress: progress}
}

// MealInput carries a confirmed analysis result. The caller (scanner flow)
// only reaches this point after the vision service succeeded and the user
// confirmed — an abandoned or failed analysis never creates a row.
type MealInput struct {
	Name string `json:"name" binding:"required"`
	// No "required" here: a confirmed zero-calorie analysis (water, black
	// coffee) is a legal meal, and binding would reject the explicit zero.
	// Range validation happens in LogMeal.
	Calories   float64 `json:"calories"`
	Carbs      float64 `json:"carbs"`
	Protein    float64 `json:"protein"`
	Fat        float64 `json:"fat"`
	Confidence float64 `json:"confidence"`
	Notes      string  `json:"notes"`
	PhotoURL   string  `json:"photo_url"`
}

// LogMeal creates an immutable meal row and recomputes that day's aggregate.
// Date, time and category come from the fixed-zone clock at creation —
// never from the client — so a device with the wrong timezone can't misfile
// a meal into the wrong day.
func (s *MealService) LogMeal(userID uint, input MealInput) (*models.Meal, *models.DailyProgress, error) {
	if input.Calories < 0 || input.Carbs < 0 || input.Protein < 0 || input.Fat < 0 ||
		input.Confidence < 0 || input.Confidence > 1 {
		return nil, nil, utils.ErrInvalidInput
	}

	now := utils.Now()
	meal := &models.Meal{
		UserID:     userID,
		Date:       utils.DateString(now),
		Time:       now.Format("15:04:05"),
		Category:   utils.MealTypeForHour(now.Hour()),
		Name:       input.Name,
		Calories:   input.Calories,
		Carbs:      input.Carbs,
		Protein:    input.Protein,
		Fat:        input.Fat,
		Confidence: input.Confidence,
		Notes:      input.Notes,
		PhotoURL:   input.PhotoURL,
	}
	if err := s.db.Create(meal).Error; err != nil {
		return nil, nil, err
	}

	// The meal row is already committed; the aggregate follows. If the
	// recompute fails the meal stays and the next recompute repairs the day.
	dp, err := s.progress.RecomputeDailyProgress(userID, meal.Date)
	if err != nil {
		return meal, nil, err
	}
	EmitProgressUpdate(userID, dp)
	return meal, dp, nil
}

func (s *MealService) ListMealsByDate(userID uint, date string) ([]models.Meal, error) {
	var meals []models.Meal
	err := s.db.
		Where("user_id = ? AND date = ?", userID, date).
		Order("time ASC").
		Find(&meals).Error
	return meals, err
}

func (s *MealService) ListTodayMeals(userID uint) ([]models.Meal, error) {
	return s.ListMealsByDate(userID, utils.TodayString())
}

func (s *MealService) ListRecentMeals(userID uint, limit int) ([]models.Meal, error) {
	if limit <= 0 {
		limit = 5
	}
	var meals []models.Meal
	err := s.db.
		Where("user_id = ?", userID).
		Order("date DESC, time DESC").
		Limit(limit).
		Find(&meals).Error
	return meals, err
}
