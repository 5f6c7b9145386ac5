package services

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/giovaneneves7/mimoo-backend/models"
	"github.com/giovaneneves7/mimoo-backend/utils"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type ProfileService struct{ db *gorm.DB }

func NewProfileService(db *gorm.DB) *ProfileService { return &ProfileService{db: db} }

type OnboardingInput struct {
	Name             string   `json:"name" binding:"required"`
	Sex              string   `json:"sex" binding:"required"`
	Age              int      `json:"age" binding:"required"`
	HeightCm         float64  `json:"height_cm" binding:"required"`
	WeightKg         float64  `json:"weight_kg" binding:"required"`
	GoalWeightKg     float64  `json:"goal_weight_kg" binding:"required"`
	Objective        string   `json:"objective" binding:"required"`
	ActivityLevel    string   `json:"activity_level" binding:"required"`
	Pace             string   `json:"pace" binding:"required"`
	Barriers         []string `json:"barriers"`
	EmotionalTrigger string   `json:"emotional_trigger"`
	PhotoBase64      string   `json:"photo_base64"`
}

func validateEnums(sex, objective, activityLevel, pace string) error {
	if !utils.ValidSex(sex) || !utils.ValidObjective(objective) ||
		!utils.ValidActivityLevel(activityLevel) || !utils.ValidPace(pace) {
		return utils.ErrInvalidInput
	}
	return nil
}

// recalculateDerived recomputes every derived field from the same set of
// inputs in one pass. Derived fields are never edited independently — a
// change to any input funnels through here.
func recalculateDerived(u *models.User) error {
	bmi, err := utils.CalculateBMI(u.WeightKg, u.HeightCm)
	if err != nil {
		return err
	}
	bmr, err := utils.CalculateBMR(u.WeightKg, u.HeightCm, u.Age, u.Sex)
	if err != nil {
		return err
	}
	calories, err := utils.DailyCalorieTarget(bmr, u.ActivityLevel, u.Objective, u.Pace)
	if err != nil {
		return err
	}
	water, err := utils.WaterTargetML(u.WeightKg)
	if err != nil {
		return err
	}
	target, err := utils.CalculateTargetDate(u.WeightKg, u.GoalWeightKg, u.Pace, utils.Now())
	if err != nil {
		return err
	}

	u.BMI = bmi
	u.BMR = bmr
	u.DailyCalories = calories
	u.WaterTargetML = water
	u.TargetDate = utils.DateString(target)
	return nil
}

// CompleteOnboarding fills the profile from the onboarding flow and computes
// all derived fields together.
func (s *ProfileService) CompleteOnboarding(userID uint, input OnboardingInput) (*models.User, error) {
	if err := validateEnums(input.Sex, input.Objective, input.ActivityLevel, input.Pace); err != nil {
		return nil, err
	}

	var user models.User
	if err := s.db.First(&user, userID).Error; err != nil {
		return nil, err
	}

	user.Name = input.Name
	user.Sex = input.Sex
	user.Age = input.Age
	user.HeightCm = input.HeightCm
	user.WeightKg = input.WeightKg
	user.GoalWeightKg = input.GoalWeightKg
	user.Objective = input.Objective
	user.ActivityLevel = input.ActivityLevel
	user.Pace = input.Pace
	user.EmotionalTrigger = input.EmotionalTrigger

	if len(input.Barriers) > 0 {
		raw, err := json.Marshal(input.Barriers)
		if err != nil {
			return nil, err
		}
		user.Barriers = datatypes.JSON(raw)
	}

	if input.PhotoBase64 != "" {
		url, err := utils.UploadBase64ImageToS3(input.PhotoBase64, "profile-photos")
		if err != nil {
			return nil, fmt.Errorf("failed to upload profile photo: %w", err)
		}
		user.PhotoURL = url
	}

	if err := recalculateDerived(&user); err != nil {
		return nil, err
	}
	user.Onboarded = true

	if err := s.db.Save(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

type ProfileUpdateInput struct {
	Name          string   `json:"name"`
	WeightKg      *float64 `json:"weight_kg"`
	GoalWeightKg  *float64 `json:"goal_weight_kg"`
	HeightCm      *float64 `json:"height_cm"`
	Age           *int     `json:"age"`
	Objective     string   `json:"objective"`
	ActivityLevel string   `json:"activity_level"`
	Pace          string   `json:"pace"`
	PhotoBase64   string   `json:"photo_base64"`
	Notifications *bool    `json:"notifications_enabled"`
}

// UpdateProfile applies partial edits. Any change to a biometric input or to
// (objective, pace, activity) triggers a full recompute of the derived set.
func (s *ProfileService) UpdateProfile(userID uint, input ProfileUpdateInput) (*models.User, error) {
	var user models.User
	if err := s.db.First(&user, userID).Error; err != nil {
		return nil, err
	}

	recompute := false
	if input.Name != "" {
		user.Name = input.Name
	}
	if input.WeightKg != nil {
		user.WeightKg = *input.WeightKg
		recompute = true
	}
	if input.GoalWeightKg != nil {
		user.GoalWeightKg = *input.GoalWeightKg
		recompute = true
	}
	if input.HeightCm != nil {
		user.HeightCm = *input.HeightCm
		recompute = true
	}
	if input.Age != nil {
		user.Age = *input.Age
		recompute = true
	}
	if input.Objective != "" {
		if !utils.ValidObjective(input.Objective) {
			return nil, utils.ErrInvalidInput
		}
		user.Objective = input.Objective
		recompute = true
	}
	if input.ActivityLevel != "" {
		if !utils.ValidActivityLevel(input.ActivityLevel) {
			return nil, utils.ErrInvalidInput
		}
		user.ActivityLevel = input.ActivityLevel
		recompute = true
	}
	if input.Pace != "" {
		if !utils.ValidPace(input.Pace) {
			return nil, utils.ErrInvalidInput
		}
		user.Pace = input.Pace
		recompute = true
	}
	if input.Notifications != nil {
		user.NotificationsEnabled = *input.Notifications
	}
	if input.PhotoBase64 != "" {
		url, err := utils.UploadBase64ImageToS3(input.PhotoBase64, "profile-photos")
		if err != nil {
			return nil, fmt.Errorf("failed to upload profile photo: %w", err)
		}
		user.PhotoURL = url
	}

	if recompute {
		if err := recalculateDerived(&user); err != nil {
			return nil, err
		}
	}

	if err := s.db.Save(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func (s *ProfileService) GetProfile(userID uint) (*models.User, error) {
	var user models.User
	if err := s.db.First(&user, userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.New("user not found")
		}
		return nil, err
	}
	return &user, nil
}
