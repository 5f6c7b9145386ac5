package services

import (
	"math"

	"github.com/giovaneneves7/mimoo-backend/models"
	"github.com/giovaneneves7/mimoo-backend/utils"

	"gorm.io/gorm"
)

type WeightService struct {
	db      *gorm.DB
	profile *ProfileService
}

func NewWeightService(db *gorm.DB, profile *ProfileService) *WeightService {
	return &WeightService{db: db, profile: profile}
}

// LogWeight records a weight sample for today and propagates the new weight
// to the profile, which recomputes every derived field. The profile update
// runs first: a rejected recompute must not leave a sample behind.
func (s *WeightService) LogWeight(userID uint, weightKg float64) (*models.WeightLog, error) {
	if math.IsNaN(weightKg) || weightKg <= 0 {
		return nil, utils.ErrInvalidInput
	}

	if _, err := s.profile.UpdateProfile(userID, ProfileUpdateInput{WeightKg: &weightKg}); err != nil {
		return nil, err
	}

	log := &models.WeightLog{
		UserID:   userID,
		Date:     utils.TodayString(),
		WeightKg: weightKg,
	}
	if err := s.db.Create(log).Error; err != nil {
		return nil, err
	}
	return log, nil
}

// History returns up to 30 samples, newest first, for trend display.
func (s *WeightService) History(userID uint) ([]models.WeightLog, error) {
	var logs []models.WeightLog
	err := s.db.
		Where("user_id = ?", userID).
		Order("date DESC").
		Limit(30).
		Find(&logs).Error
	return logs, err
}
