package services

import (
	"errors"

	"github.com/giovaneneves7/mimoo-backend/models"
	"github.com/giovaneneves7/mimoo-backend/utils"

	"gorm.io/gorm"
)

type HydrationService struct{ db *gorm.DB }

func NewHydrationService(db *gorm.DB) *HydrationService { return &HydrationService{db: db} }

var validBeverages = map[string]bool{
	models.BeverageWater:  true,
	models.BeverageTea:    true,
	models.BeverageCoffee: true,
	models.BeverageJuice:  true,
	models.BeverageOther:  true,
}

// AddHydration appends one water-logging entry for today. Defaults: 250 ml of
// water (one glass).
func (s *HydrationService) AddHydration(userID uint, volumeML float64, kind string) (*models.HydrationLog, error) {
	if volumeML == 0 {
		volumeML = 250
	}
	if volumeML < 0 {
		return nil, utils.ErrInvalidInput
	}
	if kind == "" {
		kind = models.BeverageWater
	}
	if !validBeverages[kind] {
		return nil, utils.ErrInvalidInput
	}

	log := &models.HydrationLog{
		UserID:   userID,
		Date:     utils.TodayString(),
		Time:     utils.CurrentTimeString(),
		VolumeML: volumeML,
		Kind:     kind,
	}
	if err := s.db.Create(log).Error; err != nil {
		return nil, err
	}
	return log, nil
}

// RemoveLastHydration undoes the most recently created entry for today only.
// With nothing left to undo it is a no-op, not an error.
func (s *HydrationService) RemoveLastHydration(userID uint) error {
	var last models.HydrationLog
	err := s.db.
		Where("user_id = ? AND date = ?", userID, utils.TodayString()).
		Order("created_at DESC").
		First(&last).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil
	}
	if err != nil {
		return err
	}
	return s.db.Delete(&last).Error
}

// HydrationForDate returns the day's entries (newest first) and their total.
func (s *HydrationService) HydrationForDate(userID uint, date string) (float64, []models.HydrationLog, error) {
	var logs []models.HydrationLog
	err := s.db.
		Where("user_id = ? AND date = ?", userID, date).
		Order("time DESC").
		Find(&logs).Error
	if err != nil {
		return 0, nil, err
	}

	var total float64
	for _, l := range logs {
		total += l.VolumeML
	}
	return total, logs, nil
}

func (s *HydrationService) TodayHydration(userID uint) (float64, []models.HydrationLog, error) {
	return s.HydrationForDate(userID, utils.TodayString())
}
