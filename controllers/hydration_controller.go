package controllers

import (
	"errors"
	"net/http"

	"github.com/giovaneneves7/mimoo-backend/services"
	"github.com/giovaneneves7/mimoo-backend/utils"

	"github.com/gin-gonic/gin"
)

type HydrationController struct {
	Svc     *services.HydrationService
	Profile *services.ProfileService
}

func NewHydrationController(svc *services.HydrationService, profile *services.ProfileService) *HydrationController {
	return &HydrationController{Svc: svc, Profile: profile}
}

func (hc *HydrationController) AddHydration(c *gin.Context) {
	userID := c.GetUint("userID")

	var input struct {
		VolumeML float64 `json:"volume_ml"`
		Kind     string  `json:"kind"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	log, err := hc.Svc.AddHydration(userID, input.VolumeML, input.Kind)
	if err != nil {
		if errors.Is(err, utils.ErrInvalidInput) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid hydration values"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, log)
}

// UndoHydration removes today's most recent entry. Nothing to undo is still
// a 204 — the UI treats it as a no-op, not a failure.
func (hc *HydrationController) UndoHydration(c *gin.Context) {
	userID := c.GetUint("userID")

	if err := hc.Svc.RemoveLastHydration(userID); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.Status(http.StatusNoContent)
}

// GetTodayHydration returns today's logs, total, and the percentage of the
// user's daily water target (a plain ratio — hydration has no tolerance rule).
func (hc *HydrationController) GetTodayHydration(c *gin.Context) {
	userID := c.GetUint("userID")

	total, logs, err := hc.Svc.TodayHydration(userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	var percent float64
	target := 0
	if user, err := hc.Profile.GetProfile(userID); err == nil {
		target = user.WaterTargetML
		if target > 0 {
			percent = total / float64(target) * 100
		}
	}

	c.JSON(http.StatusOK, gin.H{
		"total_ml":  total,
		"target_ml": target,
		"percent":   percent,
		"logs":      logs,
	})
}
