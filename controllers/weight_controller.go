package controllers

import (
	"errors"
	"net/http"

	"github.com/giovaneneves7/mimoo-backend/services"
	"github.com/giovaneneves7/mimoo-backend/utils"

	"github.com/gin-gonic/gin"
)

type WeightController struct {
	Svc *services.WeightService
}

func NewWeightController(svc *services.WeightService) *WeightController {
	return &WeightController{Svc: svc}
}

func (wc *WeightController) LogWeight(c *gin.Context) {
	userID := c.GetUint("userID")

	var input struct {
		WeightKg float64 `json:"weight_kg" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	log, err := wc.Svc.LogWeight(userID, input.WeightKg)
	if err != nil {
		if errors.Is(err, utils.ErrInvalidInput) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "weight must be positive"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, log)
}

func (wc *WeightController) GetWeightHistory(c *gin.Context) {
	userID := c.GetUint("userID")

	logs, err := wc.Svc.History(userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, logs)
}
