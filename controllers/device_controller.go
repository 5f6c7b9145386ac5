package controllers

import (
	"net/http"

	"github.com/giovaneneves7/mimoo-backend/config"
	"github.com/giovaneneves7/mimoo-backend/models"
	"github.com/giovaneneves7/mimoo-backend/services"

	"github.com/gin-gonic/gin"
)

type DeviceController struct {
	Push *services.PushService
}

func NewDeviceController(ps *services.PushService) *DeviceController {
	return &DeviceController{Push: ps}
}

func (dc *DeviceController) RegisterDevice(c *gin.Context) {
	userID := c.GetUint("userID")

	var req struct {
		Platform string `json:"platform" binding:"required"`
		Token    string `json:"token" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	dev, err := dc.Push.RegisterDevice(userID, req.Platform, req.Token)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"id": dev.ID, "platform": dev.Platform})
}

func ListNotifications(c *gin.Context) {
	userID := c.GetUint("userID")

	var notifications []models.Notification
	if err := config.DB.
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Limit(50).
		Find(&notifications).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, notifications)
}
