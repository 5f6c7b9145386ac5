package controllers

import (
	"errors"
	"net/http"

	"github.com/giovaneneves7/mimoo-backend/services"
	"github.com/giovaneneves7/mimoo-backend/utils"

	"github.com/gin-gonic/gin"
)

type ProfileController struct {
	Svc *services.ProfileService
}

func NewProfileController(svc *services.ProfileService) *ProfileController {
	return &ProfileController{Svc: svc}
}

func (pc *ProfileController) GetProfile(c *gin.Context) {
	userID := c.GetUint("userID")

	user, err := pc.Svc.GetProfile(userID)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}

	resp := gin.H{
		"id":                    user.ID,
		"email":                 user.Email,
		"name":                  user.Name,
		"sex":                   user.Sex,
		"age":                   user.Age,
		"height_cm":             user.HeightCm,
		"weight_kg":             user.WeightKg,
		"goal_weight_kg":        user.GoalWeightKg,
		"objective":             user.Objective,
		"activity_level":        user.ActivityLevel,
		"pace":                  user.Pace,
		"photo_url":             user.PhotoURL,
		"bmi":                   user.BMI,
		"bmi_category":          utils.BMICategory(user.BMI),
		"bmr":                   user.BMR,
		"daily_calories":        user.DailyCalories,
		"water_target_ml":       user.WaterTargetML,
		"target_date":           user.TargetDate,
		"onboarded":             user.Onboarded,
		"notifications_enabled": user.NotificationsEnabled,
	}
	if user.DailyCalories > 0 {
		carbs, protein, fat, err := utils.MacroTargets(user.DailyCalories)
		if err == nil {
			resp["macro_targets"] = gin.H{"carbs_g": carbs, "protein_g": protein, "fat_g": fat}
		}
	}
	c.JSON(http.StatusOK, resp)
}

func (pc *ProfileController) CompleteOnboarding(c *gin.Context) {
	userID := c.GetUint("userID")

	var input services.OnboardingInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	user, err := pc.Svc.CompleteOnboarding(userID, input)
	if err != nil {
		if errors.Is(err, utils.ErrInvalidInput) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid profile values"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"bmi":             user.BMI,
		"bmi_category":    utils.BMICategory(user.BMI),
		"bmr":             user.BMR,
		"daily_calories":  user.DailyCalories,
		"water_target_ml": user.WaterTargetML,
		"target_date":     user.TargetDate,
	})
}

func (pc *ProfileController) UpdateProfile(c *gin.Context) {
	userID := c.GetUint("userID")

	var input services.ProfileUpdateInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	user, err := pc.Svc.UpdateProfile(userID, input)
	if err != nil {
		if errors.Is(err, utils.ErrInvalidInput) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid profile values"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":         "profile updated",
		"bmi":             user.BMI,
		"bmr":             user.BMR,
		"daily_calories":  user.DailyCalories,
		"water_target_ml": user.WaterTargetML,
		"target_date":     user.TargetDate,
	})
}
