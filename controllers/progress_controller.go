package controllers

import (
	"net/http"

	"github.com/giovaneneves7/mimoo-backend/services"
	"github.com/giovaneneves7/mimoo-backend/utils"

	"github.com/gin-gonic/gin"
)

type ProgressController struct {
	Progress *services.ProgressService
	Meals    *services.MealService
	Profile  *services.ProfileService
}

func NewProgressController(p *services.ProgressService, m *services.MealService, pr *services.ProfileService) *ProgressController {
	return &ProgressController{Progress: p, Meals: m, Profile: pr}
}

// GetDashboard bundles everything the home screen needs for today.
func (pc *ProgressController) GetDashboard(c *gin.Context) {
	userID := c.GetUint("userID")

	user, err := pc.Profile.GetProfile(userID)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}

	today := utils.TodayString()
	progress, err := pc.Progress.GetProgressByDate(userID, today)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	meals, err := pc.Meals.ListTodayMeals(userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	var consumed float64
	goalMet := false
	if progress != nil {
		consumed = progress.Calories
		goalMet = progress.GoalMet
	}

	remaining := float64(user.DailyCalories) - consumed
	if remaining < 0 {
		remaining = 0
	}

	resp := gin.H{
		"date":               today,
		"calories_goal":      user.DailyCalories,
		"calories_consumed":  consumed,
		"calories_remaining": remaining,
		"goal_met":           goalMet,
		"progress":           progress, // null when nothing logged yet
		"meals":              meals,
		"message":            services.EncouragementMessage(consumed, user.DailyCalories, len(meals), user.Name),
	}
	if user.DailyCalories > 0 {
		carbs, protein, fat, err := utils.MacroTargets(user.DailyCalories)
		if err == nil {
			resp["macro_targets"] = gin.H{"carbs_g": carbs, "protein_g": protein, "fat_g": fat}
		}
	}
	c.JSON(http.StatusOK, resp)
}

func (pc *ProgressController) GetWeekSummary(c *gin.Context) {
	userID := c.GetUint("userID")

	summary, err := pc.Progress.GetWeekSummary(userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, summary)
}

func (pc *ProgressController) GetProgressHistory(c *gin.Context) {
	userID := c.GetUint("userID")

	history, err := pc.Progress.GetAllDailyProgress(userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, history)
}

func (pc *ProgressController) GetProgressByDate(c *gin.Context) {
	userID := c.GetUint("userID")

	date := c.Query("date")
	if date == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "missing 'date' query param"})
		return
	}

	progress, err := pc.Progress.GetProgressByDate(userID, date)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if progress == nil {
		// Absent row means nothing was logged — distinct from a missed goal.
		c.JSON(http.StatusOK, gin.H{"date": date, "has_data": false})
		return
	}
	c.JSON(http.StatusOK, gin.H{"date": date, "has_data": true, "progress": progress})
}
