package controllers

import (
	"errors"
	"net/http"

	"github.com/giovaneneves7/mimoo-backend/services"
	"github.com/giovaneneves7/mimoo-backend/utils"

	"github.com/gin-gonic/gin"
)

type MealController struct {
	Meals  *services.MealService
	Vision *services.VisionService
}

func NewMealController(meals *services.MealService, vision *services.VisionService) *MealController {
	return &MealController{Meals: meals, Vision: vision}
}

type AnalyzeRequest struct {
	ImageBase64 string `json:"image_base64" binding:"required"`
}

// AnalyzeMeal runs the photo through the vision service and returns the
// structured estimate for the user to confirm. Nothing is persisted here —
// a meal row only exists after the user confirms via LogMeal, so abandoning
// the scanner never leaves partial data behind.
func (mc *MealController) AnalyzeMeal(c *gin.Context) {
	var req AnalyzeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	analysis, err := mc.Vision.AnalyzeMealPhoto(c.Request.Context(), req.ImageBase64)
	if err != nil {
		if errors.Is(err, services.ErrNotFood) {
			// Recoverable: the user retakes the photo.
			c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "not_food"})
			return
		}
		c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, analysis)
}

// LogMeal persists a confirmed analysis and returns the recomputed day.
func (mc *MealController) LogMeal(c *gin.Context) {
	userID := c.GetUint("userID")

	var input services.MealInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	meal, progress, err := mc.Meals.LogMeal(userID, input)
	if err != nil {
		switch {
		case errors.Is(err, utils.ErrInvalidInput):
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid meal values"})
		case errors.Is(err, services.ErrAggregateInconsistent):
			c.JSON(http.StatusConflict, gin.H{"error": err.Error(), "meal": meal})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		}
		return
	}

	c.JSON(http.StatusCreated, gin.H{"meal": meal, "progress": progress})
}

func (mc *MealController) ListTodayMeals(c *gin.Context) {
	userID := c.GetUint("userID")

	meals, err := mc.Meals.ListTodayMeals(userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, meals)
}

func (mc *MealController) ListMealsByDate(c *gin.Context) {
	userID := c.GetUint("userID")

	date := c.Query("date")
	if date == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "missing 'date' query param"})
		return
	}

	meals, err := mc.Meals.ListMealsByDate(userID, date)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, meals)
}
