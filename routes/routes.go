package routes

import (
	"log"

	"github.com/giovaneneves7/mimoo-backend/config"
	"github.com/giovaneneves7/mimoo-backend/controllers"
	"github.com/giovaneneves7/mimoo-backend/middlewares"
	"github.com/giovaneneves7/mimoo-backend/services"

	"github.com/gin-gonic/gin"
)

func SetupRouter() *gin.Engine {
	r := gin.Default()

	hub := services.NewRealtimeHub()
	push, err := services.NewPushService(config.DB)
	if err != nil {
		log.Printf("push service unavailable: %v", err)
		push = nil
	}
	services.InitEventDeps(config.DB, hub, push)

	progressSvc := services.NewProgressService(config.DB)
	profileSvc := services.NewProfileService(config.DB)
	mealSvc := services.NewMealService(config.DB, progressSvc)
	hydrationSvc := services.NewHydrationService(config.DB)
	weightSvc := services.NewWeightService(config.DB, profileSvc)
	visionSvc := services.NewVisionService()

	profileCtrl := controllers.NewProfileController(profileSvc)
	mealCtrl := controllers.NewMealController(mealSvc, visionSvc)
	hydrationCtrl := controllers.NewHydrationController(hydrationSvc, profileSvc)
	progressCtrl := controllers.NewProgressController(progressSvc, mealSvc, profileSvc)
	weightCtrl := controllers.NewWeightController(weightSvc)
	realtimeCtrl := controllers.NewRealtimeController(hub)

	// Public auth routes
	auth := r.Group("/auth")
	{
		auth.POST("/register", controllers.Register)
		auth.POST("/login", controllers.Login)
		auth.POST("/forgot-password", controllers.ForgotPassword)
		auth.POST("/reset-password", controllers.ResetPassword)
	}

	// Protected routes
	api := r.Group("/api")
	api.Use(middlewares.AuthMiddleware())
	{
		api.GET("/profile", profileCtrl.GetProfile)
		api.POST("/profile/onboarding", profileCtrl.CompleteOnboarding)
		api.PUT("/profile", profileCtrl.UpdateProfile)

		api.POST("/meals/analyze", mealCtrl.AnalyzeMeal)
		api.POST("/meals", mealCtrl.LogMeal)
		api.GET("/meals/today", mealCtrl.ListTodayMeals)
		api.GET("/meals", mealCtrl.ListMealsByDate)

		api.GET("/hydration/today", hydrationCtrl.GetTodayHydration)
		api.POST("/hydration", hydrationCtrl.AddHydration)
		api.DELETE("/hydration/last", hydrationCtrl.UndoHydration)

		api.GET("/dashboard", progressCtrl.GetDashboard)
		api.GET("/progress/week", progressCtrl.GetWeekSummary)
		api.GET("/progress/history", progressCtrl.GetProgressHistory)
		api.GET("/progress", progressCtrl.GetProgressByDate)

		api.POST("/weight", weightCtrl.LogWeight)
		api.GET("/weight/history", weightCtrl.GetWeightHistory)

		if push != nil {
			deviceCtrl := controllers.NewDeviceController(push)
			api.POST("/devices", deviceCtrl.RegisterDevice)
		}
		api.GET("/notifications", controllers.ListNotifications)

		api.GET("/ws/progress", realtimeCtrl.ProgressWS)
	}

	return r
}
