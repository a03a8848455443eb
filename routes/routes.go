package routes

import (
	"github.com/DandaAkhilReddy/reddyfit-backend/controllers"
	"github.com/DandaAkhilReddy/reddyfit-backend/middlewares"

	"github.com/gin-gonic/gin"
)

type Controllers struct {
	Meals    *controllers.MealController
	Workouts *controllers.WorkoutController
	Devices  *controllers.DeviceController
	Realtime *controllers.RealtimeController
}

func SetupRouter(ctrl Controllers) *gin.Engine {
	r := gin.Default()

	// Public auth routes
	auth := r.Group("/auth")
	{
		auth.POST("/register", controllers.Register)
		auth.POST("/login", controllers.Login)
	}

	// Protected user routes
	user := r.Group("/user")
	user.Use(middlewares.AuthMiddleware())
	{
		user.GET("/profile", controllers.GetProfile)
		user.PUT("/profile", controllers.UpdateProfile)
	}

	meals := r.Group("/meals")
	meals.Use(middlewares.AuthMiddleware())
	{
		meals.POST("/log", ctrl.Meals.LogMeal)
		meals.GET("", ctrl.Meals.List)
		meals.GET("/today", ctrl.Meals.Today)
	}

	workouts := r.Group("/workouts")
	workouts.Use(middlewares.AuthMiddleware())
	{
		workouts.POST("/plan", ctrl.Workouts.Create)
		workouts.GET("/plans", ctrl.Workouts.List)
	}

	devices := r.Group("/devices")
	devices.Use(middlewares.AuthMiddleware())
	{
		devices.POST("/register", ctrl.Devices.Register)
	}

	ws := r.Group("/ws")
	ws.Use(middlewares.AuthMiddleware())
	{
		ws.GET("/dashboard", ctrl.Realtime.DashboardWS)
	}

	return r
}
