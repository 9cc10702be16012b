package routes

import (
	"github.com/aditya-yaduvanshi/calorie-tracker/controllers"
	"github.com/aditya-yaduvanshi/calorie-tracker/middlewares"
	"github.com/aditya-yaduvanshi/calorie-tracker/services"

	"github.com/gin-gonic/gin"
)

func SetupRouter(hub *services.RealtimeHub) *gin.Engine {
	r := gin.Default()

	api := r.Group("/api")

	auth := api.Group("/auth")
	{
		auth.POST("/register", controllers.Register)
		auth.POST("/signin", controllers.SignIn)
		auth.POST("/refresh", controllers.Refresh)
	}

	entries := api.Group("/entries")
	entries.Use(middlewares.AuthMiddleware())
	{
		entries.GET("", controllers.ListEntries)
		entries.POST("", controllers.CreateEntry)
		entries.PUT("/:id", controllers.UpdateEntry)
		entries.DELETE("/:id", controllers.DeleteEntry)
	}

	users := api.Group("/users")
	users.Use(middlewares.AuthMiddleware())
	{
		users.GET("", middlewares.AdminMiddleware(), controllers.ListUsers)
		users.POST("", middlewares.AdminMiddleware(), controllers.CreateUser)
		users.PUT("/:id", controllers.UpdateUser)
		users.DELETE("/:id", controllers.DeleteUser)
	}

	invite := api.Group("/invite")
	{
		invite.POST("", middlewares.AuthMiddleware(), controllers.CreateInvite)
		invite.POST("/verify", controllers.VerifyInvite)
		invite.POST("/password", controllers.SetInvitePassword)
	}

	reports := api.Group("/reports")
	reports.Use(middlewares.AuthMiddleware(), middlewares.AdminMiddleware())
	{
		reports.GET("", controllers.GetReports)
	}

	alerts := api.Group("/alerts")
	alerts.Use(middlewares.AuthMiddleware())
	{
		alerts.GET("", controllers.ListAlerts)
	}

	rc := controllers.NewRealtimeController(hub)
	r.GET("/ws/alerts", middlewares.AuthMiddleware(), rc.AlertsWS)

	return r
}
