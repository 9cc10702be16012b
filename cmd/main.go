package main

import (
	"os"

	"github.com/aditya-yaduvanshi/calorie-tracker/config"
	"github.com/aditya-yaduvanshi/calorie-tracker/routes"
	"github.com/aditya-yaduvanshi/calorie-tracker/services"
	"github.com/aditya-yaduvanshi/calorie-tracker/utils"
)

func main() {
	config.InitDB()
	utils.InitMailer()

	hub := services.NewRealtimeHub()
	services.InitAlertDeps(config.DB, hub)

	r := routes.SetupRouter(hub)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	r.Run(":" + port)
}
