package controllers

import (
	"net/http"
	"strconv"

	"github.com/aditya-yaduvanshi/calorie-tracker/config"
	"github.com/aditya-yaduvanshi/calorie-tracker/middlewares"
	"github.com/aditya-yaduvanshi/calorie-tracker/services"

	"github.com/gin-gonic/gin"
)

func ListAlerts(c *gin.Context) {
	user := middlewares.Identity(c)

	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))
	alerts, err := services.ListAlerts(config.DB, user.ID, limit)
	if err != nil {
		fail(c, err)
		return
	}

	out := make([]gin.H, 0, len(alerts))
	for _, a := range alerts {
		out = append(out, gin.H{
			"id":        a.ID,
			"type":      a.Type,
			"message":   a.Message,
			"createdAt": a.CreatedAt,
		})
	}
	c.JSON(http.StatusOK, gin.H{"error": 0, "data": out})
}
