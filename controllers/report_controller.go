package controllers

import (
	"net/http"

	"github.com/aditya-yaduvanshi/calorie-tracker/config"
	"github.com/aditya-yaduvanshi/calorie-tracker/services"

	"github.com/gin-gonic/gin"
)

func GetReports(c *gin.Context) {
	report, err := services.NewReportService(config.DB).Weekly()
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, report)
}
