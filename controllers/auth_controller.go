package controllers

import (
	"fmt"
	"net/http"

	"github.com/aditya-yaduvanshi/calorie-tracker/services"

	"github.com/gin-gonic/gin"
)

type RegisterInput struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

func Register(c *gin.Context) {
	var input RegisterInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": 1, "msg": "All fields are required and cannot be empty!"})
		return
	}

	user, err := services.RegisterUser(input.Name, input.Email, input.Password)
	if err != nil {
		fail(c, err)
		return
	}

	c.Header("Location", fmt.Sprintf("%d", user.ID))
	c.Status(http.StatusCreated)
}

type SignInInput struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

func SignIn(c *gin.Context) {
	var input SignInInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": 1, "msg": "All fields are required and cannot be empty!"})
		return
	}

	user, pair, err := services.SignIn(input.Email, input.Password)
	if err != nil {
		fail(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"error": 0,
		"data": gin.H{
			"id":      user.ID,
			"name":    user.Name,
			"email":   user.Email,
			"role":    user.Role,
			"access":  pair.Access,
			"refresh": pair.Refresh,
		},
	})
}

type RefreshInput struct {
	Refresh string `json:"refresh"`
}

func Refresh(c *gin.Context) {
	var input RefreshInput
	if err := c.ShouldBindJSON(&input); err != nil || input.Refresh == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": 1, "msg": "Refresh token was not provided!"})
		return
	}

	pair, err := services.RefreshTokens(input.Refresh)
	if err != nil {
		fail(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"error": 0,
		"msg":   "Token refreshed!",
		"data":  gin.H{"access": pair.Access, "refresh": pair.Refresh},
	})
}
