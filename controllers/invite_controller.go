package controllers

import (
	"net/http"

	"github.com/aditya-yaduvanshi/calorie-tracker/services"

	"github.com/gin-gonic/gin"
)

type InviteInput struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

func CreateInvite(c *gin.Context) {
	var input InviteInput
	if err := c.ShouldBindJSON(&input); err != nil || input.Name == "" || input.Email == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": 1, "msg": "All fields are required and cannot be empty!"})
		return
	}

	token, err := services.CreateInvite(input.Name, input.Email)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"inviteToken": token})
}

func VerifyInvite(c *gin.Context) {
	var input struct {
		InviteToken string `json:"inviteToken"`
	}
	if err := c.ShouldBindJSON(&input); err != nil || input.InviteToken == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": 1, "msg": "Invite token is required!"})
		return
	}

	user, err := services.AcceptInvite(input.InviteToken)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"email": user.Email})
}

type SetPasswordInput struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func SetInvitePassword(c *gin.Context) {
	var input SetPasswordInput
	if err := c.ShouldBindJSON(&input); err != nil || input.Email == "" || input.Password == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": 1, "msg": "Email and password are required!"})
		return
	}

	user, pair, err := services.SetPassword(input.Email, input.Password)
	if err != nil {
		fail(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"id":      user.ID,
		"name":    user.Name,
		"email":   user.Email,
		"role":    user.Role,
		"access":  pair.Access,
		"refresh": pair.Refresh,
	})
}
