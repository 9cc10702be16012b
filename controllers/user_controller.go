package controllers

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/aditya-yaduvanshi/calorie-tracker/middlewares"
	"github.com/aditya-yaduvanshi/calorie-tracker/services"

	"github.com/gin-gonic/gin"
)

func ListUsers(c *gin.Context) {
	user := middlewares.Identity(c)

	users, err := services.ListUsers(user.ID)
	if err != nil {
		fail(c, err)
		return
	}

	out := make([]gin.H, 0, len(users))
	for i := range users {
		out = append(out, userJSON(&users[i]))
	}
	c.JSON(http.StatusOK, out)
}

type CreateUserInput struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Role     string `json:"role"`
}

func CreateUser(c *gin.Context) {
	var input CreateUserInput
	if err := c.ShouldBindJSON(&input); err != nil ||
		input.Name == "" || input.Email == "" || input.Password == "" || input.Role == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": 1, "msg": "All fields are required and cannot be empty!"})
		return
	}

	user, err := services.CreateUser(input.Name, input.Email, input.Password, input.Role)
	if err != nil {
		fail(c, err)
		return
	}

	c.Header("Location", fmt.Sprintf("%d", user.ID))
	c.Status(http.StatusCreated)
}

type UpdateUserInput struct {
	Name     *string `json:"name"`
	Email    *string `json:"email"`
	Password *string `json:"password"`
	Role     *string `json:"role"`
}

func UpdateUser(c *gin.Context) {
	user := middlewares.Identity(c)

	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": 1, "msg": "Invalid user id!"})
		return
	}

	var input UpdateUserInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": 1, "msg": "Invalid input data!"})
		return
	}

	updated, err := services.UpdateUser(user, uint(id), services.UpdateUserInput{
		Name:     input.Name,
		Email:    input.Email,
		Password: input.Password,
		Role:     input.Role,
	})
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, userJSON(updated))
}

func DeleteUser(c *gin.Context) {
	user := middlewares.Identity(c)

	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": 1, "msg": "Invalid user id!"})
		return
	}

	if err := services.DeleteUser(user, uint(id)); err != nil {
		fail(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
