package controllers

import (
	"errors"
	"log"
	"net/http"

	"github.com/aditya-yaduvanshi/calorie-tracker/models"
	"github.com/aditya-yaduvanshi/calorie-tracker/services"
	"github.com/aditya-yaduvanshi/calorie-tracker/utils"

	"github.com/gin-gonic/gin"
)

// fail translates service errors into the {error, msg} envelope. All
// business-rule failures surface as 400; unexpected ones are logged.
func fail(c *gin.Context, err error) {
	var ve *services.ValidationError
	switch {
	case errors.As(err, &ve):
		c.JSON(http.StatusBadRequest, gin.H{"error": 1, "msg": ve.Msg})
	case errors.Is(err, services.ErrInvalidCredentials),
		errors.Is(err, services.ErrEmailTaken),
		errors.Is(err, services.ErrUserNotFound),
		errors.Is(err, services.ErrInvalidOwner),
		errors.Is(err, services.ErrNotFoundOrForbidden),
		errors.Is(err, utils.ErrInvalidToken):
		c.JSON(http.StatusBadRequest, gin.H{"error": 1, "msg": err.Error()})
	default:
		log.Printf("internal error: %v", err)
		c.JSON(http.StatusBadRequest, gin.H{"error": 1, "msg": err.Error()})
	}
}

func userJSON(u *models.User) gin.H {
	return gin.H{
		"id":        u.ID,
		"name":      u.Name,
		"email":     u.Email,
		"role":      u.Role,
		"createdAt": u.CreatedAt,
		"updatedAt": u.UpdatedAt,
	}
}

func entryJSON(e *models.Entry) gin.H {
	return gin.H{
		"id":        e.ID,
		"user":      e.UserID,
		"name":      e.Name,
		"calorie":   e.Calorie,
		"price":     e.Price(),
		"date":      e.Date.Format("2006-01-02"),
		"time":      e.Time,
		"createdAt": e.CreatedAt,
		"updatedAt": e.UpdatedAt,
	}
}
