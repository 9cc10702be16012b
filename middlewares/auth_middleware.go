package middlewares

import (
	"net/http"
	"strings"

	"github.com/aditya-yaduvanshi/calorie-tracker/config"
	"github.com/aditya-yaduvanshi/calorie-tracker/models"
	"github.com/aditya-yaduvanshi/calorie-tracker/utils"

	"github.com/gin-gonic/gin"
)

const identityKey = "identity"

// AuthMiddleware resolves the caller's identity from the bearer access
// token. The three rejection cases stay distinct so clients can decide
// between refreshing and forcing a full re-login: missing token,
// invalid/expired token, and a token whose user no longer exists.
func AuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": 1, "msg": "Bearer token was not provided!"})
			return
		}

		payload, err := utils.VerifyAccessToken(strings.TrimPrefix(authHeader, "Bearer "))
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": 1, "msg": "Invalid token!"})
			return
		}

		var count int64
		if err := config.DB.Model(&models.User{}).Where("id = ?", payload.ID).Count(&count).Error; err != nil || count == 0 {
			c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": 1, "msg": "Token no longer works! User does not exist any more!"})
			return
		}

		c.Set(identityKey, payload)
		c.Next()
	}
}

// AdminMiddleware gates a route on the admin role. Runs after
// AuthMiddleware; authentication validity is not re-checked.
func AdminMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		user := Identity(c)
		if user == nil || user.Role != models.RoleAdmin {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": 1, "msg": "Admin access required!"})
			return
		}
		c.Next()
	}
}

// Identity returns the payload set by AuthMiddleware, or nil.
func Identity(c *gin.Context) *utils.TokenPayload {
	v, ok := c.Get(identityKey)
	if !ok {
		return nil
	}
	payload, _ := v.(*utils.TokenPayload)
	return payload
}
