package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"

	"github.com/mentorlink/mentor-booking-api/internal/config"
	"github.com/mentorlink/mentor-booking-api/internal/httperr"
	"github.com/mentorlink/mentor-booking-api/internal/models"
)

const (
	ContextUserID   = "userID"
	ContextUserType = "userType"
)

func AuthMiddleware(cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, httperr.HTTPError{Message: "Missing authorization header."})
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, httperr.HTTPError{Message: "Invalid authorization header."})
			return
		}

		tokenString := parts[1]

		token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, jwt.ErrTokenMalformed
			}
			return []byte(cfg.JWTSecret), nil
		})
		if err != nil || !token.Valid {
			c.AbortWithStatusJSON(http.StatusUnauthorized, httperr.HTTPError{Message: "Invalid token."})
			return
		}

		claims, ok := token.Claims.(jwt.MapClaims)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, httperr.HTTPError{Message: "Invalid token claims."})
			return
		}

		userID, ok1 := claims["sub"].(float64)
		userType, ok2 := claims["userType"].(string)
		if !ok1 || !ok2 {
			c.AbortWithStatusJSON(http.StatusUnauthorized, httperr.HTTPError{Message: "Invalid token payload."})
			return
		}

		c.Set(ContextUserID, uint(userID))
		c.Set(ContextUserType, userType)

		c.Next()
	}
}

// RequireUserType guards routes that only one side of the marketplace may
// call. Mount after AuthMiddleware.
func RequireUserType(userType string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.GetString(ContextUserType) != userType {
			c.AbortWithStatusJSON(http.StatusForbidden, httperr.HTTPError{Message: "Not allowed for this account type."})
			return
		}
		c.Next()
	}
}

func RequireMentor() gin.HandlerFunc {
	return RequireUserType(models.UserTypeMentor)
}

func RequireStudent() gin.HandlerFunc {
	return RequireUserType(models.UserTypeStudent)
}
