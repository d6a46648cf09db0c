package delivery

import (
	"errors"
	"net/http"
	"strings"

	"articles-backend/internal/auth/usecase"
	"articles-backend/pkg/response"

	"github.com/gin-gonic/gin"
)

func AuthMiddleware(authUsecase usecase.AuthUsecase) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			response.JSON(c, http.StatusUnauthorized, response.CodeUnauthorized, "Missing token. Not authorized.", nil)
			c.Abort()
			return
		}

		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || parts[0] != "Bearer" {
			response.JSON(c, http.StatusUnauthorized, response.CodeUnauthorized, "Invalid authorization header format.", nil)
			c.Abort()
			return
		}

		user, err := authUsecase.ValidateToken(parts[1])
		if err != nil {
			if errors.Is(err, usecase.ErrUserNotFound) {
				response.JSON(c, http.StatusNotFound, response.CodeNotFound, "User not found.", nil)
			} else {
				response.JSON(c, http.StatusUnauthorized, response.CodeUnauthorized, "Invalid or expired token.", nil)
			}
			c.Abort()
			return
		}

		c.Set("user", user)
		c.Next()
	}
}
