package delivery

import (
	"errors"
	"log"
	"net/http"
	"strings"

	authdomain "articles-backend/internal/auth/domain"
	authdto "articles-backend/internal/auth/dto"
	"articles-backend/internal/auth/usecase"
	"articles-backend/pkg/response"

	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	authUsecase usecase.AuthUsecase
}

func NewAuthHandler(authUsecase usecase.AuthUsecase) *AuthHandler {
	return &AuthHandler{
		authUsecase: authUsecase,
	}
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req authdto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		// A malformed login attempt gets the same answer as a wrong one.
		response.JSON(c, http.StatusUnauthorized, response.CodeBadCredentials, "Incorrect email/password combination", nil)
		return
	}

	token, err := h.authUsecase.Login(&req)
	if err != nil {
		if errors.Is(err, usecase.ErrInvalidCredentials) {
			response.JSON(c, http.StatusUnauthorized, response.CodeBadCredentials, "Incorrect email/password combination", nil)
			return
		}
		log.Printf("login failed: %v", err)
		response.JSON(c, http.StatusInternalServerError, response.CodeServerError, "Server error during login", nil)
		return
	}

	response.JSON(c, http.StatusOK, response.CodeOK, "You are logged in", token)
}

func (h *AuthHandler) Signup(c *gin.Context) {
	var req authdto.SignupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.JSON(c, http.StatusBadRequest, response.CodeMissingFields, "One or more required fields are missing", nil)
		return
	}

	user, err := h.authUsecase.Signup(&req)
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrEmailTaken):
			response.JSON(c, http.StatusBadRequest, response.CodeDuplicateOrInvalid, "The email is no longer available (already in use)", nil)
		case errors.Is(err, usecase.ErrPasswordMismatch):
			response.JSON(c, http.StatusBadRequest, response.CodeDuplicateOrInvalid, "The password confirmation does not match", nil)
		default:
			log.Printf("signup failed: %v", err)
			response.JSON(c, http.StatusInternalServerError, response.CodeServerError, "Server error during signup", nil)
		}
		return
	}

	response.JSON(c, http.StatusOK, response.CodeOK, "Signup completed successfully", user)
}

func (h *AuthHandler) ResetPassword(c *gin.Context) {
	var req authdto.ResetPasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.JSON(c, http.StatusBadRequest, response.CodeMissingFields, "One or more required fields are missing", nil)
		return
	}

	newPassword, err := h.authUsecase.ResetPassword(req.Email)
	if err != nil {
		log.Printf("password reset failed: %v", err)
		response.JSON(c, http.StatusInternalServerError, response.CodeServerError, "Server error during password reset", nil)
		return
	}

	// Unknown accounts get the same success shape, with no password.
	if newPassword == "" {
		response.JSON(c, http.StatusOK, response.CodeOK, "If the account exists, the password has been reset successfully", nil)
		return
	}

	response.JSON(c, http.StatusOK, response.CodeOK, "Password reset successfully (an email would be sent)", newPassword)
}

// Check answers HTTP 200 whatever the token state; only the message differs.
func (h *AuthHandler) Check(c *gin.Context) {
	authHeader := c.GetHeader("Authorization")
	if authHeader == "" {
		c.JSON(http.StatusOK, gin.H{"message": "No token provided"})
		return
	}

	token := strings.TrimPrefix(authHeader, "Bearer ")
	if !h.authUsecase.CheckSession(token) {
		c.JSON(http.StatusOK, gin.H{"message": "Invalid token or logged out"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "You are still logged in"})
}

// UserInfos runs behind AuthMiddleware, which resolved the user already.
func (h *AuthHandler) UserInfos(c *gin.Context) {
	user := c.MustGet("user").(*authdomain.User)
	response.JSON(c, http.StatusOK, response.CodeOK, "User information retrieved successfully", user)
}
