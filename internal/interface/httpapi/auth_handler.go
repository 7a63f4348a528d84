package httpapi

import (
	"errors"
	"net/http"

	"haven-booking-service/internal/usecase"

	"github.com/gin-gonic/gin"
)

// AuthHandler exposes admin sign-in
type AuthHandler struct {
	adminAuth *usecase.AdminAuth
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(adminAuth *usecase.AdminAuth) *AuthHandler {
	return &AuthHandler{adminAuth: adminAuth}
}

type loginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// POST /v1/admin/login
func (h *AuthHandler) Login(c *gin.Context) {
	var in loginRequest
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	token, err := h.adminAuth.SignIn(c.Request.Context(), in.Email, in.Password)
	if err != nil {
		if errors.Is(err, usecase.ErrInvalidCredentials) {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid email or password"})
			return
		}
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"token": token})
}
