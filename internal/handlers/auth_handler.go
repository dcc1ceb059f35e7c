package handlers

import (
	"net/http"

	"studyport/internal/services"

	"github.com/gin-gonic/gin"
)

// AuthHandler представляет обработчик авторизации
type AuthHandler struct {
	authService services.AuthService
}

// NewAuthHandler создает новый обработчик авторизации
func NewAuthHandler(authService services.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

// LoginRequest представляет запрос входа ученика
type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// AdminLoginRequest представляет запрос входа администратора
type AdminLoginRequest struct {
	Password string `json:"password" binding:"required"`
}

// Login авторизует ученика
func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	session, err := h.authService.Login(req.Username, req.Password)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid credentials"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"session": session})
}

// AdminLogin авторизует администратора
func (h *AuthHandler) AdminLogin(c *gin.Context) {
	var req AdminLoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	session, err := h.authService.AdminLogin(req.Password)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid credentials"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"session": session})
}

// Logout завершает сессию
func (h *AuthHandler) Logout(c *gin.Context) {
	sessionID := c.GetHeader(sessionHeader)
	if sessionID != "" {
		h.authService.Logout(sessionID)
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// Profile возвращает текущую сессию
func (h *AuthHandler) Profile(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"session": currentSession(c)})
}
