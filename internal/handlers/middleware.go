package handlers

import (
	"net/http"

	"studyport/internal/services"

	"github.com/gin-gonic/gin"
)

// sessionHeader — заголовок, в котором клиент передает идентификатор сессии
const sessionHeader = "X-Session-Id"

// CORSMiddleware создает middleware для CORS
func CORSMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Credentials", "true")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Content-Length, Accept-Encoding, X-Session-Id")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS, GET, PUT, DELETE")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	}
}

// SessionMiddleware создает middleware, требующее живую сессию
func SessionMiddleware(authService services.AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		sessionID := c.GetHeader(sessionHeader)
		if sessionID == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "session header required"})
			c.Abort()
			return
		}

		session, err := authService.Get(sessionID)
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid session"})
			c.Abort()
			return
		}

		c.Set("session", session)
		c.Next()
	}
}

// AdminOnlyMiddleware создает middleware, пускающее только администратора
func AdminOnlyMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		session := currentSession(c)
		if !session.IsAdmin() {
			c.JSON(http.StatusForbidden, gin.H{"error": "admin access required"})
			c.Abort()
			return
		}
		c.Next()
	}
}

// currentSession достает сессию из контекста запроса
func currentSession(c *gin.Context) *services.Session {
	if value, ok := c.Get("session"); ok {
		if session, ok := value.(*services.Session); ok {
			return session
		}
	}
	return nil
}
