package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/lamsatk/lamsat-backend/internal/service"
)

// Context ключи для gin.Context.
const (
	ContextIsAdminKey = "isAdmin"

	// AdminCookieName — cookie, в которую логин кладёт токен.
	AdminCookieName = "admin_token"
)

// AdminAuthMiddleware проверяет админский токен до того, как запрос
// дойдёт до lifecycle. Токен берётся из cookie, заголовка Authorization
// или query-параметра (последний нужен для websocket).
func AdminAuthMiddleware(tokens *service.TokenManager) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := extractToken(c)
		if !tokens.Verify(token) {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"error": gin.H{"code": "UNAUTHORIZED", "message": "authorization required"},
			})
			return
		}

		// Ролей нет: валидная подпись и есть право администратора.
		c.Set(ContextIsAdminKey, true)
		c.Next()
	}
}

func extractToken(c *gin.Context) string {
	if cookie, err := c.Cookie(AdminCookieName); err == nil && cookie != "" {
		return cookie
	}
	if auth := c.GetHeader("Authorization"); strings.HasPrefix(auth, "Bearer ") {
		return strings.TrimPrefix(auth, "Bearer ")
	}
	return c.Query("token")
}
