package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/lamsatk/lamsat-backend/internal/dto"
	"github.com/lamsatk/lamsat-backend/internal/http/handlers/common"
	"github.com/lamsatk/lamsat-backend/internal/http/middleware"
	"github.com/lamsatk/lamsat-backend/internal/service"
)

// AuthHandler предоставляет HTTP слой для входа и выхода администратора.
type AuthHandler struct {
	auth   *service.AuthService
	secure bool
}

// NewAuthHandler создаёт хэндлер. secure управляет флагом Secure на cookie.
func NewAuthHandler(auth *service.AuthService, secure bool) *AuthHandler {
	return &AuthHandler{auth: auth, secure: secure}
}

// Login обрабатывает POST /admin/login.
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginBody
	if err := c.ShouldBindJSON(&req); err != nil {
		common.RespondValidation(c, "password is required")
		return
	}

	token, ttl, err := h.auth.Login(req.Password)
	if err != nil {
		common.RespondAppError(c, err)
		return
	}

	// Токен уезжает и в cookie, и в тело: веб-клиент живёт на cookie,
	// admin-CLI подставляет Bearer.
	c.SetCookie(middleware.AdminCookieName, token, int(ttl.Seconds()), "/", "", h.secure, true)
	c.JSON(http.StatusOK, dto.LoginResponse{
		Token:     token,
		ExpiresIn: int64(ttl.Seconds()),
	})
}

// Logout обрабатывает POST /admin/logout. Токен stateless, серверного
// отзыва нет: просто стираем клиентскую копию.
func (h *AuthHandler) Logout(c *gin.Context) {
	c.SetCookie(middleware.AdminCookieName, "", -1, "/", "", h.secure, true)
	c.JSON(http.StatusOK, gin.H{"message": "logged out"})
}
