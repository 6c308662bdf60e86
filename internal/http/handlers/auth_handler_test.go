package handlers

import (
	"net/http"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lamsatk/lamsat-backend/internal/http/middleware"
	"github.com/lamsatk/lamsat-backend/internal/service"
)

func newAuthTestRouter() (*gin.Engine, *service.TokenManager) {
	gin.SetMode(gin.TestMode)
	tokens := service.NewTokenManager("handler-secret", time.Hour)
	handler := NewAuthHandler(service.NewAuthService(tokens, "admin-pass"), false)

	r := gin.New()
	r.POST("/admin/login", handler.Login)
	r.POST("/admin/logout", handler.Logout)
	return r, tokens
}

func TestAuthHandler_Login(t *testing.T) {
	r, tokens := newAuthTestRouter()

	w := postJSON(r, "/admin/login", gin.H{"password": "admin-pass"})
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"token"`)
	assert.Contains(t, w.Body.String(), `"expires_in":3600`)

	// Токен из cookie должен проходить верификацию.
	cookies := w.Result().Cookies()
	require.NotEmpty(t, cookies)
	var tokenCookie *http.Cookie
	for _, cookie := range cookies {
		if cookie.Name == middleware.AdminCookieName {
			tokenCookie = cookie
		}
	}
	require.NotNil(t, tokenCookie)
	assert.True(t, tokens.Verify(tokenCookie.Value))
	assert.True(t, tokenCookie.HttpOnly)
}

func TestAuthHandler_Login_WrongPassword(t *testing.T) {
	r, _ := newAuthTestRouter()

	w := postJSON(r, "/admin/login", gin.H{"password": "nope"})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "UNAUTHORIZED")
	assert.NotContains(t, w.Body.String(), `"token"`)
}

func TestAuthHandler_Login_MissingPassword(t *testing.T) {
	r, _ := newAuthTestRouter()

	w := postJSON(r, "/admin/login", gin.H{})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "VALIDATION_ERROR")
}

func TestAuthHandler_Logout(t *testing.T) {
	r, _ := newAuthTestRouter()

	w := postJSON(r, "/admin/logout", nil)
	require.Equal(t, http.StatusOK, w.Code)

	// Logout стирает клиентскую копию токена.
	cookies := w.Result().Cookies()
	require.NotEmpty(t, cookies)
	assert.Equal(t, middleware.AdminCookieName, cookies[0].Name)
	assert.Empty(t, cookies[0].Value)
	assert.Negative(t, cookies[0].MaxAge)
}
