package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lamsatk/lamsat-backend/internal/pkg/apperror"
)

func TestAuthService_Login(t *testing.T) {
	tokens, clock := newTestTokenManager("signing-secret", time.Hour)
	auth := NewAuthService(tokens, "correct-horse")

	token, ttl, err := auth.Login("correct-horse")
	require.NoError(t, err)
	assert.Equal(t, time.Hour, ttl)
	assert.True(t, tokens.Verify(token))

	// Токен живёт ровно ttl.
	*clock = clock.Add(time.Hour + time.Second)
	assert.False(t, tokens.Verify(token))
}

func TestAuthService_Login_WrongPassword(t *testing.T) {
	tokens, _ := newTestTokenManager("signing-secret", time.Hour)
	auth := NewAuthService(tokens, "correct-horse")

	for _, password := range []string{"", "wrong", "correct-horse "} {
		token, _, err := auth.Login(password)
		assert.Empty(t, token)
		assert.True(t, apperror.IsCode(err, apperror.ErrCodeUnauthorized), "password %q", password)
	}
}

func TestAuthService_Login_GenericError(t *testing.T) {
	tokens, _ := newTestTokenManager("signing-secret", time.Hour)
	auth := NewAuthService(tokens, "correct-horse")

	// Сообщение об ошибке одно на все случаи: аккаунтов нет, и ответ
	// не должен ничего сообщать о причине отказа.
	_, _, errEmpty := auth.Login("")
	_, _, errWrong := auth.Login("nope")

	assert.Equal(t, apperror.From(errEmpty).Message, apperror.From(errWrong).Message)
}
