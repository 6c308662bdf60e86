package service

import (
	"crypto/sha256"
	"crypto/subtle"
	"time"

	"github.com/lamsatk/lamsat-backend/internal/pkg/apperror"
)

// AuthService обменивает админский пароль на stateless-токен.
// Аккаунтов нет: пароль один, хранится в конфигурации процесса.
type AuthService struct {
	tokens       *TokenManager
	passwordHash [32]byte
}

// NewAuthService создаёт сервис авторизации администратора.
func NewAuthService(tokens *TokenManager, adminPassword string) *AuthService {
	return &AuthService{
		tokens:       tokens,
		passwordHash: sha256.Sum256([]byte(adminPassword)),
	}
}

// Login проверяет пароль и выпускает токен. Ответ при неверном пароле
// всегда один и тот же generic UNAUTHORIZED.
func (s *AuthService) Login(password string) (string, time.Duration, error) {
	// Сравниваем дайджесты за константное время: само сравнение не
	// выдаёт ни длину пароля, ни позицию расхождения.
	given := sha256.Sum256([]byte(password))
	if subtle.ConstantTimeCompare(given[:], s.passwordHash[:]) != 1 {
		return "", 0, apperror.ErrInvalidCredentials
	}

	token, err := s.tokens.Issue()
	if err != nil {
		return "", 0, apperror.Wrap(err, apperror.ErrCodeDependencyFailure, "service temporarily unavailable")
	}

	return token, s.tokens.TTL(), nil
}
