package service

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"encoding/hex"
	"encoding/json"
	"strings"
	"time"
)

// tokenClaims — содержимое токена. Ничего, кроме времени выпуска и
// истечения: сам факт валидной подписи и означает "это администратор".
type tokenClaims struct {
	IssuedAt  int64 `json:"iat"`
	ExpiresAt int64 `json:"exp"`
}

// TokenManager выпускает и проверяет stateless-токены администратора.
// Формат: base64url(payload) + "." + hex(HMAC-SHA256(secret, payload)).
// Серверного хранилища сессий нет: валидность определяется только
// содержимым токена, секретом и текущим временем.
type TokenManager struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

// NewTokenManager создаёт менеджер токенов.
func NewTokenManager(secret string, ttl time.Duration) *TokenManager {
	return &TokenManager{
		secret: []byte(secret),
		ttl:    ttl,
		now:    time.Now,
	}
}

// TTL возвращает срок жизни выпускаемых токенов.
func (m *TokenManager) TTL() time.Duration {
	return m.ttl
}

// Issue выпускает новый токен со сроком жизни ttl.
func (m *TokenManager) Issue() (string, error) {
	now := m.now()
	payload, err := json.Marshal(tokenClaims{
		IssuedAt:  now.Unix(),
		ExpiresAt: now.Add(m.ttl).Unix(),
	})
	if err != nil {
		return "", err
	}

	sig := m.sign(payload)
	return base64.RawURLEncoding.EncodeToString(payload) + "." + hex.EncodeToString(sig), nil
}

// Verify проверяет токен. Любая проблема — отсутствующий токен, битая
// структура, несовпадение подписи, нечитаемый payload, истёкший срок —
// даёт false, ошибки наружу не выходят.
func (m *TokenManager) Verify(token string) bool {
	if token == "" {
		return false
	}

	encodedPayload, encodedSig, found := strings.Cut(token, ".")
	if !found {
		return false
	}

	payload, err := base64.RawURLEncoding.DecodeString(encodedPayload)
	if err != nil {
		return false
	}

	sig, err := hex.DecodeString(encodedSig)
	if err != nil {
		return false
	}

	// hmac.Equal сравнивает за константное время и не обрывается
	// на первом несовпавшем байте.
	if !hmac.Equal(sig, m.sign(payload)) {
		return false
	}

	var claims tokenClaims
	if err := json.Unmarshal(payload, &claims); err != nil {
		return false
	}

	return m.now().Unix() <= claims.ExpiresAt
}

func (m *TokenManager) sign(payload []byte) []byte {
	mac := hmac.New(sha256.New, m.secret)
	mac.Write(payload)
	return mac.Sum(nil)
}
