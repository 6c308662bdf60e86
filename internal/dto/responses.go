package dto

import (
	"time"

	"github.com/google/uuid"

	"github.com/lamsatk/lamsat-backend/internal/models"
)

// ErrorBody — машинный код плюс человекочитаемое сообщение.
// Внутренние детали ошибок сюда не попадают.
type ErrorBody struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// ErrorResponse — стандартная ошибка API.
type ErrorResponse struct {
	Error ErrorBody `json:"error"`
}

// SubmitResponse возвращается после успешной подачи заявки.
type SubmitResponse struct {
	ID      uuid.UUID `json:"id"`
	RefCode string    `json:"ref_code"`
	Status  string    `json:"status"`
}

// StatusResponse — ответ публичной проверки статуса.
type StatusResponse struct {
	OK        bool      `json:"ok"`
	RefCode   string    `json:"ref"`
	Status    string    `json:"status"`
	UpdatedAt time.Time `json:"updated_at"`
}

// StatusErrorResponse — ошибка публичной проверки статуса.
type StatusErrorResponse struct {
	OK    bool      `json:"ok"`
	Error ErrorBody `json:"error"`
}

// LoginResponse — успешный вход администратора.
type LoginResponse struct {
	Token     string `json:"token"`
	ExpiresIn int64  `json:"expires_in"`
}

// Pagination — метаданные страницы.
type Pagination struct {
	Limit  int `json:"limit"`
	Offset int `json:"offset"`
}

// RequestListResponse — страница заявок для админки.
type RequestListResponse struct {
	Data       []models.Request `json:"data"`
	Pagination Pagination       `json:"pagination"`
}

// ListingListResponse — страница объявлений haraj.
type ListingListResponse struct {
	Data       []models.Listing `json:"data"`
	Pagination Pagination       `json:"pagination"`
}
