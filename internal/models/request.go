package models

import (
	"time"

	"github.com/google/uuid"
)

const (
	StatusPending  = "pending"
	StatusApproved = "approved"
	StatusRejected = "rejected"
)

const (
	KindProvider = "provider"
	KindCustomer = "customer"
)

// Request — заявка исполнителя или клиента, ожидающая решения администратора.
type Request struct {
	ID          uuid.UUID `db:"id" json:"id"`
	RefCode     string    `db:"ref_code" json:"ref_code"`
	Kind        string    `db:"kind" json:"kind"`
	Name        string    `db:"name" json:"name"`
	Phone       string    `db:"phone" json:"phone"`
	ServiceType string    `db:"service_type" json:"service_type"`
	City        string    `db:"city" json:"city"`
	Locale      string    `db:"locale" json:"locale"`
	Status      string    `db:"status" json:"status"`
	CreatedAt   time.Time `db:"created_at" json:"created_at"`
	UpdatedAt   time.Time `db:"updated_at" json:"updated_at"`
}

// IsActive сообщает, блокирует ли заявка повторную подачу с того же телефона.
// Отклонённая заявка не блокирует.
func (r *Request) IsActive() bool {
	return r.Status != StatusRejected
}

// NormalizeStatus приводит значение из хранилища к одному из трёх
// публичных статусов. Неизвестные и устаревшие значения наружу не выходят.
func NormalizeStatus(s string) string {
	switch s {
	case StatusApproved, StatusRejected:
		return s
	default:
		return StatusPending
	}
}

// IsTargetStatus проверяет, что статус допустим как цель перехода.
func IsTargetStatus(s string) bool {
	return s == StatusApproved || s == StatusRejected
}
