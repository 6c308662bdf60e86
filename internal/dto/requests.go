package dto

// SubmitRequestBody — форма подачи заявки (исполнитель или клиент).
type SubmitRequestBody struct {
	Name        string `json:"name" binding:"required"`
	Phone       string `json:"phone" binding:"required"`
	ServiceType string `json:"service_type" binding:"required"`
	City        string `json:"city" binding:"required"`
	Locale      string `json:"locale"`
}

// LoginBody — форма входа администратора.
type LoginBody struct {
	Password string `json:"password" binding:"required"`
}

// UpdateStatusBody — целевой статус заявки. Допустимость значения
// проверяет lifecycle, а не биндинг: невалидная цель должна вернуть
// код INVALID_TARGET.
type UpdateStatusBody struct {
	Status string `json:"status" binding:"required"`
}

// CreateListingBody — форма объявления haraj.
type CreateListingBody struct {
	Title       string  `json:"title" binding:"required"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
	City        string  `json:"city" binding:"required"`
	Phone       string  `json:"phone" binding:"required"`
	Locale      string  `json:"locale"`
}
