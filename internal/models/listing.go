package models

import (
	"time"

	"github.com/google/uuid"
)

// Listing — объявление в разделе haraj. Без модерации: публикуется сразу.
type Listing struct {
	ID          uuid.UUID `db:"id" json:"id"`
	Title       string    `db:"title" json:"title"`
	Description string    `db:"description" json:"description"`
	Price       float64   `db:"price" json:"price"`
	City        string    `db:"city" json:"city"`
	Phone       string    `db:"phone" json:"phone"`
	Locale      string    `db:"locale" json:"locale"`
	CreatedAt   time.Time `db:"created_at" json:"created_at"`
}
