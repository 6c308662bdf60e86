package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/lamsatk/lamsat-backend/internal/models"
)

var ErrListingNotFound = errors.New("listing not found")

type ListingRepository struct {
	db *sqlx.DB
}

func NewListingRepository(db *sqlx.DB) *ListingRepository {
	return &ListingRepository{db: db}
}

func (r *ListingRepository) Insert(ctx context.Context, l *models.Listing) error {
	return r.db.GetContext(ctx, l, `
		INSERT INTO listings (title, description, price, city, phone, locale)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING *
	`, l.Title, l.Description, l.Price, l.City, l.Phone, l.Locale)
}

func (r *ListingRepository) FindByID(ctx context.Context, id uuid.UUID) (*models.Listing, error) {
	var l models.Listing
	err := r.db.GetContext(ctx, &l, `SELECT * FROM listings WHERE id = $1`, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrListingNotFound
	}
	if err != nil {
		return nil, err
	}
	return &l, nil
}

// List возвращает страницу объявлений, свежие первыми. Пустой city — без фильтра.
func (r *ListingRepository) List(ctx context.Context, city string, limit, offset int) ([]models.Listing, error) {
	listings := []models.Listing{}
	if city != "" {
		err := r.db.SelectContext(ctx, &listings, `
			SELECT * FROM listings WHERE city = $1
			ORDER BY created_at DESC LIMIT $2 OFFSET $3
		`, city, limit, offset)
		return listings, err
	}
	err := r.db.SelectContext(ctx, &listings, `
		SELECT * FROM listings ORDER BY created_at DESC LIMIT $1 OFFSET $2
	`, limit, offset)
	return listings, err
}

func (r *ListingRepository) Delete(ctx context.Context, id uuid.UUID) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM listings WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if affected, err := res.RowsAffected(); err == nil && affected == 0 {
		return ErrListingNotFound
	}
	return nil
}
