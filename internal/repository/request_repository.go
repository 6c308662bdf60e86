package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"

	"github.com/lamsatk/lamsat-backend/internal/models"
)

var (
	ErrRequestNotFound = errors.New("request not found")
	// ErrDuplicatePhone возвращается, когда partial unique index по телефону
	// отклонил вставку: активная заявка с этим номером уже есть.
	ErrDuplicatePhone = errors.New("active request already exists for phone")
)

const pgUniqueViolation = "23505"

type RequestRepository struct {
	db *sqlx.DB
}

func NewRequestRepository(db *sqlx.DB) *RequestRepository {
	return &RequestRepository{db: db}
}

// NextRefSeq выдаёт следующее значение счётчика публичных номеров.
// Уникальность кода гарантируется последовательностью, а не ретраями.
func (r *RequestRepository) NextRefSeq(ctx context.Context) (int64, error) {
	var seq int64
	err := r.db.GetContext(ctx, &seq, `SELECT nextval('request_ref_seq')`)
	return seq, err
}

// Insert сохраняет новую заявку. Статус всегда pending, id и таймстемпы
// назначает база.
func (r *RequestRepository) Insert(ctx context.Context, req *models.Request) error {
	err := r.db.GetContext(ctx, req, `
		INSERT INTO requests (ref_code, kind, name, phone, service_type, city, locale, status)
		VALUES ($1, $2, $3, $4, $5, $6, $7, 'pending')
		RETURNING *
	`, req.RefCode, req.Kind, req.Name, req.Phone, req.ServiceType, req.City, req.Locale)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == pgUniqueViolation {
			return ErrDuplicatePhone
		}
		return err
	}
	return nil
}

func (r *RequestRepository) FindByID(ctx context.Context, id uuid.UUID) (*models.Request, error) {
	var req models.Request
	err := r.db.GetContext(ctx, &req, `SELECT * FROM requests WHERE id = $1`, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrRequestNotFound
	}
	if err != nil {
		return nil, err
	}
	return &req, nil
}

// FindActiveByPhone возвращает активную (не отклонённую) заявку по телефону.
// Телефон должен быть уже нормализован вызывающей стороной.
func (r *RequestRepository) FindActiveByPhone(ctx context.Context, phone string) (*models.Request, error) {
	var req models.Request
	err := r.db.GetContext(ctx, &req, `
		SELECT * FROM requests
		WHERE phone = $1 AND status <> 'rejected'
		ORDER BY created_at DESC LIMIT 1
	`, phone)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrRequestNotFound
	}
	if err != nil {
		return nil, err
	}
	return &req, nil
}

// FindByRefAndPhone ищет заявку строго по паре (ref_code, phone).
// Совпадение только одного из полей неотличимо от полного промаха.
func (r *RequestRepository) FindByRefAndPhone(ctx context.Context, refCode, phone string) (*models.Request, error) {
	var req models.Request
	err := r.db.GetContext(ctx, &req, `
		SELECT * FROM requests WHERE ref_code = $1 AND phone = $2
	`, refCode, phone)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrRequestNotFound
	}
	if err != nil {
		return nil, err
	}
	return &req, nil
}

// UpdateStatus записывает новый статус и возвращает обновлённую заявку.
func (r *RequestRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status string) (*models.Request, error) {
	var req models.Request
	err := r.db.GetContext(ctx, &req, `
		UPDATE requests SET status = $2, updated_at = NOW()
		WHERE id = $1
		RETURNING *
	`, id, status)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrRequestNotFound
	}
	if err != nil {
		return nil, err
	}
	return &req, nil
}

// List возвращает страницу заявок для админки, свежие первыми.
// Пустой status означает без фильтра.
func (r *RequestRepository) List(ctx context.Context, status string, limit, offset int) ([]models.Request, error) {
	requests := []models.Request{}
	if status != "" {
		err := r.db.SelectContext(ctx, &requests, `
			SELECT * FROM requests WHERE status = $1
			ORDER BY created_at DESC LIMIT $2 OFFSET $3
		`, status, limit, offset)
		return requests, err
	}
	err := r.db.SelectContext(ctx, &requests, `
		SELECT * FROM requests ORDER BY created_at DESC LIMIT $1 OFFSET $2
	`, limit, offset)
	return requests, err
}
