package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/lamsatk/lamsat-backend/internal/logger"
	"github.com/lamsatk/lamsat-backend/internal/models"
	"github.com/lamsatk/lamsat-backend/internal/pkg/apperror"
	"github.com/lamsatk/lamsat-backend/internal/repository"
	"github.com/lamsatk/lamsat-backend/internal/validation"
)

// RequestRepository описывает взаимодействие сервиса с хранилищем заявок.
type RequestRepository interface {
	Insert(ctx context.Context, req *models.Request) error
	FindByID(ctx context.Context, id uuid.UUID) (*models.Request, error)
	FindActiveByPhone(ctx context.Context, phone string) (*models.Request, error)
	FindByRefAndPhone(ctx context.Context, refCode, phone string) (*models.Request, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status string) (*models.Request, error)
	List(ctx context.Context, status string, limit, offset int) ([]models.Request, error)
}

// RefCodes выдаёт публичные номера для новых заявок.
type RefCodes interface {
	Generate(ctx context.Context) (string, error)
}

// Notifier — внешний коллаборатор уведомлений. Вызывается после успешной
// вставки; его отказ логируется и не влияет на результат подачи.
type Notifier interface {
	NotifySubmission(ctx context.Context, req *models.Request) error
}

// RequestEvents получает события о заявках (realtime-лента админки).
type RequestEvents interface {
	RequestSubmitted(req *models.Request)
	RequestUpdated(req *models.Request)
}

// SubmitInput — поля формы подачи заявки.
type SubmitInput struct {
	Kind        string
	Name        string
	Phone       string
	ServiceType string
	City        string
	Locale      string
}

// StatusResult — публичный ответ проверки статуса.
type StatusResult struct {
	RefCode   string
	Status    string
	UpdatedAt time.Time
}

// RequestService содержит бизнес-логику заявок: подачу, проверку статуса
// и переходы жизненного цикла.
type RequestService struct {
	repo          RequestRepository
	refCodes      RefCodes
	notifier      Notifier
	events        RequestEvents
	notifyTimeout time.Duration
}

// NewRequestService создаёт сервис заявок. notifier может быть nil.
func NewRequestService(repo RequestRepository, refCodes RefCodes, notifier Notifier, notifyTimeout time.Duration) *RequestService {
	if notifyTimeout <= 0 {
		notifyTimeout = 5 * time.Second
	}
	return &RequestService{
		repo:          repo,
		refCodes:      refCodes,
		notifier:      notifier,
		notifyTimeout: notifyTimeout,
	}
}

// SetEvents подключает получателя событий (websocket-хаб).
func (s *RequestService) SetEvents(events RequestEvents) {
	s.events = events
}

// Submit принимает новую заявку: валидация, проверка дубликата по телефону,
// выпуск публичного номера, запись со статусом pending.
func (s *RequestService) Submit(ctx context.Context, in SubmitInput) (*models.Request, error) {
	if in.Kind != models.KindProvider && in.Kind != models.KindCustomer {
		return nil, apperror.New(apperror.ErrCodeValidation, "unknown request kind")
	}

	if err := validation.ValidateRequired("name", in.Name); err != nil {
		return nil, apperror.New(apperror.ErrCodeValidation, err.Error())
	}
	if err := validation.ValidateLength("name", in.Name, 0, validation.MaxNameLength); err != nil {
		return nil, apperror.New(apperror.ErrCodeValidation, err.Error())
	}
	if err := validation.ValidateRequired("service_type", in.ServiceType); err != nil {
		return nil, apperror.New(apperror.ErrCodeValidation, err.Error())
	}
	if err := validation.ValidateRequired("city", in.City); err != nil {
		return nil, apperror.New(apperror.ErrCodeValidation, err.Error())
	}

	phone, err := validation.ValidatePhone(in.Phone)
	if err != nil {
		return nil, apperror.New(apperror.ErrCodeValidation, err.Error())
	}

	locale := strings.TrimSpace(in.Locale)
	if locale == "" {
		locale = "ar"
	}

	// Проверка дубликата advisory: гонку двух одновременных подач
	// окончательно закрывает partial unique index в базе.
	existing, err := s.repo.FindActiveByPhone(ctx, phone)
	if err != nil && !errors.Is(err, repository.ErrRequestNotFound) {
		return nil, apperror.Wrap(err, apperror.ErrCodeDependencyFailure, "service temporarily unavailable")
	}
	if existing != nil {
		return nil, apperror.ErrDuplicatePhone
	}

	refCode, err := s.refCodes.Generate(ctx)
	if err != nil {
		return nil, apperror.Wrap(err, apperror.ErrCodeDependencyFailure, "service temporarily unavailable")
	}

	req := &models.Request{
		RefCode:     refCode,
		Kind:        in.Kind,
		Name:        strings.TrimSpace(in.Name),
		Phone:       phone,
		ServiceType: strings.TrimSpace(in.ServiceType),
		City:        strings.TrimSpace(in.City),
		Locale:      locale,
	}

	if err := s.repo.Insert(ctx, req); err != nil {
		if errors.Is(err, repository.ErrDuplicatePhone) {
			return nil, apperror.ErrDuplicatePhone
		}
		return nil, apperror.Wrap(err, apperror.ErrCodeDependencyFailure, "service temporarily unavailable")
	}

	s.notifySubmission(ctx, req)

	if s.events != nil {
		s.events.RequestSubmitted(req)
	}

	return req, nil
}

// notifySubmission дожидается коллаборатора уведомлений, но глотает его
// ошибки: заявка уже записана, и подача не должна из-за него падать.
func (s *RequestService) notifySubmission(ctx context.Context, req *models.Request) {
	if s.notifier == nil {
		return
	}

	notifyCtx, cancel := context.WithTimeout(ctx, s.notifyTimeout)
	defer cancel()

	if err := s.notifier.NotifySubmission(notifyCtx, req); err != nil {
		logger.WithComponent("requests").WithError(err).
			WithField("ref_code", req.RefCode).
			Warn("submission notification failed")
	}
}

// Lookup возвращает статус заявки по паре (ref_code, phone) без авторизации.
// Неверный телефон при верном коде неотличим от неверного кода: в обоих
// случаях одинаковый NOT_FOUND.
func (s *RequestService) Lookup(ctx context.Context, refCode, phone string) (*StatusResult, error) {
	refCode = strings.TrimSpace(refCode)
	normPhone := validation.NormalizePhone(phone)
	if refCode == "" || normPhone == "" {
		return nil, apperror.New(apperror.ErrCodeValidation, "ref and phone are required")
	}

	req, err := s.repo.FindByRefAndPhone(ctx, refCode, normPhone)
	if err != nil {
		if errors.Is(err, repository.ErrRequestNotFound) {
			return nil, apperror.ErrRequestNotFound
		}
		return nil, apperror.Wrap(err, apperror.ErrCodeDependencyFailure, "service temporarily unavailable")
	}

	return &StatusResult{
		RefCode:   req.RefCode,
		Status:    models.NormalizeStatus(req.Status),
		UpdatedAt: req.UpdatedAt,
	}, nil
}

// Get возвращает заявку по id (админка).
func (s *RequestService) Get(ctx context.Context, id uuid.UUID) (*models.Request, error) {
	req, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrRequestNotFound) {
			return nil, apperror.ErrRequestNotFound
		}
		return nil, apperror.Wrap(err, apperror.ErrCodeDependencyFailure, "service temporarily unavailable")
	}
	return req, nil
}

// List возвращает страницу заявок (админка).
func (s *RequestService) List(ctx context.Context, status string, limit, offset int) ([]models.Request, error) {
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}

	requests, err := s.repo.List(ctx, status, limit, offset)
	if err != nil {
		return nil, apperror.Wrap(err, apperror.ErrCodeDependencyFailure, "service temporarily unavailable")
	}
	return requests, nil
}
