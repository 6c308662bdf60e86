package service

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"

	"github.com/lamsatk/lamsat-backend/internal/models"
	"github.com/lamsatk/lamsat-backend/internal/pkg/apperror"
	"github.com/lamsatk/lamsat-backend/internal/repository"
	"github.com/lamsatk/lamsat-backend/internal/validation"
)

// ListingRepository описывает хранилище объявлений haraj.
type ListingRepository interface {
	Insert(ctx context.Context, l *models.Listing) error
	FindByID(ctx context.Context, id uuid.UUID) (*models.Listing, error)
	List(ctx context.Context, city string, limit, offset int) ([]models.Listing, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// CreateListingInput — поля формы объявления.
type CreateListingInput struct {
	Title       string
	Description string
	Price       float64
	City        string
	Phone       string
	Locale      string
}

type ListingService struct {
	repo ListingRepository
}

func NewListingService(repo ListingRepository) *ListingService {
	return &ListingService{repo: repo}
}

func (s *ListingService) Create(ctx context.Context, in CreateListingInput) (*models.Listing, error) {
	if err := validation.ValidateRequired("title", in.Title); err != nil {
		return nil, apperror.New(apperror.ErrCodeValidation, err.Error())
	}
	if err := validation.ValidateLength("title", in.Title, 0, validation.MaxListingTitleLength); err != nil {
		return nil, apperror.New(apperror.ErrCodeValidation, err.Error())
	}
	if err := validation.ValidateLength("description", in.Description, 0, validation.MaxListingDescriptionLength); err != nil {
		return nil, apperror.New(apperror.ErrCodeValidation, err.Error())
	}
	if in.Price < 0 {
		return nil, apperror.New(apperror.ErrCodeValidation, "price must not be negative")
	}

	phone, err := validation.ValidatePhone(in.Phone)
	if err != nil {
		return nil, apperror.New(apperror.ErrCodeValidation, err.Error())
	}

	locale := strings.TrimSpace(in.Locale)
	if locale == "" {
		locale = "ar"
	}

	listing := &models.Listing{
		Title:       strings.TrimSpace(in.Title),
		Description: strings.TrimSpace(in.Description),
		Price:       in.Price,
		City:        strings.TrimSpace(in.City),
		Phone:       phone,
		Locale:      locale,
	}

	if err := s.repo.Insert(ctx, listing); err != nil {
		return nil, apperror.Wrap(err, apperror.ErrCodeDependencyFailure, "service temporarily unavailable")
	}
	return listing, nil
}

func (s *ListingService) Get(ctx context.Context, id uuid.UUID) (*models.Listing, error) {
	listing, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrListingNotFound) {
			return nil, apperror.ErrListingNotFound
		}
		return nil, apperror.Wrap(err, apperror.ErrCodeDependencyFailure, "service temporarily unavailable")
	}
	return listing, nil
}

func (s *ListingService) List(ctx context.Context, city string, limit, offset int) ([]models.Listing, error) {
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}

	listings, err := s.repo.List(ctx, city, limit, offset)
	if err != nil {
		return nil, apperror.Wrap(err, apperror.ErrCodeDependencyFailure, "service temporarily unavailable")
	}
	return listings, nil
}

// Delete удаляет объявление (только админка).
func (s *ListingService) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrListingNotFound) {
			return apperror.ErrListingNotFound
		}
		return apperror.Wrap(err, apperror.ErrCodeDependencyFailure, "service temporarily unavailable")
	}
	return nil
}
