package service

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"github.com/lamsatk/lamsat-backend/internal/models"
	"github.com/lamsatk/lamsat-backend/internal/pkg/apperror"
	"github.com/lamsatk/lamsat-backend/internal/repository"
)

// Transition переводит заявку из pending в approved или rejected.
// Это единственный путь изменения статуса; обратных переходов и переходов
// из терминальных состояний нет. Повторный вызов по уже рассмотренной
// заявке — ошибка, а не тихий no-op, поэтому ретраи клиента безопасны.
func (s *RequestService) Transition(ctx context.Context, id uuid.UUID, target string, callerIsAdmin bool) (*models.Request, error) {
	if !callerIsAdmin {
		return nil, apperror.ErrUnauthorized
	}

	if !models.IsTargetStatus(target) {
		return nil, apperror.ErrInvalidTarget
	}

	current, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrRequestNotFound) {
			return nil, apperror.ErrRequestNotFound
		}
		return nil, apperror.Wrap(err, apperror.ErrCodeDependencyFailure, "service temporarily unavailable")
	}

	if current.Status != models.StatusPending {
		return nil, apperror.ErrInvalidTransition
	}

	updated, err := s.repo.UpdateStatus(ctx, id, target)
	if err != nil {
		if errors.Is(err, repository.ErrRequestNotFound) {
			return nil, apperror.ErrRequestNotFound
		}
		return nil, apperror.Wrap(err, apperror.ErrCodeDependencyFailure, "service temporarily unavailable")
	}

	if s.events != nil {
		s.events.RequestUpdated(updated)
	}

	return updated, nil
}
