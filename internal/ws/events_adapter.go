package ws

import (
	"github.com/lamsatk/lamsat-backend/internal/logger"
	"github.com/lamsatk/lamsat-backend/internal/models"
)

// RequestEventsAdapter транслирует события сервиса заявок в хаб.
// Реализует service.RequestEvents.
type RequestEventsAdapter struct {
	hub *Hub
}

func NewRequestEventsAdapter(hub *Hub) *RequestEventsAdapter {
	return &RequestEventsAdapter{hub: hub}
}

func (a *RequestEventsAdapter) RequestSubmitted(req *models.Request) {
	if err := a.hub.Broadcast("request.submitted", req); err != nil {
		logger.WithComponent("ws").WithError(err).Warn("broadcast request.submitted failed")
	}
}

func (a *RequestEventsAdapter) RequestUpdated(req *models.Request) {
	if err := a.hub.Broadcast("request.updated", req); err != nil {
		logger.WithComponent("ws").WithError(err).Warn("broadcast request.updated failed")
	}
}
