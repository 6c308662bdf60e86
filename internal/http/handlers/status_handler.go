package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/lamsatk/lamsat-backend/internal/dto"
	"github.com/lamsatk/lamsat-backend/internal/pkg/apperror"
	"github.com/lamsatk/lamsat-backend/internal/service"
)

// StatusHandler — публичная проверка статуса заявки по паре (ref, phone).
type StatusHandler struct {
	requests *service.RequestService
}

func NewStatusHandler(requests *service.RequestService) *StatusHandler {
	return &StatusHandler{requests: requests}
}

// Lookup обрабатывает GET /status?ref=&phone=.
func (h *StatusHandler) Lookup(c *gin.Context) {
	result, err := h.requests.Lookup(c.Request.Context(), c.Query("ref"), c.Query("phone"))
	if err != nil {
		appErr := apperror.From(err)
		c.JSON(appErr.HTTPStatus, dto.StatusErrorResponse{
			OK:    false,
			Error: dto.ErrorBody{Code: string(appErr.Code), Message: appErr.Message},
		})
		return
	}

	c.JSON(http.StatusOK, dto.StatusResponse{
		OK:        true,
		RefCode:   result.RefCode,
		Status:    result.Status,
		UpdatedAt: result.UpdatedAt,
	})
}
