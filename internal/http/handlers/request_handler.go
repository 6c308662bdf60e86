package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/lamsatk/lamsat-backend/internal/dto"
	"github.com/lamsatk/lamsat-backend/internal/http/handlers/common"
	"github.com/lamsatk/lamsat-backend/internal/models"
	"github.com/lamsatk/lamsat-backend/internal/service"
)

// RequestHandler обслуживает подачу заявок и их администрирование.
type RequestHandler struct {
	requests *service.RequestService
}

func NewRequestHandler(requests *service.RequestService) *RequestHandler {
	return &RequestHandler{requests: requests}
}

// SubmitProvider обрабатывает POST /requests/provider.
func (h *RequestHandler) SubmitProvider(c *gin.Context) {
	h.submit(c, models.KindProvider)
}

// SubmitCustomer обрабатывает POST /requests/customer.
func (h *RequestHandler) SubmitCustomer(c *gin.Context) {
	h.submit(c, models.KindCustomer)
}

func (h *RequestHandler) submit(c *gin.Context, kind string) {
	var req dto.SubmitRequestBody
	if err := c.ShouldBindJSON(&req); err != nil {
		common.RespondValidation(c, err.Error())
		return
	}

	created, err := h.requests.Submit(c.Request.Context(), service.SubmitInput{
		Kind:        kind,
		Name:        req.Name,
		Phone:       req.Phone,
		ServiceType: req.ServiceType,
		City:        req.City,
		Locale:      req.Locale,
	})
	if err != nil {
		common.RespondAppError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.SubmitResponse{
		ID:      created.ID,
		RefCode: created.RefCode,
		Status:  created.Status,
	})
}

// ListRequests обрабатывает GET /admin/requests.
func (h *RequestHandler) ListRequests(c *gin.Context) {
	limit, offset := common.GetPagination(c)
	status := c.Query("status")

	requests, err := h.requests.List(c.Request.Context(), status, limit, offset)
	if err != nil {
		common.RespondAppError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.RequestListResponse{
		Data:       requests,
		Pagination: dto.Pagination{Limit: limit, Offset: offset},
	})
}

// GetRequest обрабатывает GET /admin/requests/:id.
func (h *RequestHandler) GetRequest(c *gin.Context) {
	id, err := common.ParseUUIDParam(c, "id")
	if err != nil {
		common.RespondValidation(c, err.Error())
		return
	}

	req, err := h.requests.Get(c.Request.Context(), id)
	if err != nil {
		common.RespondAppError(c, err)
		return
	}

	c.JSON(http.StatusOK, req)
}

// UpdateStatus обрабатывает PUT /admin/requests/:id/status.
func (h *RequestHandler) UpdateStatus(c *gin.Context) {
	id, err := common.ParseUUIDParam(c, "id")
	if err != nil {
		common.RespondValidation(c, err.Error())
		return
	}

	var req dto.UpdateStatusBody
	if err := c.ShouldBindJSON(&req); err != nil {
		common.RespondValidation(c, "status is required")
		return
	}

	updated, err := h.requests.Transition(c.Request.Context(), id, req.Status, common.CallerIsAdmin(c))
	if err != nil {
		common.RespondAppError(c, err)
		return
	}

	c.JSON(http.StatusOK, updated)
}
