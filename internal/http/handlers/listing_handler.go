package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/lamsatk/lamsat-backend/internal/dto"
	"github.com/lamsatk/lamsat-backend/internal/http/handlers/common"
	"github.com/lamsatk/lamsat-backend/internal/service"
)

// ListingHandler обслуживает раздел объявлений haraj.
type ListingHandler struct {
	listings *service.ListingService
}

func NewListingHandler(listings *service.ListingService) *ListingHandler {
	return &ListingHandler{listings: listings}
}

// Create обрабатывает POST /haraj.
func (h *ListingHandler) Create(c *gin.Context) {
	var req dto.CreateListingBody
	if err := c.ShouldBindJSON(&req); err != nil {
		common.RespondValidation(c, err.Error())
		return
	}

	listing, err := h.listings.Create(c.Request.Context(), service.CreateListingInput{
		Title:       req.Title,
		Description: req.Description,
		Price:       req.Price,
		City:        req.City,
		Phone:       req.Phone,
		Locale:      req.Locale,
	})
	if err != nil {
		common.RespondAppError(c, err)
		return
	}

	c.JSON(http.StatusCreated, listing)
}

// List обрабатывает GET /haraj.
func (h *ListingHandler) List(c *gin.Context) {
	limit, offset := common.GetPagination(c)

	listings, err := h.listings.List(c.Request.Context(), c.Query("city"), limit, offset)
	if err != nil {
		common.RespondAppError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ListingListResponse{
		Data:       listings,
		Pagination: dto.Pagination{Limit: limit, Offset: offset},
	})
}

// Get обрабатывает GET /haraj/:id.
func (h *ListingHandler) Get(c *gin.Context) {
	id, err := common.ParseUUIDParam(c, "id")
	if err != nil {
		common.RespondValidation(c, err.Error())
		return
	}

	listing, err := h.listings.Get(c.Request.Context(), id)
	if err != nil {
		common.RespondAppError(c, err)
		return
	}

	c.JSON(http.StatusOK, listing)
}

// Delete обрабатывает DELETE /admin/haraj/:id.
func (h *ListingHandler) Delete(c *gin.Context) {
	id, err := common.ParseUUIDParam(c, "id")
	if err != nil {
		common.RespondValidation(c, err.Error())
		return
	}

	if err := h.listings.Delete(c.Request.Context(), id); err != nil {
		common.RespondAppError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "listing deleted"})
}
