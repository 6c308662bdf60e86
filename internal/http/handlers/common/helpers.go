package common

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/lamsatk/lamsat-backend/internal/dto"
	"github.com/lamsatk/lamsat-backend/internal/http/middleware"
	"github.com/lamsatk/lamsat-backend/internal/logger"
	"github.com/lamsatk/lamsat-backend/internal/pkg/apperror"
)

// ErrInvalidUUID is returned when UUID parsing fails
var ErrInvalidUUID = errors.New("invalid UUID format")

// CallerIsAdmin reports whether the auth middleware marked this request
// as an admin call. The value never exists unless verification passed.
func CallerIsAdmin(c *gin.Context) bool {
	raw, exists := c.Get(middleware.ContextIsAdminKey)
	if !exists {
		return false
	}
	isAdmin, ok := raw.(bool)
	return ok && isAdmin
}

// ParseUUIDParam parses UUID from URL parameter
func ParseUUIDParam(c *gin.Context, paramName string) (uuid.UUID, error) {
	param := c.Param(paramName)
	if param == "" {
		return uuid.Nil, fmt.Errorf("missing parameter %s", paramName)
	}

	parsed, err := uuid.Parse(param)
	if err != nil {
		return uuid.Nil, ErrInvalidUUID
	}

	return parsed, nil
}

// RespondAppError maps any error to the standard {error:{code,message}}
// shape. Internal detail is logged server-side and never leaves the process.
func RespondAppError(c *gin.Context, err error) {
	appErr := apperror.From(err)
	if appErr.Cause != nil && logger.Log != nil {
		logger.Log.WithFields(logrus.Fields{
			"error":  appErr.Cause.Error(),
			"path":   c.Request.URL.Path,
			"method": c.Request.Method,
		}).Error("request failed")
	}
	c.JSON(appErr.HTTPStatus, dto.ErrorResponse{
		Error: dto.ErrorBody{Code: string(appErr.Code), Message: appErr.Message},
	})
}

// RespondValidation sends a VALIDATION_ERROR with the given message.
func RespondValidation(c *gin.Context, message string) {
	RespondAppError(c, apperror.New(apperror.ErrCodeValidation, message))
}

// ParseIntQuery safely reads an integer query parameter with a fallback value
func ParseIntQuery(c *gin.Context, key string, fallback int) int {
	if v := c.Query(key); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil {
			return parsed
		}
	}
	return fallback
}

// GetPagination extracts limit and offset from query parameters with defaults
func GetPagination(c *gin.Context) (limit, offset int) {
	limit = ParseIntQuery(c, "limit", 20)
	offset = ParseIntQuery(c, "offset", 0)
	if limit > 100 {
		limit = 100
	}
	if limit < 1 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}
	return
}
