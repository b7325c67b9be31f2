package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/energyservice/backend/internal/domain/shared"
	"github.com/energyservice/backend/internal/infrastructure/logger"
	"github.com/energyservice/backend/internal/interfaces/http/dto"
	"github.com/energyservice/backend/internal/interfaces/http/middleware"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// BaseHandler provides common handler utilities
type BaseHandler struct{}

// Success sends a success response
func (h *BaseHandler) Success(c *gin.Context, data any) {
	c.JSON(http.StatusOK, dto.NewSuccessResponse(data))
}

// SuccessWithMeta sends a success response with pagination meta
func (h *BaseHandler) SuccessWithMeta(c *gin.Context, data any, total int64, page, pageSize int) {
	c.JSON(http.StatusOK, dto.NewSuccessResponseWithMeta(data, total, page, pageSize))
}

// Created sends a 201 created response
func (h *BaseHandler) Created(c *gin.Context, data any) {
	c.JSON(http.StatusCreated, dto.NewSuccessResponse(data))
}

// BadRequest sends a 400 response with an HTTP layer error code
func (h *BaseHandler) BadRequest(c *gin.Context, code, message string) {
	c.JSON(http.StatusBadRequest, dto.NewErrorResponse(dto.StatusInvalidInput, code, message, nil))
}

// InternalError sends a 500 internal server error response
func (h *BaseHandler) InternalError(c *gin.Context) {
	c.JSON(http.StatusInternalServerError, dto.NewErrorResponse(
		dto.StatusInternalFailure, dto.ErrCodeInternal, "Internal server error", nil))
}

// ValidationError sends a 400 response for a binding failure
func (h *BaseHandler) ValidationError(c *gin.Context, err error) {
	middleware.HandleValidationError(c, err)
}

// HandleDomainError converts domain errors to HTTP responses. The error kind
// selects the status; code, message and data are passed through. Errors that
// are not domain errors become a generic 500 and are logged.
func (h *BaseHandler) HandleDomainError(c *gin.Context, err error) {
	var domainErr *shared.DomainError
	if errors.As(err, &domainErr) {
		if domainErr.Kind == shared.KindInternalFailure {
			logger.L(c.Request.Context()).Error("request failed",
				zap.String("method", c.Request.Method),
				zap.String("path", c.Request.URL.Path),
				zap.String("code", domainErr.Code),
				zap.Error(errors.Unwrap(domainErr)))
		}
		c.JSON(dto.HTTPStatusForKind(domainErr.Kind), dto.NewErrorResponse(
			dto.StatusForKind(domainErr.Kind),
			domainErr.Code,
			domainErr.Message,
			domainErr.Data,
		))
		return
	}

	logger.L(c.Request.Context()).Error("unexpected error",
		zap.String("method", c.Request.Method),
		zap.String("path", c.Request.URL.Path),
		zap.Error(err))
	h.InternalError(c)
}

// bindCustomer tags the request context with the customer the request acts on
func (h *BaseHandler) bindCustomer(c *gin.Context, customerID int64) {
	c.Request = c.Request.WithContext(logger.WithCustomerID(c.Request.Context(), customerID))
}

// parseID reads a positive int64 path parameter. It writes a 400 response and
// returns false when the value is malformed.
func (h *BaseHandler) parseID(c *gin.Context, name string) (int64, bool) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil || id <= 0 {
		h.BadRequest(c, dto.ErrCodeInvalidID, "Invalid "+name+": must be a positive integer")
		return 0, false
	}
	return id, true
}
