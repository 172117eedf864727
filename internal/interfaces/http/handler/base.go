package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/ahmertooGeeked/Distribution-Forecasting/internal/domain/shared"
	"github.com/ahmertooGeeked/Distribution-Forecasting/internal/interfaces/http/dto"
)

// BaseHandler provides shared response and error helpers
type BaseHandler struct {
	log *zap.Logger
}

// NewBaseHandler creates a base handler
func NewBaseHandler(log *zap.Logger) BaseHandler {
	return BaseHandler{log: log}
}

// Success writes a success envelope
func (h *BaseHandler) Success(c *gin.Context, status int, data interface{}) {
	c.JSON(status, dto.OK(data))
}

// SuccessList writes a paginated success envelope
func (h *BaseHandler) SuccessList(c *gin.Context, data interface{}, total int64, limit, offset int) {
	c.JSON(http.StatusOK, dto.OKList(data, total, limit, offset))
}

// HandleError maps an error to the right HTTP status and envelope
func (h *BaseHandler) HandleError(c *gin.Context, err error) {
	var domainErr *shared.DomainError
	if errors.As(err, &domainErr) {
		status := dto.HTTPStatus(domainErr.Code)
		if status >= http.StatusInternalServerError {
			h.log.Error("request failed", zap.Error(err), zap.String("path", c.Request.URL.Path))
			c.JSON(status, dto.Fail(domainErr.Code, "internal server error"))
			return
		}
		c.JSON(status, dto.Fail(domainErr.Code, domainErr.Message))
		return
	}

	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		c.JSON(http.StatusBadRequest, dto.Fail(shared.ErrCodeInvalidInput, validationErrs.Error()))
		return
	}

	h.log.Error("unexpected error", zap.Error(err), zap.String("path", c.Request.URL.Path))
	c.JSON(http.StatusInternalServerError, dto.Fail(shared.ErrCodeInternal, "internal server error"))
}

// BadRequest writes a 400 with an invalid input code
func (h *BaseHandler) BadRequest(c *gin.Context, message string) {
	c.JSON(http.StatusBadRequest, dto.Fail(shared.ErrCodeInvalidInput, message))
}

// ParseUUIDParam parses a UUID path parameter
func (h *BaseHandler) ParseUUIDParam(c *gin.Context, name string) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		h.BadRequest(c, "invalid "+name+" parameter")
		return uuid.Nil, false
	}
	return id, true
}

// ParseFilter reads limit/offset/search query parameters
func (h *BaseHandler) ParseFilter(c *gin.Context) shared.Filter {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "50"))
	if limit <= 0 || limit > 200 {
		limit = 50
	}
	offset, _ := strconv.Atoi(c.DefaultQuery("offset", "0"))
	if offset < 0 {
		offset = 0
	}
	return shared.Filter{
		Limit:  limit,
		Offset: offset,
		Search: c.Query("search"),
	}
}
