package dto

import (
	"net/http"

	"github.com/ahmertooGeeked/Distribution-Forecasting/internal/domain/shared"
)

// statusByCode maps domain error codes to HTTP status codes
var statusByCode = map[string]int{
	shared.ErrCodeNotFound:          http.StatusNotFound,
	shared.ErrCodeAlreadyExists:     http.StatusConflict,
	shared.ErrCodeConflict:          http.StatusConflict,
	shared.ErrCodeInvalidInput:      http.StatusBadRequest,
	shared.ErrCodeInsufficientStock: http.StatusConflict,
	shared.ErrCodeInternal:          http.StatusInternalServerError,
}

// HTTPStatus returns the HTTP status for a domain error code
func HTTPStatus(code string) int {
	if status, ok := statusByCode[code]; ok {
		return status
	}
	return http.StatusInternalServerError
}
