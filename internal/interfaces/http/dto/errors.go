package dto

import (
	"net/http"

	"github.com/energyservice/backend/internal/domain/shared"
)

// Error codes produced by the HTTP layer itself. Domain errors keep their
// own codes.
const (
	ErrCodeValidation   = "VALIDATION_ERROR"
	ErrCodeInvalidJSON  = "INVALID_JSON"
	ErrCodeInvalidID    = "INVALID_ID"
	ErrCodeInvalidDate  = "INVALID_DATE"
	ErrCodeBodyTooLarge = "REQUEST_TOO_LARGE"
	ErrCodeNotFound     = "NOT_FOUND"
	ErrCodeInternal     = "INTERNAL_ERROR"
)

// kindHTTPStatus maps domain error kinds to HTTP status codes
var kindHTTPStatus = map[shared.ErrorKind]int{
	shared.KindInvalidInput:    http.StatusBadRequest,
	shared.KindNotFound:        http.StatusNotFound,
	shared.KindConflict:        http.StatusConflict,
	shared.KindInternalFailure: http.StatusInternalServerError,
}

// kindStatus maps domain error kinds to envelope status values
var kindStatus = map[shared.ErrorKind]string{
	shared.KindInvalidInput:    StatusInvalidInput,
	shared.KindNotFound:        StatusNotFound,
	shared.KindConflict:        StatusConflict,
	shared.KindInternalFailure: StatusInternalFailure,
}

// HTTPStatusForKind returns the HTTP status code for an error kind.
// Unknown kinds are treated as internal failures.
func HTTPStatusForKind(kind shared.ErrorKind) int {
	if status, ok := kindHTTPStatus[kind]; ok {
		return status
	}
	return http.StatusInternalServerError
}

// StatusForKind returns the envelope status for an error kind
func StatusForKind(kind shared.ErrorKind) string {
	if status, ok := kindStatus[kind]; ok {
		return status
	}
	return StatusInternalFailure
}
