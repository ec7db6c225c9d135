package dto

import (
	"net/http"
	"strings"

	"github.com/erp/orderflow/internal/domain/shared"
)

// Error codes produced at the HTTP boundary, in addition to the domain codes
const (
	// ErrCodeInternal is used for unexpected failures
	ErrCodeInternal = "INTERNAL_ERROR"
	// ErrCodeBadRequest is used for malformed requests
	ErrCodeBadRequest = "BAD_REQUEST"
	// ErrCodeInvalidJSON is used when the body cannot be decoded
	ErrCodeInvalidJSON = "INVALID_JSON"
	// ErrCodeValidation is used when binding tags reject the body
	ErrCodeValidation = "INVALID_REQUEST"
	// ErrCodeRequestTooLarge is used when the body exceeds the configured limit
	ErrCodeRequestTooLarge = "REQUEST_TOO_LARGE"
)

// ErrorCodeHTTPStatus maps error codes to HTTP status codes
var ErrorCodeHTTPStatus = map[string]int{
	ErrCodeInternal:        http.StatusInternalServerError,
	ErrCodeBadRequest:      http.StatusBadRequest,
	ErrCodeInvalidJSON:     http.StatusBadRequest,
	ErrCodeValidation:      http.StatusBadRequest,
	ErrCodeRequestTooLarge: http.StatusRequestEntityTooLarge,

	shared.CodeNotFound:        http.StatusNotFound,
	shared.CodeInvalidInput:    http.StatusBadRequest,
	shared.CodeInvalidArgument: http.StatusBadRequest,
	shared.CodeInvalidLineItem: http.StatusBadRequest,
	shared.CodeConflict:        http.StatusConflict,
	shared.CodeAlreadyExists:   http.StatusConflict,
}

// GetHTTPStatus returns the HTTP status code for an error code.
// Unlisted INVALID_* codes are caller errors; anything else unknown is a 500.
func GetHTTPStatus(code string) int {
	if status, ok := ErrorCodeHTTPStatus[code]; ok {
		return status
	}
	if strings.HasPrefix(code, "INVALID_") {
		return http.StatusBadRequest
	}
	return http.StatusInternalServerError
}
