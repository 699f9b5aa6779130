package dto

import (
	"net/http"
	"strings"
)

// Error codes shared between the domain layer and the HTTP surface.
// Domain errors carry these codes directly; the constants below cover the
// codes the HTTP layer itself produces.
const (
	// ErrCodeInternal is used for internal server errors
	ErrCodeInternal = "INTERNAL_ERROR"
	// ErrCodeValidation is used when request binding or validation fails
	ErrCodeValidation = "VALIDATION_ERROR"
	// ErrCodeBadRequest is used for malformed requests
	ErrCodeBadRequest = "BAD_REQUEST"
	// ErrCodeUnauthorized is used when authentication is missing or invalid
	ErrCodeUnauthorized = "UNAUTHORIZED"
	// ErrCodeForbidden is used when the caller lacks permission
	ErrCodeForbidden = "FORBIDDEN"
	// ErrCodeNotFound is used when a resource is not found
	ErrCodeNotFound = "NOT_FOUND"
	// ErrCodeAlreadyExists is used when creating a duplicate resource
	ErrCodeAlreadyExists = "ALREADY_EXISTS"
	// ErrCodeAlreadyProcessed is used when a guarded transition matched zero rows
	ErrCodeAlreadyProcessed = "ALREADY_PROCESSED"
	// ErrCodeInvalidSignature is used when a webhook signature check fails
	ErrCodeInvalidSignature = "INVALID_SIGNATURE"
)

// ErrorCodeHTTPStatus maps error codes to HTTP status codes
var ErrorCodeHTTPStatus = map[string]int{
	ErrCodeInternal: http.StatusInternalServerError,

	// Input errors -> 400 Bad Request
	ErrCodeValidation:       http.StatusBadRequest,
	ErrCodeBadRequest:       http.StatusBadRequest,
	ErrCodeInvalidSignature: http.StatusBadRequest,
	"INVALID_INPUT":         http.StatusBadRequest,
	"WEAK_PASSWORD":         http.StatusBadRequest,

	// Auth errors
	ErrCodeUnauthorized: http.StatusUnauthorized,
	ErrCodeForbidden:    http.StatusForbidden,

	// Resource errors
	ErrCodeNotFound: http.StatusNotFound,

	// State conflicts -> 409 Conflict
	ErrCodeAlreadyExists:    http.StatusConflict,
	ErrCodeAlreadyProcessed: http.StatusConflict,
	"INVALID_STATE":         http.StatusConflict,
	"PAYMENT_PENDING":       http.StatusConflict,
	"COST_UNDEFINED":        http.StatusConflict,
	"PANEL_NOT_CONFIRMED":   http.StatusConflict,
	"SUPPLIER_DISABLED":     http.StatusConflict,
}

// GetHTTPStatus returns the HTTP status code for an error code.
// Unmapped INVALID_* codes come from field validation in the domain layer
// and map to 400; anything else unknown is a 500.
func GetHTTPStatus(code string) int {
	if status, ok := ErrorCodeHTTPStatus[code]; ok {
		return status
	}
	if strings.HasPrefix(code, "INVALID_") {
		return http.StatusBadRequest
	}
	return http.StatusInternalServerError
}
