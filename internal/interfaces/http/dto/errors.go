package dto

import "net/http"

// Error codes surfaced by the API
const (
	ErrCodeNotFound            = "NOT_FOUND"
	ErrCodeOrderNotFound       = "ORDER_NOT_FOUND"
	ErrCodeAlreadyExists       = "ALREADY_EXISTS"
	ErrCodeNotAuthorized       = "NOT_AUTHORIZED"
	ErrCodeForbidden           = "FORBIDDEN"
	ErrCodeUnauthorized        = "UNAUTHORIZED"
	ErrCodeInvalidCredentials  = "INVALID_CREDENTIALS"
	ErrCodeInvalidToken        = "INVALID_TOKEN"
	ErrCodeAccountDeactivated  = "ACCOUNT_DEACTIVATED"
	ErrCodeInvalidInput        = "INVALID_INPUT"
	ErrCodeInvalidTransition   = "INVALID_TRANSITION"
	ErrCodeInvalidTimeWindow   = "INVALID_TIME_WINDOW"
	ErrCodeInvalidDate         = "INVALID_DATE"
	ErrCodeInvalidStatus       = "INVALID_STATUS"
	ErrCodeInsufficientStock   = "INSUFFICIENT_STOCK"
	ErrCodeEmptyCart           = "EMPTY_CART"
	ErrCodeConcurrencyConflict = "CONCURRENCY_CONFLICT"
	ErrCodeInternalError       = "INTERNAL_ERROR"
)

// ErrorCodeHTTPStatus maps domain error codes to HTTP status codes
var ErrorCodeHTTPStatus = map[string]int{
	ErrCodeNotFound:            http.StatusNotFound,
	ErrCodeOrderNotFound:       http.StatusNotFound,
	ErrCodeAlreadyExists:       http.StatusConflict,
	ErrCodeInvalidTransition:   http.StatusConflict,
	ErrCodeConcurrencyConflict: http.StatusConflict,
	ErrCodeNotAuthorized:       http.StatusForbidden,
	ErrCodeForbidden:           http.StatusForbidden,
	ErrCodeAccountDeactivated:  http.StatusForbidden,
	ErrCodeUnauthorized:        http.StatusUnauthorized,
	ErrCodeInvalidCredentials:  http.StatusUnauthorized,
	ErrCodeInvalidToken:        http.StatusUnauthorized,
	ErrCodeInvalidTimeWindow:   http.StatusUnprocessableEntity,
	ErrCodeInsufficientStock:   http.StatusUnprocessableEntity,
	ErrCodeEmptyCart:           http.StatusUnprocessableEntity,
	ErrCodeInvalidInput:        http.StatusBadRequest,
	ErrCodeInvalidDate:         http.StatusBadRequest,
	ErrCodeInvalidStatus:       http.StatusBadRequest,
	ErrCodeInternalError:       http.StatusInternalServerError,
}

// GetHTTPStatus returns the HTTP status code for a domain error code.
// Unknown codes default to 400 since domain validation produces most of them.
func GetHTTPStatus(code string) int {
	if status, ok := ErrorCodeHTTPStatus[code]; ok {
		return status
	}
	return http.StatusBadRequest
}
