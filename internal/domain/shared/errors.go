package shared

// DomainError represents a domain-level error
type DomainError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// Error implements the error interface
func (e *DomainError) Error() string {
	return e.Message
}

// NewDomainError creates a new domain error
func NewDomainError(code, message string) *DomainError {
	return &DomainError{
		Code:    code,
		Message: message,
	}
}

// Common domain errors
var (
	ErrNotFound            = NewDomainError("NOT_FOUND", "Resource not found")
	ErrAlreadyExists       = NewDomainError("ALREADY_EXISTS", "Resource already exists")
	ErrInvalidInput        = NewDomainError("INVALID_INPUT", "Invalid input provided")
	ErrConcurrencyConflict = NewDomainError("CONCURRENCY_CONFLICT", "Resource was modified by another process")
	ErrUnauthorized        = NewDomainError("UNAUTHORIZED", "Not authorized to perform this action")
	ErrForbidden           = NewDomainError("FORBIDDEN", "Access to this resource is forbidden")
	ErrOrderNotFound       = NewDomainError("ORDER_NOT_FOUND", "Order not found")
	ErrInvalidTransition   = NewDomainError("INVALID_TRANSITION", "Transition not allowed in current state")
	ErrInvalidTimeWindow   = NewDomainError("INVALID_TIME_WINDOW", "Delivery time window is not available")
	ErrNotAuthorized       = NewDomainError("NOT_AUTHORIZED", "Actor is not allowed to perform this transition")
)
