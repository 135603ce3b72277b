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
	ErrNotFound             = NewDomainError("NOT_FOUND", "Resource not found")
	ErrAlreadyExists        = NewDomainError("ALREADY_EXISTS", "Resource already exists")
	ErrInvalidInput         = NewDomainError("INVALID_INPUT", "Invalid input provided")
	ErrPermissionDenied     = NewDomainError("PERMISSION_DENIED", "Not authorized to perform this action")
	ErrInvalidTransition    = NewDomainError("INVALID_TRANSITION", "Lifecycle transition is not allowed from the current status")
	ErrConfirmationMismatch = NewDomainError("CONFIRMATION_MISMATCH", "Confirmation text does not match the customer name")
	ErrConcurrencyConflict  = NewDomainError("CONCURRENCY_CONFLICT", "Resource was modified by another process")
	ErrStorageUnavailable   = NewDomainError("STORAGE_UNAVAILABLE", "Underlying storage is unavailable")
)
