package domain

import "errors"

// ErrorCategory identifies which kind of rule a payment field violated
type ErrorCategory string

const (
	CategoryMissingMandatory  ErrorCategory = "MISSING_MANDATORY"
	CategoryFormatInvalid     ErrorCategory = "FORMAT_INVALID"
	CategoryLengthExceeded    ErrorCategory = "LENGTH_EXCEEDED"
	CategoryRangeInvalid      ErrorCategory = "RANGE_INVALID"
	CategoryMutuallyExclusive ErrorCategory = "MUTUALLY_EXCLUSIVE"
	CategoryChecksumInvalid   ErrorCategory = "CHECKSUM_INVALID"
)

// ValidationError is returned for every invalid payment-field input.
// Message is human readable and names the field and the rule that failed.
type ValidationError struct {
	Category ErrorCategory
	Field    string
	Message  string
}

// NewValidationError creates a ValidationError
func NewValidationError(category ErrorCategory, field, message string) *ValidationError {
	return &ValidationError{
		Category: category,
		Field:    field,
		Message:  message,
	}
}

func (e *ValidationError) Error() string {
	return e.Message
}

// Is matches on category, so errors.Is(err, ErrRangeInvalid) works for any field
func (e *ValidationError) Is(target error) bool {
	var other *ValidationError
	if !errors.As(target, &other) {
		return false
	}
	return e.Category == other.Category
}

// Category sentinels for errors.Is
var (
	ErrMissingMandatory  = &ValidationError{Category: CategoryMissingMandatory, Message: "missing mandatory field"}
	ErrFormatInvalid     = &ValidationError{Category: CategoryFormatInvalid, Message: "invalid format"}
	ErrLengthExceeded    = &ValidationError{Category: CategoryLengthExceeded, Message: "length exceeded"}
	ErrRangeInvalid      = &ValidationError{Category: CategoryRangeInvalid, Message: "value out of range"}
	ErrMutuallyExclusive = &ValidationError{Category: CategoryMutuallyExclusive, Message: "mutually exclusive fields"}
	ErrChecksumInvalid   = &ValidationError{Category: CategoryChecksumInvalid, Message: "invalid checksum"}
)

// ErrPayloadNotFound is returned by a PayloadRepository for an unknown ID
var ErrPayloadNotFound = errors.New("issued payload not found")
