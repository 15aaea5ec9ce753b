package errors

import (
	stderrors "errors"
	"fmt"
)

// Error codes classify the phase of a PAPI call that failed. The client never
// retries: configuration and validation errors are surfaced before any
// network activity, transport errors are propagated unchanged.
const (
	CodeConfiguration = 51001 // missing key, key ID or host at construction
	CodeValidation    = 51002 // missing or malformed call parameter
	CodeTransport     = 51003 // network, TLS or timeout failure
)

type DomainError struct {
	Code    int
	Message string
	Details string
	Cause   error
}

func (e *DomainError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("[%d] %s: %s", e.Code, e.Message, e.Details)
	}
	return fmt.Sprintf("[%d] %s", e.Code, e.Message)
}

func (e *DomainError) Unwrap() error {
	return e.Cause
}

func (e *DomainError) WithCause(cause error) *DomainError {
	e.Cause = cause
	return e
}

func NewConfigurationError(message, details string) *DomainError {
	return &DomainError{
		Code:    CodeConfiguration,
		Message: message,
		Details: details,
	}
}

func NewValidationError(message, details string) *DomainError {
	return &DomainError{
		Code:    CodeValidation,
		Message: message,
		Details: details,
	}
}

func WrapTransportError(err error, message, details string) *DomainError {
	return &DomainError{
		Code:    CodeTransport,
		Message: message,
		Details: details,
		Cause:   err,
	}
}

func IsDomainError(err error) bool {
	var domainErr *DomainError
	return stderrors.As(err, &domainErr)
}

func IsConfiguration(err error) bool {
	return hasCode(err, CodeConfiguration)
}

func IsValidation(err error) bool {
	return hasCode(err, CodeValidation)
}

func IsTransport(err error) bool {
	return hasCode(err, CodeTransport)
}

func hasCode(err error, code int) bool {
	var domainErr *DomainError
	if !stderrors.As(err, &domainErr) {
		return false
	}
	return domainErr.Code == code
}
