package errors

import (
	"errors"
	"fmt"
	"runtime"
)

// ErrorType represents the type of error
type ErrorType string

// ErrorTypeInternal marks failures that are not part of the domain
const ErrorTypeInternal ErrorType = "INTERNAL"

// AppError represents an application-specific error that is not a domain
// error, typically a wrapped failure from an unexpected place
type AppError struct {
	Type       ErrorType              `json:"type"`
	Message    string                 `json:"message"`
	Code       string                 `json:"code,omitempty"`
	Details    map[string]interface{} `json:"details,omitempty"`
	Cause      error                  `json:"-"`
	StackTrace string                 `json:"-"`
}

// Error implements the error interface
func (e *AppError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (caused by: %v)", e.Type, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Type, e.Message)
}

// Unwrap returns the underlying error
func (e *AppError) Unwrap() error {
	return e.Cause
}

// Clone returns a copy that can be changed without affecting e
func (e *AppError) Clone() *AppError {
	clone := *e
	if e.Details != nil {
		clone.Details = make(map[string]interface{}, len(e.Details))
		for k, v := range e.Details {
			clone.Details[k] = v
		}
	}
	return &clone
}

// WithCause wraps an underlying error
func (e *AppError) WithCause(err error) *AppError {
	e.Cause = err
	return e
}

// captureStackTrace captures the current stack trace
func captureStackTrace() string {
	const depth = 32
	var pcs [depth]uintptr
	n := runtime.Callers(3, pcs[:])
	frames := runtime.CallersFrames(pcs[:n])

	stack := ""
	for {
		frame, more := frames.Next()
		stack += fmt.Sprintf("%s:%d %s\n", frame.File, frame.Line, frame.Function)
		if !more {
			break
		}
	}
	return stack
}

// NewInternalError creates an internal error
func NewInternalError(message string) *AppError {
	return &AppError{
		Type:       ErrorTypeInternal,
		Message:    message,
		StackTrace: captureStackTrace(),
	}
}

// NewInternalErrorf creates an internal error with a formatted message
func NewInternalErrorf(format string, args ...interface{}) *AppError {
	return NewInternalError(fmt.Sprintf(format, args...))
}

// GetAppError extracts AppError from an error chain
func GetAppError(err error) *AppError {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr
	}
	return nil
}

// GetDomainError extracts DomainError from an error chain
func GetDomainError(err error) *DomainError {
	var domainErr *DomainError
	if errors.As(err, &domainErr) {
		return domainErr
	}
	return nil
}

// IsType checks if an error is a domain error of a specific type
func IsType(err error, errType DomainErrorType) bool {
	domainErr := GetDomainError(err)
	return domainErr != nil && domainErr.Type == errType
}

// IsValidation checks if an error is a validation error
func IsValidation(err error) bool {
	if IsType(err, DomainValidationError) {
		return true
	}
	var verrs *ValidationErrors
	return errors.As(err, &verrs)
}

// IsEphemeris checks if an error came from the ephemeris provider
func IsEphemeris(err error) bool {
	return IsType(err, DomainEphemerisError)
}

// IsLookupInvariant checks if an error is a static table lookup miss
func IsLookupInvariant(err error) bool {
	return IsType(err, DomainLookupInvariantError)
}

// IsAllSamplesFailed checks if a probabilistic calculation had no valid sample
func IsAllSamplesFailed(err error) bool {
	return IsType(err, DomainAllSamplesFailedError)
}

// Wrap wraps an error with additional context. Domain errors pass through
// untouched so callers can still match their kind. An AppError is copied
// before its message changes.
func Wrap(err error, message string) error {
	if err == nil {
		return nil
	}
	if GetDomainError(err) != nil {
		return err
	}
	var verrs *ValidationErrors
	if errors.As(err, &verrs) {
		return err
	}
	if appErr := GetAppError(err); appErr != nil {
		wrapped := appErr.Clone()
		wrapped.Message = fmt.Sprintf("%s: %s", message, appErr.Message)
		return wrapped
	}
	return NewInternalError(message).WithCause(err)
}
