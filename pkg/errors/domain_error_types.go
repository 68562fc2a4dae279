package errors

import (
	"fmt"
	"strings"
	"time"
)

// DomainErrorType represents the category of domain error
type DomainErrorType string

const (
	// DomainValidationError indicates malformed caller input
	DomainValidationError DomainErrorType = "VALIDATION_ERROR"

	// DomainEphemerisError indicates the position provider failed or the
	// requested instant is outside its range
	DomainEphemerisError DomainErrorType = "EPHEMERIS_ERROR"

	// DomainLookupInvariantError indicates a static table lookup missed.
	// The tables cover every gate, channel and profile, so this is a bug.
	DomainLookupInvariantError DomainErrorType = "LOOKUP_INVARIANT_VIOLATION"

	// DomainAllSamplesFailedError indicates every hourly sample of a
	// probabilistic calculation failed
	DomainAllSamplesFailedError DomainErrorType = "ALL_SAMPLES_FAILED"

	// DomainTimeoutError indicates the caller's deadline expired
	DomainTimeoutError DomainErrorType = "TIMEOUT_ERROR"
)

// DomainError represents a domain-specific error with rich context
type DomainError struct {
	Type       DomainErrorType        `json:"type"`
	Code       string                 `json:"code"`
	Message    string                 `json:"message"`
	Details    map[string]interface{} `json:"details,omitempty"`
	Cause      error                  `json:"-"`
	Retryable  bool                   `json:"retryable"`
	StatusCode int                    `json:"status_code"`
}

// NewDomainError creates a new domain error
func NewDomainError(errorType DomainErrorType, code string, message string) *DomainError {
	return &DomainError{
		Type:       errorType,
		Code:       code,
		Message:    message,
		Details:    make(map[string]interface{}),
		Retryable:  false,
		StatusCode: domainErrorTypeToStatusCode(errorType),
	}
}

// Error implements the error interface
func (e *DomainError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("[%s:%s] %s: %v", e.Type, e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("[%s:%s] %s", e.Type, e.Code, e.Message)
}

// Clone returns an independent copy. The predefined errors below are shared
// across goroutines, so callers attach details and causes to a clone.
func (e *DomainError) Clone() *DomainError {
	details := make(map[string]interface{}, len(e.Details))
	for k, v := range e.Details {
		details[k] = v
	}
	clone := *e
	clone.Details = details
	return &clone
}

// WithCause adds a cause to the error
func (e *DomainError) WithCause(cause error) *DomainError {
	e.Cause = cause
	return e
}

// WithDetail adds a detail to the error
func (e *DomainError) WithDetail(key string, value interface{}) *DomainError {
	e.Details[key] = value
	return e
}

// Is checks if the error is of a specific type
func (e *DomainError) Is(target error) bool {
	t, ok := target.(*DomainError)
	if !ok {
		return false
	}
	return e.Type == t.Type && e.Code == t.Code
}

// Unwrap returns the underlying cause
func (e *DomainError) Unwrap() error {
	return e.Cause
}

// domainErrorTypeToStatusCode maps error types to HTTP status codes for
// API layers that surface these errors
func domainErrorTypeToStatusCode(errorType DomainErrorType) int {
	switch errorType {
	case DomainValidationError:
		return 400 // Bad Request
	case DomainEphemerisError:
		return 422 // Unprocessable Entity
	case DomainAllSamplesFailedError:
		return 422
	case DomainTimeoutError:
		return 504 // Gateway Timeout
	case DomainLookupInvariantError:
		return 500 // Internal Server Error
	default:
		return 500
	}
}

var (
	// Input errors
	ErrInvalidBirthInput = NewDomainError(
		DomainValidationError,
		"INVALID_BIRTH_INPUT",
		"Birth input is invalid",
	)

	ErrUnknownTimezone = NewDomainError(
		DomainValidationError,
		"UNKNOWN_TIMEZONE",
		"Timezone is not a resolvable IANA identifier",
	)

	ErrNonexistentLocalTime = NewDomainError(
		DomainValidationError,
		"NONEXISTENT_LOCAL_TIME",
		"Local time is skipped by a daylight saving transition",
	)

	// Ephemeris errors
	ErrEphemerisUnavailable = NewDomainError(
		DomainEphemerisError,
		"EPHEMERIS_UNAVAILABLE",
		"Ephemeris provider could not compute a position",
	)

	ErrJulianDateOutOfRange = NewDomainError(
		DomainEphemerisError,
		"JULIAN_DATE_OUT_OF_RANGE",
		"Julian date is outside the ephemeris range",
	)

	ErrDesignDateNotFound = NewDomainError(
		DomainEphemerisError,
		"DESIGN_DATE_NOT_FOUND",
		"Solar arc search did not converge on the design instant",
	)

	// Table errors
	ErrLookupInvariant = NewDomainError(
		DomainLookupInvariantError,
		"LOOKUP_MISS",
		"Static table lookup missed",
	)

	ErrCatalogInconsistent = NewDomainError(
		DomainLookupInvariantError,
		"CATALOG_INCONSISTENT",
		"Static tables failed the startup self-check",
	)

	// Probabilistic mode
	ErrAllSamplesFailed = NewDomainError(
		DomainAllSamplesFailedError,
		"ALL_SAMPLES_FAILED",
		"Every hourly sample failed",
	)

	ErrCalculationTimeout = NewDomainError(
		DomainTimeoutError,
		"CALCULATION_TIMEOUT",
		"Chart calculation exceeded the caller deadline",
	)
)

// LookupMiss builds an invariant violation for table and key.
func LookupMiss(table string, key interface{}) *DomainError {
	return ErrLookupInvariant.Clone().
		WithDetail("table", table).
		WithDetail("key", key)
}

// ValidationErrors aggregates multiple validation errors
type ValidationErrors struct {
	Errors []*DomainError `json:"errors"`
}

// NewValidationErrors creates a new validation errors collection
func NewValidationErrors() *ValidationErrors {
	return &ValidationErrors{
		Errors: make([]*DomainError, 0),
	}
}

// Add adds a validation error
func (v *ValidationErrors) Add(field string, message string) {
	err := ErrInvalidBirthInput.Clone().WithDetail("field", field)
	err.Message = message
	v.Errors = append(v.Errors, err)
}

// HasErrors returns true if there are validation errors
func (v *ValidationErrors) HasErrors() bool {
	return len(v.Errors) > 0
}

// Error implements the error interface
func (v *ValidationErrors) Error() string {
	if len(v.Errors) == 0 {
		return ""
	}

	messages := make([]string, len(v.Errors))
	for i, err := range v.Errors {
		messages[i] = err.Message
	}
	return fmt.Sprintf("Validation failed: %s", strings.Join(messages, "; "))
}

// Is lets errors.Is(err, ErrInvalidBirthInput) match a collection.
func (v *ValidationErrors) Is(target error) bool {
	t, ok := target.(*DomainError)
	if !ok {
		return false
	}
	for _, err := range v.Errors {
		if err.Is(t) {
			return true
		}
	}
	return false
}

// ToMap converts validation errors to a map for JSON serialization
func (v *ValidationErrors) ToMap() map[string][]string {
	result := make(map[string][]string)

	for _, err := range v.Errors {
		field, ok := err.Details["field"].(string)
		if !ok {
			field = "general"
		}
		result[field] = append(result[field], err.Message)
	}

	return result
}

// DomainErrorResponse is the wire shape callers use to report a domain error
type DomainErrorResponse struct {
	Error     bool                   `json:"error"`
	Type      DomainErrorType        `json:"type"`
	Code      string                 `json:"code"`
	Message   string                 `json:"message"`
	Details   map[string]interface{} `json:"details,omitempty"`
	Retryable bool                   `json:"retryable"`
	RequestID string                 `json:"request_id,omitempty"`
	Timestamp string                 `json:"timestamp"`
}

// NewDomainErrorResponse creates an error response from a domain error
func NewDomainErrorResponse(err *DomainError, requestID string) *DomainErrorResponse {
	return &DomainErrorResponse{
		Error:     true,
		Type:      err.Type,
		Code:      err.Code,
		Message:   err.Message,
		Details:   err.Details,
		Retryable: err.Retryable,
		RequestID: requestID,
		Timestamp: fmt.Sprintf("%d", timeNow().Unix()),
	}
}

// Helper function for testing (can be mocked)
var timeNow = func() time.Time {
	return time.Now()
}
