package domain

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
)

// Domain error types for consistent error handling across the application.
// Every DomainError carries one of these as its Base; the Base decides the
// error's Kind, and the Kind decides the code and status seen by callers.

var (
	// ErrInvalidInput is returned when input validation fails.
	ErrInvalidInput = errors.New("invalid input")

	// ErrUnauthorized is returned when authentication is required but not provided.
	ErrUnauthorized = errors.New("unauthorized")

	// ErrForbidden is returned when the user lacks permission for the operation.
	ErrForbidden = errors.New("forbidden")

	// ErrNotFound is returned when a requested resource does not exist.
	ErrNotFound = errors.New("resource not found")

	// ErrConflict is returned when a unique value is already taken.
	ErrConflict = errors.New("conflict")

	// ErrExternalService is returned when an upstream service (AI, identity) fails.
	ErrExternalService = errors.New("external service failure")

	// ErrDatabase is returned when a store operation fails for non-validation reasons.
	ErrDatabase = errors.New("database failure")
)

// Kind is the closed set of error categories exposed to callers.
type Kind uint8

const (
	KindInternal Kind = iota
	KindValidation
	KindAuthentication
	KindAuthorization
	KindNotFound
	KindConflict
	KindExternalService
	KindDatabase
)

var kinds = [...]struct {
	code   string
	status int
}{
	KindInternal:        {"INTERNAL_ERROR", http.StatusInternalServerError},
	KindValidation:      {"VALIDATION_ERROR", http.StatusBadRequest},
	KindAuthentication:  {"AUTH_ERROR", http.StatusUnauthorized},
	KindAuthorization:   {"AUTHORIZATION_ERROR", http.StatusForbidden},
	KindNotFound:        {"NOT_FOUND", http.StatusNotFound},
	KindConflict:        {"CONFLICT_ERROR", http.StatusConflict},
	KindExternalService: {"EXTERNAL_SERVICE_ERROR", http.StatusServiceUnavailable},
	KindDatabase:        {"DATABASE_ERROR", http.StatusInternalServerError},
}

// Code returns the machine-readable error code.
func (k Kind) Code() string {
	if int(k) >= len(kinds) {
		return kinds[KindInternal].code
	}
	return kinds[k].code
}

// Status returns the HTTP-equivalent status code.
func (k Kind) Status() int {
	if int(k) >= len(kinds) {
		return kinds[KindInternal].status
	}
	return kinds[k].status
}

func (k Kind) String() string {
	return k.Code()
}

// KindOf returns the Kind of err by matching it against the sentinel errors.
// Unrecognised errors are KindInternal.
func KindOf(err error) Kind {
	switch {
	case err == nil:
		return KindInternal
	case errors.Is(err, ErrInvalidInput):
		return KindValidation
	case errors.Is(err, ErrUnauthorized):
		return KindAuthentication
	case errors.Is(err, ErrForbidden):
		return KindAuthorization
	case errors.Is(err, ErrNotFound):
		return KindNotFound
	case errors.Is(err, ErrConflict):
		return KindConflict
	case errors.Is(err, ErrExternalService):
		return KindExternalService
	case errors.Is(err, ErrDatabase):
		return KindDatabase
	default:
		return KindInternal
	}
}

// DomainError wraps a base error with additional context.
// It provides a standard way to add details to domain errors.
type DomainError struct {
	// Base is the underlying error type (e.g., ErrNotFound)
	Base error

	// Message is safe to show to the caller
	Message string

	// Field indicates which field caused the error (for validation errors)
	Field string

	// Cause is the underlying failure, kept for logs only
	Cause error
}

// Error implements the error interface.
func (e *DomainError) Error() string {
	var s string
	switch {
	case e.Field != "":
		s = fmt.Sprintf("%s: %s (field: %s)", e.Base.Error(), e.Message, e.Field)
	case e.Message != "":
		s = fmt.Sprintf("%s: %s", e.Base.Error(), e.Message)
	default:
		s = e.Base.Error()
	}
	if e.Cause != nil {
		s += ": " + e.Cause.Error()
	}
	return s
}

// Unwrap returns the base error and the cause for errors.Is/As support.
func (e *DomainError) Unwrap() []error {
	if e.Cause == nil {
		return []error{e.Base}
	}
	return []error{e.Base, e.Cause}
}

// Kind returns the category of the error.
func (e *DomainError) Kind() Kind {
	return KindOf(e.Base)
}

// NewValidationError creates a validation error, optionally for a specific field.
func NewValidationError(field, message string) *DomainError {
	return &DomainError{
		Base:    ErrInvalidInput,
		Message: message,
		Field:   field,
	}
}

// NewUnauthorizedError creates an authentication error.
func NewUnauthorizedError(message string) *DomainError {
	if message == "" {
		message = "Authentication required"
	}
	return &DomainError{
		Base:    ErrUnauthorized,
		Message: message,
	}
}

// NewForbiddenError creates an authorization error.
func NewForbiddenError(message string) *DomainError {
	if message == "" {
		message = "You do not have permission to perform this action"
	}
	return &DomainError{
		Base:    ErrForbidden,
		Message: message,
	}
}

// NewNotFoundError creates a not found error for the named resource.
func NewNotFoundError(resource string) *DomainError {
	if resource == "" {
		resource = "Resource"
	}
	return &DomainError{
		Base:    ErrNotFound,
		Message: resource + " not found",
	}
}

// NewConflictError creates a conflict error, optionally for a specific field.
func NewConflictError(field, message string) *DomainError {
	return &DomainError{
		Base:    ErrConflict,
		Message: message,
		Field:   field,
	}
}

// NewExternalServiceError creates an upstream failure. The cause is logged,
// never shown.
func NewExternalServiceError(message string, cause error) *DomainError {
	if message == "" {
		message = "Service temporarily unavailable"
	}
	return &DomainError{
		Base:    ErrExternalService,
		Message: message,
		Cause:   cause,
	}
}

// NewDatabaseError creates a store failure. The cause is logged, never shown.
func NewDatabaseError(message string, cause error) *DomainError {
	if message == "" {
		message = "Database operation failed"
	}
	return &DomainError{
		Base:    ErrDatabase,
		Message: message,
		Cause:   cause,
	}
}

// IsNotFound checks if an error is a not found error.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}

// IsValidationError checks if an error is a validation error.
func IsValidationError(err error) bool {
	return errors.Is(err, ErrInvalidInput)
}

// IsConflict checks if an error is a conflict error.
func IsConflict(err error) bool {
	return errors.Is(err, ErrConflict)
}

// IsForbidden checks if an error is a forbidden error.
func IsForbidden(err error) bool {
	return errors.Is(err, ErrForbidden)
}

// IsUnauthorized checks if an error is unauthorized.
func IsUnauthorized(err error) bool {
	return errors.Is(err, ErrUnauthorized)
}

// IsExternalService checks if an error is an upstream failure.
func IsExternalService(err error) bool {
	return errors.Is(err, ErrExternalService)
}

// SQLSTATE codes reported by the store.
const (
	CodeUniqueViolation     = "23505"
	CodeForeignKeyViolation = "23503"
	CodeNotNullViolation    = "23502"
)

// StoreError is a failure reported by the store, carrying its native error
// code. Repositories wrap driver errors in it so the core never depends on
// the driver.
type StoreError struct {
	Code       string
	Constraint string
	Column     string
	Message    string
	Err        error
}

func (e *StoreError) Error() string {
	return fmt.Sprintf("store error %s: %s", e.Code, e.Message)
}

func (e *StoreError) Unwrap() error {
	return e.Err
}

// Mentions reports whether the constraint, column or message names column.
func (e *StoreError) Mentions(column string) bool {
	return strings.Contains(e.Constraint, column) ||
		e.Column == column ||
		strings.Contains(e.Message, column)
}

// IsUniqueViolationOn reports whether err is a unique violation involving column.
func IsUniqueViolationOn(err error, column string) bool {
	var se *StoreError
	if !errors.As(err, &se) {
		return false
	}
	return se.Code == CodeUniqueViolation && se.Mentions(column)
}

// ErrorInfo is the caller-facing view of any error.
type ErrorInfo struct {
	Code    string `json:"code"`
	Status  int    `json:"-"`
	Message string `json:"message"`
	Field   string `json:"field,omitempty"`
}

const internalErrorMessage = "An unexpected error occurred. Please try again later."

// HandleError classifies err into the taxonomy. Domain errors keep their
// code, status and message. Store errors are classified by their native code.
// Anything else is logged with full detail and reduced to a generic message.
func HandleError(log *slog.Logger, err error) ErrorInfo {
	var de *DomainError
	if errors.As(err, &de) {
		k := de.Kind()
		msg := de.Message
		if msg == "" {
			msg = de.Base.Error()
		}
		return ErrorInfo{Code: k.Code(), Status: k.Status(), Message: msg, Field: de.Field}
	}

	var se *StoreError
	if errors.As(err, &se) {
		switch se.Code {
		case CodeUniqueViolation:
			return ErrorInfo{
				Code:    KindConflict.Code(),
				Status:  KindConflict.Status(),
				Message: "A record with this value already exists",
			}
		case CodeForeignKeyViolation:
			return ErrorInfo{
				Code:    KindValidation.Code(),
				Status:  KindValidation.Status(),
				Message: "Referenced record does not exist",
			}
		case CodeNotNullViolation:
			return ErrorInfo{
				Code:    KindValidation.Code(),
				Status:  KindValidation.Status(),
				Message: "Required field is missing",
			}
		}
	}

	if log != nil {
		log.Error("unexpected error", "error", err)
	}
	return ErrorInfo{
		Code:    KindInternal.Code(),
		Status:  KindInternal.Status(),
		Message: internalErrorMessage,
	}
}

// ValidationFailure is the envelope for a failed multi-field validation.
type ValidationFailure struct {
	Code    string            `json:"code"`
	Message string            `json:"message"`
	Errors  map[string]string `json:"errors"`
}

// FormatValidationErrors wraps a field error map in the validation envelope.
func FormatValidationErrors(errs map[string]string) ValidationFailure {
	return ValidationFailure{
		Code:    KindValidation.Code(),
		Message: "Validation failed",
		Errors:  errs,
	}
}
