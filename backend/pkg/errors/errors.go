package errors

import (
	stderrors "errors"
	"fmt"
	"strings"
	"time"
)

// ErrorType represents the category of error
type ErrorType string

const (
	// ErrorTypeInput represents caller-side input problems, raised before any outbound call
	ErrorTypeInput ErrorType = "input"
	// ErrorTypeProvider represents generation provider failures
	ErrorTypeProvider ErrorType = "provider"
	// ErrorTypeCatalog represents tool catalog problems
	ErrorTypeCatalog ErrorType = "catalog"
	// ErrorTypeStorage represents recent-tools store failures
	ErrorTypeStorage ErrorType = "storage"
	// ErrorTypeConfig represents configuration errors
	ErrorTypeConfig ErrorType = "config"
	// ErrorTypeContext represents context cancellation/timeout errors
	ErrorTypeContext ErrorType = "context"
)

// BaseError is the base error type with common fields
type BaseError struct {
	Type      ErrorType
	Message   string
	Timestamp time.Time
	Err       error // Wrapped error
}

// Error implements the error interface
func (e *BaseError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Type, e.Message, e.Err)
	}
	return fmt.Sprintf("[%s] %s", e.Type, e.Message)
}

// Unwrap returns the wrapped error for error unwrapping
func (e *BaseError) Unwrap() error {
	return e.Err
}

// Kind reports the error category
func (e *BaseError) Kind() ErrorType {
	return e.Type
}

func (e *BaseError) message() string {
	return e.Message
}

// NewBaseError creates a new base error
func NewBaseError(errType ErrorType, message string, err error) *BaseError {
	return &BaseError{
		Type:      errType,
		Message:   message,
		Timestamp: time.Now(),
		Err:       err,
	}
}

// Input Errors

// ErrInvalidInput is returned when a required field is blank or a value is out of its domain
type ErrInvalidInput struct {
	*BaseError
	Field  string
	Reason string
}

func NewInvalidInput(field, reason string) *ErrInvalidInput {
	return &ErrInvalidInput{
		BaseError: NewBaseError(ErrorTypeInput, fmt.Sprintf("invalid input %s: %s", field, reason), nil),
		Field:     field,
		Reason:    reason,
	}
}

// ErrUnknownAction is returned when no action is registered under a name
type ErrUnknownAction struct {
	*BaseError
	Action string
}

func NewUnknownAction(action string) *ErrUnknownAction {
	return &ErrUnknownAction{
		BaseError: NewBaseError(ErrorTypeInput, fmt.Sprintf("unknown action: %s", action), nil),
		Action:    action,
	}
}

// ErrToolNotFound is returned when a tool id is not in the catalog
type ErrToolNotFound struct {
	*BaseError
	ToolID string
}

func NewToolNotFound(toolID string) *ErrToolNotFound {
	return &ErrToolNotFound{
		BaseError: NewBaseError(ErrorTypeInput, fmt.Sprintf("tool not found: %s", toolID), nil),
		ToolID:    toolID,
	}
}

// Provider Errors

// ErrProviderStatus is returned when a provider answers with a non-2xx status
type ErrProviderStatus struct {
	*BaseError
	Provider   string
	StatusCode int
}

func NewProviderStatus(provider string, statusCode int, err error) *ErrProviderStatus {
	return &ErrProviderStatus{
		BaseError:  NewBaseError(ErrorTypeProvider, fmt.Sprintf("%s returned status %d", provider, statusCode), err),
		Provider:   provider,
		StatusCode: statusCode,
	}
}

// ErrProviderFailed is returned for transport failures and malformed provider responses
type ErrProviderFailed struct {
	*BaseError
	Provider string
}

func NewProviderFailed(provider string, err error) *ErrProviderFailed {
	return &ErrProviderFailed{
		BaseError: NewBaseError(ErrorTypeProvider, fmt.Sprintf("%s request failed", provider), err),
		Provider:  provider,
	}
}

// ErrEmptyResponse is returned when a provider answers 2xx with a blank body
type ErrEmptyResponse struct {
	*BaseError
	Provider string
}

func NewEmptyResponse(provider string) *ErrEmptyResponse {
	return &ErrEmptyResponse{
		BaseError: NewBaseError(ErrorTypeProvider, fmt.Sprintf("empty response from %s", provider), nil),
		Provider:  provider,
	}
}

// Catalog Errors

// ErrCatalogInvalid collects every invariant violation found in a catalog
type ErrCatalogInvalid struct {
	*BaseError
	Problems []string
}

func NewCatalogInvalid(problems []string) *ErrCatalogInvalid {
	return &ErrCatalogInvalid{
		BaseError: NewBaseError(ErrorTypeCatalog, fmt.Sprintf("catalog invalid: %s", strings.Join(problems, "; ")), nil),
		Problems:  problems,
	}
}

// Storage Errors

// ErrStorageFailed is returned when a recent-tools backend fails
type ErrStorageFailed struct {
	*BaseError
	Backend   string
	Operation string
}

func NewStorageFailed(backend, operation string, err error) *ErrStorageFailed {
	return &ErrStorageFailed{
		BaseError: NewBaseError(ErrorTypeStorage, fmt.Sprintf("%s %s failed", backend, operation), err),
		Backend:   backend,
		Operation: operation,
	}
}

// Context Errors

// ErrContextCancelled is returned when context is cancelled
type ErrContextCancelled struct {
	*BaseError
	Operation string
}

func NewContextCancelled(operation string, err error) *ErrContextCancelled {
	return &ErrContextCancelled{
		BaseError: NewBaseError(ErrorTypeContext, fmt.Sprintf("context cancelled: %s", operation), err),
		Operation: operation,
	}
}

// Config Errors

// ErrConfigValidationFailed is returned when configuration validation fails
type ErrConfigValidationFailed struct {
	*BaseError
	Field  string
	Reason string
}

func NewConfigValidationFailed(field, reason string) *ErrConfigValidationFailed {
	return &ErrConfigValidationFailed{
		BaseError: NewBaseError(ErrorTypeConfig, fmt.Sprintf("config validation failed: %s - %s", field, reason), nil),
		Field:     field,
		Reason:    reason,
	}
}

// ErrConfigMissingRequired is returned when a required config value is missing
type ErrConfigMissingRequired struct {
	*BaseError
	Field string
}

func NewConfigMissingRequired(field string) *ErrConfigMissingRequired {
	return &ErrConfigMissingRequired{
		BaseError: NewBaseError(ErrorTypeConfig, fmt.Sprintf("missing required config: %s", field), nil),
		Field:     field,
	}
}

// Helper functions

type kinded interface {
	Kind() ErrorType
}

// IsErrorType checks if an error, or any error it wraps, is of a specific type
func IsErrorType(err error, errType ErrorType) bool {
	var k kinded
	if stderrors.As(err, &k) {
		return k.Kind() == errType
	}
	return false
}

// IsInputError reports whether err was caused by caller input
func IsInputError(err error) bool {
	return IsErrorType(err, ErrorTypeInput)
}

// StatusCode extracts the provider HTTP status from err, if it carries one
func StatusCode(err error) (int, bool) {
	var statusErr *ErrProviderStatus
	if stderrors.As(err, &statusErr) {
		return statusErr.StatusCode, true
	}
	return 0, false
}

type messaged interface {
	message() string
}

// Message returns the caller-facing message of a typed error, without the
// category prefix or wrapped cause. Other errors fall back to Error().
func Message(err error) string {
	if err == nil {
		return ""
	}
	var m messaged
	if stderrors.As(err, &m) {
		return m.message()
	}
	return err.Error()
}
