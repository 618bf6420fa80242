package indictrans

import (
	"context"
	"errors"
	"fmt"
)

// ErrorKind classifies a translation failure.
type ErrorKind string

const (
	// KindValidation indicates malformed or out-of-policy input. Never retried.
	KindValidation ErrorKind = "validation"
	// KindUnsupportedLanguage indicates a language code outside the registry.
	KindUnsupportedLanguage ErrorKind = "unsupported_language"
	// KindBackendTimeout indicates the backend did not respond within the configured timeout.
	KindBackendTimeout ErrorKind = "backend_timeout"
	// KindBackendUnavailable indicates the backend could not be reached (connection refused, DNS failure, reset).
	KindBackendUnavailable ErrorKind = "backend_unavailable"
	// KindBackendBadResponse indicates the backend was reachable but returned unusable data. Not retried.
	KindBackendBadResponse ErrorKind = "backend_bad_response"
	// KindInternal indicates an unexpected failure crossing the orchestrator boundary.
	KindInternal ErrorKind = "internal"
)

// TranslationError is the error type returned by every component in this package.
type TranslationError struct {
	Kind           ErrorKind
	Message        string
	Field          string   // Offending request field for unsupported-language errors
	SupportedCodes []string // Remediation detail for unsupported-language errors
	Cause          error
}

func (e *TranslationError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Kind, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

func (e *TranslationError) Unwrap() error {
	return e.Cause
}

// Retryable reports whether the failure is transient and worth retrying.
func (e *TranslationError) Retryable() bool {
	return e.Kind == KindBackendTimeout || e.Kind == KindBackendUnavailable
}

// NewValidationError creates a validation error with a caller-safe message.
func NewValidationError(message string) *TranslationError {
	return &TranslationError{Kind: KindValidation, Message: message}
}

// NewUnsupportedLanguageError creates an error naming the offending request
// field and listing the supported language codes.
func NewUnsupportedLanguageError(field string, supported []string) *TranslationError {
	return &TranslationError{
		Kind:           KindUnsupportedLanguage,
		Message:        fmt.Sprintf("unsupported language in %s", field),
		Field:          field,
		SupportedCodes: supported,
	}
}

// NewBackendError creates a backend failure of the given kind.
func NewBackendError(kind ErrorKind, message string, cause error) *TranslationError {
	return &TranslationError{Kind: kind, Message: message, Cause: cause}
}

// NewInternalError wraps an unexpected failure. The message must not leak internals.
func NewInternalError(message string, cause error) *TranslationError {
	return &TranslationError{Kind: KindInternal, Message: message, Cause: cause}
}

// AsTranslationError extracts a *TranslationError from an error chain.
func AsTranslationError(err error) (*TranslationError, bool) {
	var terr *TranslationError
	if errors.As(err, &terr) {
		return terr, true
	}
	return nil, false
}

// normalizeError coerces any error crossing the orchestrator boundary into a
// *TranslationError. Context cancellation and deadline expiry surface as a
// backend timeout so callers can treat an aborted call like a slow one.
func normalizeError(err error) *TranslationError {
	if terr, ok := AsTranslationError(err); ok {
		return terr
	}
	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
		return NewBackendError(KindBackendTimeout, "translation cancelled or timed out", err)
	}
	return NewInternalError("translation failed", err)
}
