package indictrans

import (
	"context"
	"errors"
	"fmt"
	"testing"
)

func TestTranslationError_Error(t *testing.T) {
	cause := errors.New("connection reset")
	err := NewBackendError(KindBackendUnavailable, "inference server call failed", cause)

	if err.Error() != "backend_unavailable: inference server call failed: connection reset" {
		t.Errorf("unexpected error message: %s", err.Error())
	}

	if err.Unwrap() != cause {
		t.Error("Unwrap() should return the cause")
	}

	// Without cause
	err2 := NewValidationError("text cannot be empty")
	if err2.Error() != "validation: text cannot be empty" {
		t.Errorf("unexpected error message: %s", err2.Error())
	}
}

func TestTranslationError_Retryable(t *testing.T) {
	tests := []struct {
		kind     ErrorKind
		expected bool
	}{
		{KindValidation, false},
		{KindUnsupportedLanguage, false},
		{KindBackendTimeout, true},
		{KindBackendUnavailable, true},
		{KindBackendBadResponse, false},
		{KindInternal, false},
	}

	for _, tt := range tests {
		t.Run(string(tt.kind), func(t *testing.T) {
			err := &TranslationError{Kind: tt.kind, Message: "x"}
			if err.Retryable() != tt.expected {
				t.Errorf("Retryable() = %v, want %v", err.Retryable(), tt.expected)
			}
		})
	}
}

func TestNewUnsupportedLanguageError(t *testing.T) {
	err := NewUnsupportedLanguageError("sourceLang", []string{"en", "hi"})

	if err.Field != "sourceLang" {
		t.Errorf("Field = %q, want sourceLang", err.Field)
	}
	if len(err.SupportedCodes) != 2 {
		t.Errorf("expected 2 supported codes, got %d", len(err.SupportedCodes))
	}
}

func TestAsTranslationError(t *testing.T) {
	terr := NewValidationError("bad input")
	wrapped := fmt.Errorf("handling request: %w", terr)

	got, ok := AsTranslationError(wrapped)
	if !ok {
		t.Fatal("AsTranslationError should unwrap through fmt.Errorf")
	}
	if got != terr {
		t.Error("AsTranslationError should return the original error")
	}

	if _, ok := AsTranslationError(errors.New("plain")); ok {
		t.Error("plain errors should not match")
	}
}

func TestNormalizeError(t *testing.T) {
	terr := NewBackendError(KindBackendBadResponse, "garbled", nil)
	if got := normalizeError(terr); got != terr {
		t.Error("TranslationError values should pass through unchanged")
	}

	got := normalizeError(context.DeadlineExceeded)
	if got.Kind != KindBackendTimeout {
		t.Errorf("deadline errors should map to timeout, got %s", got.Kind)
	}

	got = normalizeError(context.Canceled)
	if got.Kind != KindBackendTimeout {
		t.Errorf("cancellation should map to timeout, got %s", got.Kind)
	}

	got = normalizeError(errors.New("surprise"))
	if got.Kind != KindInternal {
		t.Errorf("foreign errors should map to internal, got %s", got.Kind)
	}
}
