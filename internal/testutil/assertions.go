package testutil

import (
	"errors"
	"testing"

	apperrors "invoicetrack/internal/errors"
)

// AssertAppError checks that err is an *AppError with the expected error
// name and status code (compared against a sentinel).
func AssertAppError(t *testing.T, err error, want *apperrors.AppError) {
	t.Helper()

	if err == nil {
		t.Fatalf("expected AppError %q, got nil", want.Name)
	}

	var appErr *apperrors.AppError
	if !errors.As(err, &appErr) {
		t.Fatalf("expected *AppError, got %T: %v", err, err)
	}

	if appErr.Name != want.Name {
		t.Errorf("expected error %q, got %q (message: %s)", want.Name, appErr.Name, appErr.Message)
	}
	if appErr.StatusCode != want.StatusCode {
		t.Errorf("expected status %d, got %d", want.StatusCode, appErr.StatusCode)
	}
}

// AssertNoError fails the test if err is not nil.
func AssertNoError(t *testing.T, err error) {
	t.Helper()

	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}
