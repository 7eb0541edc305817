package domain

import (
	"errors"
	"testing"
)

func TestValidationErrorMatching(t *testing.T) {
	err := NewValidationError("title", "is required", ErrEmptyTaskTitle)

	if !errors.Is(err, ErrValidation) {
		t.Errorf("expected ValidationError to match ErrValidation")
	}
	if !errors.Is(err, ErrEmptyTaskTitle) {
		t.Errorf("expected ValidationError to unwrap to ErrEmptyTaskTitle")
	}
	if got := err.Error(); got != "title is required" {
		t.Errorf("Error() = %q, want %q", got, "title is required")
	}

	var ve *ValidationError
	if !errors.As(errors.Join(errors.New("other"), err), &ve) || ve.Field != "title" {
		t.Errorf("expected errors.As to find the title ValidationError")
	}

	if !errors.Is(NewValidationError("due_date", "is invalid", nil), ErrValidation) {
		t.Errorf("expected nil err to default to ErrValidation")
	}
}
