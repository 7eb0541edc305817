package store

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsNotFoundError(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected bool
	}{
		{name: "nil error", err: nil, expected: false},
		{name: "generic error", err: errors.New("some error"), expected: false},
		{name: "ErrNotFound", err: ErrNotFound, expected: true},
		{name: "ErrFolderNotFound", err: ErrFolderNotFound, expected: true},
		{name: "wrapped ErrTaskNotFound", err: fmt.Errorf("lookup: %w", ErrTaskNotFound), expected: true},
		{name: "ErrUserNotFound", err: ErrUserNotFound, expected: true},
		{
			name:     "StoreError wrapping ErrTaskNotFound",
			err:      NewStoreError("task", "delete", "no rows", ErrTaskNotFound),
			expected: true,
		},
		{name: "ErrEmailExists", err: ErrEmailExists, expected: false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, IsNotFoundError(tc.err))
		})
	}
}

func TestIsDuplicateError(t *testing.T) {
	assert.True(t, IsDuplicateError(ErrEmailExists))
	assert.True(t, IsDuplicateError(fmt.Errorf("create: %w", ErrDuplicate)))
	assert.False(t, IsDuplicateError(ErrNotFound))
	assert.False(t, IsDuplicateError(nil))
}

func TestStoreError(t *testing.T) {
	err := NewStoreError("folder", "create", "insert failed", ErrInvalidEntity)
	assert.Equal(t, "create operation on folder failed: insert failed: invalid entity", err.Error())
	assert.ErrorIs(t, err, ErrInvalidEntity)

	bare := NewStoreError("folder", "list", "query failed", nil)
	assert.Equal(t, "list operation on folder failed: query failed", bare.Error())
}

func TestEntityErrorsAreDistinct(t *testing.T) {
	assert.False(t, errors.Is(ErrFolderNotFound, ErrTaskNotFound))
	assert.False(t, errors.Is(ErrTaskNotFound, ErrFolderNotFound))
}
