package domain

import (
	"strings"
	"testing"

	"github.com/google/uuid"
)

func TestNewUser(t *testing.T) {
	t.Parallel()

	user, err := NewUser("alice@example.com", "correct-horse")
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if user.ID == uuid.Nil {
		t.Error("Expected non-nil UUID, got nil UUID")
	}

	tests := []struct {
		name     string
		email    string
		password string
		want     error
	}{
		{"empty email", "", "correct-horse", ErrEmptyEmail},
		{"bad email", "alice", "correct-horse", ErrInvalidEmail},
		{"display name email", "Alice <alice@example.com>", "correct-horse", ErrInvalidEmail},
		{"short password", "alice@example.com", "short", ErrPasswordTooShort},
		{"long password", "alice@example.com", strings.Repeat("p", MaxPasswordLength+1), ErrPasswordTooLong},
		{"no password", "alice@example.com", "", ErrEmptyPassword},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := NewUser(tc.email, tc.password); err != tc.want {
				t.Errorf("Expected error %v, got %v", tc.want, err)
			}
		})
	}
}

func TestStoredUserValidate(t *testing.T) {
	t.Parallel()
	user := User{ID: uuid.New(), Email: "alice@example.com", HashedPassword: "$2a$10$hash"}
	if err := user.Validate(); err != nil {
		t.Errorf("Expected stored user to validate, got %v", err)
	}
}
