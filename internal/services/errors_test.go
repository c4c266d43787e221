package services

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"omufusion/internal/config"
)

func TestAuthErrorMessageFixedStrings(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{"not found", ErrUserNotFound, "Invalid email or password."},
		{"wrong password", ErrWrongPassword, "Invalid email or password."},
		{"email in use", ErrEmailInUse, "This email address is already registered."},
		{"weak password", ErrWeakPassword, "Password must be at least 6 characters."},
		{"invalid email", ErrInvalidEmail, "Please enter a valid email address."},
		{"too many requests", ErrTooManyRequests, "Too many attempts. Please try again later."},
		{"generic fallback", errors.New("socket timeout"), "Authentication failed. Please try again."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, AuthErrorMessage(tt.err))
		})
	}
}

func TestNotAdminMessageIsExact(t *testing.T) {
	assert.Equal(t,
		"Access denied. This account does not have admin privileges.",
		AuthErrorMessage(ErrNotAdmin),
	)
}

func TestFallbackToEmptyOnlyInDevelopment(t *testing.T) {
	orig := config.AppEnv
	defer func() { config.AppEnv = orig }()

	config.AppEnv.Environment = "development"
	assert.True(t, fallbackToEmpty(errors.New("permission denied")))
	assert.False(t, fallbackToEmpty(nil))

	config.AppEnv.Environment = "production"
	assert.False(t, fallbackToEmpty(errors.New("permission denied")))
}
