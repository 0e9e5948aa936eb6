package user

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"travelmate/internal/domain/errs"
)

func TestPasswordValidator_ValidateLogin(t *testing.T) {
	validator := NewPasswordValidator()

	tests := []struct {
		name        string
		login       string
		wantErr     bool
		expectedErr string
	}{
		{
			name:    "valid login",
			login:   "user123",
			wantErr: false,
		},
		{
			name:        "empty",
			login:       "",
			wantErr:     true,
			expectedErr: "login",
		},
		{
			name:        "too short",
			login:       "ab",
			wantErr:     true,
			expectedErr: "login must be at least 3 characters",
		},
		{
			name:        "too long",
			login:       strings.Repeat("a", 33),
			wantErr:     true,
			expectedErr: "login must be at most 32 characters",
		},
		{
			name:    "valid with dot",
			login:   "budi.santoso",
			wantErr: false,
		},
		{
			name:        "invalid space",
			login:       "user name",
			wantErr:     true,
			expectedErr: "login can only contain letters, digits, '_', '-', '.'",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validator.ValidateLogin(tt.login)
			if tt.wantErr {
				require.Error(t, err)
				assert.ErrorIs(t, err, errs.ErrValidation)
				assert.Contains(t, err.Error(), tt.expectedErr)
			} else {
				require.NoError(t, err)
			}
		})
	}
}

func TestPasswordValidator_ValidatePassword(t *testing.T) {
	tests := []struct {
		name        string
		opts        []ValidatorOption
		password    string
		expectedErr string
	}{
		{name: "default accepts simple password", password: "rahasia"},
		{name: "default too short", password: "abc", expectedErr: "password must be at least 4 characters"},
		{name: "custom length", opts: []ValidatorOption{WithMinPasswordLen(8)}, password: "rahasia", expectedErr: "password must be at least 8 characters"},
		{name: "strong no uppercase", opts: []ValidatorOption{WithStrongPassword()}, password: "abc123!@", expectedErr: "uppercase"},
		{name: "strong no digit", opts: []ValidatorOption{WithStrongPassword()}, password: "Abcdef!@", expectedErr: "digit"},
		{name: "strong no special char", opts: []ValidatorOption{WithStrongPassword()}, password: "Abcdef12", expectedErr: "special character"},
		{name: "strong ok", opts: []ValidatorOption{WithStrongPassword(), WithMinPasswordLen(8)}, password: "P@ssw0rd123!"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := NewPasswordValidator(tt.opts...).ValidatePassword(tt.password)
			if tt.expectedErr != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.expectedErr)
			} else {
				require.NoError(t, err)
			}
		})
	}
}

func TestPasswordValidator_ValidateRegister(t *testing.T) {
	validator := NewPasswordValidator()

	err := validator.ValidateRegister("ab", "rahasia")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "login validation failed")

	err = validator.ValidateRegister("user123", "abc")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "password validation failed")
	assert.ErrorIs(t, err, errs.ErrValidation)

	assert.NoError(t, validator.ValidateRegister("user123", "rahasia"))
}

func TestNewPasswordValidator(t *testing.T) {
	v := NewPasswordValidator()
	assert.Equal(t, MinPasswordLen, v.minPasswordLen)
	assert.False(t, v.requireUpper)

	v = NewPasswordValidator(WithStrongPassword())
	assert.True(t, v.requireSpecialChar)
	assert.True(t, v.requireDigit)
	assert.True(t, v.requireUpper)
	assert.True(t, v.requireLower)
}
