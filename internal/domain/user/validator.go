package user

import (
	"fmt"
	"unicode"

	"travelmate/internal/domain/errs"
)

const (
	MinLoginLen    = 3
	MaxLoginLen    = 32
	MinPasswordLen = 4
)

// Validator - интерфейс для валидации пользовательских данных
type Validator interface {
	ValidateRegister(login, password string) error
	ValidateLogin(login string) error
	ValidatePassword(password string) error
}

type PasswordValidator struct {
	minPasswordLen     int
	requireSpecialChar bool
	requireDigit       bool
	requireUpper       bool
	requireLower       bool
}

type ValidatorOption func(*PasswordValidator)

// WithMinPasswordLen задает минимальную длину пароля
func WithMinPasswordLen(n int) ValidatorOption {
	return func(v *PasswordValidator) {
		v.minPasswordLen = n
	}
}

// WithStrongPassword требует строчную и заглавную буквы, цифру и спецсимвол
func WithStrongPassword() ValidatorOption {
	return func(v *PasswordValidator) {
		v.requireSpecialChar = true
		v.requireDigit = true
		v.requireUpper = true
		v.requireLower = true
	}
}

// NewPasswordValidator создает новый валидатор. Без опций проверяется только длина.
func NewPasswordValidator(opts ...ValidatorOption) *PasswordValidator {
	v := &PasswordValidator{minPasswordLen: MinPasswordLen}
	for _, opt := range opts {
		opt(v)
	}
	return v
}

// ValidateRegister валидирует данные для регистрации
func (v *PasswordValidator) ValidateRegister(login, password string) error {
	if err := v.ValidateLogin(login); err != nil {
		return fmt.Errorf("login validation failed: %w", err)
	}

	if err := v.ValidatePassword(password); err != nil {
		return fmt.Errorf("password validation failed: %w", err)
	}

	return nil
}

// ValidateLogin валидирует логин
func (v *PasswordValidator) ValidateLogin(login string) error {
	if login == "" {
		return errs.Required("login")
	}

	n := len([]rune(login))
	if n < MinLoginLen {
		return errs.Invalid("login", fmt.Sprintf("login must be at least %d characters", MinLoginLen))
	}
	if n > MaxLoginLen {
		return errs.Invalid("login", fmt.Sprintf("login must be at most %d characters", MaxLoginLen))
	}

	for _, r := range login {
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) && r != '_' && r != '-' && r != '.' {
			return errs.Invalid("login", "login can only contain letters, digits, '_', '-', '.'")
		}
	}

	return nil
}

// ValidatePassword валидирует пароль
func (v *PasswordValidator) ValidatePassword(password string) error {
	if password == "" {
		return errs.Required("password")
	}
	if len([]rune(password)) < v.minPasswordLen {
		return errs.Invalid("password", fmt.Sprintf("password must be at least %d characters", v.minPasswordLen))
	}

	hasLower := false
	hasUpper := false
	hasDigit := false
	hasSpecial := false

	for _, r := range password {
		switch {
		case unicode.IsLower(r):
			hasLower = true
		case unicode.IsUpper(r):
			hasUpper = true
		case unicode.IsDigit(r):
			hasDigit = true
		case unicode.IsPunct(r) || unicode.IsSymbol(r):
			hasSpecial = true
		}
	}

	if v.requireLower && !hasLower {
		return errs.Invalid("password", "password must contain at least one lowercase letter")
	}
	if v.requireUpper && !hasUpper {
		return errs.Invalid("password", "password must contain at least one uppercase letter")
	}
	if v.requireDigit && !hasDigit {
		return errs.Invalid("password", "password must contain at least one digit")
	}
	if v.requireSpecialChar && !hasSpecial {
		return errs.Invalid("password", "password must contain at least one special character")
	}

	return nil
}
