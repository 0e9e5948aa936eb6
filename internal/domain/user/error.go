package user

import (
	"errors"
	"fmt"

	"travelmate/internal/domain/errs"
)

var (
	ErrUserNotFound       = errors.New("user not found")
	ErrUserExists         = errors.New("user already exists")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrPasswordMismatch   = fmt.Errorf("%w: password confirmation does not match", errs.ErrValidation)
)
