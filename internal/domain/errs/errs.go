// Package errs содержит общие для доменов ошибки.
package errs

import (
	"errors"
	"fmt"
)

// ErrValidation - входные данные не прошли проверку до обращения к сети
var ErrValidation = errors.New("validation failed")

// ValidationError описывает конкретное поле, не прошедшее проверку
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Reason)
}

func (e *ValidationError) Unwrap() error {
	return ErrValidation
}

// Required возвращает ошибку для пустого обязательного поля
func Required(field string) error {
	return &ValidationError{Field: field, Reason: "обязательное поле"}
}

// Invalid возвращает ошибку для поля с неверным значением
func Invalid(field, reason string) error {
	return &ValidationError{Field: field, Reason: reason}
}
