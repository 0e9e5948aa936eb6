package docstore

import (
	"errors"
	"fmt"
)

var (
	ErrNotFound          = errors.New("document not found")
	ErrAlreadyExists     = errors.New("document already exists")
	ErrUnavailable       = errors.New("document store unavailable")
	ErrUnexpectedStatus  = errors.New("unexpected status")
	ErrMalformedResponse = errors.New("malformed response")
)

// StoreError - ошибка операции с коллекцией. Unwrap отдает одну из сигнальных ошибок пакета.
type StoreError struct {
	Op         string
	Collection string
	ID         string
	StatusCode int
	// Message - текст ошибки из тела ответа, если он был
	Message string
	Err     error
}

func (e *StoreError) Error() string {
	msg := fmt.Sprintf("%s %s", e.Op, e.Collection)
	if e.ID != "" {
		msg += "/" + e.ID
	}
	if e.StatusCode != 0 {
		msg += fmt.Sprintf(": status %d", e.StatusCode)
	}
	msg += ": " + e.Err.Error()
	if e.Message != "" {
		msg += ": " + e.Message
	}
	return msg
}

func (e *StoreError) Unwrap() error {
	return e.Err
}
