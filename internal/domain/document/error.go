package document

import "errors"

var (
	ErrNotFound        = errors.New("document not found")
	ErrAlreadyExists   = errors.New("document already exists")
	ErrInvalidArgument = errors.New("invalid argument")
)

// DomainError несет код ответа для HTTP слоя эмулятора
type DomainError struct {
	Err     error
	Message string
	Code    string
}

func (e *DomainError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return e.Err.Error()
}

func (e *DomainError) Unwrap() error {
	return e.Err
}

func invalid(msg string) error {
	return &DomainError{Err: ErrInvalidArgument, Message: msg, Code: "INVALID_ARGUMENT"}
}
