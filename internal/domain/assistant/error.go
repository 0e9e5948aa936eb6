package assistant

import "errors"

// ErrUnavailable - ассистент не ответил или ответил пустой строкой
var ErrUnavailable = errors.New("assistant unavailable")
