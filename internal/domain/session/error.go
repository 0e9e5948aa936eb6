package session

import "errors"

// ErrNoSession - сессии нет или она повреждена, нужен повторный вход
var ErrNoSession = errors.New("no active session")
