package session

import "context"

// Repository - постоянное локальное key-value хранилище
type Repository interface {
	Get(ctx context.Context, key string) (value string, found bool, err error)
	Set(ctx context.Context, key, value string) error
	Delete(ctx context.Context, key string) error
}
