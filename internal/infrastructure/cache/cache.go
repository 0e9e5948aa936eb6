// Package cache - кэш ответов внешних API с Redis и in-memory реализациями.
package cache

import (
	"context"
	"errors"
	"time"
)

var ErrMiss = errors.New("cache miss")

type Cache interface {
	// Get возвращает ErrMiss, если ключа нет или срок его жизни истек
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
}
