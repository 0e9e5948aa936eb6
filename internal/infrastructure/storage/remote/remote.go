// Package remote реализует репозитории сущностей поверх коллекций документного хранилища.
package remote

import (
	"context"
	"errors"
	"fmt"

	"travelmate/internal/domain/document"
	"travelmate/internal/infrastructure/docstore"
)

// Collection - операции docstore.Collection, нужные репозиториям
type Collection interface {
	Create(ctx context.Context, fields map[string]any, docID string) (document.Record, error)
	List(ctx context.Context) ([]document.Record, error)
	Get(ctx context.Context, id string) (document.Record, error)
	Update(ctx context.Context, id string, fields map[string]any) error
	Delete(ctx context.Context, id string) error
}

// notFound заменяет ErrNotFound хранилища на доменную ошибку, сохраняя исходную цепочку
func notFound(err, domainErr error) error {
	if errors.Is(err, docstore.ErrNotFound) {
		return fmt.Errorf("%w: %w", domainErr, err)
	}
	return err
}

func decodeAll[T any](records []document.Record, fromRecord func(document.Record) T) []T {
	out := make([]T, 0, len(records))
	for _, rec := range records {
		out = append(out, fromRecord(rec))
	}
	return out
}
