// Package query выбирает записи одного пользователя из полной коллекции
// и упорядочивает их на стороне клиента.
package query

import (
	"cmp"
	"context"
	"fmt"
	"slices"
	"strings"

	"travelmate/internal/domain/errs"
)

// Item - запись, принадлежащая пользователю
type Item interface {
	GetID() string
	GetUserID() string
	// CreatedAtMillis возвращает момент создания в миллисекундах, если он известен
	CreatedAtMillis() (int64, bool)
}

// Lister отдает всю коллекцию целиком
type Lister[T Item] interface {
	List(ctx context.Context) ([]T, error)
}

type Order int

const (
	// NewestFirst - по убыванию created_at. Записи без created_at идут после
	// остальных, по убыванию id.
	NewestFirst Order = iota
	// OldestFirst - обратный NewestFirst порядок
	OldestFirst
	// Alphabetical - по возрастанию текстового ключа
	Alphabetical
)

type Options[T Item] struct {
	Order Order
	// Key - текстовый ключ для Alphabetical
	Key func(T) string
	// Term - подстрока для поиска, пустая строка отключает поиск
	Term string
	// SearchFields - поля, по которым ищется Term
	SearchFields func(T) []string
}

// ForUser загружает коллекцию, оставляет записи userID, сортирует и фильтрует поиском
func ForUser[T Item](ctx context.Context, src Lister[T], userID string, opts Options[T]) ([]T, error) {
	if strings.TrimSpace(userID) == "" {
		return nil, errs.Required("user_id")
	}
	if opts.Order == Alphabetical && opts.Key == nil {
		return nil, fmt.Errorf("alphabetical order requires a key")
	}

	all, err := src.List(ctx)
	if err != nil {
		return nil, err
	}

	items := FilterByUser(all, userID)
	Sort(items, opts.Order, opts.Key)

	if opts.Term != "" && opts.SearchFields != nil {
		items = Search(items, opts.Term, opts.SearchFields)
	}

	return items, nil
}

// FilterByUser оставляет записи с точным совпадением user_id
func FilterByUser[T Item](items []T, userID string) []T {
	out := make([]T, 0, len(items))
	for _, it := range items {
		if it.GetUserID() == userID {
			out = append(out, it)
		}
	}
	return out
}

// Sort упорядочивает записи на месте. Сортировка стабильная: равные элементы
// сохраняют исходный порядок.
func Sort[T Item](items []T, order Order, key func(T) string) {
	switch order {
	case NewestFirst:
		slices.SortStableFunc(items, compareNewest[T])
	case OldestFirst:
		slices.SortStableFunc(items, func(a, b T) int {
			return compareNewest(b, a)
		})
	case Alphabetical:
		if key == nil {
			return
		}
		slices.SortStableFunc(items, func(a, b T) int {
			return strings.Compare(key(a), key(b))
		})
	}
}

func compareNewest[T Item](a, b T) int {
	ta, okA := a.CreatedAtMillis()
	tb, okB := b.CreatedAtMillis()
	switch {
	case okA && okB:
		return cmp.Compare(tb, ta)
	case okA:
		return -1
	case okB:
		return 1
	}
	return strings.Compare(b.GetID(), a.GetID())
}

// Search оставляет записи, у которых хотя бы одно поле содержит term без учета регистра
func Search[T any](items []T, term string, fields func(T) []string) []T {
	needle := strings.ToLower(strings.TrimSpace(term))
	if needle == "" {
		return items
	}

	out := make([]T, 0, len(items))
	for _, it := range items {
		for _, f := range fields(it) {
			if strings.Contains(strings.ToLower(f), needle) {
				out = append(out, it)
				break
			}
		}
	}
	return out
}
