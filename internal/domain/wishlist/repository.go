package wishlist

import "context"

type Repository interface {
	Create(ctx context.Context, e Entry) (Entry, error)
	List(ctx context.Context) ([]Entry, error)
	Get(ctx context.Context, id string) (Entry, error)
	Update(ctx context.Context, e Entry) error
	Delete(ctx context.Context, id string) error
}
