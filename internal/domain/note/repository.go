package note

import "context"

type Repository interface {
	Create(ctx context.Context, n Note) (Note, error)
	List(ctx context.Context) ([]Note, error)
	Get(ctx context.Context, id string) (Note, error)
	Update(ctx context.Context, n Note) error
	Delete(ctx context.Context, id string) error
}
