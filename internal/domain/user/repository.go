package user

import "context"

type Repository interface {
	// Create сохраняет пользователя под его собственным ID
	Create(ctx context.Context, u User) (User, error)
	List(ctx context.Context) ([]User, error)
	Get(ctx context.Context, id string) (User, error)
	Update(ctx context.Context, u User) error
}
