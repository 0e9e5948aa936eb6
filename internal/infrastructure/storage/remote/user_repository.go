package remote

import (
	"context"

	"travelmate/internal/domain/user"
)

type UserRepository struct {
	col Collection
}

func NewUserRepository(col Collection) *UserRepository {
	return &UserRepository{col: col}
}

// Create сохраняет пользователя под его ID, ID дублируется в поле id
func (r *UserRepository) Create(ctx context.Context, u user.User) (user.User, error) {
	rec, err := r.col.Create(ctx, u.Fields(), u.ID)
	if err != nil {
		return user.User{}, err
	}
	return user.FromRecord(rec), nil
}

func (r *UserRepository) List(ctx context.Context) ([]user.User, error) {
	records, err := r.col.List(ctx)
	if err != nil {
		return nil, err
	}
	return decodeAll(records, user.FromRecord), nil
}

func (r *UserRepository) Get(ctx context.Context, id string) (user.User, error) {
	rec, err := r.col.Get(ctx, id)
	if err != nil {
		return user.User{}, notFound(err, user.ErrUserNotFound)
	}
	return user.FromRecord(rec), nil
}

func (r *UserRepository) Update(ctx context.Context, u user.User) error {
	return notFound(r.col.Update(ctx, u.ID, u.Fields()), user.ErrUserNotFound)
}
