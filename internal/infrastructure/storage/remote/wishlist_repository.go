package remote

import (
	"context"

	"golang.org/x/exp/slog"

	"travelmate/internal/domain/wishlist"
)

type WishlistRepository struct {
	col Collection
	log *slog.Logger
}

func NewWishlistRepository(col Collection, log *slog.Logger) *WishlistRepository {
	return &WishlistRepository{
		col: col,
		log: log,
	}
}

func (r *WishlistRepository) Create(ctx context.Context, e wishlist.Entry) (wishlist.Entry, error) {
	rec, err := r.col.Create(ctx, e.Fields(), "")
	if err != nil {
		return wishlist.Entry{}, err
	}
	return wishlist.FromRecord(rec), nil
}

func (r *WishlistRepository) List(ctx context.Context) ([]wishlist.Entry, error) {
	records, err := r.col.List(ctx)
	if err != nil {
		return nil, err
	}
	r.log.Debug("wishlist entries loaded", "count", len(records))
	return decodeAll(records, wishlist.FromRecord), nil
}

func (r *WishlistRepository) Get(ctx context.Context, id string) (wishlist.Entry, error) {
	rec, err := r.col.Get(ctx, id)
	if err != nil {
		return wishlist.Entry{}, notFound(err, wishlist.ErrNotFound)
	}
	return wishlist.FromRecord(rec), nil
}

func (r *WishlistRepository) Update(ctx context.Context, e wishlist.Entry) error {
	return notFound(r.col.Update(ctx, e.ID, e.Fields()), wishlist.ErrNotFound)
}

func (r *WishlistRepository) Delete(ctx context.Context, id string) error {
	return notFound(r.col.Delete(ctx, id), wishlist.ErrNotFound)
}
