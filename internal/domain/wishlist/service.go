package wishlist

import (
	"context"
	"errors"
	"strconv"
	"time"

	"golang.org/x/exp/slog"

	"travelmate/internal/domain/location"
	"travelmate/internal/domain/query"
	"travelmate/internal/domain/session"
)

type Order int

const (
	ByNewest Order = iota
	ByName
)

type ListOptions struct {
	Order Order
	Term  string
}

type Servicer interface {
	Add(ctx context.Context, sess session.Session, in Input) (Entry, error)
	List(ctx context.Context, sess session.Session, opts ListOptions) ([]Entry, error)
	Get(ctx context.Context, sess session.Session, id string) (Entry, error)
	Edit(ctx context.Context, sess session.Session, id string, in Input) (Entry, error)
	Delete(ctx context.Context, sess session.Session, id string) error
}

type Service struct {
	repo     Repository
	geocoder location.ReverseGeocoder
	log      *slog.Logger
	now      func() time.Time
}

func NewService(repo Repository, geocoder location.ReverseGeocoder, log *slog.Logger) *Service {
	return &Service{
		repo:     repo,
		geocoder: geocoder,
		log:      log.With(slog.String("component", "wishlist")),
		now:      time.Now,
	}
}

func (s *Service) Add(ctx context.Context, sess session.Session, in Input) (Entry, error) {
	if !sess.Valid() {
		return Entry{}, session.ErrNoSession
	}

	e := Entry{
		UserID:     sess.UserID,
		PlaceName:  in.PlaceName,
		Location:   in.Location,
		Coordinate: in.Coordinate,
		CreatedAt:  strconv.FormatInt(s.now().UnixMilli(), 10),
	}
	if err := e.Validate(); err != nil {
		return Entry{}, err
	}
	e.Location = location.ResolveName(ctx, s.geocoder, s.log, e.Location, e.Coordinate)

	created, err := s.repo.Create(ctx, e)
	if err != nil {
		return Entry{}, err
	}

	s.log.Debug("wishlist entry created", "id", created.ID)
	return created, nil
}

func (s *Service) List(ctx context.Context, sess session.Session, opts ListOptions) ([]Entry, error) {
	if !sess.Valid() {
		return nil, session.ErrNoSession
	}

	q := query.Options[Entry]{
		Order:        query.NewestFirst,
		Term:         opts.Term,
		SearchFields: Entry.SearchFields,
	}
	if opts.Order == ByName {
		q.Order = query.Alphabetical
		q.Key = func(e Entry) string { return e.PlaceName }
	}

	return query.ForUser[Entry](ctx, s.repo, sess.UserID, q)
}

func (s *Service) Get(ctx context.Context, sess session.Session, id string) (Entry, error) {
	if !sess.Valid() {
		return Entry{}, session.ErrNoSession
	}

	e, err := s.repo.Get(ctx, id)
	if err != nil {
		return Entry{}, err
	}
	if e.UserID != sess.UserID {
		return Entry{}, ErrNotFound
	}
	return e, nil
}

// Edit заменяет все поля записи. created_at переносится из сохраненной версии,
// а если его нет, берется id записи.
func (s *Service) Edit(ctx context.Context, sess session.Session, id string, in Input) (Entry, error) {
	existing, err := s.Get(ctx, sess, id)
	if err != nil {
		return Entry{}, err
	}

	e := Entry{
		ID:         existing.ID,
		UserID:     sess.UserID,
		PlaceName:  in.PlaceName,
		Location:   in.Location,
		Coordinate: in.Coordinate,
		CreatedAt:  existing.CreatedAt,
	}
	if e.CreatedAt == "" {
		e.CreatedAt = existing.ID
	}
	if err := e.Validate(); err != nil {
		return Entry{}, err
	}
	e.Location = location.ResolveName(ctx, s.geocoder, s.log, e.Location, e.Coordinate)

	if err := s.repo.Update(ctx, e); err != nil {
		return Entry{}, err
	}
	return e, nil
}

func (s *Service) Delete(ctx context.Context, sess session.Session, id string) error {
	if _, err := s.Get(ctx, sess, id); err != nil {
		return err
	}

	if err := s.repo.Delete(ctx, id); err != nil && !errors.Is(err, ErrNotFound) {
		return err
	}
	return nil
}
