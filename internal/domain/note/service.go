package note

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

// Order - порядок выдачи заметок
type Order int

const (
	ByNewest Order = iota
	ByTitle
)

type ListOptions struct {
	Order Order
	Term  string
}

type Servicer interface {
	Add(ctx context.Context, sess session.Session, in Input) (Note, error)
	List(ctx context.Context, sess session.Session, opts ListOptions) ([]Note, error)
	Get(ctx context.Context, sess session.Session, id string) (Note, error)
	Edit(ctx context.Context, sess session.Session, id string, in Input) (Note, error)
	Delete(ctx context.Context, sess session.Session, id string) error
}

type Service struct {
	repo     Repository
	geocoder location.ReverseGeocoder
	log      *slog.Logger
	now      func() time.Time
}

// NewService создает сервис заметок. geocoder может быть nil.
func NewService(repo Repository, geocoder location.ReverseGeocoder, log *slog.Logger) *Service {
	return &Service{
		repo:     repo,
		geocoder: geocoder,
		log:      log.With(slog.String("component", "notes")),
		now:      time.Now,
	}
}

func (s *Service) Add(ctx context.Context, sess session.Session, in Input) (Note, error) {
	if !sess.Valid() {
		return Note{}, session.ErrNoSession
	}

	n := fromInput(sess, in)
	n.CreatedAt = strconv.FormatInt(s.now().UnixMilli(), 10)

	if err := n.Validate(); err != nil {
		return Note{}, err
	}
	n.Location = location.ResolveName(ctx, s.geocoder, s.log, n.Location, n.Coordinate)

	created, err := s.repo.Create(ctx, n)
	if err != nil {
		return Note{}, err
	}

	s.log.Debug("note created", "id", created.ID)
	return created, nil
}

func (s *Service) List(ctx context.Context, sess session.Session, opts ListOptions) ([]Note, error) {
	if !sess.Valid() {
		return nil, session.ErrNoSession
	}

	q := query.Options[Note]{
		Order:        query.NewestFirst,
		Term:         opts.Term,
		SearchFields: Note.SearchFields,
	}
	if opts.Order == ByTitle {
		q.Order = query.Alphabetical
		q.Key = func(n Note) string { return n.Title }
	}

	return query.ForUser[Note](ctx, s.repo, sess.UserID, q)
}

// Get возвращает заметку текущего пользователя. Чужая заметка не видна.
func (s *Service) Get(ctx context.Context, sess session.Session, id string) (Note, error) {
	if !sess.Valid() {
		return Note{}, session.ErrNoSession
	}

	n, err := s.repo.Get(ctx, id)
	if err != nil {
		return Note{}, err
	}
	if n.UserID != sess.UserID {
		return Note{}, ErrNotFound
	}
	return n, nil
}

// Edit полностью заменяет поля заметки, сохраняя владельца и created_at
func (s *Service) Edit(ctx context.Context, sess session.Session, id string, in Input) (Note, error) {
	existing, err := s.Get(ctx, sess, id)
	if err != nil {
		return Note{}, err
	}

	n := fromInput(sess, in)
	n.ID = existing.ID
	n.CreatedAt = existing.CreatedAt
	if n.CreatedAt == "" {
		n.CreatedAt = existing.ID
	}

	if err := n.Validate(); err != nil {
		return Note{}, err
	}
	n.Location = location.ResolveName(ctx, s.geocoder, s.log, n.Location, n.Coordinate)

	if err := s.repo.Update(ctx, n); err != nil {
		return Note{}, err
	}
	return n, nil
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

func fromInput(sess session.Session, in Input) Note {
	return Note{
		UserID:      sess.UserID,
		Title:       in.Title,
		Description: in.Description,
		PhotoURL:    in.PhotoURL,
		Location:    in.Location,
		Coordinate:  in.Coordinate,
	}
}
