package chat

import (
	"context"
	"strconv"
	"time"

	"golang.org/x/exp/slog"

	"travelmate/internal/domain/query"
	"travelmate/internal/domain/session"
)

type Servicer interface {
	History(ctx context.Context, sess session.Session) ([]Message, error)
	Append(ctx context.Context, sess session.Session, role Role, text string) (Message, error)
}

type Service struct {
	repo Repository
	log  *slog.Logger
	now  func() time.Time
}

func NewService(repo Repository, log *slog.Logger) *Service {
	return &Service{
		repo: repo,
		log:  log.With(slog.String("component", "chat")),
		now:  time.Now,
	}
}

// History возвращает переписку пользователя от старых сообщений к новым
func (s *Service) History(ctx context.Context, sess session.Session) ([]Message, error) {
	if !sess.Valid() {
		return nil, session.ErrNoSession
	}

	return query.ForUser[Message](ctx, s.repo, sess.UserID, query.Options[Message]{
		Order: query.OldestFirst,
	})
}

func (s *Service) Append(ctx context.Context, sess session.Session, role Role, text string) (Message, error) {
	if !sess.Valid() {
		return Message{}, session.ErrNoSession
	}

	m := Message{
		UserID:    sess.UserID,
		Role:      role,
		Text:      text,
		CreatedAt: strconv.FormatInt(s.now().UnixMilli(), 10),
	}
	if err := m.Validate(); err != nil {
		return Message{}, err
	}

	created, err := s.repo.Create(ctx, m)
	if err != nil {
		return Message{}, err
	}

	s.log.Debug("message stored", "id", created.ID, "role", role)
	return created, nil
}
