package session

import (
	"context"
	"encoding/json"
	"fmt"

	"golang.org/x/exp/slog"

	"travelmate/internal/domain/errs"
)

type Servicer interface {
	Set(ctx context.Context, s Session) error
	Get(ctx context.Context) (Session, error)
	Clear(ctx context.Context) error
	State(ctx context.Context) (State, Session)
}

type Service struct {
	repo Repository
	log  *slog.Logger
}

func NewService(repo Repository, log *slog.Logger) *Service {
	return &Service{
		repo: repo,
		log:  log.With(slog.String("component", "session")),
	}
}

// Set сохраняет сессию: LoggedOut -> LoggedIn(user_id)
func (s *Service) Set(ctx context.Context, sess Session) error {
	if !sess.Valid() {
		return errs.Required("user_id")
	}

	data, err := json.Marshal(sess)
	if err != nil {
		return fmt.Errorf("encode session: %w", err)
	}

	if err := s.repo.Set(ctx, Key, string(data)); err != nil {
		return fmt.Errorf("save session: %w", err)
	}

	s.log.Debug("session stored", "user_id", sess.UserID)
	return nil
}

// Get читает сессию. Отсутствующая и поврежденная сессия одинаково дают ErrNoSession,
// поврежденная запись при этом удаляется.
func (s *Service) Get(ctx context.Context) (Session, error) {
	raw, found, err := s.repo.Get(ctx, Key)
	if err != nil {
		return Session{}, fmt.Errorf("read session: %w", err)
	}
	if !found {
		return Session{}, ErrNoSession
	}

	var sess Session
	if err := json.Unmarshal([]byte(raw), &sess); err != nil || !sess.Valid() {
		s.log.Warn("malformed session dropped", "error", err)
		if derr := s.repo.Delete(ctx, Key); derr != nil {
			s.log.Warn("failed to drop malformed session", "error", derr)
		}
		return Session{}, ErrNoSession
	}

	return sess, nil
}

// Clear удаляет сессию: LoggedIn -> LoggedOut
func (s *Service) Clear(ctx context.Context) error {
	if err := s.repo.Delete(ctx, Key); err != nil {
		return fmt.Errorf("clear session: %w", err)
	}
	return nil
}

// State возвращает состояние входа. Ошибка чтения хранилища трактуется как LoggedOut.
func (s *Service) State(ctx context.Context) (State, Session) {
	sess, err := s.Get(ctx)
	if err != nil {
		return LoggedOut, Session{}
	}
	return LoggedIn, sess
}
