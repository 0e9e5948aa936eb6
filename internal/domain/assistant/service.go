package assistant

import (
	"context"
	"fmt"
	"strings"

	"golang.org/x/exp/slog"

	"travelmate/internal/domain/chat"
	"travelmate/internal/domain/errs"
	"travelmate/internal/domain/note"
	"travelmate/internal/domain/session"
	"travelmate/internal/domain/wishlist"
)

// Generator - бэкенд языковой модели
type Generator interface {
	Generate(ctx context.Context, p Prompt) (string, error)
}

type Servicer interface {
	Open(ctx context.Context, sess session.Session) ([]chat.Message, error)
	Send(ctx context.Context, sess session.Session, text, currentLocation string) (chat.Message, error)
	Comment(ctx context.Context, amount float64, destination string) (string, error)
}

type Service struct {
	chat     chat.Servicer
	notes    note.Servicer
	wishlist wishlist.Servicer
	gen      Generator
	log      *slog.Logger
}

func NewService(chats chat.Servicer, notes note.Servicer, wishes wishlist.Servicer, gen Generator, log *slog.Logger) *Service {
	return &Service{
		chat:     chats,
		notes:    notes,
		wishlist: wishes,
		gen:      gen,
		log:      log.With(slog.String("component", "assistant")),
	}
}

// Open возвращает историю переписки. В пустую переписку сначала пишется приветствие.
func (s *Service) Open(ctx context.Context, sess session.Session) ([]chat.Message, error) {
	history, err := s.chat.History(ctx, sess)
	if err != nil {
		return nil, err
	}
	if len(history) > 0 {
		return history, nil
	}

	welcome, err := s.chat.Append(ctx, sess, chat.RoleBot, WelcomeMessage)
	if err != nil {
		return nil, fmt.Errorf("store welcome: %w", err)
	}
	return []chat.Message{welcome}, nil
}

// Send сохраняет сообщение пользователя, спрашивает ассистента и сохраняет ответ.
// При недоступности ассистента ответом становится FailureMessage.
func (s *Service) Send(ctx context.Context, sess session.Session, text, currentLocation string) (chat.Message, error) {
	if !sess.Valid() {
		return chat.Message{}, session.ErrNoSession
	}
	if strings.TrimSpace(text) == "" {
		return chat.Message{}, errs.Required("text")
	}

	history, err := s.chat.History(ctx, sess)
	if err != nil {
		return chat.Message{}, err
	}
	notes, err := s.notes.List(ctx, sess, note.ListOptions{})
	if err != nil {
		return chat.Message{}, err
	}
	entries, err := s.wishlist.List(ctx, sess, wishlist.ListOptions{})
	if err != nil {
		return chat.Message{}, err
	}

	if _, err := s.chat.Append(ctx, sess, chat.RoleUser, text); err != nil {
		return chat.Message{}, err
	}

	prompt := Prompt{
		Context:  BuildContext(entries, notes, currentLocation),
		UserText: BuildUserText(currentLocation, history, text),
	}

	reply, err := s.generate(ctx, prompt)
	if err != nil {
		s.log.Warn("assistant request failed", "error", err)
		reply = FailureMessage
	}

	return s.chat.Append(ctx, sess, chat.RoleBot, reply)
}

// Comment возвращает короткий комментарий к сумме в месте назначения
func (s *Service) Comment(ctx context.Context, amount float64, destination string) (string, error) {
	return s.generate(ctx, BuildCommentPrompt(amount, destination))
}

func (s *Service) generate(ctx context.Context, p Prompt) (string, error) {
	if s.gen == nil {
		return "", ErrUnavailable
	}

	reply, err := s.gen.Generate(ctx, p)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrUnavailable, err)
	}
	if strings.TrimSpace(reply) == "" {
		return "", ErrUnavailable
	}
	return reply, nil
}
