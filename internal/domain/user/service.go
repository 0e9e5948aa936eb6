package user

import (
	"context"
	"crypto/subtle"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"golang.org/x/exp/slog"

	"travelmate/internal/domain/errs"
	"travelmate/internal/domain/session"
)

type Servicer interface {
	Register(ctx context.Context, login, password, confirm string) (User, error)
	Authenticate(ctx context.Context, login, password string) (User, error)
	ChangePassword(ctx context.Context, sess session.Session, oldPassword, newPassword string) error
	Get(ctx context.Context, sess session.Session) (User, error)
}

type Service struct {
	repo      Repository
	validator Validator
	log       *slog.Logger
	newID     func() string
}

func NewService(repo Repository, validator Validator, log *slog.Logger) *Service {
	return &Service{
		repo:      repo,
		validator: validator,
		log:       log.With(slog.String("component", "users")),
		newID:     uuid.NewString,
	}
}

// Register создает пользователя. Занятость логина проверяется полным просмотром коллекции.
func (s *Service) Register(ctx context.Context, login, password, confirm string) (User, error) {
	login = strings.TrimSpace(login)
	if confirm == "" {
		return User{}, errs.Required("confirm")
	}
	if err := s.validator.ValidateRegister(login, password); err != nil {
		s.log.Debug("validation failed", "error", err)
		return User{}, err
	}
	if password != confirm {
		return User{}, ErrPasswordMismatch
	}

	username := HashLogin(login)
	if _, err := s.findByUsername(ctx, username); err == nil {
		return User{}, ErrUserExists
	} else if !errors.Is(err, ErrUserNotFound) {
		return User{}, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return User{}, fmt.Errorf("Хэш пароля: %w", err)
	}

	u, err := s.repo.Create(ctx, User{
		ID:       s.newID(),
		Username: username,
		Password: string(hash),
	})
	if err != nil {
		return User{}, fmt.Errorf("create user: %w", err)
	}

	s.log.Info("user registered", "user_id", u.ID)
	return u, nil
}

// Authenticate проверяет логин и пароль. Старые SHA-256 хэши пароля принимаются
// и после успешного входа заменяются на bcrypt.
func (s *Service) Authenticate(ctx context.Context, login, password string) (User, error) {
	login = strings.TrimSpace(login)
	if login == "" {
		return User{}, errs.Required("login")
	}
	if password == "" {
		return User{}, errs.Required("password")
	}

	u, err := s.findByUsername(ctx, HashLogin(login))
	if err != nil {
		return User{}, err
	}

	if !verifyPassword(u, password) {
		return User{}, ErrInvalidCredentials
	}

	if u.legacyHash() {
		s.upgradeHash(ctx, u, password)
	}

	return u, nil
}

func (s *Service) Get(ctx context.Context, sess session.Session) (User, error) {
	if !sess.Valid() {
		return User{}, session.ErrNoSession
	}
	return s.repo.Get(ctx, sess.UserID)
}

func (s *Service) ChangePassword(ctx context.Context, sess session.Session, oldPassword, newPassword string) error {
	u, err := s.Get(ctx, sess)
	if err != nil {
		return err
	}

	if !verifyPassword(u, oldPassword) {
		return ErrInvalidCredentials
	}
	if err := s.validator.ValidatePassword(newPassword); err != nil {
		return err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("Хэш пароля: %w", err)
	}
	u.Password = string(hash)

	if err := s.repo.Update(ctx, u); err != nil {
		return fmt.Errorf("update user: %w", err)
	}
	return nil
}

func (s *Service) findByUsername(ctx context.Context, username string) (User, error) {
	users, err := s.repo.List(ctx)
	if err != nil {
		return User{}, fmt.Errorf("list users: %w", err)
	}
	for _, u := range users {
		if u.Username == username {
			return u, nil
		}
	}
	return User{}, ErrUserNotFound
}

func (s *Service) upgradeHash(ctx context.Context, u User, password string) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		s.log.Warn("password rehash failed", "user_id", u.ID, "error", err)
		return
	}
	u.Password = string(hash)
	if err := s.repo.Update(ctx, u); err != nil {
		s.log.Warn("password rehash not stored", "user_id", u.ID, "error", err)
	}
}

func verifyPassword(u User, password string) bool {
	if u.legacyHash() {
		legacy := sha256Hex(password)
		return subtle.ConstantTimeCompare([]byte(legacy), []byte(strings.ToLower(u.Password))) == 1
	}
	return bcrypt.CompareHashAndPassword([]byte(u.Password), []byte(password)) == nil
}
