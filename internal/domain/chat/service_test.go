package chat

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/exp/slog"

	"travelmate/internal/domain/errs"
	"travelmate/internal/domain/session"
)

type MockRepository struct {
	mock.Mock
}

func (m *MockRepository) Create(ctx context.Context, msg Message) (Message, error) {
	args := m.Called(ctx, msg)
	return args.Get(0).(Message), args.Error(1)
}

func (m *MockRepository) List(ctx context.Context) ([]Message, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]Message), args.Error(1)
}

func TestService_History(t *testing.T) {
	repo := new(MockRepository)
	repo.On("List", mock.Anything).Return([]Message{
		{ID: "3", UserID: "u1", Role: RoleBot, Text: "c", CreatedAt: "300"},
		{ID: "1", UserID: "u1", Role: RoleUser, Text: "a", CreatedAt: "100"},
		{ID: "9", UserID: "u2", Role: RoleUser, Text: "other", CreatedAt: "150"},
		{ID: "2", UserID: "u1", Role: RoleBot, Text: "b", CreatedAt: "200"},
	}, nil)

	svc := NewService(repo, slog.Default())
	got, err := svc.History(context.Background(), session.Session{UserID: "u1"})
	require.NoError(t, err)

	texts := make([]string, 0, len(got))
	for _, m := range got {
		texts = append(texts, m.Text)
	}
	assert.Equal(t, []string{"a", "b", "c"}, texts)
}

func TestService_History_Error(t *testing.T) {
	repo := new(MockRepository)
	netErr := errors.New("connection refused")
	repo.On("List", mock.Anything).Return(nil, netErr)

	svc := NewService(repo, slog.Default())
	_, err := svc.History(context.Background(), session.Session{UserID: "u1"})
	assert.ErrorIs(t, err, netErr)
}

func TestService_Append(t *testing.T) {
	tests := []struct {
		name    string
		sess    session.Session
		role    Role
		text    string
		wantErr error
	}{
		{name: "user message", sess: session.Session{UserID: "u1"}, role: RoleUser, text: "halo"},
		{name: "bot message", sess: session.Session{UserID: "u1"}, role: RoleBot, text: "hai"},
		{name: "unknown role", sess: session.Session{UserID: "u1"}, role: "system", text: "x", wantErr: ErrInvalidRole},
		{name: "empty text", sess: session.Session{UserID: "u1"}, role: RoleUser, text: " ", wantErr: errs.ErrValidation},
		{name: "no session", role: RoleUser, text: "halo", wantErr: session.ErrNoSession},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := new(MockRepository)
			svc := NewService(repo, slog.Default())
			svc.now = func() time.Time { return time.UnixMilli(42) }

			expected := Message{UserID: tt.sess.UserID, Role: tt.role, Text: tt.text, CreatedAt: "42"}
			stored := expected
			stored.ID = "m1"
			repo.On("Create", mock.Anything, expected).Return(stored, nil).Maybe()

			got, err := svc.Append(context.Background(), tt.sess, tt.role, tt.text)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, stored, got)
		})
	}
}
