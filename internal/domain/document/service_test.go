package document

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/exp/slog"
)

const testParent = "projects/demo/databases/(default)/documents"

type MockRepository struct {
	mock.Mock
}

func (m *MockRepository) Insert(ctx context.Context, doc StoredDocument) error {
	args := m.Called(ctx, doc)
	return args.Error(0)
}

func (m *MockRepository) Find(ctx context.Context, collection Collection, id string) (StoredDocument, error) {
	args := m.Called(ctx, collection, id)
	return args.Get(0).(StoredDocument), args.Error(1)
}

func (m *MockRepository) List(ctx context.Context, collection Collection, afterID string, limit int) ([]StoredDocument, error) {
	args := m.Called(ctx, collection, afterID, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]StoredDocument), args.Error(1)
}

func (m *MockRepository) Replace(ctx context.Context, doc StoredDocument, mustExist bool) (StoredDocument, error) {
	args := m.Called(ctx, doc, mustExist)
	return args.Get(0).(StoredDocument), args.Error(1)
}

func (m *MockRepository) Delete(ctx context.Context, collection Collection, id string) error {
	args := m.Called(ctx, collection, id)
	return args.Error(0)
}

func (m *MockRepository) Ping(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func newTestService(repo Repository) *Service {
	s := NewService(repo, slog.Default())
	s.now = func() time.Time { return time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC) }
	return s
}

func TestService_Create(t *testing.T) {
	t.Run("caller supplied id", func(t *testing.T) {
		repo := new(MockRepository)
		svc := newTestService(repo)

		repo.On("Insert", mock.Anything, mock.MatchedBy(func(d StoredDocument) bool {
			return d.Collection == CollectionUsers && d.ID == "user-1"
		})).Return(nil)

		doc, err := svc.Create(context.Background(), testParent, CollectionUsers, "user-1", Encode(map[string]any{"id": "user-1"}))
		require.NoError(t, err)
		assert.Equal(t, testParent+"/users/user-1", doc.Name)
		assert.Equal(t, "2024-05-01T10:00:00Z", doc.CreateTime)
		repo.AssertExpectations(t)
	})

	t.Run("generated id", func(t *testing.T) {
		repo := new(MockRepository)
		svc := newTestService(repo)

		repo.On("Insert", mock.Anything, mock.MatchedBy(func(d StoredDocument) bool {
			return d.ID != "" && d.Fields != nil
		})).Return(nil)

		doc, err := svc.Create(context.Background(), testParent, CollectionNotes, "", nil)
		require.NoError(t, err)
		assert.NotEmpty(t, DocumentID(doc.Name))
		assert.NotNil(t, doc.Fields)
	})

	t.Run("duplicate id", func(t *testing.T) {
		repo := new(MockRepository)
		svc := newTestService(repo)

		repo.On("Insert", mock.Anything, mock.Anything).Return(ErrAlreadyExists)

		_, err := svc.Create(context.Background(), testParent, CollectionUsers, "dup", nil)
		assert.ErrorIs(t, err, ErrAlreadyExists)
	})

	t.Run("invalid id", func(t *testing.T) {
		repo := new(MockRepository)
		svc := newTestService(repo)

		_, err := svc.Create(context.Background(), testParent, CollectionUsers, "a/b", nil)
		assert.ErrorIs(t, err, ErrInvalidArgument)
		repo.AssertNotCalled(t, "Insert", mock.Anything, mock.Anything)
	})
}

func TestValidateID_Length(t *testing.T) {
	tests := []struct {
		name    string
		id      string
		wantErr bool
	}{
		{name: "single char", id: "a"},
		{name: "max length", id: strings.Repeat("a", MaxIDLen)},
		{name: "too long", id: strings.Repeat("a", MaxIDLen+1), wantErr: true},
		{name: "empty", id: "", wantErr: true},
		{name: "dot", id: ".", wantErr: true},
		{name: "slash", id: "a/b", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validateID(tt.id)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidArgument)
				return
			}
			assert.NoError(t, err)
		})
	}

	assert.NoError(t, validateCollection(Collection(strings.Repeat("c", MaxIDLen))))
	assert.ErrorIs(t, validateCollection(Collection(strings.Repeat("c", MaxIDLen+1))), ErrInvalidArgument)
}

func TestService_Get_NotFound(t *testing.T) {
	repo := new(MockRepository)
	svc := newTestService(repo)

	repo.On("Find", mock.Anything, CollectionNotes, "missing").Return(StoredDocument{}, ErrNotFound)

	_, err := svc.Get(context.Background(), testParent, CollectionNotes, "missing")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestService_List_Pagination(t *testing.T) {
	repo := new(MockRepository)
	svc := newTestService(repo)
	ctx := context.Background()

	page := []StoredDocument{
		{Collection: CollectionChat, ID: "a"},
		{Collection: CollectionChat, ID: "b"},
		{Collection: CollectionChat, ID: "c"},
	}
	repo.On("List", mock.Anything, CollectionChat, "", 3).Return(page, nil)

	resp, err := svc.List(ctx, testParent, CollectionChat, 2, "")
	require.NoError(t, err)
	require.Len(t, resp.Documents, 2)
	assert.NotEmpty(t, resp.NextPageToken)

	repo.On("List", mock.Anything, CollectionChat, "b", 3).Return(page[2:], nil)

	resp, err = svc.List(ctx, testParent, CollectionChat, 2, resp.NextPageToken)
	require.NoError(t, err)
	require.Len(t, resp.Documents, 1)
	assert.Equal(t, testParent+"/chat/c", resp.Documents[0].Name)
	assert.Empty(t, resp.NextPageToken)
}

func TestService_List_Errors(t *testing.T) {
	repo := new(MockRepository)
	svc := newTestService(repo)

	_, err := svc.List(context.Background(), testParent, CollectionChat, 0, "%%%")
	assert.ErrorIs(t, err, ErrInvalidArgument)

	repo.On("List", mock.Anything, CollectionChat, "", DefaultPageSize+1).Return(nil, errors.New("db down"))
	_, err = svc.List(context.Background(), testParent, CollectionChat, 0, "")
	assert.ErrorContains(t, err, "db down")
}

func TestService_Replace(t *testing.T) {
	repo := new(MockRepository)
	svc := newTestService(repo)

	stored := StoredDocument{Collection: CollectionNotes, ID: "n1", Fields: Encode(map[string]any{"title": "new"})}
	repo.On("Replace", mock.Anything, mock.AnythingOfType("document.StoredDocument"), true).Return(stored, nil).Once()
	repo.On("Replace", mock.Anything, mock.AnythingOfType("document.StoredDocument"), true).Return(StoredDocument{}, ErrNotFound).Once()

	doc, err := svc.Replace(context.Background(), testParent, CollectionNotes, "n1", stored.Fields, true)
	require.NoError(t, err)
	assert.Equal(t, "new", Decode(doc).Text("title"))

	_, err = svc.Replace(context.Background(), testParent, CollectionNotes, "n1", stored.Fields, true)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestService_Delete(t *testing.T) {
	repo := new(MockRepository)
	svc := newTestService(repo)

	repo.On("Delete", mock.Anything, CollectionNotes, "n1").Return(nil)

	assert.NoError(t, svc.Delete(context.Background(), CollectionNotes, "n1"))
	assert.ErrorIs(t, svc.Delete(context.Background(), CollectionNotes, ".."), ErrInvalidArgument)
	repo.AssertExpectations(t)
}
