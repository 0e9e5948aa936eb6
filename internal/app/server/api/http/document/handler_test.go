package document

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"
	"testing"

	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/humatest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/exp/slog"

	"travelmate/internal/domain/document"
)

type MockService struct {
	mock.Mock
}

func (m *MockService) Create(ctx context.Context, parent string, coll document.Collection, id string, fields map[string]document.Value) (document.Document, error) {
	args := m.Called(ctx, parent, coll, id, fields)
	return args.Get(0).(document.Document), args.Error(1)
}

func (m *MockService) Get(ctx context.Context, parent string, coll document.Collection, id string) (document.Document, error) {
	args := m.Called(ctx, parent, coll, id)
	return args.Get(0).(document.Document), args.Error(1)
}

func (m *MockService) List(ctx context.Context, parent string, coll document.Collection, pageSize int, pageToken string) (document.ListResponse, error) {
	args := m.Called(ctx, parent, coll, pageSize, pageToken)
	return args.Get(0).(document.ListResponse), args.Error(1)
}

func (m *MockService) Replace(ctx context.Context, parent string, coll document.Collection, id string, fields map[string]document.Value, mustExist bool) (document.Document, error) {
	args := m.Called(ctx, parent, coll, id, fields, mustExist)
	return args.Get(0).(document.Document), args.Error(1)
}

func (m *MockService) Delete(ctx context.Context, coll document.Collection, id string) error {
	args := m.Called(ctx, coll, id)
	return args.Error(0)
}

const (
	parent = "projects/demo/databases/(default)/documents"
	base   = "/v1/" + parent
)

func setup(t *testing.T) (humatest.TestAPI, *MockService) {
	t.Helper()

	_, api := humatest.New(t)
	svc := new(MockService)
	NewHandler(svc, slog.Default(), huma.Middlewares{}).SetupRoutes(api)
	return api, svc
}

func TestHandler_Create(t *testing.T) {
	tests := []struct {
		name       string
		query      string
		docID      string
		err        error
		wantStatus int
	}{
		{name: "with documentId", query: "?documentId=u1", docID: "u1", wantStatus: http.StatusOK},
		{name: "generated id", docID: "", wantStatus: http.StatusOK},
		{name: "already exists", query: "?documentId=u1", docID: "u1", err: document.ErrAlreadyExists, wantStatus: http.StatusConflict},
		{name: "invalid id", query: "?documentId=a%2Fb", docID: "a/b", err: &document.DomainError{Err: document.ErrInvalidArgument, Message: "invalid document id"}, wantStatus: http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			api, svc := setup(t)

			fields := map[string]document.Value{"username": document.StringValue("abc")}
			created := document.Document{Name: parent + "/users/u1", Fields: fields}
			svc.On("Create", mock.Anything, parent, document.CollectionUsers, tt.docID, fields).Return(created, tt.err)

			resp := api.Post(base+"/users"+tt.query, map[string]any{
				"fields": map[string]any{"username": map[string]any{"stringValue": "abc"}},
			})

			assert.Equal(t, tt.wantStatus, resp.Code)
			if tt.err == nil {
				var doc document.Document
				require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &doc))
				assert.Equal(t, "u1", document.DocumentID(doc.Name))
			}
		})
	}
}

func TestHandler_List(t *testing.T) {
	api, svc := setup(t)

	svc.On("List", mock.Anything, parent, document.CollectionNotes, 2, "tok").Return(document.ListResponse{
		Documents:     []document.Document{{Name: parent + "/travel_note/a", Fields: map[string]document.Value{}}},
		NextPageToken: "next",
	}, nil)

	resp := api.Get(base + "/travel_note?pageSize=2&pageToken=tok")

	require.Equal(t, http.StatusOK, resp.Code)
	var body document.ListResponse
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &body))
	assert.Len(t, body.Documents, 1)
	assert.Equal(t, "next", body.NextPageToken)
}

func TestHandler_List_Empty(t *testing.T) {
	api, svc := setup(t)
	svc.On("List", mock.Anything, parent, document.CollectionChat, 0, "").Return(document.ListResponse{}, nil)

	resp := api.Get(base + "/chat")

	require.Equal(t, http.StatusOK, resp.Code)
	assert.Equal(t, "{}", strings.TrimSpace(resp.Body.String()))
}

func TestHandler_Get(t *testing.T) {
	api, svc := setup(t)
	svc.On("Get", mock.Anything, parent, document.CollectionNotes, "missing").Return(document.Document{}, document.ErrNotFound)

	resp := api.Get(base + "/travel_note/missing")
	assert.Equal(t, http.StatusNotFound, resp.Code)
}

func TestHandler_Patch(t *testing.T) {
	tests := []struct {
		name       string
		query      string
		mustExist  bool
		err        error
		wantStatus int
	}{
		{name: "upsert", mustExist: false, wantStatus: http.StatusOK},
		{name: "must exist", query: "?currentDocument.exists=true", mustExist: true, wantStatus: http.StatusOK},
		{name: "must exist missing", query: "?currentDocument.exists=true", mustExist: true, err: document.ErrNotFound, wantStatus: http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			api, svc := setup(t)

			fields := map[string]document.Value{"title": document.StringValue("Bromo")}
			svc.On("Replace", mock.Anything, parent, document.CollectionNotes, "n1", fields, tt.mustExist).
				Return(document.Document{Name: parent + "/travel_note/n1", Fields: fields}, tt.err)

			resp := api.Patch(base+"/travel_note/n1"+tt.query, map[string]any{
				"fields": map[string]any{"title": map[string]any{"stringValue": "Bromo"}},
			})

			assert.Equal(t, tt.wantStatus, resp.Code)
			svc.AssertExpectations(t)
		})
	}
}

func TestHandler_Delete(t *testing.T) {
	api, svc := setup(t)
	svc.On("Delete", mock.Anything, document.CollectionWishlist, "w1").Return(nil)

	resp := api.Delete(base + "/travel_wishlist/w1")

	require.Equal(t, http.StatusOK, resp.Code)
	assert.Equal(t, "{}", strings.TrimSpace(resp.Body.String()))
}
