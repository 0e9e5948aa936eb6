package memory

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"travelmate/internal/domain/document"
)

func TestDocumentRepository_Lifecycle(t *testing.T) {
	repo := NewDocumentRepository()
	ctx := context.Background()
	created := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

	doc := document.StoredDocument{
		Collection: document.CollectionNotes,
		ID:         "n1",
		Fields:     document.Encode(map[string]any{"title": "Bromo", "photo_url": "file://a.jpg"}),
		CreateTime: created,
		UpdateTime: created,
	}

	require.NoError(t, repo.Insert(ctx, doc))
	assert.ErrorIs(t, repo.Insert(ctx, doc), document.ErrAlreadyExists)

	// Полная замена полей, время создания сохраняется
	replaced, err := repo.Replace(ctx, document.StoredDocument{
		Collection: document.CollectionNotes,
		ID:         "n1",
		Fields:     document.Encode(map[string]any{"title": "Ijen"}),
		CreateTime: created.Add(time.Hour),
		UpdateTime: created.Add(time.Hour),
	}, true)
	require.NoError(t, err)
	assert.Equal(t, created, replaced.CreateTime)

	found, err := repo.Find(ctx, document.CollectionNotes, "n1")
	require.NoError(t, err)
	_, hasPhoto := found.Fields["photo_url"]
	assert.False(t, hasPhoto)

	require.NoError(t, repo.Delete(ctx, document.CollectionNotes, "n1"))
	require.NoError(t, repo.Delete(ctx, document.CollectionNotes, "n1"))

	_, err = repo.Find(ctx, document.CollectionNotes, "n1")
	assert.ErrorIs(t, err, document.ErrNotFound)
}

func TestDocumentRepository_ReplaceMissing(t *testing.T) {
	repo := NewDocumentRepository()
	ctx := context.Background()
	doc := document.StoredDocument{Collection: document.CollectionWishlist, ID: "w1"}

	_, err := repo.Replace(ctx, doc, true)
	assert.ErrorIs(t, err, document.ErrNotFound)

	_, err = repo.Replace(ctx, doc, false)
	require.NoError(t, err)

	_, err = repo.Find(ctx, document.CollectionWishlist, "w1")
	assert.NoError(t, err)
}

func TestDocumentRepository_List(t *testing.T) {
	repo := NewDocumentRepository()
	ctx := context.Background()

	for _, id := range []string{"c", "a", "b"} {
		require.NoError(t, repo.Insert(ctx, document.StoredDocument{Collection: document.CollectionChat, ID: id}))
	}
	require.NoError(t, repo.Insert(ctx, document.StoredDocument{Collection: document.CollectionNotes, ID: "z"}))

	docs, err := repo.List(ctx, document.CollectionChat, "", 10)
	require.NoError(t, err)
	require.Len(t, docs, 3)
	assert.Equal(t, []string{"a", "b", "c"}, []string{docs[0].ID, docs[1].ID, docs[2].ID})

	docs, err = repo.List(ctx, document.CollectionChat, "a", 1)
	require.NoError(t, err)
	require.Len(t, docs, 1)
	assert.Equal(t, "b", docs[0].ID)
}
