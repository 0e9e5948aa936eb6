package client

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/exp/slog"

	"travelmate/internal/domain/session"
)

func newStorages(t *testing.T) map[string]Storage {
	t.Helper()

	sqlite, err := NewSQLiteStorage(filepath.Join(t.TempDir(), "data.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = sqlite.Close() })

	return map[string]Storage{
		"sqlite": sqlite,
		"memory": NewMemoryStorage(),
	}
}

func TestStorage_KeyValue(t *testing.T) {
	for name, st := range newStorages(t) {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()

			_, found, err := st.Get(ctx, "k")
			require.NoError(t, err)
			assert.False(t, found)

			require.NoError(t, st.Set(ctx, "k", "v1"))
			require.NoError(t, st.Set(ctx, "k", "v2"))

			v, found, err := st.Get(ctx, "k")
			require.NoError(t, err)
			assert.True(t, found)
			assert.Equal(t, "v2", v)

			require.NoError(t, st.Delete(ctx, "k"))
			require.NoError(t, st.Delete(ctx, "k"))

			_, found, err = st.Get(ctx, "k")
			require.NoError(t, err)
			assert.False(t, found)
		})
	}
}

func TestSQLiteStorage_SessionSurvivesReopen(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "data.db")

	st, err := NewSQLiteStorage(path)
	require.NoError(t, err)
	require.NoError(t, session.NewService(st, slog.Default()).Set(ctx, session.Session{UserID: "u1"}))
	require.NoError(t, st.Close())

	st, err = NewSQLiteStorage(path)
	require.NoError(t, err)
	defer st.Close()

	state, sess := session.NewService(st, slog.Default()).State(ctx)
	assert.Equal(t, session.LoggedIn, state)
	assert.Equal(t, "u1", sess.UserID)
}
