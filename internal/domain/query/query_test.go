package query

import (
	"context"
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"travelmate/internal/domain/errs"
)

type item struct {
	ID        string
	UserID    string
	CreatedAt int64
	HasTime   bool
	Title     string
}

func (i item) GetID() string                  { return i.ID }
func (i item) GetUserID() string              { return i.UserID }
func (i item) CreatedAtMillis() (int64, bool) { return i.CreatedAt, i.HasTime }

type sliceLister struct {
	items []item
	err   error
	calls int
}

func (l *sliceLister) List(context.Context) ([]item, error) {
	l.calls++
	out := make([]item, len(l.items))
	copy(out, l.items)
	return out, l.err
}

func ids(items []item) []string {
	out := make([]string, 0, len(items))
	for _, it := range items {
		out = append(out, it.ID)
	}
	return out
}

func TestForUser_FiltersByOwner(t *testing.T) {
	src := &sliceLister{items: []item{
		{ID: "a", UserID: "u1", CreatedAt: 1, HasTime: true},
		{ID: "b", UserID: "u2", CreatedAt: 2, HasTime: true},
		{ID: "c", UserID: "u1", CreatedAt: 3, HasTime: true},
		{ID: "d", UserID: "", CreatedAt: 4, HasTime: true},
		{ID: "e", UserID: "U1", CreatedAt: 5, HasTime: true},
	}}

	got, err := ForUser[item](context.Background(), src, "u1", Options[item]{})
	require.NoError(t, err)

	if diff := cmp.Diff([]string{"c", "a"}, ids(got)); diff != "" {
		t.Errorf("ForUser() mismatch (-want +got):\n%s", diff)
	}
	for _, it := range got {
		assert.Equal(t, "u1", it.UserID)
	}
}

func TestForUser_EmptyUser(t *testing.T) {
	src := &sliceLister{}

	_, err := ForUser[item](context.Background(), src, " ", Options[item]{})

	assert.ErrorIs(t, err, errs.ErrValidation)
	assert.Zero(t, src.calls)
}

func TestForUser_SourceError(t *testing.T) {
	src := &sliceLister{err: errors.New("network down")}

	_, err := ForUser[item](context.Background(), src, "u1", Options[item]{})

	assert.EqualError(t, err, "network down")
}

func TestForUser_AlphabeticalRequiresKey(t *testing.T) {
	_, err := ForUser[item](context.Background(), &sliceLister{}, "u1", Options[item]{Order: Alphabetical})
	assert.Error(t, err)
}

func TestSort_NewestFirst(t *testing.T) {
	tests := []struct {
		name  string
		items []item
		want  []string
	}{
		{
			name: "numeric timestamps descending",
			items: []item{
				{ID: "a", CreatedAt: 900, HasTime: true},
				{ID: "b", CreatedAt: 1000, HasTime: true},
				{ID: "c", CreatedAt: 10, HasTime: true},
			},
			want: []string{"b", "a", "c"},
		},
		{
			name: "missing timestamps fall back to id descending",
			items: []item{
				{ID: "k1"},
				{ID: "k3"},
				{ID: "k2"},
			},
			want: []string{"k3", "k2", "k1"},
		},
		{
			name: "equal timestamps keep input order",
			items: []item{
				{ID: "x", CreatedAt: 5, HasTime: true},
				{ID: "y", CreatedAt: 5, HasTime: true},
			},
			want: []string{"x", "y"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			Sort(tt.items, NewestFirst, nil)
			assert.Equal(t, tt.want, ids(tt.items))
		})
	}
}

func TestSort_MissingTimestampIsDeterministic(t *testing.T) {
	input := []item{
		{ID: "n2", CreatedAt: 200, HasTime: true},
		{ID: "old-b"},
		{ID: "n1", CreatedAt: 100, HasTime: true},
		{ID: "old-a"},
	}

	var first []string
	for i := 0; i < 5; i++ {
		items := make([]item, len(input))
		copy(items, input)
		Sort(items, NewestFirst, nil)

		if first == nil {
			first = ids(items)
			continue
		}
		assert.Equal(t, first, ids(items))
	}
}

func TestSort_MixedTimestampsIgnoreInputOrder(t *testing.T) {
	base := []item{
		{ID: "a"},
		{ID: "b", CreatedAt: 50, HasTime: true},
		{ID: "c"},
		{ID: "d", CreatedAt: 70, HasTime: true},
	}
	want := []string{"d", "b", "c", "a"}

	for _, perm := range permutations(len(base)) {
		items := make([]item, 0, len(base))
		for _, i := range perm {
			items = append(items, base[i])
		}

		Sort(items, NewestFirst, nil)

		if diff := cmp.Diff(want, ids(items)); diff != "" {
			t.Errorf("Sort(%v) mismatch (-want +got):\n%s", perm, diff)
		}
	}
}

func permutations(n int) [][]int {
	if n == 0 {
		return [][]int{{}}
	}
	var out [][]int
	for _, p := range permutations(n - 1) {
		for pos := 0; pos <= len(p); pos++ {
			next := make([]int, 0, n)
			next = append(next, p[:pos]...)
			next = append(next, n-1)
			next = append(next, p[pos:]...)
			out = append(out, next)
		}
	}
	return out
}

func TestSort_OldestFirst(t *testing.T) {
	items := []item{
		{ID: "m2", CreatedAt: 2, HasTime: true},
		{ID: "m3", CreatedAt: 3, HasTime: true},
		{ID: "m1", CreatedAt: 1, HasTime: true},
	}

	Sort(items, OldestFirst, nil)

	assert.Equal(t, []string{"m1", "m2", "m3"}, ids(items))
}

func TestSort_Alphabetical(t *testing.T) {
	items := []item{
		{ID: "1", Title: "bromo"},
		{ID: "2", Title: "Ijen"},
		{ID: "3", Title: "Bali"},
	}

	Sort(items, Alphabetical, func(i item) string { return i.Title })

	// Сравнение чувствительно к регистру: заглавные раньше строчных
	assert.Equal(t, []string{"3", "2", "1"}, ids(items))
}

func TestSearch(t *testing.T) {
	items := []item{
		{ID: "1", Title: "Sunrise at Bromo"},
		{ID: "2", Title: "Kawah Ijen"},
		{ID: "3", Title: "Pantai"},
	}
	fields := func(i item) []string { return []string{i.Title} }

	assert.Equal(t, []string{"1"}, ids(Search(items, "bromo", fields)))
	assert.Equal(t, []string{"1", "2", "3"}, ids(Search(items, "  ", fields)))
	assert.Empty(t, Search(items, "raja ampat", fields))
}
