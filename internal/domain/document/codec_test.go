package document

import (
	"encoding/json"
	"testing"

	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ptr[T any](v T) *T {
	return &v
}

func TestDecode(t *testing.T) {
	tests := []struct {
		name     string
		doc      Document
		expected Record
	}{
		{
			name: "string fields",
			doc: Document{
				Name: "projects/p/databases/(default)/documents/travel_note/abc123",
				Fields: map[string]Value{
					"title":   {StringValue: ptr("Bromo")},
					"user_id": {StringValue: ptr("u1")},
				},
			},
			expected: Record{ID: "abc123", Fields: map[string]any{"title": "Bromo", "user_id": "u1"}},
		},
		{
			name: "typed values",
			doc: Document{
				Name: "x/chat/m1",
				Fields: map[string]Value{
					"count":   {IntegerValue: ptr("42")},
					"rating":  {DoubleValue: ptr(4.5)},
					"visited": {BooleanValue: ptr(false)},
				},
			},
			expected: Record{ID: "m1", Fields: map[string]any{"count": int64(42), "rating": 4.5, "visited": false}},
		},
		{
			name: "unknown tag and broken integer decode to nil",
			doc: Document{
				Name: "x/users/u",
				Fields: map[string]Value{
					"empty":  {},
					"broken": {IntegerValue: ptr("4x")},
				},
			},
			expected: Record{ID: "u", Fields: map[string]any{"empty": nil, "broken": nil}},
		},
		{
			name: "string wins over other tags",
			doc: Document{
				Name: "id-only",
				Fields: map[string]Value{
					"f": {StringValue: ptr("s"), IntegerValue: ptr("1")},
				},
			},
			expected: Record{ID: "id-only", Fields: map[string]any{"f": "s"}},
		},
		{
			name:     "no fields",
			doc:      Document{Name: "a/b/c"},
			expected: Record{ID: "c", Fields: map[string]any{}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Decode(tt.doc))
		})
	}
}

func TestEncode(t *testing.T) {
	fields := Encode(map[string]any{
		"created_at": int64(1700000000000),
		"rating":     4.5,
		"visited":    true,
		"photo_url":  nil,
		"title":      "Bromo",
	})

	for name, want := range map[string]string{
		"created_at": "1700000000000",
		"rating":     "4.5",
		"visited":    "true",
		"photo_url":  "",
		"title":      "Bromo",
	} {
		v, ok := fields[name]
		require.True(t, ok, name)
		require.NotNil(t, v.StringValue, name)
		assert.Equal(t, want, *v.StringValue, name)
		assert.Nil(t, v.IntegerValue)
		assert.Nil(t, v.DoubleValue)
		assert.Nil(t, v.BooleanValue)
	}
}

func TestEncodeDecode_RoundTrip(t *testing.T) {
	records := []Record{
		{ID: "n1", Fields: map[string]any{"user_id": "u1", "title": "Bromo", "created_at": "1700000000000"}},
		{ID: "w1", Fields: map[string]any{"user_id": "u2", "place_name": "Kawah Ijen", "location": "", "coordinate": "-8.05,114.24"}},
		{ID: "empty", Fields: map[string]any{}},
	}

	for _, rec := range records {
		t.Run(rec.ID, func(t *testing.T) {
			doc := Document{
				Name:   DocumentName("projects/p/databases/(default)/documents", CollectionNotes, rec.ID),
				Fields: EncodeRecord(rec),
			}
			assert.Equal(t, rec, Decode(doc))
		})
	}
}

func TestEncode_WireFormat(t *testing.T) {
	doc := Document{
		Fields: Encode(map[string]any{
			"user_id":    "u1",
			"title":      "Bromo",
			"created_at": int64(1700000000000),
			"rating":     4.5,
			"visited":    true,
			"photo_url":  nil,
		}),
	}

	data, err := json.MarshalIndent(doc, "", "  ")
	require.NoError(t, err)

	g := goldie.New(t,
		goldie.WithFixtureDir("testdata/golden"),
		goldie.WithNameSuffix(".golden"),
	)
	g.Assert(t, "travel_note_fields", data)
}

func TestDocumentID(t *testing.T) {
	assert.Equal(t, "abc", DocumentID("projects/p/databases/(default)/documents/users/abc"))
	assert.Equal(t, "abc", DocumentID("abc"))
	assert.Equal(t, "", DocumentID("users/"))
}

func TestRecord_Text(t *testing.T) {
	rec := Record{ID: "1", Fields: map[string]any{"s": "x", "n": int64(7), "b": true, "nil": nil}}

	assert.Equal(t, "x", rec.Text("s"))
	assert.Equal(t, "7", rec.Text("n"))
	assert.Equal(t, "true", rec.Text("b"))
	assert.Equal(t, "", rec.Text("nil"))
	assert.Equal(t, "", rec.Text("missing"))
}
