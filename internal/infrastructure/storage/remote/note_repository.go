package remote

import (
	"context"

	"golang.org/x/exp/slog"

	"travelmate/internal/domain/note"
)

type NoteRepository struct {
	col Collection
	log *slog.Logger
}

func NewNoteRepository(col Collection, log *slog.Logger) *NoteRepository {
	return &NoteRepository{
		col: col,
		log: log,
	}
}

func (r *NoteRepository) Create(ctx context.Context, n note.Note) (note.Note, error) {
	rec, err := r.col.Create(ctx, n.Fields(), "")
	if err != nil {
		return note.Note{}, err
	}
	return note.FromRecord(rec), nil
}

func (r *NoteRepository) List(ctx context.Context) ([]note.Note, error) {
	records, err := r.col.List(ctx)
	if err != nil {
		return nil, err
	}
	r.log.Debug("notes loaded", "count", len(records))
	return decodeAll(records, note.FromRecord), nil
}

func (r *NoteRepository) Get(ctx context.Context, id string) (note.Note, error) {
	rec, err := r.col.Get(ctx, id)
	if err != nil {
		return note.Note{}, notFound(err, note.ErrNotFound)
	}
	return note.FromRecord(rec), nil
}

func (r *NoteRepository) Update(ctx context.Context, n note.Note) error {
	return notFound(r.col.Update(ctx, n.ID, n.Fields()), note.ErrNotFound)
}

func (r *NoteRepository) Delete(ctx context.Context, id string) error {
	return notFound(r.col.Delete(ctx, id), note.ErrNotFound)
}
