package remote

import (
	"context"

	"travelmate/internal/domain/chat"
)

type ChatRepository struct {
	col Collection
}

func NewChatRepository(col Collection) *ChatRepository {
	return &ChatRepository{col: col}
}

func (r *ChatRepository) Create(ctx context.Context, m chat.Message) (chat.Message, error) {
	rec, err := r.col.Create(ctx, m.Fields(), "")
	if err != nil {
		return chat.Message{}, err
	}
	return chat.FromRecord(rec), nil
}

func (r *ChatRepository) List(ctx context.Context) ([]chat.Message, error) {
	records, err := r.col.List(ctx)
	if err != nil {
		return nil, err
	}
	return decodeAll(records, chat.FromRecord), nil
}
