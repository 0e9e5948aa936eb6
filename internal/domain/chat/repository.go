package chat

import "context"

// Repository - сообщения не редактируются и не удаляются
type Repository interface {
	Create(ctx context.Context, m Message) (Message, error)
	List(ctx context.Context) ([]Message, error)
}
