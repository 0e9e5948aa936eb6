package document

import "context"

type Repository interface {
	// Insert сохраняет новый документ, ErrAlreadyExists если id занят
	Insert(ctx context.Context, doc StoredDocument) error
	// Find возвращает документ или ErrNotFound
	Find(ctx context.Context, collection Collection, id string) (StoredDocument, error)
	// List возвращает до limit документов с id больше afterID, по возрастанию id
	List(ctx context.Context, collection Collection, afterID string, limit int) ([]StoredDocument, error)
	// Replace полностью заменяет поля. При mustExist отсутствующий документ дает ErrNotFound,
	// иначе документ создается.
	Replace(ctx context.Context, doc StoredDocument, mustExist bool) (StoredDocument, error)
	// Delete удаляет документ, отсутствие документа не ошибка
	Delete(ctx context.Context, collection Collection, id string) error
	// Ping проверяет, что хранилище отвечает
	Ping(ctx context.Context) error
}
