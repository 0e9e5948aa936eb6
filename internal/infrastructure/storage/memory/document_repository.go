package memory

import (
	"context"
	"maps"
	"slices"
	"strings"
	"sync"

	"travelmate/internal/domain/document"
)

type key struct {
	collection document.Collection
	id         string
}

// DocumentRepository хранит документы эмулятора в памяти процесса
type DocumentRepository struct {
	mu   sync.RWMutex
	docs map[key]document.StoredDocument
}

func NewDocumentRepository() *DocumentRepository {
	return &DocumentRepository{
		docs: make(map[key]document.StoredDocument),
	}
}

// Ping всегда успешен: документы в памяти процесса
func (r *DocumentRepository) Ping(context.Context) error {
	return nil
}

func (r *DocumentRepository) Insert(_ context.Context, doc document.StoredDocument) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	k := key{doc.Collection, doc.ID}
	if _, ok := r.docs[k]; ok {
		return document.ErrAlreadyExists
	}
	r.docs[k] = clone(doc)
	return nil
}

func (r *DocumentRepository) Find(_ context.Context, collection document.Collection, id string) (document.StoredDocument, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	doc, ok := r.docs[key{collection, id}]
	if !ok {
		return document.StoredDocument{}, document.ErrNotFound
	}
	return clone(doc), nil
}

func (r *DocumentRepository) List(_ context.Context, collection document.Collection, afterID string, limit int) ([]document.StoredDocument, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var out []document.StoredDocument
	for k, doc := range r.docs {
		if k.collection == collection && k.id > afterID {
			out = append(out, clone(doc))
		}
	}

	slices.SortFunc(out, func(a, b document.StoredDocument) int {
		return strings.Compare(a.ID, b.ID)
	})

	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (r *DocumentRepository) Replace(_ context.Context, doc document.StoredDocument, mustExist bool) (document.StoredDocument, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	k := key{doc.Collection, doc.ID}
	existing, ok := r.docs[k]
	if !ok && mustExist {
		return document.StoredDocument{}, document.ErrNotFound
	}

	// Время создания сохраняется при замене
	if ok {
		doc.CreateTime = existing.CreateTime
	}
	r.docs[k] = clone(doc)
	return clone(doc), nil
}

func (r *DocumentRepository) Delete(_ context.Context, collection document.Collection, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.docs, key{collection, id})
	return nil
}

func clone(doc document.StoredDocument) document.StoredDocument {
	doc.Fields = maps.Clone(doc.Fields)
	return doc
}
