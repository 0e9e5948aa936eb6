package document

import (
	"context"
	"encoding/base64"
	"fmt"
	"regexp"
	"time"

	"github.com/google/uuid"
	"golang.org/x/exp/slog"
)

const (
	DefaultPageSize = 300
	MaxPageSize     = 1000
)

// MaxIDLen - предельная длина идентификатора документа или коллекции в байтах
const MaxIDLen = 1500

var idPattern = regexp.MustCompile(`^[A-Za-z0-9_\-.@]+$`)

type Servicer interface {
	Create(ctx context.Context, parent string, collection Collection, id string, fields map[string]Value) (Document, error)
	Get(ctx context.Context, parent string, collection Collection, id string) (Document, error)
	List(ctx context.Context, parent string, collection Collection, pageSize int, pageToken string) (ListResponse, error)
	Replace(ctx context.Context, parent string, collection Collection, id string, fields map[string]Value, mustExist bool) (Document, error)
	Delete(ctx context.Context, collection Collection, id string) error
}

type Service struct {
	repo Repository
	log  *slog.Logger
	now  func() time.Time
}

func NewService(repo Repository, log *slog.Logger) *Service {
	return &Service{
		repo: repo,
		log:  log.With(slog.String("component", "document_service")),
		now:  time.Now,
	}
}

func (s *Service) Create(ctx context.Context, parent string, collection Collection, id string, fields map[string]Value) (Document, error) {
	if err := validateCollection(collection); err != nil {
		return Document{}, err
	}

	// Без documentId генерируем идентификатор сами
	if id == "" {
		generated, err := uuid.NewV7()
		if err != nil {
			return Document{}, fmt.Errorf("generate document id: %w", err)
		}
		id = generated.String()
	} else if err := validateID(id); err != nil {
		return Document{}, err
	}

	now := s.now().UTC()
	doc := StoredDocument{
		Collection: collection,
		ID:         id,
		Fields:     nonNil(fields),
		CreateTime: now,
		UpdateTime: now,
	}

	if err := s.repo.Insert(ctx, doc); err != nil {
		s.log.Debug("insert failed", "collection", collection, "id", id, "error", err)
		return Document{}, err
	}

	return toWire(parent, doc), nil
}

func (s *Service) Get(ctx context.Context, parent string, collection Collection, id string) (Document, error) {
	if err := validateCollection(collection); err != nil {
		return Document{}, err
	}
	if err := validateID(id); err != nil {
		return Document{}, err
	}

	doc, err := s.repo.Find(ctx, collection, id)
	if err != nil {
		return Document{}, err
	}

	return toWire(parent, doc), nil
}

func (s *Service) List(ctx context.Context, parent string, collection Collection, pageSize int, pageToken string) (ListResponse, error) {
	if err := validateCollection(collection); err != nil {
		return ListResponse{}, err
	}

	if pageSize <= 0 {
		pageSize = DefaultPageSize
	}
	if pageSize > MaxPageSize {
		pageSize = MaxPageSize
	}

	afterID, err := decodePageToken(pageToken)
	if err != nil {
		return ListResponse{}, err
	}

	// Берем на один документ больше, чтобы понять, есть ли следующая страница
	docs, err := s.repo.List(ctx, collection, afterID, pageSize+1)
	if err != nil {
		return ListResponse{}, fmt.Errorf("list documents: %w", err)
	}

	var resp ListResponse
	if len(docs) > pageSize {
		docs = docs[:pageSize]
		resp.NextPageToken = encodePageToken(docs[len(docs)-1].ID)
	}

	for _, doc := range docs {
		resp.Documents = append(resp.Documents, toWire(parent, doc))
	}

	return resp, nil
}

func (s *Service) Replace(ctx context.Context, parent string, collection Collection, id string, fields map[string]Value, mustExist bool) (Document, error) {
	if err := validateCollection(collection); err != nil {
		return Document{}, err
	}
	if err := validateID(id); err != nil {
		return Document{}, err
	}

	now := s.now().UTC()
	stored, err := s.repo.Replace(ctx, StoredDocument{
		Collection: collection,
		ID:         id,
		Fields:     nonNil(fields),
		CreateTime: now,
		UpdateTime: now,
	}, mustExist)
	if err != nil {
		return Document{}, err
	}

	return toWire(parent, stored), nil
}

func (s *Service) Delete(ctx context.Context, collection Collection, id string) error {
	if err := validateCollection(collection); err != nil {
		return err
	}
	if err := validateID(id); err != nil {
		return err
	}

	return s.repo.Delete(ctx, collection, id)
}

// DocumentName собирает полное имя документа
func DocumentName(parent string, collection Collection, id string) string {
	return fmt.Sprintf("%s/%s/%s", parent, collection, id)
}

func toWire(parent string, doc StoredDocument) Document {
	return Document{
		Name:       DocumentName(parent, doc.Collection, doc.ID),
		Fields:     doc.Fields,
		CreateTime: doc.CreateTime.UTC().Format(time.RFC3339Nano),
		UpdateTime: doc.UpdateTime.UTC().Format(time.RFC3339Nano),
	}
}

func nonNil(fields map[string]Value) map[string]Value {
	if fields == nil {
		return map[string]Value{}
	}
	return fields
}

func validateCollection(collection Collection) error {
	if len(collection) > MaxIDLen || !idPattern.MatchString(string(collection)) {
		return invalid(fmt.Sprintf("invalid collection id %q", collection))
	}
	return nil
}

func validateID(id string) error {
	if id == "." || id == ".." || len(id) > MaxIDLen || !idPattern.MatchString(id) {
		return invalid(fmt.Sprintf("invalid document id %q", id))
	}
	return nil
}

func encodePageToken(lastID string) string {
	return base64.RawURLEncoding.EncodeToString([]byte(lastID))
}

func decodePageToken(token string) (string, error) {
	if token == "" {
		return "", nil
	}
	raw, err := base64.RawURLEncoding.DecodeString(token)
	if err != nil {
		return "", invalid("invalid page token")
	}
	return string(raw), nil
}
