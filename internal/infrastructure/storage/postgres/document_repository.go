package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"golang.org/x/exp/slog"

	"travelmate/internal/domain/document"
)

const uniqueViolation = "23505"

func NewDocumentRepository(pool *pgxpool.Pool, log *slog.Logger) *DocumentRepository {
	return &DocumentRepository{
		pool: pool,
		log:  log.With(slog.String("component", "pg_documents")),
	}
}

type DocumentRepository struct {
	pool *pgxpool.Pool
	log  *slog.Logger
}

func (r *DocumentRepository) Ping(ctx context.Context) error {
	if err := r.pool.Ping(ctx); err != nil {
		return fmt.Errorf("ping postgres: %w", err)
	}
	return nil
}

func (r *DocumentRepository) Insert(ctx context.Context, doc document.StoredDocument) error {
	fields, err := json.Marshal(doc.Fields)
	if err != nil {
		return fmt.Errorf("marshal fields: %w", err)
	}

	_, err = r.pool.Exec(ctx,
		`INSERT INTO documents (collection, id, fields, create_time, update_time)
         VALUES ($1, $2, $3, $4, $5)`,
		string(doc.Collection), doc.ID, fields, doc.CreateTime, doc.UpdateTime)

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
		return document.ErrAlreadyExists
	}
	if err != nil {
		return fmt.Errorf("insert document: %w", err)
	}
	return nil
}

func (r *DocumentRepository) Find(ctx context.Context, collection document.Collection, id string) (document.StoredDocument, error) {
	doc := document.StoredDocument{Collection: collection, ID: id}
	var fields []byte

	err := r.pool.QueryRow(ctx,
		`SELECT fields, create_time, update_time FROM documents
         WHERE collection = $1 AND id = $2`,
		string(collection), id).Scan(&fields, &doc.CreateTime, &doc.UpdateTime)
	if errors.Is(err, pgx.ErrNoRows) {
		return doc, document.ErrNotFound
	}
	if err != nil {
		return doc, fmt.Errorf("find document: %w", err)
	}

	if err := json.Unmarshal(fields, &doc.Fields); err != nil {
		return doc, fmt.Errorf("unmarshal fields: %w", err)
	}
	return doc, nil
}

func (r *DocumentRepository) List(ctx context.Context, collection document.Collection, afterID string, limit int) ([]document.StoredDocument, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT id, fields, create_time, update_time FROM documents
         WHERE collection = $1 AND id > $2
         ORDER BY id
         LIMIT $3`,
		string(collection), afterID, limit)
	if err != nil {
		return nil, fmt.Errorf("list documents: %w", err)
	}
	defer rows.Close()

	var docs []document.StoredDocument
	for rows.Next() {
		doc := document.StoredDocument{Collection: collection}
		var fields []byte
		if err := rows.Scan(&doc.ID, &fields, &doc.CreateTime, &doc.UpdateTime); err != nil {
			return nil, fmt.Errorf("scan document: %w", err)
		}
		if err := json.Unmarshal(fields, &doc.Fields); err != nil {
			return nil, fmt.Errorf("unmarshal fields of %s: %w", doc.ID, err)
		}
		docs = append(docs, doc)
	}

	return docs, rows.Err()
}

func (r *DocumentRepository) Replace(ctx context.Context, doc document.StoredDocument, mustExist bool) (document.StoredDocument, error) {
	fields, err := json.Marshal(doc.Fields)
	if err != nil {
		return doc, fmt.Errorf("marshal fields: %w", err)
	}

	var createTime time.Time
	if mustExist {
		err = r.pool.QueryRow(ctx,
			`UPDATE documents SET fields = $3, update_time = $4
             WHERE collection = $1 AND id = $2
             RETURNING create_time`,
			string(doc.Collection), doc.ID, fields, doc.UpdateTime).Scan(&createTime)
		if errors.Is(err, pgx.ErrNoRows) {
			return doc, document.ErrNotFound
		}
	} else {
		err = r.pool.QueryRow(ctx,
			`INSERT INTO documents (collection, id, fields, create_time, update_time)
             VALUES ($1, $2, $3, $4, $4)
             ON CONFLICT (collection, id)
             DO UPDATE SET fields = EXCLUDED.fields, update_time = EXCLUDED.update_time
             RETURNING create_time`,
			string(doc.Collection), doc.ID, fields, doc.UpdateTime).Scan(&createTime)
	}
	if err != nil {
		return doc, fmt.Errorf("replace document: %w", err)
	}

	doc.CreateTime = createTime
	return doc, nil
}

func (r *DocumentRepository) Delete(ctx context.Context, collection document.Collection, id string) error {
	tag, err := r.pool.Exec(ctx,
		`DELETE FROM documents WHERE collection = $1 AND id = $2`,
		string(collection), id)
	if err != nil {
		return fmt.Errorf("delete document: %w", err)
	}

	r.log.Debug("document deleted", "collection", collection, "id", id, "rows", tag.RowsAffected())
	return nil
}
