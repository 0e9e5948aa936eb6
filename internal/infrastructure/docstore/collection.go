package docstore

import (
	"context"
	"net/http"
	"net/url"

	"travelmate/internal/domain/document"
)

// Collection - операции над одной коллекцией, по одному HTTP-запросу на вызов.
// List может пройти несколько страниц.
type Collection struct {
	client *Client
	name   string
}

// Create создает документ. Пустой docID - идентификатор выберет хранилище.
func (c *Collection) Create(ctx context.Context, fields map[string]any, docID string) (document.Record, error) {
	q := url.Values{}
	if docID != "" {
		q.Set("documentId", docID)
	}

	var doc document.Document
	body := document.Document{Fields: document.Encode(fields)}
	if err := c.call(ctx, "create", http.MethodPost, c.docURL("", q), docID, body, &doc); err != nil {
		return document.Record{}, err
	}

	rec := document.Decode(doc)
	if rec.ID == "" {
		rec.ID = docID
	}
	return rec, nil
}

// List возвращает все документы коллекции, следуя nextPageToken
func (c *Collection) List(ctx context.Context) ([]document.Record, error) {
	records := []document.Record{}
	token := ""

	for {
		q := url.Values{}
		if token != "" {
			q.Set("pageToken", token)
		}

		var page document.ListResponse
		if err := c.call(ctx, "list", http.MethodGet, c.docURL("", q), "", nil, &page); err != nil {
			return nil, err
		}

		records = append(records, document.DecodeAll(page.Documents)...)

		if page.NextPageToken == "" || page.NextPageToken == token {
			return records, nil
		}
		token = page.NextPageToken
	}
}

// Get возвращает документ. Документ без полей считается отсутствующим.
func (c *Collection) Get(ctx context.Context, id string) (document.Record, error) {
	var doc document.Document
	if err := c.call(ctx, "get", http.MethodGet, c.docURL(id, nil), id, nil, &doc); err != nil {
		return document.Record{}, err
	}
	if len(doc.Fields) == 0 {
		return document.Record{}, &StoreError{Op: "get", Collection: c.name, ID: id, StatusCode: http.StatusOK, Err: ErrNotFound}
	}

	rec := document.Decode(doc)
	if rec.ID == "" {
		rec.ID = id
	}
	return rec, nil
}

// Update заменяет все поля документа. Отсутствующий документ не создается.
func (c *Collection) Update(ctx context.Context, id string, fields map[string]any) error {
	q := url.Values{}
	q.Set("currentDocument.exists", "true")

	body := document.Document{Fields: document.Encode(fields)}
	return c.call(ctx, "update", http.MethodPatch, c.docURL(id, q), id, body, nil)
}

func (c *Collection) Delete(ctx context.Context, id string) error {
	return c.call(ctx, "delete", http.MethodDelete, c.docURL(id, nil), id, nil, nil)
}

// docURL - адрес коллекции, а при непустом id адрес документа
func (c *Collection) docURL(id string, q url.Values) string {
	u := c.client.baseURL + "/" + url.PathEscape(c.name)
	if id != "" {
		u += "/" + url.PathEscape(id)
	}
	if len(q) > 0 {
		u += "?" + q.Encode()
	}
	return u
}

// call выполняет запрос. id попадает только в контекст ошибки.
func (c *Collection) call(ctx context.Context, op, method, rawURL, id string, body, result any) error {
	resp, err := c.client.doRequest(ctx, method, rawURL, body)
	if err != nil {
		return &StoreError{Op: op, Collection: c.name, ID: id, Err: err}
	}

	status, msg, err := c.client.parseResponse(resp, result)
	if err != nil {
		return &StoreError{Op: op, Collection: c.name, ID: id, StatusCode: status, Message: msg, Err: err}
	}
	return nil
}
