// Package docstore - HTTP-клиент документного хранилища с REST-форматом Firestore.
package docstore

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"golang.org/x/exp/slog"

	"travelmate/internal/domain/document"
)

const userAgent = "TravelMate-Client/1.0"

type Client struct {
	client  *http.Client
	log     *slog.Logger
	baseURL string
}

// NewHTTPClient создает http.Client с настройками транспорта по умолчанию
func NewHTTPClient(timeout time.Duration) *http.Client {
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return &http.Client{
		Timeout: timeout,
		Transport: &http.Transport{
			MaxIdleConns:        100,
			IdleConnTimeout:     90 * time.Second,
			MaxIdleConnsPerHost: 10,
		},
	}
}

// New создает клиент. baseURL - адрес вида <host>/v1/projects/<project>/databases/(default)/documents.
func New(baseURL string, httpClient *http.Client, log *slog.Logger) *Client {
	if httpClient == nil {
		httpClient = NewHTTPClient(0)
	}
	return &Client{
		client:  httpClient,
		log:     log.With(slog.String("component", "docstore")),
		baseURL: strings.TrimRight(baseURL, "/"),
	}
}

// BaseURL собирает адрес документов проекта
func BaseURL(host, project string) string {
	return fmt.Sprintf("%s/v1/projects/%s/databases/(default)/documents", strings.TrimRight(host, "/"), project)
}

func (c *Client) Collection(name document.Collection) *Collection {
	return &Collection{client: c, name: string(name)}
}

// Ping проверяет доступность хранилища запросом одной страницы коллекции
func (c *Client) Ping(ctx context.Context, name document.Collection) error {
	q := url.Values{}
	q.Set("pageSize", "1")

	col := c.Collection(name)
	var page document.ListResponse
	return col.call(ctx, "ping", http.MethodGet, col.docURL("", q), "", nil, &page)
}

func (c *Client) doRequest(ctx context.Context, method, rawURL string, body any) (*http.Response, error) {
	var reqBody io.Reader
	if body != nil {
		jsonData, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("ошибка маршалинга тела запроса: %w", err)
		}
		reqBody = bytes.NewBuffer(jsonData)
	}

	req, err := http.NewRequestWithContext(ctx, method, rawURL, reqBody)
	if err != nil {
		return nil, fmt.Errorf("ошибка создания запроса: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("User-Agent", userAgent)

	c.log.Debug("Отправка запроса",
		"method", method,
		"url", req.URL.String(),
	)

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrUnavailable, err)
	}

	return resp, nil
}

// parseResponse читает ответ и возвращает код статуса, текст ошибки сервера и ошибку разбора
func (c *Client) parseResponse(resp *http.Response, result any) (int, string, error) {
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return resp.StatusCode, "", fmt.Errorf("%w: %w", ErrUnavailable, err)
	}

	c.log.Debug("Получен ответ",
		"status", resp.StatusCode,
		"body", string(body),
	)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return resp.StatusCode, errorMessage(body), statusError(resp.StatusCode)
	}

	if result != nil && len(bytes.TrimSpace(body)) > 0 {
		if err := json.Unmarshal(body, result); err != nil {
			return resp.StatusCode, "", fmt.Errorf("%w: %w", ErrMalformedResponse, err)
		}
	}

	return resp.StatusCode, "", nil
}

func statusError(code int) error {
	switch code {
	case http.StatusNotFound:
		return ErrNotFound
	case http.StatusConflict:
		return ErrAlreadyExists
	default:
		return ErrUnexpectedStatus
	}
}

// errorMessage достает текст ошибки из тела в формате Firestore или RFC 9457
func errorMessage(body []byte) string {
	var errResp struct {
		Error *struct {
			Message string `json:"message"`
		} `json:"error"`
		Detail string `json:"detail"`
		Title  string `json:"title"`
	}
	if err := json.Unmarshal(body, &errResp); err != nil {
		return ""
	}
	switch {
	case errResp.Error != nil && errResp.Error.Message != "":
		return errResp.Error.Message
	case errResp.Detail != "":
		return errResp.Detail
	default:
		return errResp.Title
	}
}
