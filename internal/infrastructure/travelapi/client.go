// Package travelapi - клиенты публичных API, которые нужны для проверки поездки:
// геокодирование, часовые пояса, валюты стран, курсы и местное время.
package travelapi

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"golang.org/x/exp/slog"

	"travelmate/internal/infrastructure/cache"
)

const userAgent = "travelmate-app"

var (
	ErrUnexpectedStatus = errors.New("unexpected status")
	ErrMalformed        = errors.New("malformed response")
)

// base - общий HTTP-транспорт клиентов с необязательным кэшем ответов
type base struct {
	client   *http.Client
	baseURL  string
	cache    cache.Cache
	cacheTTL time.Duration
	log      *slog.Logger
}

func newBase(baseURL string, httpClient *http.Client, log *slog.Logger, component string) base {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return base{
		client:  httpClient,
		baseURL: strings.TrimRight(baseURL, "/"),
		log:     log.With(slog.String("component", component)),
	}
}

// getJSON выполняет GET baseURL+path?query и декодирует тело ответа в out.
// При заданном кэше тело успешного ответа кэшируется по полному URL.
func (b *base) getJSON(ctx context.Context, path string, query url.Values, out any) error {
	rawURL := b.baseURL + path
	if len(query) > 0 {
		rawURL += "?" + query.Encode()
	}

	if b.cache != nil {
		if data, err := b.cache.Get(ctx, rawURL); err == nil {
			return decode(data, out)
		} else if !errors.Is(err, cache.ErrMiss) {
			b.log.Warn("cache read failed", "error", err)
		}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return fmt.Errorf("ошибка создания запроса: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", userAgent)

	b.log.Debug("Отправка запроса", "url", rawURL)

	resp, err := b.client.Do(req)
	if err != nil {
		return fmt.Errorf("ошибка выполнения запроса: %w", err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("ошибка чтения ответа: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("%w: %d", ErrUnexpectedStatus, resp.StatusCode)
	}
	if err := decode(data, out); err != nil {
		return err
	}

	if b.cache != nil {
		if err := b.cache.Set(ctx, rawURL, data, b.cacheTTL); err != nil {
			b.log.Warn("cache write failed", "error", err)
		}
	}
	return nil
}

func decode(data []byte, out any) error {
	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("%w: %w", ErrMalformed, err)
	}
	return nil
}
