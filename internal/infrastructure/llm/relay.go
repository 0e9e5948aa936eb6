package llm

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"golang.org/x/exp/slog"
)

// RelayClient - чат-ретранслятор: POST {messages:[{role,text}]} -> {response}.
// Ретранслятор понимает только роль user, поэтому все сообщения уходят с ней.
type RelayClient struct {
	client *http.Client
	url    string
	log    *slog.Logger
}

type relayMessage struct {
	Role string `json:"role"`
	Text string `json:"text"`
}

type relayRequest struct {
	Messages []relayMessage `json:"messages"`
}

type relayResponse struct {
	Response string `json:"response"`
}

func NewRelay(url string, httpClient *http.Client, log *slog.Logger) *RelayClient {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &RelayClient{
		client: httpClient,
		url:    url,
		log:    log.With(slog.String("component", "relay")),
	}
}

func (c *RelayClient) Generate(ctx context.Context, messages []Message) (Response, error) {
	body := relayRequest{Messages: make([]relayMessage, 0, len(messages))}
	for _, m := range messages {
		body.Messages = append(body.Messages, relayMessage{Role: RoleUser, Text: m.Content})
	}

	data, err := json.Marshal(body)
	if err != nil {
		return Response{}, fmt.Errorf("ошибка маршалинга тела запроса: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url, bytes.NewReader(data))
	if err != nil {
		return Response{}, fmt.Errorf("ошибка создания запроса: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	c.log.Debug("Отправка запроса", "url", c.url, "messages", len(body.Messages))

	resp, err := c.client.Do(req)
	if err != nil {
		return Response{}, fmt.Errorf("ошибка выполнения запроса: %w", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return Response{}, fmt.Errorf("ошибка чтения ответа: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return Response{}, fmt.Errorf("relay returned status %d", resp.StatusCode)
	}

	var out relayResponse
	if err := json.Unmarshal(raw, &out); err != nil {
		return Response{}, fmt.Errorf("ошибка парсинга ответа: %w", err)
	}
	if out.Response == "" {
		return Response{}, ErrEmptyResponse
	}

	return Response{Content: out.Response}, nil
}
