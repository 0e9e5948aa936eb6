package llm

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"golang.org/x/exp/slog"

	"travelmate/internal/domain/assistant"
)

const (
	ProviderRelay  = "relay"
	ProviderOpenAI = "openai"
)

// Factory создает клиентов с общими настройками
type Factory struct {
	RelayURL      string
	OpenaiAPIKey  string
	OpenaiBaseURL string
	OpenaiModel   string
	HTTPClient    *http.Client
}

func (f *Factory) CreateClient(provider string, log *slog.Logger) (Client, error) {
	switch strings.ToLower(provider) {
	case ProviderRelay, "":
		if f.RelayURL == "" {
			return nil, fmt.Errorf("relay url is not configured")
		}
		return NewRelay(f.RelayURL, f.HTTPClient, log), nil
	case ProviderOpenAI:
		if f.OpenaiAPIKey == "" {
			return nil, fmt.Errorf("openai api key is not configured")
		}
		return NewOpenAI(f.OpenaiAPIKey, f.OpenaiBaseURL, f.OpenaiModel, f.HTTPClient), nil
	default:
		return nil, fmt.Errorf("unknown llm provider: %s", provider)
	}
}

// Generator приводит Client к интерфейсу ассистента: контекст уходит системным сообщением
type Generator struct {
	client Client
}

func NewGenerator(client Client) *Generator {
	return &Generator{client: client}
}

func (g *Generator) Generate(ctx context.Context, p assistant.Prompt) (string, error) {
	resp, err := g.client.Generate(ctx, []Message{
		{Role: RoleSystem, Content: p.Context},
		{Role: RoleUser, Content: p.UserText},
	})
	if err != nil {
		return "", err
	}
	return resp.Content, nil
}
