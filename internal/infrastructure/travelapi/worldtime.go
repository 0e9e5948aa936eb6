package travelapi

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"golang.org/x/exp/slog"
)

const DefaultWorldTimeURL = "https://worldtimeapi.org"

// WorldTime возвращает текущее время в часовом поясе
type WorldTime struct {
	base
}

type worldTimeResponse struct {
	Datetime string `json:"datetime"`
}

func NewWorldTime(baseURL string, httpClient *http.Client, log *slog.Logger) *WorldTime {
	return &WorldTime{base: newBase(baseURL, httpClient, log, "worldtime")}
}

// Now возвращает время со смещением пояса из ответа сервиса
func (w *WorldTime) Now(ctx context.Context, timezone string) (time.Time, error) {
	var r worldTimeResponse
	if err := w.getJSON(ctx, "/api/timezone/"+timezone, nil, &r); err != nil {
		return time.Time{}, fmt.Errorf("worldtime: %w", err)
	}

	t, err := time.Parse(time.RFC3339Nano, r.Datetime)
	if err != nil {
		return time.Time{}, fmt.Errorf("worldtime: %w: %w", ErrMalformed, err)
	}
	return t, nil
}
