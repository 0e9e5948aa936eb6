package travelapi

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"golang.org/x/exp/slog"

	"travelmate/internal/domain/location"
)

const (
	DefaultGeoNamesURL      = "http://api.geonames.org"
	DefaultGeoNamesUsername = "demo"
)

// GeoNames определяет часовой пояс по координате
type GeoNames struct {
	base
	username string
}

type geoNamesTimezone struct {
	TimezoneID string `json:"timezoneId"`
	Status     *struct {
		Message string `json:"message"`
	} `json:"status"`
}

func NewGeoNames(baseURL, username string, httpClient *http.Client, log *slog.Logger) *GeoNames {
	if username == "" {
		username = DefaultGeoNamesUsername
	}
	return &GeoNames{base: newBase(baseURL, httpClient, log, "geonames"), username: username}
}

// Timezone возвращает идентификатор IANA. GeoNames сообщает об ошибках
// полем status с кодом 200, такой ответ считается ошибкой.
func (g *GeoNames) Timezone(ctx context.Context, c location.Coordinate) (string, error) {
	var r geoNamesTimezone
	q := url.Values{
		"lat":      {strconv.FormatFloat(c.Lat, 'f', -1, 64)},
		"lng":      {strconv.FormatFloat(c.Lon, 'f', -1, 64)},
		"username": {g.username},
	}
	if err := g.getJSON(ctx, "/timezoneJSON", q, &r); err != nil {
		return "", fmt.Errorf("geonames timezone: %w", err)
	}
	if r.Status != nil {
		return "", fmt.Errorf("geonames timezone: %w: %s", ErrUnexpectedStatus, r.Status.Message)
	}
	if r.TimezoneID == "" {
		return "", fmt.Errorf("geonames timezone: %w: empty timezoneId", ErrMalformed)
	}
	return r.TimezoneID, nil
}
