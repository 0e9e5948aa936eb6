package travelapi

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"golang.org/x/exp/slog"

	"travelmate/internal/domain/location"
	"travelmate/internal/domain/trip"
	"travelmate/internal/infrastructure/cache"
)

const DefaultNominatimURL = "https://nominatim.openstreetmap.org"

// Nominatim - прямое и обратное геокодирование OpenStreetMap
type Nominatim struct {
	base
}

type nominatimPlace struct {
	Lat         string `json:"lat"`
	Lon         string `json:"lon"`
	DisplayName string `json:"display_name"`
}

type nominatimReverse struct {
	DisplayName string `json:"display_name"`
	Address     struct {
		CountryCode string `json:"country_code"`
	} `json:"address"`
}

func NewNominatim(baseURL string, httpClient *http.Client, log *slog.Logger) *Nominatim {
	return &Nominatim{base: newBase(baseURL, httpClient, log, "nominatim")}
}

// WithCache включает кэширование ответов
func (n *Nominatim) WithCache(c cache.Cache, ttl time.Duration) *Nominatim {
	n.cache = c
	n.cacheTTL = ttl
	return n
}

// Search ищет места по тексту. Записи с неразборчивыми координатами пропускаются.
func (n *Nominatim) Search(ctx context.Context, query string) ([]trip.Place, error) {
	var raw []nominatimPlace
	q := url.Values{"format": {"json"}, "q": {query}}
	if err := n.getJSON(ctx, "/search", q, &raw); err != nil {
		return nil, fmt.Errorf("nominatim search: %w", err)
	}

	places := make([]trip.Place, 0, len(raw))
	for _, p := range raw {
		c, ok := location.ParseCoordinate(p.Lat + "," + p.Lon)
		if !ok {
			continue
		}
		places = append(places, trip.Place{Name: p.DisplayName, Coordinate: c})
	}
	return places, nil
}

func (n *Nominatim) ReverseGeocode(ctx context.Context, c location.Coordinate) (string, error) {
	r, err := n.reverse(ctx, c)
	if err != nil {
		return "", err
	}
	return r.DisplayName, nil
}

// CountryCode возвращает ISO-код страны в верхнем регистре, "" если страна не определена
func (n *Nominatim) CountryCode(ctx context.Context, c location.Coordinate) (string, error) {
	r, err := n.reverse(ctx, c)
	if err != nil {
		return "", err
	}
	return strings.ToUpper(r.Address.CountryCode), nil
}

func (n *Nominatim) reverse(ctx context.Context, c location.Coordinate) (nominatimReverse, error) {
	var r nominatimReverse
	q := url.Values{
		"format": {"json"},
		"lat":    {strconv.FormatFloat(c.Lat, 'f', -1, 64)},
		"lon":    {strconv.FormatFloat(c.Lon, 'f', -1, 64)},
	}
	if err := n.getJSON(ctx, "/reverse", q, &r); err != nil {
		return nominatimReverse{}, fmt.Errorf("nominatim reverse: %w", err)
	}
	return r, nil
}
