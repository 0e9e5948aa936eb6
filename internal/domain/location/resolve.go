package location

import (
	"context"
	"strings"

	"golang.org/x/exp/slog"
)

// ResolveName возвращает name, а если оно пустое - название места по координате.
// Ошибка геокодера не прерывает сохранение записи, название просто остается пустым.
func ResolveName(ctx context.Context, geocoder ReverseGeocoder, log *slog.Logger, name, coordinate string) string {
	if strings.TrimSpace(name) != "" || geocoder == nil {
		return name
	}

	c, ok := ParseCoordinate(coordinate)
	if !ok {
		return name
	}

	resolved, err := geocoder.ReverseGeocode(ctx, c)
	if err != nil {
		log.Warn("reverse geocoding failed", "coordinate", coordinate, "error", err)
		return ""
	}
	return resolved
}
