package location

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
	"strings"
)

// Coordinate - точка "широта,долгота"
type Coordinate struct {
	Lat float64
	Lon float64
}

// ParseCoordinate разбирает текст вида "<lat>,<lon>". Пробелы допускаются,
// все остальное считается отсутствием координаты.
func ParseCoordinate(s string) (Coordinate, bool) {
	parts := strings.Split(strings.TrimSpace(s), ",")
	if len(parts) != 2 {
		return Coordinate{}, false
	}

	lat, err := strconv.ParseFloat(strings.TrimSpace(parts[0]), 64)
	if err != nil {
		return Coordinate{}, false
	}
	lon, err := strconv.ParseFloat(strings.TrimSpace(parts[1]), 64)
	if err != nil {
		return Coordinate{}, false
	}

	c := Coordinate{Lat: lat, Lon: lon}
	if !c.Valid() {
		return Coordinate{}, false
	}
	return c, true
}

func (c Coordinate) Valid() bool {
	return c.Lat >= -90 && c.Lat <= 90 && c.Lon >= -180 && c.Lon <= 180
}

// String возвращает координату в формате хранения
func (c Coordinate) String() string {
	return strconv.FormatFloat(c.Lat, 'f', -1, 64) + "," + strconv.FormatFloat(c.Lon, 'f', -1, 64)
}

// MapsURL - ссылка на точку в Google Maps
func (c Coordinate) MapsURL() string {
	return fmt.Sprintf("https://www.google.com/maps/search/?api=1&query=%s", url.QueryEscape(c.String()))
}

// ReverseGeocoder находит название места по координате
type ReverseGeocoder interface {
	ReverseGeocode(ctx context.Context, c Coordinate) (string, error)
}
