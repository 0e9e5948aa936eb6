package trip

import (
	"context"
	"time"

	"travelmate/internal/domain/location"
)

// Geocoder ищет места по тексту и определяет страну по координате
type Geocoder interface {
	Search(ctx context.Context, query string) ([]Place, error)
	CountryCode(ctx context.Context, c location.Coordinate) (string, error)
}

type TimezoneResolver interface {
	Timezone(ctx context.Context, c location.Coordinate) (string, error)
}

// CurrencyResolver возвращает код основной валюты страны, "" если валюты нет
type CurrencyResolver interface {
	Currency(ctx context.Context, countryCode string) (string, error)
}

type Converter interface {
	Convert(ctx context.Context, from, to string, amount float64) (float64, error)
}

// Clock возвращает текущее время в часовом поясе IANA
type Clock interface {
	Now(ctx context.Context, timezone string) (time.Time, error)
}

type Commenter interface {
	Comment(ctx context.Context, amount float64, destination string) (string, error)
}
