package trip

import (
	"context"
	"fmt"
	"strings"

	"golang.org/x/exp/slog"
)

type Servicer interface {
	Check(ctx context.Context, req Request) (Result, error)
	Suggest(ctx context.Context, query string) ([]string, error)
}

type Deps struct {
	Geocoder  Geocoder
	Timezones TimezoneResolver
	Countries CurrencyResolver
	Rates     Converter
	Clock     Clock
	// Commenter может быть nil
	Commenter Commenter
}

type Service struct {
	deps         Deps
	baseCurrency string
	log          *slog.Logger
}

func NewService(deps Deps, baseCurrency string, log *slog.Logger) *Service {
	if baseCurrency == "" {
		baseCurrency = DefaultBaseCurrency
	}
	return &Service{
		deps:         deps,
		baseCurrency: strings.ToUpper(baseCurrency),
		log:          log.With(slog.String("component", "trip")),
	}
}

// Check выполняет цепочку: геокодирование, часовой пояс, страна, валюта, конвертация, местное время.
// Ошибка любого шага кроме местного времени и комментария прерывает проверку.
func (s *Service) Check(ctx context.Context, req Request) (Result, error) {
	if err := req.Validate(); err != nil {
		return Result{}, err
	}

	places, err := s.deps.Geocoder.Search(ctx, req.Destination)
	if err != nil {
		return Result{}, fmt.Errorf("geocode: %w", err)
	}
	if len(places) == 0 {
		return Result{}, ErrLocationNotFound
	}
	place := places[0]

	res := Result{
		Destination:  req.Destination,
		PlaceName:    place.Name,
		Coordinate:   place.Coordinate,
		BaseCurrency: s.baseCurrency,
		Currency:     FallbackCurrency,
		Amount:       req.Amount,
	}

	res.Timezone, err = s.deps.Timezones.Timezone(ctx, place.Coordinate)
	if err != nil {
		return Result{}, fmt.Errorf("timezone: %w", err)
	}

	res.CountryCode, err = s.deps.Geocoder.CountryCode(ctx, place.Coordinate)
	if err != nil {
		return Result{}, fmt.Errorf("country: %w", err)
	}
	res.CountryCode = strings.ToUpper(res.CountryCode)

	if res.CountryCode != "" {
		currency, err := s.deps.Countries.Currency(ctx, res.CountryCode)
		if err != nil {
			return Result{}, fmt.Errorf("currency: %w", err)
		}
		if currency != "" {
			res.Currency = currency
		}
	}

	res.Converted, err = s.deps.Rates.Convert(ctx, s.baseCurrency, res.Currency, req.Amount)
	if err != nil {
		return Result{}, fmt.Errorf("convert: %w", err)
	}

	if res.Timezone != "" {
		if t, err := s.deps.Clock.Now(ctx, res.Timezone); err != nil {
			s.log.Warn("local time unavailable", "timezone", res.Timezone, "error", err)
		} else {
			res.LocalTime = t
		}
	}

	if req.WithComment {
		res.Comment = s.comment(ctx, res.Converted, req.Destination)
	}

	s.log.Debug("trip checked", "destination", req.Destination, "currency", res.Currency)
	return res, nil
}

// Suggest подсказывает названия мест. Для запросов короче трех символов подсказок нет.
func (s *Service) Suggest(ctx context.Context, query string) ([]string, error) {
	query = strings.TrimSpace(query)
	if len([]rune(query)) < minSuggestQuery {
		return nil, nil
	}

	places, err := s.deps.Geocoder.Search(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("suggest: %w", err)
	}

	names := make([]string, 0, len(places))
	for _, p := range places {
		names = append(names, p.Name)
	}
	return names, nil
}

func (s *Service) comment(ctx context.Context, amount float64, destination string) string {
	if s.deps.Commenter == nil {
		return FailureComment
	}
	text, err := s.deps.Commenter.Comment(ctx, amount, destination)
	if err != nil {
		s.log.Warn("comment unavailable", "error", err)
		return FailureComment
	}
	return text
}
