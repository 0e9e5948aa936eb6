package travelapi

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"golang.org/x/exp/slog"
)

const DefaultExchangeURL = "https://api.exchangerate.host"

// Exchange конвертирует суммы между валютами
type Exchange struct {
	base
}

type exchangeResult struct {
	Result *float64 `json:"result"`
}

func NewExchange(baseURL string, httpClient *http.Client, log *slog.Logger) *Exchange {
	return &Exchange{base: newBase(baseURL, httpClient, log, "exchange")}
}

func (e *Exchange) Convert(ctx context.Context, from, to string, amount float64) (float64, error) {
	var r exchangeResult
	q := url.Values{
		"from":   {from},
		"to":     {to},
		"amount": {strconv.FormatFloat(amount, 'f', -1, 64)},
	}
	if err := e.getJSON(ctx, "/convert", q, &r); err != nil {
		return 0, fmt.Errorf("exchange convert: %w", err)
	}
	if r.Result == nil {
		return 0, fmt.Errorf("exchange convert: %w: no result", ErrMalformed)
	}
	return *r.Result, nil
}
