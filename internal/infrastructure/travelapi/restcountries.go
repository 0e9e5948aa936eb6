package travelapi

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"sort"

	"golang.org/x/exp/slog"
)

const DefaultRestCountriesURL = "https://restcountries.com"

type RestCountries struct {
	base
}

type restCountry struct {
	Currencies map[string]struct {
		Name string `json:"name"`
	} `json:"currencies"`
}

func NewRestCountries(baseURL string, httpClient *http.Client, log *slog.Logger) *RestCountries {
	return &RestCountries{base: newBase(baseURL, httpClient, log, "restcountries")}
}

// Currency возвращает код валюты страны. Если валют несколько, берется
// первый по алфавиту код, если нет ни одной - "".
func (r *RestCountries) Currency(ctx context.Context, countryCode string) (string, error) {
	var countries []restCountry
	if err := r.getJSON(ctx, "/v3.1/alpha/"+url.PathEscape(countryCode), nil, &countries); err != nil {
		return "", fmt.Errorf("restcountries: %w", err)
	}
	if len(countries) == 0 || len(countries[0].Currencies) == 0 {
		return "", nil
	}

	codes := make([]string, 0, len(countries[0].Currencies))
	for code := range countries[0].Currencies {
		codes = append(codes, code)
	}
	sort.Strings(codes)
	return codes[0], nil
}
