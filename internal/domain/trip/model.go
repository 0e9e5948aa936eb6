package trip

import (
	"math"
	"strconv"
	"strings"
	"time"

	"travelmate/internal/domain/errs"
	"travelmate/internal/domain/location"
)

const (
	DefaultBaseCurrency = "IDR"
	// FallbackCurrency используется, если у страны нет валюты или страна не определена
	FallbackCurrency = "USD"
	// FailureComment показывается вместо комментария ассистента при ошибке
	FailureComment = "Gagal mengambil data."

	minSuggestQuery = 3
)

// Place - результат прямого геокодирования
type Place struct {
	Name       string
	Coordinate location.Coordinate
}

// Request - проверка: на что хватит суммы в месте назначения
type Request struct {
	Destination string
	Amount      float64
	WithComment bool
}

// Result - итог проверки поездки
type Result struct {
	Destination  string
	PlaceName    string
	Coordinate   location.Coordinate
	Timezone     string
	CountryCode  string
	BaseCurrency string
	Currency     string
	Amount       float64
	Converted    float64
	// LocalTime - нулевое значение, если время получить не удалось
	LocalTime time.Time
	Comment   string
}

// LocalClock - местное время в формате "15:04" или "-"
func (r Result) LocalClock() string {
	if r.LocalTime.IsZero() {
		return "-"
	}
	return r.LocalTime.Format("15:04")
}

// ParseAmount разбирает сумму. Допускается только положительное число.
func ParseAmount(s string) (float64, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, errs.Required("amount")
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, errs.Invalid("amount", "must be a number")
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, errs.Invalid("amount", "must be a number")
	}
	if v <= 0 {
		return 0, errs.Invalid("amount", "must be positive")
	}
	return v, nil
}

func (r Request) Validate() error {
	if strings.TrimSpace(r.Destination) == "" {
		return errs.Required("destination")
	}
	if math.IsNaN(r.Amount) || math.IsInf(r.Amount, 0) || r.Amount <= 0 {
		return errs.Invalid("amount", "must be positive")
	}
	return nil
}
