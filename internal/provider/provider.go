package provider

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/shopspring/decimal"
)

// Ticker is the parsed ticker payload: the last traded price and the epoch
// second it refers to. Last is kept as the upstream decimal string so no
// precision is lost before formatting.
type Ticker struct {
	Last string `json:"last"`
	Date int64  `json:"date"`
}

// MaxEpoch is the last second of year 9999 UTC, the upper bound for a
// ticker date.
const MaxEpoch int64 = 253402300799

// ValidEpoch reports whether sec is a usable ticker timestamp.
func ValidEpoch(sec int64) bool {
	return sec > 0 && sec <= MaxEpoch
}

// Price bounds. Text outside them is rejected before any decimal arithmetic.
const (
	MaxPriceLen    = 64
	MaxPriceDigits = 30
	MaxPriceScale  = 30
)

// ParsePrice parses a decimal price with at most MaxPriceDigits integer
// digits and MaxPriceScale fractional digits.
func ParsePrice(s string) (decimal.Decimal, error) {
	if len(s) > MaxPriceLen {
		return decimal.Zero, fmt.Errorf("too long: %d bytes", len(s))
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, fmt.Errorf("not a decimal: %q", s)
	}
	exp := int(d.Exponent())
	if exp < -MaxPriceScale || exp > MaxPriceDigits {
		return decimal.Zero, fmt.Errorf("out of range: %q", s)
	}
	if !d.IsZero() && d.NumDigits()+exp > MaxPriceDigits {
		return decimal.Zero, fmt.Errorf("out of range: %q", s)
	}
	return d, nil
}

// TickerSource fetches the current ticker for a single asset.
//
//go:generate mockgen -package=monitor_test -destination=../monitor/mock_ticker_source_test.go -source=provider.go TickerSource
type TickerSource interface {
	Name() string
	GetTicker(ctx context.Context) (Ticker, error)
}

// ErrInvalidData is returned when a successful response lacks the ticker
// fields or carries values that do not parse.
var ErrInvalidData = errors.New("invalid ticker data")

// TransportError wraps network and body decoding failures.
type TransportError struct {
	Err error
}

func (e *TransportError) Error() string {
	if e.Err == nil {
		return "transport error"
	}
	return e.Err.Error()
}

func (e *TransportError) Unwrap() error { return e.Err }

// HTTPError reports a response status outside the 2xx range.
type HTTPError struct {
	StatusCode int
}

func (e *HTTPError) Error() string {
	return fmt.Sprintf("unexpected status code: %d", e.StatusCode)
}

// Message is the short, display-ready description of the status.
func (e *HTTPError) Message() string {
	switch e.StatusCode {
	case http.StatusBadRequest:
		return "Bad Request"
	case http.StatusUnauthorized:
		return "Unauthorized"
	case http.StatusForbidden:
		return "Forbidden"
	case http.StatusNotFound:
		return "Not Found"
	default:
		return fmt.Sprintf("Unknown error (%d)", e.StatusCode)
	}
}
