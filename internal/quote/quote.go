// Package quote turns a raw ticker into display strings: a locale-formatted
// currency amount and a dd/MM/yyyy HH:mm:ss timestamp in a fixed timezone.
package quote

import (
	"errors"
	"fmt"
	"strings"
	"time"
	_ "time/tzdata"

	"golang.org/x/text/language"

	"cryptomonitor/internal/provider"
)

// TimestampLayout renders dd/MM/yyyy HH:mm:ss.
const TimestampLayout = "02/01/2006 15:04:05"

var (
	ErrInvalidNumber    = errors.New("invalid number")
	ErrInvalidTimestamp = errors.New("invalid timestamp")
)

// FormatError reports the ticker field that could not be formatted.
// It unwraps to ErrInvalidNumber or ErrInvalidTimestamp.
type FormatError struct {
	Err   error
	Value string
}

func (e *FormatError) Error() string { return fmt.Sprintf("%v: %q", e.Err, e.Value) }

func (e *FormatError) Unwrap() error { return e.Err }

// Quote is the formatted result of one fetch cycle.
type Quote struct {
	Price     string `json:"price"`
	Timestamp string `json:"timestamp"`
	Currency  string `json:"currency"`
}

// Format renders t for locale in tz. A nil tz means UTC.
func Format(t provider.Ticker, locale language.Tag, tz *time.Location) (Quote, error) {
	lf := lookup(locale)

	price, err := formatPrice(t.Last, lf)
	if err != nil {
		return Quote{}, err
	}
	ts, err := formatTimestamp(t.Date, tz)
	if err != nil {
		return Quote{}, err
	}
	return Quote{Price: price, Timestamp: ts, Currency: lf.unit.String()}, nil
}

func formatPrice(last string, lf localeFormat) (string, error) {
	d, err := provider.ParsePrice(strings.TrimSpace(last))
	if err != nil {
		return "", &FormatError{Err: ErrInvalidNumber, Value: last}
	}

	rounded := d.Abs().RoundBank(int32(lf.scale))
	fixed := rounded.StringFixed(int32(lf.scale))
	intPart, frac, _ := strings.Cut(fixed, ".")

	var b strings.Builder
	if d.IsNegative() && !rounded.IsZero() {
		b.WriteByte('-')
	}
	if lf.symbolFirst {
		b.WriteString(lf.symbol)
		if lf.space {
			b.WriteByte(' ')
		}
	}
	b.WriteString(groupDigits(intPart, lf.group))
	if frac != "" {
		b.WriteString(lf.decimal)
		b.WriteString(frac)
	}
	if !lf.symbolFirst {
		if lf.space {
			b.WriteByte(' ')
		}
		b.WriteString(lf.symbol)
	}
	return b.String(), nil
}

// groupDigits inserts sep every three digits from the right.
func groupDigits(digits, sep string) string {
	if len(digits) <= 3 {
		return digits
	}
	var b strings.Builder
	head := len(digits) % 3
	if head > 0 {
		b.WriteString(digits[:head])
	}
	for i := head; i < len(digits); i += 3 {
		if b.Len() > 0 {
			b.WriteString(sep)
		}
		b.WriteString(digits[i : i+3])
	}
	return b.String()
}

func formatTimestamp(sec int64, tz *time.Location) (string, error) {
	if !provider.ValidEpoch(sec) {
		return "", &FormatError{Err: ErrInvalidTimestamp, Value: fmt.Sprint(sec)}
	}
	if tz == nil {
		tz = time.UTC
	}
	return time.Unix(sec, 0).In(tz).Format(TimestampLayout), nil
}
