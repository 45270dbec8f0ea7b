package mercadobitcoin

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"

	"cryptomonitor/internal/provider"
)

// maxBody caps how much of a ticker response is read.
const maxBody = 1 << 20

// GetTicker retrieves the current ticker for the client's coin.
//
// The returned error is a *provider.TransportError for network and decoding
// failures, a *provider.HTTPError for non-2xx statuses, and wraps
// provider.ErrInvalidData when the payload is incomplete or unparsable.
func (c *Client) GetTicker(ctx context.Context) (provider.Ticker, error) {
	url := fmt.Sprintf("%s/api/%s/ticker/", c.baseURL, c.coin)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, http.NoBody)
	if err != nil {
		return provider.Ticker{}, &provider.TransportError{Err: fmt.Errorf("creating request: %w", err)}
	}
	for key, values := range c.header {
		for _, value := range values {
			req.Header.Add(key, value)
		}
	}

	res, err := c.httpClient.Do(req)
	if err != nil {
		return provider.Ticker{}, &provider.TransportError{Err: err}
	}
	defer res.Body.Close()

	if res.StatusCode < 200 || res.StatusCode > 299 {
		return provider.Ticker{}, &provider.HTTPError{StatusCode: res.StatusCode}
	}

	// Syntax errors are transport problems; a well-formed body of the wrong
	// shape is invalid data.
	var raw json.RawMessage
	if err := json.NewDecoder(io.LimitReader(res.Body, maxBody)).Decode(&raw); err != nil {
		return provider.Ticker{}, &provider.TransportError{Err: fmt.Errorf("decoding ticker response: %w", err)}
	}
	return parseTicker(raw)
}

// parseTicker extracts ticker.last and ticker.date from a response body.
//
//	{
//	  "ticker": {
//	    "high": "352000.00",
//	    "low": "340100.51",
//	    "vol": "31.48563045",
//	    "last": "350000.12",
//	    "buy": "349990.00",
//	    "sell": "350000.12",
//	    "open": "341000.00",
//	    "date": 1735689600
//	  }
//	}
func parseTicker(raw json.RawMessage) (provider.Ticker, error) {
	var body struct {
		Ticker map[string]json.RawMessage `json:"ticker"`
	}
	if err := json.Unmarshal(raw, &body); err != nil {
		return provider.Ticker{}, fmt.Errorf("%w: %v", provider.ErrInvalidData, err)
	}
	if body.Ticker == nil {
		return provider.Ticker{}, fmt.Errorf("%w: missing ticker", provider.ErrInvalidData)
	}

	last, err := parseLast(body.Ticker["last"])
	if err != nil {
		return provider.Ticker{}, fmt.Errorf("%w: last: %v", provider.ErrInvalidData, err)
	}
	date, err := parseDate(body.Ticker["date"])
	if err != nil {
		return provider.Ticker{}, fmt.Errorf("%w: date: %v", provider.ErrInvalidData, err)
	}
	return provider.Ticker{Last: last, Date: date}, nil
}

// parseLast accepts the price as a JSON string or a JSON number.
func parseLast(raw json.RawMessage) (string, error) {
	text, err := scalarText(raw)
	if err != nil {
		return "", err
	}
	if _, err := provider.ParsePrice(text); err != nil {
		return "", err
	}
	return text, nil
}

// parseDate accepts epoch seconds as a JSON integer or an integer string.
func parseDate(raw json.RawMessage) (int64, error) {
	text, err := scalarText(raw)
	if err != nil {
		return 0, err
	}
	sec, err := strconv.ParseInt(text, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("not an integer: %q", text)
	}
	if !provider.ValidEpoch(sec) {
		return 0, fmt.Errorf("out of range: %d", sec)
	}
	return sec, nil
}

// scalarText returns the text of a JSON string or number.
func scalarText(raw json.RawMessage) (string, error) {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 || bytes.Equal(raw, []byte("null")) {
		return "", fmt.Errorf("missing")
	}
	switch raw[0] {
	case '"':
		var s string
		if err := json.Unmarshal(raw, &s); err != nil {
			return "", err
		}
		return strings.TrimSpace(s), nil
	case '{', '[', 't', 'f':
		return "", fmt.Errorf("unexpected value: %s", raw)
	default:
		return string(raw), nil
	}
}
