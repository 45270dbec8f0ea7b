package mercadobitcoin

import (
	"net/http"
	"strings"
)

// baseURL is the public Mercado Bitcoin data API host.
const baseURL = "https://www.mercadobitcoin.net"

// HTTPClient describes an HTTP client.
//
//go:generate mockgen -package=mercadobitcoin_test -destination=mock_http_client_test.go -source=client.go HTTPClient
type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

// Client is a client for the Mercado Bitcoin public ticker API.
type Client struct {
	// baseURL is the base URL for the API.
	baseURL string
	// coin is the asset path segment, e.g. BTC.
	coin string
	// httpClient is the HTTP client.
	httpClient HTTPClient
	// header contains additional headers to be sent with each request.
	header http.Header
}

// ClientOption is a configuration option for the Mercado Bitcoin client.
type ClientOption func(*Client)

// WithBaseURL sets the base URL for the API.
func WithBaseURL(baseURL string) ClientOption {
	return func(c *Client) {
		c.baseURL = strings.TrimRight(baseURL, "/")
	}
}

// WithHTTPClient sets the HTTP client for the API.
func WithHTTPClient(httpClient HTTPClient) ClientOption {
	return func(c *Client) {
		c.httpClient = httpClient
	}
}

// WithHeader sets additional headers to be sent with each request.
func WithHeader(header http.Header) ClientOption {
	return func(c *Client) {
		for key, values := range header {
			for _, value := range values {
				c.header.Add(key, value)
			}
		}
	}
}

// NewClient creates a new Mercado Bitcoin client for the BTC ticker.
func NewClient(options ...ClientOption) *Client {
	var client = &Client{
		baseURL:    baseURL,
		coin:       "BTC",
		httpClient: http.DefaultClient,
		header:     http.Header{},
	}
	for _, option := range options {
		option(client)
	}
	return client
}

func (c *Client) Name() string { return "MercadoBitcoin" }
