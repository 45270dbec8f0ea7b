package monitor

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"
	"golang.org/x/text/language"

	"cryptomonitor/internal/metrics"
	"cryptomonitor/internal/provider"
	"cryptomonitor/internal/quote"
)

// Service runs fetch cycles: one ticker request followed by formatting.
type Service struct {
	source  provider.TickerSource
	logger  *zap.Logger
	metrics *metrics.Metrics
}

// ServiceOption configures a Service.
type ServiceOption func(*Service)

// WithLogger sets the logger used for fetch cycle diagnostics.
func WithLogger(logger *zap.Logger) ServiceOption {
	return func(s *Service) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// WithMetrics attaches fetch cycle collectors.
func WithMetrics(m *metrics.Metrics) ServiceOption {
	return func(s *Service) {
		s.metrics = m
	}
}

func NewService(source provider.TickerSource, options ...ServiceOption) *Service {
	s := &Service{source: source, logger: zap.NewNop()}
	for _, option := range options {
		option(s)
	}
	return s
}

// GetQuote fetches the current ticker and formats it for locale in tz.
// Use Message to turn a returned error into display text.
func (s *Service) GetQuote(ctx context.Context, locale language.Tag, tz *time.Location) (quote.Quote, error) {
	start := time.Now()

	q, err := s.fetch(ctx, locale, tz)

	elapsed := time.Since(start)
	outcome := classify(err)
	s.metrics.ObserveFetch(outcome, elapsed)
	s.logger.Debug("fetch cycle",
		zap.String("source", s.source.Name()),
		zap.String("outcome", outcome),
		zap.Duration("elapsed", elapsed),
		zap.Error(err),
	)
	return q, err
}

func (s *Service) fetch(ctx context.Context, locale language.Tag, tz *time.Location) (quote.Quote, error) {
	ticker, err := s.source.GetTicker(ctx)
	if err != nil {
		return quote.Quote{}, err
	}
	return quote.Format(ticker, locale, tz)
}

func classify(err error) string {
	var (
		transportErr *provider.TransportError
		httpErr      *provider.HTTPError
	)
	switch {
	case err == nil:
		return metrics.OutcomeOK
	case errors.As(err, &transportErr):
		return metrics.OutcomeTransport
	case errors.As(err, &httpErr):
		return metrics.OutcomeHTTP
	case invalidData(err):
		return metrics.OutcomeInvalidData
	default:
		return metrics.OutcomeError
	}
}

func invalidData(err error) bool {
	return errors.Is(err, provider.ErrInvalidData) ||
		errors.Is(err, quote.ErrInvalidNumber) ||
		errors.Is(err, quote.ErrInvalidTimestamp)
}
