package monitor_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"golang.org/x/text/language"

	"cryptomonitor/internal/monitor"
	"cryptomonitor/internal/provider"
	"cryptomonitor/internal/quote"
)

// gatedQuoter answers each GetQuote with the next result sent on results.
type gatedQuoter struct {
	results chan result
}

type result struct {
	q   quote.Quote
	err error
}

func (g *gatedQuoter) GetQuote(ctx context.Context, _ language.Tag, _ *time.Location) (quote.Quote, error) {
	select {
	case r := <-g.results:
		return r.q, r.err
	case <-ctx.Done():
		return quote.Quote{}, ctx.Err()
	}
}

// inlineDispatcher runs posted functions on the caller's goroutine.
type inlineDispatcher func(fn func())

func (f inlineDispatcher) Post(fn func()) { f(fn) }

// startLoop runs a UI loop for the duration of the test.
func startLoop(t *testing.T) *monitor.Loop {
	t.Helper()
	ctx, cancel := context.WithCancel(context.Background())
	loop := monitor.NewLoop(8)
	done := make(chan struct{})
	go func() {
		defer close(done)
		_ = loop.Run(ctx)
	}()
	t.Cleanup(func() {
		cancel()
		<-done
	})
	return loop
}

// nextState waits for a published state.
func nextState(t *testing.T, states <-chan monitor.State) monitor.State {
	t.Helper()
	select {
	case s := <-states:
		return s
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for state")
		return monitor.State{}
	}
}

func TestScreen_InitialState(t *testing.T) {
	t.Parallel()

	screen := monitor.NewScreen(&gatedQuoter{}, monitor.NewLoop(1), language.BrazilianPortuguese, time.UTC)
	require.Equal(t, monitor.State{Value: "R$ 0,00", Date: "dd/mm/yyyy hh:mm:ss"}, screen.State())
}

func TestScreen_RefreshSuccess(t *testing.T) {
	t.Parallel()

	// Arrange: a screen backed by a real service and a mocked source
	loop := startLoop(t)
	source := newSource(t, provider.Ticker{Last: "1234.56", Date: 1735689600}, nil)
	screen := monitor.NewScreen(monitor.NewService(source), loop, language.BrazilianPortuguese, saoPaulo(t))

	states := make(chan monitor.State, 4)
	screen.Subscribe(func(s monitor.State) { states <- s })
	screen.OnError(func(msg string) { t.Errorf("unexpected error: %s", msg) })

	// Act: press refresh on the UI goroutine
	loop.Post(func() { screen.Refresh(t.Context()) })

	// Assert: pending first, then the formatted quote
	require.True(t, nextState(t, states).Pending)
	final := nextState(t, states)
	require.Equal(t, monitor.State{Value: "R$ 1.234,56", Date: "31/12/2024 21:00:00"}, final)
	require.Equal(t, final, screen.State())
}

func TestScreen_RefreshError(t *testing.T) {
	t.Parallel()

	// Arrange
	loop := startLoop(t)
	source := newSource(t, provider.Ticker{}, &provider.HTTPError{StatusCode: 404})
	screen := monitor.NewScreen(monitor.NewService(source), loop, language.BrazilianPortuguese, saoPaulo(t))

	states := make(chan monitor.State, 4)
	messages := make(chan string, 1)
	screen.Subscribe(func(s monitor.State) { states <- s })
	screen.OnError(func(msg string) { messages <- msg })

	// Act
	loop.Post(func() { screen.Refresh(t.Context()) })

	// Assert: the message is surfaced, the display is untouched
	nextState(t, states)
	final := nextState(t, states)
	require.Equal(t, monitor.State{Value: monitor.InitialValue, Date: monitor.InitialDate}, final)
	select {
	case msg := <-messages:
		require.Equal(t, "Not Found", msg)
	case <-time.After(2 * time.Second):
		t.Fatal("no error message")
	}
}

func TestScreen_OverlappingRefreshes_LastFinishedWins(t *testing.T) {
	t.Parallel()

	// Arrange: a quoter whose answers are released by the test
	loop := startLoop(t)
	quoter := &gatedQuoter{results: make(chan result)}
	screen := monitor.NewScreen(quoter, loop, language.BrazilianPortuguese, time.UTC)

	states := make(chan monitor.State, 8)
	screen.Subscribe(func(s monitor.State) { states <- s })

	// Act: two refreshes in flight at once
	loop.Post(func() {
		screen.Refresh(t.Context())
		screen.Refresh(t.Context())
	})
	require.True(t, nextState(t, states).Pending)
	require.True(t, nextState(t, states).Pending)

	quoter.results <- result{q: quote.Quote{Price: "R$ 1,00", Timestamp: "01/01/2025 00:00:00"}}
	first := nextState(t, states)
	require.True(t, first.Pending)
	require.Equal(t, "R$ 1,00", first.Value)

	quoter.results <- result{q: quote.Quote{Price: "R$ 2,00", Timestamp: "01/01/2025 00:00:01"}}
	second := nextState(t, states)

	// Assert: both applied in completion order, no longer pending
	require.False(t, second.Pending)
	require.Equal(t, "R$ 2,00", second.Value)
	require.Equal(t, "01/01/2025 00:00:01", second.Date)
}

func TestScreen_InlineDispatcher(t *testing.T) {
	t.Parallel()

	// Arrange: a dispatcher running functions inline
	source := newSource(t, provider.Ticker{Last: "10", Date: 1735689600}, nil)
	ui := inlineDispatcher(func(fn func()) { fn() })
	screen := monitor.NewScreen(monitor.NewService(source), ui, language.AmericanEnglish, time.UTC)

	done := make(chan monitor.State, 2)
	screen.Subscribe(func(s monitor.State) {
		if !s.Pending {
			done <- s
		}
	})

	// Act
	screen.Refresh(t.Context())

	// Assert
	select {
	case s := <-done:
		require.Equal(t, "$10.00", s.Value)
		require.Equal(t, "01/01/2025 00:00:00", s.Date)
	case <-time.After(2 * time.Second):
		t.Fatal("refresh did not complete")
	}
}
