package monitor

import (
	"context"
	"sync"
	"time"

	"golang.org/x/text/language"

	"cryptomonitor/internal/quote"
)

// Placeholders shown before the first successful refresh.
const (
	InitialValue = "R$ 0,00"
	InitialDate  = "dd/mm/yyyy hh:mm:ss"
)

// Quoter runs one fetch cycle. *Service implements it.
type Quoter interface {
	GetQuote(ctx context.Context, locale language.Tag, tz *time.Location) (quote.Quote, error)
}

// State is what the screen displays.
type State struct {
	Value   string
	Date    string
	Pending bool
}

// Screen holds the display fields of the quote screen.
//
// Refresh may be called any number of times; each call is an independent
// fetch cycle and whichever finishes last wins. Results are applied on the
// dispatcher's goroutine, where subscribers and error handlers also run.
type Screen struct {
	quoter Quoter
	ui     Dispatcher
	locale language.Tag
	tz     *time.Location

	mu       sync.Mutex
	state    State
	inflight int
	onChange []func(State)
	onError  []func(string)
}

func NewScreen(quoter Quoter, ui Dispatcher, locale language.Tag, tz *time.Location) *Screen {
	return &Screen{
		quoter: quoter,
		ui:     ui,
		locale: locale,
		tz:     tz,
		state:  State{Value: InitialValue, Date: InitialDate},
	}
}

// Subscribe registers fn to receive every state change.
func (s *Screen) Subscribe(fn func(State)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.onChange = append(s.onChange, fn)
}

// OnError registers fn to receive the display message of failed refreshes.
func (s *Screen) OnError(fn func(msg string)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.onError = append(s.onError, fn)
}

// State returns a snapshot of the current display state.
func (s *Screen) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// Refresh starts a fetch cycle in the background and returns immediately.
// It is meant to be called from the dispatcher's goroutine.
func (s *Screen) Refresh(ctx context.Context) {
	s.mu.Lock()
	s.inflight++
	s.state.Pending = true
	state, subs := s.state, s.onChange
	s.mu.Unlock()
	publish(subs, state)

	go func() {
		q, err := s.quoter.GetQuote(ctx, s.locale, s.tz)
		s.ui.Post(func() { s.apply(q, err) })
	}()
}

func (s *Screen) apply(q quote.Quote, err error) {
	s.mu.Lock()
	s.inflight--
	s.state.Pending = s.inflight > 0
	if err == nil {
		s.state.Value = q.Price
		s.state.Date = q.Timestamp
	}
	state, subs, errSubs := s.state, s.onChange, s.onError
	s.mu.Unlock()

	if err != nil {
		msg := Message(err)
		for _, fn := range errSubs {
			fn(msg)
		}
	}
	publish(subs, state)
}

func publish(subs []func(State), state State) {
	for _, fn := range subs {
		fn(state)
	}
}
