package monitor

import (
	"context"
	"sync"
)

// Dispatcher runs functions on the UI goroutine.
type Dispatcher interface {
	Post(fn func())
}

// Loop is a single-goroutine dispatcher. Functions posted to it run in order
// on the goroutine that called Run.
type Loop struct {
	queue chan func()
	done  chan struct{}
	once  sync.Once
}

// NewLoop returns a loop whose queue holds up to size pending functions.
func NewLoop(size int) *Loop {
	if size <= 0 {
		size = 16
	}
	return &Loop{queue: make(chan func(), size), done: make(chan struct{})}
}

// Post enqueues fn. After Run has returned, fn is dropped.
func (l *Loop) Post(fn func()) {
	select {
	case l.queue <- fn:
	case <-l.done:
	}
}

// Run executes posted functions until ctx is done.
func (l *Loop) Run(ctx context.Context) error {
	defer l.once.Do(func() { close(l.done) })
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case fn := <-l.queue:
			fn()
		}
	}
}
