package search

import (
	"sync"
	"time"
)

// Debouncer coalesces a stream of query edits into settled queries. Schedule
// cancels any pending schedule and arms a fresh quiet-period timer, so
// exactly one query settles per pause in typing.
type Debouncer struct {
	delay time.Duration

	mu      sync.Mutex
	timer   *time.Timer
	pending chan string
}

// NewDebouncer creates a debouncer with the given quiet period.
func NewDebouncer(delay time.Duration) *Debouncer {
	if delay <= 0 {
		delay = DefaultDebounce
	}
	return &Debouncer{delay: delay}
}

// Schedule arms the quiet-period timer for query and returns a channel that
// receives the query once the period elapses with no further input. Any
// previously pending schedule is canceled: its channel is closed without a
// value.
func (d *Debouncer) Schedule(query string) <-chan string {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.cancelLocked()

	ch := make(chan string, 1)
	d.pending = ch
	d.timer = time.AfterFunc(d.delay, func() {
		d.mu.Lock()
		defer d.mu.Unlock()
		// A newer Schedule may have raced with the timer firing
		if d.pending != ch {
			return
		}
		d.pending = nil
		ch <- query
		close(ch)
	})
	return ch
}

// Stop cancels any pending schedule.
func (d *Debouncer) Stop() {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.cancelLocked()
}

func (d *Debouncer) cancelLocked() {
	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}
	if d.pending != nil {
		close(d.pending)
		d.pending = nil
	}
}
