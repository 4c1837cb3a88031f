package store

import (
	"sync"
	"time"
)

// SearchDebounce is how long a search field stays quiet before its value
// is applied and a refetch fires.
const SearchDebounce = 300 * time.Millisecond

// debouncer coalesces rapid calls into one: each trigger resets the
// pending timer, and only a timer that fires uninterrupted runs fn.
type debouncer struct {
	timer *time.Timer
	delay time.Duration
	mu    sync.Mutex
}

func newDebouncer(delay time.Duration) *debouncer {
	return &debouncer{delay: delay}
}

func (d *debouncer) trigger(fn func()) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.timer != nil {
		d.timer.Stop()
	}
	d.timer = time.AfterFunc(d.delay, fn)
}

func (d *debouncer) stop() {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}
}
