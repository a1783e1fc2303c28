// Package pager implements the incremental reveal window used when rendering
// long prompt lists: a fixed initial batch, grown on demand in increments,
// with a short simulated delay so output pacing matches interactive use.
package pager

import (
	"sync"
	"time"
)

const (
	DefaultInitial   = 6
	DefaultIncrement = 4
	DefaultDelay     = 300 * time.Millisecond
)

// Pager tracks how many items of a list are currently visible.
type Pager struct {
	mu        sync.Mutex
	total     int
	visible   int
	initial   int
	increment int
	delay     time.Duration
	loading   bool
}

// New creates a pager over a list of total items. Non-positive initial or
// increment values take the defaults.
func New(total, initial, increment int, delay time.Duration) *Pager {
	if initial <= 0 {
		initial = DefaultInitial
	}
	if increment <= 0 {
		increment = DefaultIncrement
	}
	if delay < 0 {
		delay = 0
	}
	if total < 0 {
		total = 0
	}
	return &Pager{
		total:     total,
		visible:   initial,
		initial:   initial,
		increment: increment,
		delay:     delay,
	}
}

// Visible returns the current window bound, capped at the list length.
func (p *Pager) Visible() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return min(p.visible, p.total)
}

// HasMore reports whether items remain beyond the visible window.
func (p *Pager) HasMore() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.visible < p.total
}

// IsLoading reports whether a LoadMore is in its delay window.
func (p *Pager) IsLoading() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.loading
}

// LoadMore grows the window by one increment after the configured delay.
// It is a no-op while a previous load is still pending or when the list is
// already exhausted; the return value reports whether the window grew.
func (p *Pager) LoadMore() bool {
	p.mu.Lock()
	if p.loading || p.visible >= p.total {
		p.mu.Unlock()
		return false
	}
	p.loading = true
	p.mu.Unlock()

	if p.delay > 0 {
		time.Sleep(p.delay)
	}

	p.mu.Lock()
	p.visible = min(p.visible+p.increment, p.total)
	p.loading = false
	p.mu.Unlock()
	return true
}

// Reset rewinds the window to the initial batch for a new list, e.g. after
// a filter or search changes the list identity.
func (p *Pager) Reset(total int) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if total < 0 {
		total = 0
	}
	p.total = total
	p.visible = p.initial
	p.loading = false
}
