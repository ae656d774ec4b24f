package engine

import "sync/atomic"

// Latch is the shutdown flag shared between the loop and asynchronous hooks.
// It starts running and can only be tripped, never reset.
type Latch struct {
	stopped atomic.Bool
}

// NewLatch returns a running latch
func NewLatch() *Latch {
	return &Latch{}
}

// Running reports whether shutdown has not been requested
func (l *Latch) Running() bool {
	return !l.stopped.Load()
}

// Trip requests shutdown; safe from any goroutine and idempotent
func (l *Latch) Trip() {
	l.stopped.Store(true)
}
