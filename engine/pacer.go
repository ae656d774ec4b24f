package engine

import (
	"time"

	"github.com/pkg/errors"
)

// Pacer holds each frame to a fixed budget derived from the target fps
type Pacer struct {
	clock  TimeProvider
	sleep  func(time.Duration)
	budget time.Duration

	frameStart time.Time
	inFrame    bool
}

// NewPacer creates a pacer for fps frames per second. A nil clock uses the monotonic
// provider and a nil sleep uses time.Sleep.
func NewPacer(fps float64, clock TimeProvider, sleep func(time.Duration)) (*Pacer, error) {
	if !(fps > 0) {
		return nil, errors.Errorf("engine: fps must be positive, got %v", fps)
	}
	if clock == nil {
		clock = NewMonotonicTimeProvider()
	}
	if sleep == nil {
		sleep = time.Sleep
	}

	return &Pacer{
		clock:      clock,
		sleep:      sleep,
		budget:     time.Duration(float64(time.Second) / fps),
		frameStart: clock.Now(),
	}, nil
}

// Budget returns the per-frame time allowance
func (p *Pacer) Budget() time.Duration {
	return p.budget
}

// StartFrame returns the time since the previous StartFrame, or since construction
// on the first call, and starts timing a new frame
func (p *Pacer) StartFrame() time.Duration {
	now := p.clock.Now()
	dt := now.Sub(p.frameStart)
	if dt < 0 {
		dt = 0
	}
	p.frameStart = now
	p.inFrame = true
	return dt
}

// EndFrame sleeps for whatever is left of the budget and returns the slept duration.
// A frame that overran its budget returns immediately with zero.
func (p *Pacer) EndFrame() time.Duration {
	p.inFrame = false
	remaining := p.budget - p.clock.Now().Sub(p.frameStart)
	if remaining <= 0 {
		return 0
	}
	p.sleep(remaining)
	return remaining
}

// InFrame reports whether StartFrame was called without a matching EndFrame
func (p *Pacer) InFrame() bool {
	return p.inFrame
}
