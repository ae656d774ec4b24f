package engine

import (
	"sync"
	"time"
)

// MockTimeProvider is a manual frame clock for tests. Time moves only through
// Advance, which stands in for frame work, and Sleep, which stands in for the
// pacer's idle wait and is recorded.
type MockTimeProvider struct {
	mu     sync.Mutex
	now    time.Time
	sleeps []time.Duration
}

// NewMockTimeProvider creates a clock reading start until advanced
func NewMockTimeProvider(start time.Time) *MockTimeProvider {
	return &MockTimeProvider{now: start}
}

func (m *MockTimeProvider) Now() time.Time {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.now
}

// Advance moves the clock by d; negative d simulates a clock step backwards
func (m *MockTimeProvider) Advance(d time.Duration) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.now = m.now.Add(d)
}

// Sleep advances the clock instead of blocking; pass it to NewPacer as the sleep func
func (m *MockTimeProvider) Sleep(d time.Duration) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.now = m.now.Add(d)
	m.sleeps = append(m.sleeps, d)
}

// Sleeps returns every duration passed to Sleep, oldest first
func (m *MockTimeProvider) Sleeps() []time.Duration {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]time.Duration, len(m.sleeps))
	copy(out, m.sleeps)
	return out
}
