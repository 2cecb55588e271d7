package engine

import (
	"sync"
	"time"
)

// MockTimeProvider is a Clock that only moves when a test advances it
type MockTimeProvider struct {
	mu  sync.Mutex
	now time.Time
}

func NewMockTimeProvider(start time.Time) *MockTimeProvider {
	return &MockTimeProvider{now: start}
}

func (m *MockTimeProvider) Now() time.Time {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.now
}

// Advance moves the clock forward by d
func (m *MockTimeProvider) Advance(d time.Duration) {
	m.mu.Lock()
	m.now = m.now.Add(d)
	m.mu.Unlock()
}

// AdvanceSeconds is Advance for fractional seconds, matching tuning units
func (m *MockTimeProvider) AdvanceSeconds(s float64) {
	m.Advance(time.Duration(s * float64(time.Second)))
}
