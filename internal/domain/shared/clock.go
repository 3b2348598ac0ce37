package shared

import "time"

// Clock abstracts wall-clock reads so run timestamps can be pinned in tests
type Clock interface {
	Now() time.Time
}

// RealClock reads the system time in UTC
type RealClock struct{}

func (RealClock) Now() time.Time {
	return time.Now().UTC()
}

func NewRealClock() Clock {
	return RealClock{}
}

// MockClock returns a controllable time
type MockClock struct {
	CurrentTime time.Time
}

func NewMockClock(start time.Time) *MockClock {
	return &MockClock{CurrentTime: start}
}

func (m *MockClock) Now() time.Time {
	return m.CurrentTime
}

// Advance moves the mock clock forward by d
func (m *MockClock) Advance(d time.Duration) {
	m.CurrentTime = m.CurrentTime.Add(d)
}
