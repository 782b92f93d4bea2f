package runner

import (
	"math/rand"
	"sync"
	"time"
)

// Source supplies the random draws for obstacle spawning.
// *math/rand.Rand satisfies it; tests substitute a fixed sequence.
type Source interface {
	// Intn returns a value in [0, n). n is always > 0.
	Intn(n int) int
}

// NewSeededSource returns a deterministic Source for the given seed.
func NewSeededSource(seed int64) Source {
	return rand.New(rand.NewSource(seed))
}

// Clock provides the wall-clock readings used by the jump cooldown.
type Clock interface {
	Now() time.Time
}

// SystemClock reads the real monotonic clock.
type SystemClock struct{}

// Now returns the current time.
func (SystemClock) Now() time.Time {
	return time.Now()
}

// ManualClock is a controllable Clock for tests and headless simulation.
type ManualClock struct {
	mu  sync.RWMutex
	now time.Time
}

// NewManualClock creates a clock frozen at start.
func NewManualClock(start time.Time) *ManualClock {
	return &ManualClock{now: start}
}

// Now returns the current manual time.
func (c *ManualClock) Now() time.Time {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.now
}

// Advance moves the clock forward by d.
func (c *ManualClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
}
