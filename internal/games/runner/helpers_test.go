package runner

import (
	"testing"
	"time"

	"github.com/vovakirdan/tui-runner/internal/config"
)

// scriptedSource replays fixed draws, then returns n-1 forever, which never
// spawns an obstacle.
type scriptedSource struct {
	draws []int
	pos   int
}

func (s *scriptedSource) Intn(n int) int {
	if s.pos >= len(s.draws) {
		return n - 1
	}
	v := s.draws[s.pos]
	s.pos++
	if v >= n {
		v = n - 1
	}
	return v
}

// quietSource never spawns.
func quietSource() *scriptedSource {
	return &scriptedSource{}
}

var epoch = time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

func newTestEngine(t *testing.T, src Source) (*Engine, *ManualClock) {
	t.Helper()
	clock := NewManualClock(epoch)
	e, err := New(config.DefaultRunnerConfig(), WithSource(src), WithClock(clock))
	if err != nil {
		t.Fatalf("New() failed: %v", err)
	}
	return e, clock
}
