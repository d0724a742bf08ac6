package console

import (
	"sync"
	"time"

	"golden-key-funnel/internal/pkg/clock"
)

type Step struct {
	Text     string
	Severity Severity
	Delay    time.Duration
}

// Script appends its steps to a console at fixed offsets from Start.
// Stop cancels the steps that have not fired yet; appended lines stay.
type Script struct {
	mu      sync.Mutex
	clock   clock.Clock
	console *Console
	timers  []clock.Timer
	pending int
	gen     uint64
}

func NewScript(c *Console, clk clock.Clock) *Script {
	return &Script{console: c, clock: clk}
}

// Start schedules steps unless a previous run is still pending. It reports whether it started.
func (s *Script) Start(steps []Step) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.pending > 0 {
		return false
	}
	s.gen++
	gen := s.gen
	s.pending = len(steps)
	s.timers = s.timers[:0]
	for _, step := range steps {
		step := step
		s.timers = append(s.timers, s.clock.AfterFunc(step.Delay, func() {
			s.fire(gen, step)
		}))
	}
	return len(steps) > 0
}

func (s *Script) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.gen++
	for _, t := range s.timers {
		t.Stop()
	}
	s.timers = s.timers[:0]
	s.pending = 0
}

func (s *Script) Running() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.pending > 0
}

func (s *Script) fire(gen uint64, step Step) {
	s.mu.Lock()
	if gen != s.gen {
		s.mu.Unlock()
		return
	}
	s.pending--
	// Appending under the script lock keeps a concurrent Stop from racing a late line in.
	s.console.Append(step.Text, step.Severity)
	s.mu.Unlock()
}
