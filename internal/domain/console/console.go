// Package console is the append-only status log shown next to the key input.
// It is cosmetic: nothing in the validation outcome depends on it.
package console

import (
	"sync"
	"time"

	"golden-key-funnel/internal/pkg/clock"
)

type Severity string

const (
	SeverityInfo    Severity = "info"
	SeverityWarning Severity = "warning"
	SeveritySuccess Severity = "success"
	SeverityError   Severity = "error"
)

// MaxDisplayLines caps the "lines so far" indicator.
const MaxDisplayLines = 6

const timestampLayout = "15:04:05"

type Message struct {
	Text      string
	Severity  Severity
	Timestamp time.Time
}

func (m Message) Clock() string {
	return m.Timestamp.Format(timestampLayout)
}

type Snapshot struct {
	Lines        []Message
	DisplayLines int
	Expanded     bool
	Visible      bool
}

// Console never removes lines once appended.
type Console struct {
	mu      sync.Mutex
	clock   clock.Clock
	lines   []Message
	visible bool
}

func New(clk clock.Clock) *Console {
	return &Console{clock: clk}
}

func (c *Console) Append(text string, severity Severity) Message {
	if severity == "" {
		severity = SeverityInfo
	}
	m := Message{Text: text, Severity: severity, Timestamp: c.clock.Now()}

	c.mu.Lock()
	defer c.mu.Unlock()
	c.lines = append(c.lines, m)
	return m
}

func (c *Console) Lines() []Message {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]Message, len(c.lines))
	copy(out, c.lines)
	return out
}

func (c *Console) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.lines)
}

func (c *Console) Show() {
	c.mu.Lock()
	c.visible = true
	c.mu.Unlock()
}

func (c *Console) Hide() {
	c.mu.Lock()
	c.visible = false
	c.mu.Unlock()
}

func (c *Console) Visible() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.visible
}

func (c *Console) Snapshot() Snapshot {
	c.mu.Lock()
	defer c.mu.Unlock()
	lines := make([]Message, len(c.lines))
	copy(lines, c.lines)
	return Snapshot{
		Lines:        lines,
		DisplayLines: displayLines(len(lines)),
		Expanded:     len(lines) >= 2,
		Visible:      c.visible,
	}
}

func displayLines(n int) int {
	return min(n+1, MaxDisplayLines)
}
