package commands

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"golden-key-funnel/internal/domain/activation"
	"golden-key-funnel/internal/domain/console"
	"golden-key-funnel/internal/domain/funnel"
	"golden-key-funnel/internal/infra/metrics"
	"golden-key-funnel/internal/pkg/debounce"
)

// SessionRef names the two storage scopes of a request: the session (one tab) and the
// visitor (every tab of one browser).
type SessionRef struct {
	SessionID string
	VisitorID string
}

// Session holds the activation form of one tab.
type Session struct {
	ID        string
	VisitorID string

	Console      *console.Console
	Orchestrator *Orchestrator
	Input        *KeyInput

	mu       sync.Mutex
	lead     activation.Lead
	tracking funnel.Tracking
	lastSeen time.Time
}

func (s *Session) Lead() (activation.Lead, funnel.Tracking) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lead, s.tracking
}

func (s *Session) SetLead(lead activation.Lead, tracking funnel.Tracking) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.lead = lead
	s.tracking = tracking
}

func (s *Session) touch(now time.Time) {
	s.mu.Lock()
	s.lastSeen = now
	s.mu.Unlock()
}

func (s *Session) idleSince(now time.Time) time.Duration {
	s.mu.Lock()
	defer s.mu.Unlock()
	return now.Sub(s.lastSeen)
}

func (s *Session) Close() {
	s.Input.Close()
}

type RegistryConfig struct {
	DebounceDelay time.Duration
	IdleTTL       time.Duration
}

// SessionRegistry creates sessions on first use and evicts the ones left idle.
type SessionRegistry struct {
	deps OrchestratorDeps
	cfg  RegistryConfig

	mu       sync.Mutex
	sessions map[string]*Session
}

func NewSessionRegistry(deps OrchestratorDeps, cfg RegistryConfig) *SessionRegistry {
	return &SessionRegistry{
		deps:     deps,
		cfg:      cfg,
		sessions: make(map[string]*Session),
	}
}

func (r *SessionRegistry) Get(ref SessionRef) *Session {
	now := r.deps.Clock.Now()

	r.mu.Lock()
	defer r.mu.Unlock()

	if s, ok := r.sessions[ref.SessionID]; ok {
		s.touch(now)
		return s
	}

	s := r.newSession(ref)
	s.touch(now)
	r.sessions[ref.SessionID] = s
	metrics.SetActiveSessions(len(r.sessions))
	return s
}

func (r *SessionRegistry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.sessions)
}

// Sweep closes sessions idle for longer than the configured TTL and reports how many it evicted.
func (r *SessionRegistry) Sweep() int {
	now := r.deps.Clock.Now()

	r.mu.Lock()
	var evicted []*Session
	for id, s := range r.sessions {
		if s.idleSince(now) > r.cfg.IdleTTL {
			evicted = append(evicted, s)
			delete(r.sessions, id)
		}
	}
	metrics.SetActiveSessions(len(r.sessions))
	r.mu.Unlock()

	for _, s := range evicted {
		s.Close()
	}
	if len(evicted) > 0 {
		r.deps.Logger.Info("evicted idle sessions", slog.Int("count", len(evicted)))
	}
	return len(evicted)
}

// Run sweeps every interval until ctx is done.
func (r *SessionRegistry) Run(ctx context.Context, interval time.Duration) {
	for {
		tick := make(chan struct{})
		timer := r.deps.Clock.AfterFunc(interval, func() { close(tick) })

		select {
		case <-ctx.Done():
			timer.Stop()
			return
		case <-tick:
			r.Sweep()
		}
	}
}

func (r *SessionRegistry) Close() {
	r.mu.Lock()
	sessions := r.sessions
	r.sessions = make(map[string]*Session)
	metrics.SetActiveSessions(0)
	r.mu.Unlock()

	for _, s := range sessions {
		s.Close()
	}
}

func (r *SessionRegistry) newSession(ref SessionRef) *Session {
	logger := r.deps.Logger.With(slog.String("session_id", ref.SessionID))
	deps := r.deps
	deps.Logger = logger

	c := console.New(deps.Clock)
	preview := console.NewScript(c, deps.Clock)
	scope := activation.Scope{SessionID: ref.SessionID, VisitorID: ref.VisitorID}

	s := &Session{
		ID:        ref.SessionID,
		VisitorID: ref.VisitorID,
		Console:   c,
	}
	s.Orchestrator = NewOrchestrator(deps, c, preview, scope)
	s.Input = NewKeyInput(s.Orchestrator, c, preview, debounce.New(deps.Clock, r.cfg.DebounceDelay), s, deps.Clock, logger)
	return s
}

var _ LeadSource = (*Session)(nil)
