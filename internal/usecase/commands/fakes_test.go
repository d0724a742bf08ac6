//go:build unit

package commands_test

import (
	"context"
	"io"
	"log/slog"
	"sync"
	"time"

	"golden-key-funnel/internal/domain/activation"
	"golden-key-funnel/internal/domain/funnel"
	"golden-key-funnel/internal/pkg/clock"
	"golden-key-funnel/internal/usecase/commands"
)

var (
	testLogger = slog.New(slog.NewTextHandler(io.Discard, nil))
	testPages  = funnel.Pages{
		Registration: "webinar-registration.html",
		Confirmation: "webinar-confirmation.html",
		Partners:     map[string]string{"revoicer": "webinar-confirmation-rv.html"},
	}
	testStart  = time.Date(2026, 5, 1, 12, 0, 0, 0, time.UTC)
	testLead   = activation.Lead{FirstName: "Ada", Email: "ada@example.com"}
)

const continuationBase = "https://app.example.com/onboarding"

// fakeValidator answers from fixed verdicts. A gated key blocks until its gate is
// closed or the call is cancelled.
type fakeValidator struct {
	mu       sync.Mutex
	verdicts map[string]activation.Verdict
	errs     map[string]error
	gates    map[string]chan struct{}
	calls    []string
	started  chan string
	ctxErrs  map[string]error
}

func newFakeValidator() *fakeValidator {
	return &fakeValidator{
		verdicts: map[string]activation.Verdict{},
		errs:     map[string]error{},
		gates:    map[string]chan struct{}{},
		started:  make(chan string, 16),
		ctxErrs:  map[string]error{},
	}
}

func (f *fakeValidator) answer(key string, v activation.Verdict) *fakeValidator {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.verdicts[key] = v
	return f
}

func (f *fakeValidator) fail(key string, err error) *fakeValidator {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.errs[key] = err
	return f
}

func (f *fakeValidator) gate(key string) chan struct{} {
	f.mu.Lock()
	defer f.mu.Unlock()
	ch := make(chan struct{})
	f.gates[key] = ch
	return ch
}

func (f *fakeValidator) Validate(ctx context.Context, code string) (activation.Verdict, error) {
	f.mu.Lock()
	f.calls = append(f.calls, code)
	gate := f.gates[code]
	f.mu.Unlock()

	select {
	case f.started <- code:
	default:
	}

	if gate != nil {
		select {
		case <-gate:
		case <-ctx.Done():
			f.mu.Lock()
			f.ctxErrs[code] = ctx.Err()
			f.mu.Unlock()
			return activation.Verdict{}, ctx.Err()
		}
	}

	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.errs[code]; err != nil {
		return activation.Verdict{}, err
	}
	return f.verdicts[code], nil
}

func (f *fakeValidator) Calls() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]string(nil), f.calls...)
}

func (f *fakeValidator) CtxErr(code string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.ctxErrs[code]
}

type fakePublisher struct {
	mu      sync.Mutex
	events  []funnel.Event
	sendErr error
}

func (p *fakePublisher) Publish(_ context.Context, e funnel.Event) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.events = append(p.events, e)
}

func (p *fakePublisher) Send(_ context.Context, e funnel.Event) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.sendErr != nil {
		return p.sendErr
	}
	p.events = append(p.events, e)
	return nil
}

func (p *fakePublisher) Events() []funnel.Event {
	p.mu.Lock()
	defer p.mu.Unlock()
	return append([]funnel.Event(nil), p.events...)
}

type fakeStore struct {
	mu      sync.Mutex
	saved   []activation.PersistedActivation
	scopes  []activation.Scope
	saveErr error
}

func (s *fakeStore) Save(_ context.Context, scope activation.Scope, a activation.PersistedActivation) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.saveErr != nil {
		return s.saveErr
	}
	s.saved = append(s.saved, a)
	s.scopes = append(s.scopes, scope)
	return nil
}

func (s *fakeStore) Load(_ context.Context, _ activation.Scope) (activation.PersistedActivation, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.saved) == 0 {
		return activation.PersistedActivation{}, nil
	}
	return s.saved[len(s.saved)-1], nil
}

func (s *fakeStore) Saved() []activation.PersistedActivation {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]activation.PersistedActivation(nil), s.saved...)
}

type fixture struct {
	validator *fakeValidator
	publisher *fakePublisher
	store     *fakeStore
	clock     *clock.MockClock
	deps      commands.OrchestratorDeps
}

func newFixture() *fixture {
	f := &fixture{
		validator: newFakeValidator(),
		publisher: &fakePublisher{},
		store:     &fakeStore{},
		clock:     clock.NewMockClock(testStart),
	}
	f.deps = commands.OrchestratorDeps{
		Validator:           f.validator,
		Publisher:           f.publisher,
		Store:               f.store,
		Clock:               f.clock,
		Logger:              testLogger,
		Pages:               testPages,
		ContinuationBaseURL: continuationBase,
	}
	return f
}

func (f *fixture) registry() *commands.SessionRegistry {
	return commands.NewSessionRegistry(f.deps, commands.RegistryConfig{
		DebounceDelay: 700 * time.Millisecond,
		IdleTTL:       time.Hour,
	})
}

func (f *fixture) attempt(key string) activation.Attempt {
	return activation.NewAttempt(activation.NewKey(key), testLead, funnel.Tracking{AffiliateID: "42"}, f.clock.Now())
}
