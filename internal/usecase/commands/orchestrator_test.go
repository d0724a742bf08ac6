//go:build unit

package commands_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"golden-key-funnel/internal/domain/activation"
	"golden-key-funnel/internal/domain/console"
	"golden-key-funnel/internal/domain/funnel"
	"golden-key-funnel/internal/pkg/errs"
	"golden-key-funnel/internal/usecase/commands"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

type OrchestratorTestSuite struct {
	suite.Suite
	f       *fixture
	console *console.Console
	preview *console.Script
	scope   activation.Scope
	o       *commands.Orchestrator
}

func (s *OrchestratorTestSuite) SetupTest() {
	s.f = newFixture()
	s.console = console.New(s.f.clock)
	s.preview = console.NewScript(s.console, s.f.clock)
	s.scope = activation.Scope{SessionID: "session-1", VisitorID: "visitor-1"}
	s.o = commands.NewOrchestrator(s.f.deps, s.console, s.preview, s.scope)
}

func (s *OrchestratorTestSuite) TearDownTest() {
	s.o.Close()
}

func TestOrchestratorSuite(t *testing.T) {
	suite.Run(t, new(OrchestratorTestSuite))
}

// waitStarted blocks until the validator has received key.
func (s *OrchestratorTestSuite) waitStarted(key string) {
	s.T().Helper()
	select {
	case got := <-s.f.validator.started:
		s.Require().Equal(key, got)
	case <-time.After(2 * time.Second):
		s.FailNow("validator call did not start", key)
	}
}

func (s *OrchestratorTestSuite) TestRefusesWithoutLead() {
	attempt := activation.NewAttempt(activation.NewKey("GOLD-123"), activation.Lead{FirstName: "Ada"}, funnel.Tracking{}, s.f.clock.Now())

	res, err := s.o.Validate(context.Background(), attempt)

	s.ErrorIs(err, errs.ErrValidationRefused)
	s.Equal(activation.SubmitIdle, res.Presentation.Submit)
	s.Equal(activation.StateIdle, res.State)
	s.Empty(s.f.validator.Calls(), "no request without a complete lead")
	s.Empty(s.f.publisher.Events())
	s.Equal(activation.SubmitIdle, s.o.Status().Submit)
}

func (s *OrchestratorTestSuite) TestApproved() {
	s.f.validator.answer("GOLD-123", activation.Verdict{IsValid: true, IsRedeemable: true, RegisterURL: "https://claim.example.com/1"})

	res, err := s.o.Validate(context.Background(), s.f.attempt("GOLD-123"))
	s.Require().NoError(err)

	s.Equal(activation.OutcomeApproved, res.Result.Outcome)
	s.Equal("https://claim.example.com/1", res.Result.RegisterURL)
	s.Equal(activation.StateApproved, res.State)
	s.Equal(activation.SubmitActivated, res.Presentation.Submit)
	s.False(res.Skipped)

	saved := s.f.store.Saved()
	s.Require().Len(saved, 1)
	s.Equal("https://claim.example.com/1", saved[0].RegisterURL)
	s.Equal("GOLD-123", saved[0].Key)
	s.Equal("Ada", saved[0].FirstName)

	events := s.f.publisher.Events()
	s.Require().Len(events, 1)
	s.Equal(funnel.EventKeyApproved, events[0].Name)
	s.Equal("GOLD-123", events[0].GoldenKey)
	s.Equal([]string{"KEY_VALID", "VIP_TRIAL_ACTIVE", "AFF_42"}, events[0].Tags)

	status := s.o.Status()
	s.False(status.Validating)
	s.Equal("GOLD****", status.LastValidatedKey)
	s.Equal(activation.OutcomeApproved, status.LastOutcome)
}

func (s *OrchestratorTestSuite) TestApprovedWithoutProvidedURLFallsBackToOnboarding() {
	s.f.validator.answer("GOLD-123", activation.Verdict{IsValid: true, IsRedeemable: true})

	res, err := s.o.Validate(context.Background(), s.f.attempt("GOLD-123"))
	s.Require().NoError(err)
	s.Equal(continuationBase+"?e=ada%40example.com&ml=GOLD-123&n=Ada", res.Result.RegisterURL)
}

func (s *OrchestratorTestSuite) TestRejectedOutcomes() {
	cases := []struct {
		name    string
		verdict activation.Verdict
		outcome activation.Outcome
		event   string
	}{
		{name: "claimed", verdict: activation.Verdict{IsValid: true}, outcome: activation.OutcomeClaimed, event: funnel.EventKeyClaimed},
		{name: "invalid", verdict: activation.Verdict{}, outcome: activation.OutcomeInvalid, event: funnel.EventKeyInvalid},
	}
	for i, tc := range cases {
		s.Run(tc.name, func() {
			key := "KEY-00" + string(rune('A'+i))
			s.f.validator.answer(key, tc.verdict)

			res, err := s.o.Validate(context.Background(), s.f.attempt(key))
			s.Require().NoError(err)
			s.Equal(tc.outcome, res.Result.Outcome)
			s.Equal(activation.SubmitRetry, res.Presentation.Submit)

			events := s.f.publisher.Events()
			s.Equal(tc.event, events[len(events)-1].Name)
			s.Equal([]string{"AFF_42"}, events[len(events)-1].Tags)
		})
	}
	s.Empty(s.f.store.Saved(), "only approvals are persisted")
}

func (s *OrchestratorTestSuite) TestRejectedKeyCanBeRetried() {
	s.f.validator.answer("GOLD-123", activation.Verdict{})

	_, err := s.o.Validate(context.Background(), s.f.attempt("GOLD-123"))
	s.Require().NoError(err)
	res, err := s.o.Validate(context.Background(), s.f.attempt("GOLD-123"))
	s.Require().NoError(err)

	s.False(res.Skipped)
	s.Len(s.f.validator.Calls(), 2)
}

func (s *OrchestratorTestSuite) TestNetworkErrors() {
	cases := []struct {
		name string
		err  error
	}{
		{name: "transport failure", err: errs.Mark(errors.New("dial tcp: refused"), errs.ErrVoucherUnavailable)},
		{name: "malformed body", err: errs.Mark(errors.New("invalid character '<'"), errs.ErrMalformedResponse)},
	}
	for i, tc := range cases {
		s.Run(tc.name, func() {
			key := "NET-KEY-" + string(rune('A'+i))
			s.f.validator.fail(key, tc.err)

			res, err := s.o.Validate(context.Background(), s.f.attempt(key))
			s.Require().NoError(err)
			s.Equal(activation.OutcomeNetworkError, res.Result.Outcome)
			s.Equal(activation.StateNetworkError, res.State)
			s.True(res.Presentation.Boosters)

			events := s.f.publisher.Events()
			last := events[len(events)-1]
			s.Equal(funnel.EventKeyValidationError, last.Name)
			s.Empty(last.Tags)
		})
	}
}

func (s *OrchestratorTestSuite) TestPersistenceFailureDoesNotChangeOutcome() {
	s.f.store.saveErr = errs.ErrStorageWrite
	s.f.validator.answer("GOLD-123", activation.Verdict{IsValid: true, IsRedeemable: true, RegisterURL: "https://claim.example.com/1"})

	res, err := s.o.Validate(context.Background(), s.f.attempt("GOLD-123"))

	s.Require().NoError(err)
	s.Equal(activation.OutcomeApproved, res.Result.Outcome)
	s.Equal(activation.StateApproved, res.State)
}

func (s *OrchestratorTestSuite) TestAlreadyValidatedKeyIsSkipped() {
	s.f.validator.answer("GOLD-123", activation.Verdict{IsValid: true, IsRedeemable: true, RegisterURL: "https://claim.example.com/1"})

	first, err := s.o.Validate(context.Background(), s.f.attempt("GOLD-123"))
	s.Require().NoError(err)

	s.o.NoteInput(activation.StageArmed)
	s.Equal(activation.SubmitValidating, s.o.Status().Submit)

	second, err := s.o.Validate(context.Background(), s.f.attempt("GOLD-123"))
	s.Require().NoError(err)

	s.True(second.Skipped)
	s.Equal(commands.SkipAlreadyValidated, second.SkipReason)
	s.Equal(first.Result, second.Result)
	s.Equal(activation.StateIdle, second.State)
	s.Equal(activation.SubmitActivated, s.o.Status().Submit, "submit control is restored after a skip")
	s.Len(s.f.validator.Calls(), 1)
	s.Len(s.f.store.Saved(), 1)
	s.Len(s.f.publisher.Events(), 1)
}

func (s *OrchestratorTestSuite) TestSameKeyInFlightIsSkipped() {
	gate := s.f.validator.gate("GOLD-123")

	done := make(chan commands.ValidateResult, 1)
	go func() {
		res, _ := s.o.Validate(context.Background(), s.f.attempt("GOLD-123"))
		done <- res
	}()
	s.waitStarted("GOLD-123")

	status := s.o.Status()
	s.True(status.Validating)
	s.Equal("GOLD****", status.InFlightKey)

	skipped, err := s.o.Validate(context.Background(), s.f.attempt("  GOLD-123  "))
	s.Require().NoError(err)
	s.True(skipped.Skipped)
	s.Equal(commands.SkipInFlight, skipped.SkipReason)
	s.Equal(activation.SubmitValidating, skipped.Presentation.Submit)

	close(gate)
	res := <-done
	s.Equal(activation.OutcomeInvalid, res.Result.Outcome)
	s.Len(s.f.validator.Calls(), 1)
}

func (s *OrchestratorTestSuite) TestDifferentKeySupersedesInFlight() {
	s.f.validator.gate("OLD-KEY-1")
	s.f.validator.answer("NEW-KEY-2", activation.Verdict{IsValid: true})

	type outcome struct {
		res commands.ValidateResult
		err error
	}
	done := make(chan outcome, 1)
	go func() {
		res, err := s.o.Validate(context.Background(), s.f.attempt("OLD-KEY-1"))
		done <- outcome{res, err}
	}()
	s.waitStarted("OLD-KEY-1")

	res, err := s.o.Validate(context.Background(), s.f.attempt("NEW-KEY-2"))
	s.Require().NoError(err)
	s.Equal(activation.OutcomeClaimed, res.Result.Outcome)

	old := <-done
	s.ErrorIs(old.err, errs.ErrSuperseded)
	s.ErrorIs(s.f.validator.CtxErr("OLD-KEY-1"), context.Canceled)

	events := s.f.publisher.Events()
	s.Require().Len(events, 1, "superseded attempt publishes nothing")
	s.Equal(funnel.EventKeyClaimed, events[0].Name)
	s.Equal(activation.StateClaimed, s.o.Status().State)
}

func (s *OrchestratorTestSuite) TestCallerCancellationDoesNotAbortValidation() {
	gate := s.f.validator.gate("GOLD-123")
	s.f.validator.answer("GOLD-123", activation.Verdict{IsValid: true, IsRedeemable: true, RegisterURL: "https://claim.example.com/1"})

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() {
		_, err := s.o.Validate(ctx, s.f.attempt("GOLD-123"))
		done <- err
	}()
	s.waitStarted("GOLD-123")

	cancel()
	close(gate)

	s.NoError(<-done)
	s.Len(s.f.store.Saved(), 1)
}

func (s *OrchestratorTestSuite) TestNarrationDoesNotGateResult() {
	s.f.validator.answer("GOLD-123", activation.Verdict{IsValid: true})

	res, err := s.o.Validate(context.Background(), s.f.attempt("GOLD-123"))
	s.Require().NoError(err)
	s.Equal(activation.OutcomeClaimed, res.Result.Outcome)

	// no clock advance: narration never ran, the outcome line is there
	lines := s.console.Lines()
	s.Require().NotEmpty(lines)
	s.Equal("🔒 This key has been claimed already.", lines[len(lines)-1].Text)
	s.True(s.console.Visible())
	s.Zero(s.f.clock.PendingTimers())
}

func (s *OrchestratorTestSuite) TestNoteInputWhileValidatingKeepsState() {
	gate := s.f.validator.gate("GOLD-123")
	done := make(chan struct{})
	go func() {
		defer close(done)
		_, _ = s.o.Validate(context.Background(), s.f.attempt("GOLD-123"))
	}()
	s.waitStarted("GOLD-123")

	s.o.NoteInput(activation.StageHidden)
	s.Equal(activation.StateValidating, s.o.Status().State)
	s.Equal(activation.SubmitValidating, s.o.Status().Submit)

	close(gate)
	<-done
}

func (s *OrchestratorTestSuite) TestPreviewDoesNotStartDuringLiveAttempt() {
	steps := []console.Step{{Text: "preview line", Severity: console.SeverityInfo, Delay: time.Second}}

	gate := s.f.validator.gate("GOLD-123")
	done := make(chan struct{})
	go func() {
		defer close(done)
		_, _ = s.o.Validate(context.Background(), s.f.attempt("GOLD-123"))
	}()
	s.waitStarted("GOLD-123")

	s.False(s.o.StartPreview(steps, true))
	s.False(s.preview.Running())

	close(gate)
	<-done

	s.True(s.o.StartPreview(steps, true))
	s.True(s.preview.Running())
}

func (s *OrchestratorTestSuite) TestStartPreviewRestart() {
	first := []console.Step{{Text: "first", Severity: console.SeverityInfo, Delay: time.Second}}
	second := []console.Step{{Text: "second", Severity: console.SeverityInfo, Delay: time.Second}}

	s.True(s.o.StartPreview(first, false))
	s.False(s.o.StartPreview(second, false))
	s.True(s.o.StartPreview(second, true))

	s.f.clock.Add(time.Second)
	lines := s.console.Lines()
	s.Require().Len(lines, 1)
	s.Equal("second", lines[0].Text)
}

func TestOrchestrator_CloseAbandonsInFlight(t *testing.T) {
	f := newFixture()
	c := console.New(f.clock)
	o := commands.NewOrchestrator(f.deps, c, console.NewScript(c, f.clock), activation.Scope{SessionID: "s"})
	f.validator.gate("GOLD-123")

	done := make(chan error, 1)
	go func() {
		_, err := o.Validate(context.Background(), f.attempt("GOLD-123"))
		done <- err
	}()
	select {
	case <-f.validator.started:
	case <-time.After(2 * time.Second):
		t.Fatal("validator call did not start")
	}

	o.Close()

	require.ErrorIs(t, <-done, errs.ErrSuperseded)
	assert.False(t, o.Validating())
	assert.Empty(t, f.publisher.Events())
}
