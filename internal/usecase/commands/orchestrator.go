package commands

import (
	"context"
	"log/slog"
	"sync"

	"golden-key-funnel/internal/domain/activation"
	"golden-key-funnel/internal/domain/console"
	"golden-key-funnel/internal/domain/funnel"
	"golden-key-funnel/internal/infra/metrics"
	"golden-key-funnel/internal/pkg/clock"
	"golden-key-funnel/internal/pkg/errs"
)

type SkipReason string

const (
	SkipInFlight         SkipReason = "in_flight"
	SkipAlreadyValidated SkipReason = "already_validated"
)

// ValidateResult is what one call to Validate produced. A skipped call carries the
// result of the attempt that made it redundant, when there is one.
type ValidateResult struct {
	Attempt      activation.Attempt
	Result       activation.ValidationResult
	Presentation activation.Presentation
	State        activation.State
	Skipped      bool
	SkipReason   SkipReason
}

type Status struct {
	State            activation.State
	Validating       bool
	InFlightKey      string
	LastValidatedKey string
	LastOutcome      activation.Outcome
	Submit           activation.SubmitControl
}

type OrchestratorDeps struct {
	Validator           VoucherValidator
	Publisher           EventPublisher
	Store               ResultStore
	Clock               clock.Clock
	Logger              *slog.Logger
	Pages               funnel.Pages
	ContinuationBaseURL string
}

// Orchestrator runs validations for one session. At most one attempt is live; starting
// an attempt for a different key supersedes the live one and its result is discarded.
type Orchestrator struct {
	deps    OrchestratorDeps
	console *console.Console
	preview *console.Script
	scope   activation.Scope

	mu               sync.Mutex
	state            activation.State
	validating       bool
	inFlightKey      activation.Key
	cancelInFlight   context.CancelFunc
	narration        *console.Script
	generation       uint64
	lastValidatedKey activation.Key
	lastApproved     *ValidateResult
	lastOutcome      activation.Outcome
	submit           activation.SubmitControl
	restingSubmit    activation.SubmitControl
}

func NewOrchestrator(deps OrchestratorDeps, c *console.Console, preview *console.Script, scope activation.Scope) *Orchestrator {
	return &Orchestrator{
		deps:          deps,
		console:       c,
		preview:       preview,
		scope:         scope,
		state:         activation.StateIdle,
		submit:        activation.SubmitIdle,
		restingSubmit: activation.SubmitIdle,
	}
}

func (o *Orchestrator) Validate(ctx context.Context, attempt activation.Attempt) (ValidateResult, error) {
	if !attempt.Lead.IsComplete() {
		o.mu.Lock()
		if !o.validating {
			o.transitionLocked(activation.StateIdle)
			o.submit = activation.SubmitIdle
		}
		state := o.state
		o.mu.Unlock()
		return ValidateResult{
			Attempt:      attempt,
			State:        state,
			Presentation: activation.Presentation{Submit: activation.SubmitIdle},
		}, errs.ErrValidationRefused
	}

	o.mu.Lock()
	if skipped, ok := o.guardLocked(attempt); ok {
		o.mu.Unlock()
		metrics.IncValidationSkipped(string(skipped.SkipReason))
		o.deps.Logger.Debug("validation skipped",
			slog.String("attempt_id", attempt.ID.String()),
			slog.String("reason", string(skipped.SkipReason)),
			slog.String("key", attempt.Key.Masked()))
		return skipped, nil
	}

	if o.validating {
		o.cancelInFlight()
		o.narration.Stop()
		o.deps.Logger.Info("superseding in-flight validation",
			slog.String("previous_key", o.inFlightKey.Masked()),
			slog.String("key", attempt.Key.Masked()))
	}

	o.generation++
	gen := o.generation
	// The attempt outlives the caller: a disconnecting client must not lose an approval.
	reqCtx, cancel := context.WithCancel(context.WithoutCancel(ctx))
	o.validating = true
	o.inFlightKey = attempt.Key
	o.cancelInFlight = cancel
	o.transitionLocked(activation.StateValidating)
	o.submit = activation.SubmitValidating

	o.preview.Stop()
	o.console.Show()
	narration := console.NewScript(o.console, o.deps.Clock)
	narration.Start(narrationSteps(attempt.Key))
	o.narration = narration
	o.mu.Unlock()

	started := o.deps.Clock.Now()
	verdict, callErr := o.deps.Validator.Validate(reqCtx, attempt.Key.String())
	metrics.ObserveVoucherLatency(o.deps.Clock.Now().Sub(started), callErr == nil)
	narration.Stop()
	cancel()

	o.mu.Lock()
	if gen != o.generation {
		o.mu.Unlock()
		o.deps.Logger.Debug("discarding superseded validation result",
			slog.String("attempt_id", attempt.ID.String()),
			slog.String("key", attempt.Key.Masked()))
		return ValidateResult{Attempt: attempt, State: activation.StateValidating}, errs.ErrSuperseded
	}

	result := o.interpret(attempt, verdict, callErr)
	o.validating = false
	o.inFlightKey = ""
	o.cancelInFlight = nil
	o.narration = nil

	for _, line := range outcomeLines(result.Outcome) {
		o.console.Append(line.Text, line.Severity)
	}
	o.transitionLocked(activation.StateFor(result.Outcome))

	pres := activation.Present(result, attempt.Lead, o.deps.Pages)
	o.submit = pres.Submit
	o.restingSubmit = pres.Submit
	o.lastOutcome = result.Outcome

	vr := ValidateResult{
		Attempt:      attempt,
		Result:       result,
		Presentation: pres,
		State:        o.state,
	}
	if result.MarksValidated() {
		o.lastValidatedKey = attempt.Key
		remembered := vr
		o.lastApproved = &remembered
	}
	o.mu.Unlock()

	metrics.IncValidation(string(result.Outcome))
	o.deps.Logger.Info("key validated",
		slog.String("attempt_id", attempt.ID.String()),
		slog.String("key", attempt.Key.Masked()),
		slog.String("outcome", string(result.Outcome)))

	if result.MarksValidated() {
		o.persist(ctx, attempt, result)
	}
	o.publishOutcome(ctx, attempt, result)

	return vr, nil
}

// NoteInput records a key input change. While an attempt is live its outcome decides the
// next state, so only the submit control is touched.
func (o *Orchestrator) NoteInput(stage activation.InputStage) {
	o.mu.Lock()
	defer o.mu.Unlock()

	if o.validating {
		return
	}
	o.transitionLocked(activation.AfterInput(stage))
	if stage == activation.StageArmed {
		o.submit = activation.SubmitValidating
		return
	}
	o.submit = o.restingSubmit
}

// StartPreview runs the cosmetic preview unless an attempt is live. With restart set, timers
// left from an earlier preview are cancelled first.
func (o *Orchestrator) StartPreview(steps []console.Step, restart bool) bool {
	o.mu.Lock()
	defer o.mu.Unlock()

	if o.validating {
		return false
	}
	if restart {
		o.preview.Stop()
	}
	return o.preview.Start(steps)
}

func (o *Orchestrator) Validating() bool {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.validating
}

func (o *Orchestrator) Status() Status {
	o.mu.Lock()
	defer o.mu.Unlock()

	s := Status{
		State:       o.state,
		Validating:  o.validating,
		LastOutcome: o.lastOutcome,
		Submit:      o.submit,
	}
	if o.validating {
		s.InFlightKey = o.inFlightKey.Masked()
	}
	if !o.lastValidatedKey.IsEmpty() {
		s.LastValidatedKey = o.lastValidatedKey.Masked()
	}
	return s
}

// Close abandons the live attempt, if any.
func (o *Orchestrator) Close() {
	o.mu.Lock()
	defer o.mu.Unlock()

	if o.validating {
		o.generation++
		o.cancelInFlight()
		o.narration.Stop()
		o.validating = false
		o.cancelInFlight = nil
		o.narration = nil
	}
	o.preview.Stop()
}

// guardLocked applies the single-flight rule: nothing starts while the same key is live
// or once it has been approved.
func (o *Orchestrator) guardLocked(attempt activation.Attempt) (ValidateResult, bool) {
	if attempt.Key == o.lastValidatedKey && o.lastApproved != nil {
		o.submit = o.restingSubmit
		if o.state == activation.StateDebounced {
			o.transitionLocked(activation.StateIdle)
		}
		remembered := *o.lastApproved
		remembered.Skipped = true
		remembered.SkipReason = SkipAlreadyValidated
		remembered.State = o.state
		return remembered, true
	}
	if o.validating && attempt.Key == o.inFlightKey {
		return ValidateResult{
			Attempt:      attempt,
			State:        o.state,
			Presentation: activation.Presentation{Submit: activation.SubmitValidating},
			Skipped:      true,
			SkipReason:   SkipInFlight,
		}, true
	}
	return ValidateResult{}, false
}

func (o *Orchestrator) interpret(attempt activation.Attempt, verdict activation.Verdict, callErr error) activation.ValidationResult {
	if callErr != nil {
		o.deps.Logger.Warn("voucher validation failed",
			slog.String("attempt_id", attempt.ID.String()),
			slog.Bool("malformed", errs.Is(callErr, errs.ErrMalformedResponse)),
			slog.String("error", callErr.Error()))
		return activation.NetworkError()
	}

	switch verdict.Outcome() {
	case activation.OutcomeApproved:
		return activation.Approved(activation.ContinuationURL(verdict, o.deps.ContinuationBaseURL, attempt.Key, attempt.Lead))
	case activation.OutcomeClaimed:
		return activation.Claimed()
	default:
		return activation.Invalid()
	}
}

func (o *Orchestrator) transitionLocked(to activation.State) {
	next, err := o.state.Transition(to)
	if err != nil {
		o.deps.Logger.Warn("rejected state transition", slog.String("error", err.Error()))
		return
	}
	o.state = next
}

// persist failures never change the outcome the visitor sees.
func (o *Orchestrator) persist(ctx context.Context, attempt activation.Attempt, result activation.ValidationResult) {
	record := activation.NewPersistedActivation(attempt, result.RegisterURL, o.deps.Clock.Now())
	err := o.deps.Store.Save(context.WithoutCancel(ctx), o.scope, record)
	metrics.IncPersisted(err == nil)
	if err != nil {
		o.deps.Logger.Warn("failed to persist activation",
			slog.String("attempt_id", attempt.ID.String()),
			slog.String("error", err.Error()))
	}
}

func (o *Orchestrator) publishOutcome(ctx context.Context, attempt activation.Attempt, result activation.ValidationResult) {
	var tags []string
	if result.Outcome != activation.OutcomeNetworkError {
		tags = append(result.Outcome.EventTags(), attempt.Tracking.Tags()...)
	}
	o.deps.Publisher.Publish(context.WithoutCancel(ctx), funnel.Event{
		Name:      result.Outcome.EventName(),
		FirstName: attempt.Lead.FirstName,
		Email:     attempt.Lead.Email,
		GoldenKey: attempt.Key.String(),
		Tags:      tags,
		Tracking:  attempt.Tracking,
		Timestamp: o.deps.Clock.Now(),
	})
}
