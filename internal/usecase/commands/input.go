package commands

import (
	"context"
	"log/slog"
	"time"

	"golden-key-funnel/internal/domain/activation"
	"golden-key-funnel/internal/domain/console"
	"golden-key-funnel/internal/domain/funnel"
	"golden-key-funnel/internal/pkg/clock"
	"golden-key-funnel/internal/pkg/debounce"
	"golden-key-funnel/internal/pkg/errs"
)

// LeadSource supplies the lead captured on step one at the moment a validation starts.
type LeadSource interface {
	Lead() (activation.Lead, funnel.Tracking)
}

type InputDecision struct {
	Stage          activation.InputStage
	ConsoleVisible bool
	Scheduled      bool
	Delay          time.Duration
}

// KeyInput turns key input changes into at most one validation per quiet period.
type KeyInput struct {
	orchestrator *Orchestrator
	console      *console.Console
	preview      *console.Script
	debouncer    *debounce.Debouncer
	leads        LeadSource
	clock        clock.Clock
	logger       *slog.Logger
}

func NewKeyInput(
	o *Orchestrator,
	c *console.Console,
	preview *console.Script,
	d *debounce.Debouncer,
	leads LeadSource,
	clk clock.Clock,
	logger *slog.Logger,
) *KeyInput {
	return &KeyInput{
		orchestrator: o,
		console:      c,
		preview:      preview,
		debouncer:    d,
		leads:        leads,
		clock:        clk,
		logger:       logger,
	}
}

// OnInput handles one change of the key field. Every change cancels the pending
// validation; only an armed key schedules a new one.
func (k *KeyInput) OnInput(raw string) InputDecision {
	key := activation.NewKey(raw)
	stage := key.Stage()
	k.orchestrator.NoteInput(stage)

	switch stage {
	case activation.StageHidden:
		k.debouncer.Cancel()
		k.preview.Stop()
		k.console.Hide()
		return InputDecision{Stage: stage}
	case activation.StagePreview:
		k.debouncer.Cancel()
		k.showPreview(key, false)
		return InputDecision{Stage: stage, ConsoleVisible: true}
	default:
		// every arm cancels the cosmetic lines scheduled for the previous value
		k.showPreview(key, true)
		k.debouncer.Debounce(func() { k.fire(key) })
		return InputDecision{
			Stage:          stage,
			ConsoleVisible: true,
			Scheduled:      true,
			Delay:          k.debouncer.Duration(),
		}
	}
}

// Submit validates immediately, replacing any scheduled validation.
func (k *KeyInput) Submit(ctx context.Context, raw string) (ValidateResult, error) {
	key := activation.NewKey(raw)
	if !key.Validatable() {
		return ValidateResult{}, errs.ErrKeyTooShort
	}
	k.debouncer.Cancel()

	lead, tracking := k.leads.Lead()
	return k.orchestrator.Validate(ctx, activation.NewAttempt(key, lead, tracking, k.clock.Now()))
}

func (k *KeyInput) Pending() bool {
	return k.debouncer.Pending()
}

func (k *KeyInput) Close() {
	k.debouncer.Cancel()
	k.orchestrator.Close()
}

func (k *KeyInput) showPreview(key activation.Key, restart bool) {
	k.console.Show()
	k.orchestrator.StartPreview(previewSteps(key), restart)
}

func (k *KeyInput) fire(key activation.Key) {
	lead, tracking := k.leads.Lead()
	attempt := activation.NewAttempt(key, lead, tracking, k.clock.Now())

	_, err := k.orchestrator.Validate(context.Background(), attempt)
	switch {
	case err == nil, errs.Is(err, errs.ErrSuperseded):
	case errs.Is(err, errs.ErrValidationRefused):
		k.logger.Debug("scheduled validation refused: lead incomplete",
			slog.String("attempt_id", attempt.ID.String()))
	default:
		k.logger.Warn("scheduled validation failed",
			slog.String("attempt_id", attempt.ID.String()),
			slog.String("error", err.Error()))
	}
}
