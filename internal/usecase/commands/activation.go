package commands

//go:generate mockgen -source=activation.go -destination=../../../tests/mock/commands/activation_mock.go -package=commandsmock

import (
	"context"
	"log/slog"
	"net/url"

	"golden-key-funnel/internal/domain/activation"
	"golden-key-funnel/internal/domain/console"
	"golden-key-funnel/internal/domain/funnel"
	"golden-key-funnel/internal/pkg/clock"
)

// Step two of the activation form follows a captured lead.
const keyStep = 2

type LeadInput struct {
	FirstName string
	Email     string
	Page      string
	Referrer  string
	Query     url.Values
}

type LeadResult struct {
	FirstName string
	NextStep  int
}

type ActivationCommands interface {
	SubmitLead(ctx context.Context, ref SessionRef, in LeadInput) (*LeadResult, error)
	KeyInput(ctx context.Context, ref SessionRef, raw string) (*InputDecision, error)
	SubmitKey(ctx context.Context, ref SessionRef, raw string) (*ValidateResult, error)
	Status(ctx context.Context, ref SessionRef) (*Status, error)
	Console(ctx context.Context, ref SessionRef) (*console.Snapshot, error)
}

type activationCommandsImpl struct {
	sessions  *SessionRegistry
	publisher EventPublisher
	clock     clock.Clock
	logger    *slog.Logger
}

func NewActivationCommands(sessions *SessionRegistry, publisher EventPublisher, clk clock.Clock, logger *slog.Logger) ActivationCommands {
	return &activationCommandsImpl{
		sessions:  sessions,
		publisher: publisher,
		clock:     clk,
		logger:    logger,
	}
}

func (a *activationCommandsImpl) SubmitLead(ctx context.Context, ref SessionRef, in LeadInput) (*LeadResult, error) {
	lead, err := activation.NewLead(in.FirstName, in.Email)
	if err != nil {
		return nil, err
	}

	tracking := funnel.TrackingFromQuery(in.Query, in.Page, in.Referrer)
	a.sessions.Get(ref).SetLead(lead, tracking)

	a.publisher.Publish(context.WithoutCancel(ctx), funnel.Event{
		Name:      funnel.EventLeadSubmitted,
		FirstName: lead.FirstName,
		Email:     lead.Email,
		Tracking:  tracking,
		Timestamp: a.clock.Now(),
	})
	a.logger.Info("lead captured", slog.String("session_id", ref.SessionID))

	return &LeadResult{FirstName: lead.FirstName, NextStep: keyStep}, nil
}

func (a *activationCommandsImpl) KeyInput(_ context.Context, ref SessionRef, raw string) (*InputDecision, error) {
	decision := a.sessions.Get(ref).Input.OnInput(raw)
	return &decision, nil
}

func (a *activationCommandsImpl) SubmitKey(ctx context.Context, ref SessionRef, raw string) (*ValidateResult, error) {
	result, err := a.sessions.Get(ref).Input.Submit(ctx, raw)
	if err != nil {
		return nil, err
	}
	return &result, nil
}

func (a *activationCommandsImpl) Status(_ context.Context, ref SessionRef) (*Status, error) {
	status := a.sessions.Get(ref).Orchestrator.Status()
	return &status, nil
}

func (a *activationCommandsImpl) Console(_ context.Context, ref SessionRef) (*console.Snapshot, error) {
	snapshot := a.sessions.Get(ref).Console.Snapshot()
	return &snapshot, nil
}
