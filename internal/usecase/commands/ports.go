package commands

import (
	"context"

	"golden-key-funnel/internal/domain/activation"
	"golden-key-funnel/internal/domain/funnel"
)

// VoucherValidator performs the single round-trip to the voucher-validation endpoint.
// Any error (transport, non-2xx, malformed body) is a network failure for the caller.
type VoucherValidator interface {
	Validate(ctx context.Context, code string) (activation.Verdict, error)
}

// EventPublisher delivers telemetry to the automation webhook.
// Publish is fire-and-forget; Send waits for the delivery result.
type EventPublisher interface {
	Publish(ctx context.Context, event funnel.Event)
	Send(ctx context.Context, event funnel.Event) error
}

// ResultStore carries a successful activation across funnel pages.
type ResultStore interface {
	Save(ctx context.Context, scope activation.Scope, a activation.PersistedActivation) error
	Load(ctx context.Context, scope activation.Scope) (activation.PersistedActivation, error)
}
