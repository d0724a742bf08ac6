package resultstore

import (
	"context"
	"log/slog"
	"net/url"

	"golden-key-funnel/internal/domain/activation"
	"golden-key-funnel/internal/pkg/errs"

	"golang.org/x/sync/errgroup"
)

// Store is one storage scope of the carrier.
type Store interface {
	Save(ctx context.Context, scope activation.Scope, a activation.PersistedActivation) error
	Load(ctx context.Context, scope activation.Scope) (activation.PersistedActivation, error)
}

// Carrier writes an activation to both scopes and reads it back from the first one that
// has it: session, then durable, then the register_url query parameter.
type Carrier struct {
	session Store
	durable Store
	logger  *slog.Logger
}

func NewCarrier(session, durable Store, logger *slog.Logger) *Carrier {
	return &Carrier{
		session: session,
		durable: durable,
		logger:  logger,
	}
}

// Save never fails: a backend that cannot be written is logged and skipped.
func (c *Carrier) Save(ctx context.Context, scope activation.Scope, a activation.PersistedActivation) error {
	var g errgroup.Group
	g.Go(func() error {
		c.logWriteFailure("session", scope, c.session.Save(ctx, scope, a))
		return nil
	})
	g.Go(func() error {
		c.logWriteFailure("durable", scope, c.durable.Save(ctx, scope, a))
		return nil
	})
	return g.Wait()
}

func (c *Carrier) Load(ctx context.Context, scope activation.Scope) (activation.PersistedActivation, error) {
	for _, s := range []struct {
		name  string
		store Store
	}{
		{"session", c.session},
		{"durable", c.durable},
	} {
		a, err := s.store.Load(ctx, scope)
		if err == nil {
			return a, nil
		}
		if !errs.Is(err, errs.ErrActivationNotFound) {
			c.logger.Warn("failed to read saved activation",
				slog.String("scope", s.name),
				slog.String("error", err.Error()))
		}
	}

	if scope.RegisterURLParam != "" {
		return activation.PersistedActivation{RegisterURL: decodeParam(scope.RegisterURLParam)}, nil
	}
	return activation.PersistedActivation{}, errs.ErrActivationNotFound
}

func (c *Carrier) logWriteFailure(name string, scope activation.Scope, err error) {
	if err == nil {
		return
	}
	c.logger.Warn("storage write failure",
		slog.String("scope", name),
		slog.String("session_id", scope.SessionID),
		slog.String("error", err.Error()))
}

// decodeParam undoes an extra round of percent-encoding some links carry.
func decodeParam(v string) string {
	if decoded, err := url.PathUnescape(v); err == nil {
		return decoded
	}
	return v
}
