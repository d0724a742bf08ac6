package components

import (
	"context"
	"log/slog"

	"golden-key-funnel/internal/domain/funnel"
	"golden-key-funnel/internal/pkg/clock"
	"golden-key-funnel/internal/pkg/config"
	"golden-key-funnel/internal/usecase/commands"
	"golden-key-funnel/internal/usecase/queries"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseBaseOption,
	usecaseQueriesModule,
	usecaseCommandsModule,
)

var usecaseBaseOption = fx.Provide(
	clock.NewRealClock,
	func(cfg config.Config) funnel.Pages {
		return funnel.Pages{
			Registration: cfg.Funnel.RegistrationPage,
			Confirmation: cfg.Funnel.ConfirmationPage,
			Partners:     cfg.Funnel.PartnerPages,
		}
	},
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		NewSessionRegistry,
		commands.NewActivationCommands,
		commands.NewWebinarCommands,
	),
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewConfirmationQueries,
	),
)

type registryParams struct {
	fx.In

	Lifecycle fx.Lifecycle
	Config    config.Config
	Validator commands.VoucherValidator
	Publisher commands.EventPublisher
	Store     commands.ResultStore
	Clock     clock.Clock
	Logger    *slog.Logger
	Pages     funnel.Pages
}

// NewSessionRegistry starts the idle-session sweeper with the app and closes every session on stop.
func NewSessionRegistry(p registryParams) *commands.SessionRegistry {
	registry := commands.NewSessionRegistry(commands.OrchestratorDeps{
		Validator:           p.Validator,
		Publisher:           p.Publisher,
		Store:               p.Store,
		Clock:               p.Clock,
		Logger:              p.Logger,
		Pages:               p.Pages,
		ContinuationBaseURL: p.Config.Activation.ContinuationBaseURL,
	}, commands.RegistryConfig{
		DebounceDelay: p.Config.Activation.DebounceDelay,
		IdleTTL:       p.Config.Activation.SessionIdleTTL,
	})

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	p.Lifecycle.Append(fx.Hook{
		OnStart: func(_ context.Context) error {
			go func() {
				defer close(done)
				registry.Run(ctx, p.Config.Activation.SweepInterval)
			}()
			return nil
		},
		OnStop: func(stopCtx context.Context) error {
			cancel()
			select {
			case <-done:
			case <-stopCtx.Done():
				return stopCtx.Err()
			}
			registry.Close()
			return nil
		},
	})
	return registry
}
