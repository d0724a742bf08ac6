package components

import (
	"context"
	"log/slog"

	"golden-key-funnel/internal/infra/metrics"
	"golden-key-funnel/internal/infra/resultstore"
	"golden-key-funnel/internal/infra/voucher"
	"golden-key-funnel/internal/infra/webhook"
	"golden-key-funnel/internal/pkg/config"
	"golden-key-funnel/internal/usecase/commands"
	"golden-key-funnel/internal/usecase/queries"

	"go.uber.org/fx"
)

var InfraModule = fx.Module("infra",
	fx.Provide(
		fx.Annotate(
			NewVoucherClient,
			fx.As(new(commands.VoucherValidator)),
		),
		fx.Annotate(
			NewWebhookPublisher,
			fx.As(new(commands.EventPublisher)),
		),
		fx.Annotate(
			resultstore.NewCarrier,
			fx.ParamTags(`name:"session"`, `name:"durable"`),
			fx.As(new(commands.ResultStore)),
			fx.As(new(queries.ActivationReadStore)),
		),
	),
	fx.Invoke(metrics.MustRegister),
)

func NewVoucherClient(cfg config.Config, logger *slog.Logger) *voucher.Client {
	return voucher.NewClient(cfg.Voucher, logger)
}

// NewWebhookPublisher drains in-flight telemetry before the process exits.
func NewWebhookPublisher(lc fx.Lifecycle, cfg config.Config, logger *slog.Logger) *webhook.Publisher {
	p := webhook.NewPublisher(cfg.Webhook, logger)
	lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			return p.Close(ctx)
		},
	})
	return p
}
