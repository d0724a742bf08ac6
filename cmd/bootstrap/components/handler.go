package components

import (
	"golden-key-funnel/internal/handler"
	"golden-key-funnel/internal/handler/api"
	"golden-key-funnel/internal/handler/middleware"
	"golden-key-funnel/internal/handler/validation"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		validation.New,
		api.NewActivationHandler,
		api.NewWebinarHandler,
		api.NewConfirmationHandler,
		middleware.NewSessionMiddleware,
	),
	fx.Invoke(handler.NewRouter),
)
