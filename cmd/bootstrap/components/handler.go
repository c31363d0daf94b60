package components

import (
	"sinistro-sync/internal/handler"
	"sinistro-sync/internal/handler/api"
	"sinistro-sync/internal/handler/middleware"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewWebhookHandler,
		api.NewSinistroHandler,
		api.NewWebhookEventHandler,
		middleware.NewAuthMiddleware,
		func(w *api.WebhookHandler, s *api.SinistroHandler, e *api.WebhookEventHandler) handler.Handlers {
			return handler.Handlers{Webhook: w, Sinistro: s, WebhookEvent: e}
		},
	),
	fx.Invoke(handler.NewRouter),
)
