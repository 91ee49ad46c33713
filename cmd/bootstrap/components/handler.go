package components

import (
	"log/slog"

	"little-lemon/internal/handler"
	"little-lemon/internal/handler/api"
	"little-lemon/internal/handler/middleware"
	"little-lemon/internal/handler/web"
	"little-lemon/internal/pkg/config"
	"little-lemon/internal/pkg/cookie"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		NewSessionCodec,
		middleware.NewSessionMiddleware,
		api.NewBookingHandler,
		api.NewAvailabilityHandler,
		web.NewPages,
	),
	fx.Invoke(handler.NewRouter),
)

func NewSessionCodec(cfg config.Config, logger *slog.Logger) (*cookie.SessionCodec, error) {
	codec, generated, err := cookie.NewSessionCodec(cfg.Session)
	if err != nil {
		return nil, err
	}
	if generated {
		logger.Warn("session keys not configured, generated random keys; sessions will not survive a restart")
	}
	return codec, nil
}
