package components

import (
	"context"
	"log/slog"

	"little-lemon/internal/content"
	"little-lemon/internal/pkg/clock"
	"little-lemon/internal/pkg/config"
	"little-lemon/internal/usecase"
	"little-lemon/internal/usecase/commands"
	"little-lemon/internal/usecase/queries"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseBaseOption,
	usecaseQueriesModule,
	usecaseCommandsModule,
	fx.Invoke(startSessionJanitor),
)

var usecaseBaseOption = fx.Provide(
	clock.NewRealClock,
	content.Default,
	usecase.NewSessionStore,
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		commands.NewBookingCommands,
	),
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewBookingQueries,
		queries.NewContentQueries,
	),
)

func startSessionJanitor(lc fx.Lifecycle, store *usecase.SessionStore, cfg config.Config, logger *slog.Logger) {
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})

	lc.Append(fx.Hook{
		OnStart: func(_ context.Context) error {
			go func() {
				defer close(done)
				store.RunJanitor(ctx, cfg.Session.SweepInterval)
			}()
			logger.Debug("session janitor started", slog.Duration("interval", cfg.Session.SweepInterval))
			return nil
		},
		OnStop: func(stopCtx context.Context) error {
			cancel()
			select {
			case <-done:
			case <-stopCtx.Done():
			}
			return nil
		},
	})
}
