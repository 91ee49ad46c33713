package components

import (
	"log/slog"

	"little-lemon/internal/domain/availability"
	"little-lemon/internal/domain/booking"
	"little-lemon/internal/infra/placeholder"
	"little-lemon/internal/infra/repository"
	"little-lemon/internal/infra/uow"
	"little-lemon/internal/pkg/clock"
	"little-lemon/internal/pkg/config"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"
)

var PersistenceModule = fx.Module("persistence",
	fx.Provide(
		NewUnitOfWork,
		NewAvailabilityProvider,
		NewSubmitter,
	),
)

func NewUnitOfWork(pool *pgxpool.Pool, logger *slog.Logger) *uow.PostgresUoW {
	if pool == nil {
		return nil
	}
	return uow.NewPostgresUoW(pool, logger)
}

func NewAvailabilityProvider(pool *pgxpool.Pool, cfg config.Config, logger *slog.Logger) availability.Provider {
	if pool == nil {
		return availability.NewSeededProvider()
	}
	return repository.NewInventoryRepository(pool, cfg, logger)
}

func NewSubmitter(pool *pgxpool.Pool, u *uow.PostgresUoW, cfg config.Config, clk clock.Clock, logger *slog.Logger) booking.Submitter {
	if pool == nil {
		return placeholder.NewSubmitter(logger)
	}
	return repository.NewReservationRepository(pool, u, cfg, clk, logger)
}
