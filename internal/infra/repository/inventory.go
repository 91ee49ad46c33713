package repository

import (
	"context"
	"log/slog"
	"time"

	"little-lemon/internal/domain/availability"
	"little-lemon/internal/infra"
	"little-lemon/internal/pkg/config"
	"little-lemon/internal/pkg/pgconv"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const slotUsageSQL = `SELECT slot, count(*) AS taken FROM reservations WHERE date = $1 GROUP BY slot`

type slotUsage struct {
	Slot  string `db:"slot"`
	Taken int    `db:"taken"`
}

// InventoryRepository offers the seeded slots for a date minus the ones
// already booked to capacity.
type InventoryRepository struct {
	pool     *pgxpool.Pool
	capacity int
	logger   *slog.Logger
}

func NewInventoryRepository(pool *pgxpool.Pool, cfg config.Config, logger *slog.Logger) *InventoryRepository {
	return &InventoryRepository{pool: pool, capacity: cfg.Booking.SlotCapacity, logger: logger}
}

func (r *InventoryRepository) TimesFor(ctx context.Context, date time.Time) ([]availability.TimeSlot, error) {
	rows, err := r.pool.Query(ctx, slotUsageSQL, pgconv.DateToPgtype(date))
	if err != nil {
		return nil, infra.WrapRepoErr(r.logger, "failed to load slot usage", err)
	}
	usage, err := pgx.CollectRows(rows, pgx.RowToStructByName[slotUsage])
	if err != nil {
		return nil, infra.WrapRepoErr(r.logger, "failed to scan slot usage", err)
	}

	full := make(map[string]bool, len(usage))
	for _, u := range usage {
		if u.Taken >= r.capacity {
			full[u.Slot] = true
		}
	}

	seeded := availability.TimesFor(date)
	offered := make([]availability.TimeSlot, 0, len(seeded))
	for _, slot := range seeded {
		if !full[slot.String()] {
			offered = append(offered, slot)
		}
	}
	return offered, nil
}
