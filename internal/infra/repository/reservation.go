package repository

import (
	"context"
	"log/slog"
	"time"

	"little-lemon/internal/domain/booking"
	"little-lemon/internal/infra"
	"little-lemon/internal/infra/uow"
	"little-lemon/internal/pkg/clock"
	"little-lemon/internal/pkg/config"
	"little-lemon/internal/pkg/pgconv"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"
)

// ReservationRecord is a stored reservation.
type ReservationRecord struct {
	ID        uuid.UUID
	Date      time.Time
	Time      string
	Guests    int
	Occasion  string
	CreatedAt time.Time
}

func recordFromDraft(id uuid.UUID, draft booking.ReservationDraft, now time.Time) ReservationRecord {
	return ReservationRecord{
		ID:        id,
		Date:      draft.Date(),
		Time:      draft.Time().String(),
		Guests:    draft.Guests(),
		Occasion:  draft.Occasion().String(),
		CreatedAt: now,
	}
}

// ReservationRepository accepts a reservation while the slot has capacity left.
type ReservationRepository struct {
	pool     *pgxpool.Pool
	uow      *uow.PostgresUoW
	capacity int
	clock    clock.Clock
	logger   *slog.Logger
}

func NewReservationRepository(pool *pgxpool.Pool, u *uow.PostgresUoW, cfg config.Config, clk clock.Clock, logger *slog.Logger) *ReservationRepository {
	return &ReservationRepository{
		pool:     pool,
		uow:      u,
		capacity: cfg.Booking.SlotCapacity,
		clock:    clk,
		logger:   logger,
	}
}

const (
	lockSlotSQL  = `SELECT pg_advisory_xact_lock(hashtext($1))`
	countSlotSQL = `SELECT count(*) FROM reservations WHERE date = $1 AND slot = $2`
	insertSQL    = `INSERT INTO reservations (id, date, slot, guests, occasion, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)`
	listByDateSQL = `SELECT id, date, slot, guests, occasion, created_at
		FROM reservations WHERE date = $1 ORDER BY slot, created_at`
)

// Submit implements booking.Submitter. A full slot is a refusal, not an error.
func (r *ReservationRepository) Submit(ctx context.Context, draft booking.ReservationDraft) (bool, error) {
	rec := recordFromDraft(uuid.New(), draft, r.clock.Now())

	var accepted bool
	err := r.uow.Within(ctx, func(ctx context.Context, tx pgx.Tx) error {
		accepted = false

		// serializes writers for one slot without locking the table
		if _, err := tx.Exec(ctx, lockSlotSQL, slotKey(rec.Date, rec.Time)); err != nil {
			return err
		}

		var taken int
		if err := tx.QueryRow(ctx, countSlotSQL, pgconv.DateToPgtype(rec.Date), rec.Time).Scan(&taken); err != nil {
			return err
		}
		if taken >= r.capacity {
			return nil
		}

		if _, err := tx.Exec(ctx, insertSQL,
			pgconv.UUIDToPgtype(rec.ID),
			pgconv.DateToPgtype(rec.Date),
			rec.Time,
			rec.Guests,
			rec.Occasion,
			pgconv.TimeToPgtype(rec.CreatedAt),
		); err != nil {
			return err
		}
		accepted = true
		return nil
	})
	if err != nil {
		return false, infra.WrapRepoErr(r.logger, "failed to submit reservation", err)
	}

	if !accepted {
		r.logger.Info("slot is full",
			slog.String("date", booking.FormatDate(rec.Date)),
			slog.String("time", rec.Time),
			slog.Int("capacity", r.capacity))
	}
	return accepted, nil
}

func (r *ReservationRepository) ListByDate(ctx context.Context, date time.Time) ([]ReservationRecord, error) {
	var records []ReservationRecord
	err := r.uow.WithinReadOnly(ctx, func(ctx context.Context, tx pgx.Tx) error {
		rows, err := tx.Query(ctx, listByDateSQL, pgconv.DateToPgtype(date))
		if err != nil {
			return err
		}
		records, err = pgx.CollectRows(rows, scanRecord)
		return err
	})
	if err != nil {
		return nil, infra.WrapRepoErr(r.logger, "failed to list reservations", err)
	}
	return records, nil
}

func scanRecord(row pgx.CollectableRow) (ReservationRecord, error) {
	var (
		id        pgtype.UUID
		date      pgtype.Date
		createdAt pgtype.Timestamptz
		rec       ReservationRecord
	)
	if err := row.Scan(&id, &date, &rec.Time, &rec.Guests, &rec.Occasion, &createdAt); err != nil {
		return ReservationRecord{}, err
	}
	rec.ID = pgconv.UUIDFromPgtype(id)
	rec.Date = pgconv.DateFromPgtype(date)
	rec.CreatedAt = pgconv.TimeFromPgtype(createdAt)
	return rec, nil
}

func slotKey(date time.Time, slot string) string {
	return booking.FormatDate(date) + "T" + slot
}
