//go:build unit || e2e

package dbtest

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
)

// InsertReservation books one seat directly, bypassing the capacity check.
func InsertReservation(t *testing.T, db DBLike, date, slot string, guests int) uuid.UUID {
	t.Helper()

	id := uuid.New()
	_, err := db.Exec(context.Background(),
		"INSERT INTO reservations (id, date, slot, guests, occasion) VALUES ($1, $2::date, $3, $4, 'Other')",
		id, date, slot, guests)
	require.NoError(t, err)
	return id
}

// FillSlot books a slot up to capacity.
func FillSlot(t *testing.T, db DBLike, date, slot string, capacity int) {
	t.Helper()
	for range capacity {
		InsertReservation(t, db, date, slot, 2)
	}
}

func CountReservations(t *testing.T, db DBLike, date, slot string) int {
	t.Helper()

	var n int
	err := db.QueryRow(context.Background(),
		"SELECT count(*) FROM reservations WHERE date = $1::date AND slot = $2", date, slot).Scan(&n)
	require.NoError(t, err)
	return n
}

// ResetDB empties every table except the migration ledger.
func ResetDB(pool *pgxpool.Pool) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	_, err := pool.Exec(ctx, "TRUNCATE reservations")
	return err
}
