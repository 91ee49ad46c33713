//go:build unit

package pgconv_test

import (
	"fmt"
	"testing"
	"time"

	"little-lemon/internal/pkg/pgconv"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/stretchr/testify/assert"
)

func TestDateRoundTrip(t *testing.T) {
	chicago := time.FixedZone("CDT", -5*60*60)
	evening := time.Date(2026, time.October, 15, 22, 45, 0, 0, chicago)

	pd := pgconv.DateToPgtype(evening)
	assert.True(t, pd.Valid)
	assert.Equal(t, time.Date(2026, time.October, 15, 0, 0, 0, 0, time.UTC), pgconv.DateFromPgtype(pd))

	assert.False(t, pgconv.DateToPgtype(time.Time{}).Valid)
	assert.True(t, pgconv.DateFromPgtype(pgtype.Date{}).IsZero())
}

func TestUUID(t *testing.T) {
	id := uuid.New()
	assert.Equal(t, id, pgconv.UUIDFromPgtype(pgconv.UUIDToPgtype(id)))
	assert.Equal(t, uuid.Nil, pgconv.UUIDFromPgtype(pgtype.UUID{}))
}

func TestIsNoRows(t *testing.T) {
	assert.True(t, pgconv.IsNoRows(pgx.ErrNoRows))
	assert.True(t, pgconv.IsNoRows(fmt.Errorf("find: %w", pgx.ErrNoRows)))
	assert.False(t, pgconv.IsNoRows(nil))
}
