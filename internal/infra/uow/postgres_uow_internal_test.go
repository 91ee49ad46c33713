//go:build unit

package uow

import (
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
)

func TestShouldRetry(t *testing.T) {
	serialization := &pgconn.PgError{Code: pgErrCodeSerializationFailure}
	deadlock := fmt.Errorf("insert: %w", &pgconn.PgError{Code: pgErrCodeDeadlockDetected})

	assert.True(t, shouldRetry(serialization, 0, 3))
	assert.True(t, shouldRetry(deadlock, 2, 3))
	assert.False(t, shouldRetry(serialization, 3, 3), "retries are bounded")
	assert.False(t, shouldRetry(&pgconn.PgError{Code: "23505"}, 0, 3))
	assert.False(t, shouldRetry(errors.New("conn reset"), 0, 3))
}

func TestCalculateBackoff(t *testing.T) {
	base := 50 * time.Millisecond
	for attempt := range 3 {
		got := calculateBackoff(attempt, base)
		floor := time.Duration(1<<attempt) * base
		assert.GreaterOrEqual(t, got, floor)
		assert.Less(t, got, floor+floor/5+time.Nanosecond)
	}
}
