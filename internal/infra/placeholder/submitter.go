// Package placeholder holds the reservation backend used when no database is
// configured.
package placeholder

import (
	"context"
	"log/slog"

	"little-lemon/internal/domain/booking"
)

// Submitter accepts every reservation.
type Submitter struct {
	logger *slog.Logger
}

func NewSubmitter(logger *slog.Logger) *Submitter {
	return &Submitter{logger: logger}
}

func (s *Submitter) Submit(ctx context.Context, draft booking.ReservationDraft) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}
	s.logger.Debug("reservation accepted without a backend",
		slog.String("date", booking.FormatDate(draft.Date())),
		slog.String("time", draft.Time().String()))
	return true, nil
}
