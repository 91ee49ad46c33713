package commands

import (
	"context"
	"log/slog"

	"little-lemon/internal/domain/booking"
	"little-lemon/internal/pkg/errs"
	"little-lemon/internal/usecase"
)

//go:generate mockgen -source=booking.go -destination=../../../tests/mock/commands/booking_mock.go -package=commandsmock

type SubmitResult struct {
	Route string
	Draft booking.ReservationDraft
}

type BookingCommands interface {
	ChangeDate(ctx context.Context, sess *usecase.Session, date string) (booking.AvailableTimes, error)
	Edit(sess *usecase.Session, fields booking.Fields)
	Submit(ctx context.Context, sess *usecase.Session, fields booking.Fields) (*SubmitResult, error)
	Reset(sess *usecase.Session)
}

type bookingCommandsImpl struct {
	logger *slog.Logger
}

func NewBookingCommands(logger *slog.Logger) BookingCommands {
	return &bookingCommandsImpl{logger: logger}
}

func (uc *bookingCommandsImpl) ChangeDate(ctx context.Context, sess *usecase.Session, date string) (booking.AvailableTimes, error) {
	times, err := sess.Form.ChangeDate(ctx, date)
	switch {
	case err == nil:
		uc.logger.Debug("availability refreshed",
			slog.String("session_id", sess.ID.String()),
			slog.String("date", date),
			slog.Int("slots", times.Len()))
	case errs.Is(err, booking.ErrStaleAvailability):
		// a newer date won; what the visitor sees next is already current
		return sess.Times.Current(), nil
	case errs.Is(err, booking.ErrAvailabilityUnavailable):
		uc.logger.Warn("availability lookup failed",
			slog.String("session_id", sess.ID.String()),
			slog.String("date", date),
			slog.String("error", err.Error()))
	}
	return times, err
}

func (uc *bookingCommandsImpl) Edit(sess *usecase.Session, fields booking.Fields) {
	sess.Form.Edit(fields)
}

func (uc *bookingCommandsImpl) Submit(ctx context.Context, sess *usecase.Session, fields booking.Fields) (*SubmitResult, error) {
	draft, err := sess.Form.Submit(ctx, fields)
	if err != nil {
		attrs := []any{
			slog.String("session_id", sess.ID.String()),
			slog.String("error", err.Error()),
		}
		switch {
		case errs.Is(err, booking.ErrSubmissionFailed):
			uc.logger.Error("reservation submission failed", attrs...)
		case errs.Is(err, booking.ErrSubmissionRejected):
			uc.logger.Info("reservation rejected", attrs...)
		}
		return nil, err
	}

	uc.logger.Info("reservation confirmed",
		slog.String("session_id", sess.ID.String()),
		slog.String("date", booking.FormatDate(draft.Date())),
		slog.String("time", draft.Time().String()),
		slog.Int("guests", draft.Guests()))

	return &SubmitResult{Route: booking.ConfirmedRoute, Draft: draft}, nil
}

func (uc *bookingCommandsImpl) Reset(sess *usecase.Session) {
	sess.Form.Reset()
}
