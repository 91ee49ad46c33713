package queries

import (
	"context"
	"time"

	"little-lemon/internal/domain/availability"
	"little-lemon/internal/domain/booking"
	"little-lemon/internal/pkg/config"
	"little-lemon/internal/pkg/errs"
	"little-lemon/internal/usecase"
)

//go:generate mockgen -source=booking.go -destination=../../../tests/mock/queries/booking_mock.go -package=queriesmock

// AvailabilityView is the set of bookable times for one date.
type AvailabilityView struct {
	Date  string
	Times []string
}

// ConfirmationView describes the reservation the visitor last confirmed.
type ConfirmationView struct {
	Date     string
	Time     string
	Guests   int
	Occasion string
}

// BookingView is a read-only snapshot of a visitor's booking form.
type BookingView struct {
	Route        string
	State        string
	Fields       booking.Fields
	Times        AvailabilityView
	CanSubmit    bool
	Errors       booking.FieldErrors
	Message      string
	Confirmation *ConfirmationView
}

type BookingQueries interface {
	Availability(ctx context.Context, date string) (*AvailabilityView, error)
	Snapshot(sess *usecase.Session) *BookingView
}

type bookingQueriesImpl struct {
	provider availability.Provider
	timeout  time.Duration
}

func NewBookingQueries(provider availability.Provider, cfg config.Config) BookingQueries {
	return &bookingQueriesImpl{provider: provider, timeout: cfg.Booking.AvailabilityTimeout}
}

// Availability is stateless: it answers for any date without touching a session.
func (q *bookingQueriesImpl) Availability(ctx context.Context, date string) (*AvailabilityView, error) {
	d, err := booking.ParseDate(date)
	if err != nil {
		return nil, err
	}

	if q.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, q.timeout)
		defer cancel()
	}
	slots, err := q.provider.TimesFor(ctx, d)
	if err != nil {
		return nil, errs.Mark(errs.Wrap(err, "lookup availability"), booking.ErrAvailabilityUnavailable)
	}
	return &AvailabilityView{Date: booking.FormatDate(d), Times: availability.Strings(slots)}, nil
}

func (q *bookingQueriesImpl) Snapshot(sess *usecase.Session) *BookingView {
	form := sess.Form
	fields := form.Fields()
	times := form.Times()

	view := &BookingView{
		Route:     sess.Router.Path(),
		State:     form.State().String(),
		Fields:    fields,
		Times:     AvailabilityView{Date: booking.FormatDate(times.Date()), Times: times.Strings()},
		CanSubmit: form.CanSubmit(),
	}

	if err := form.Err(); err != nil {
		if fe, ok := errs.DetailOf[booking.FieldErrors](err); ok {
			view.Errors = fe
		}
		view.Message = UserMessage(err)
	}

	if draft, ok := form.Confirmation(); ok {
		view.Confirmation = &ConfirmationView{
			Date:     booking.FormatDate(draft.Date()),
			Time:     draft.Time().String(),
			Guests:   draft.Guests(),
			Occasion: draft.Occasion().String(),
		}
	}
	return view
}

// UserMessage turns a booking error into copy suitable for the visitor.
func UserMessage(err error) string {
	switch {
	case err == nil:
		return ""
	case errs.Is(err, booking.ErrInvalidDraft):
		return "Please correct the highlighted fields."
	case errs.Is(err, booking.ErrInvalidDate):
		return "Please choose a valid date."
	case errs.Is(err, booking.ErrSubmissionRejected):
		return "Sorry, that time is no longer available. Please choose another time."
	case errs.Is(err, booking.ErrSubmissionFailed):
		return "We could not reach our reservation system. Your details are kept, please try again."
	case errs.Is(err, booking.ErrAvailabilityUnavailable):
		return "We could not load available times. Please try again."
	case errs.Is(err, booking.ErrSubmitInProgress):
		return "Your reservation is already being submitted."
	case errs.Is(err, booking.ErrAlreadyConfirmed):
		return "Your reservation is already confirmed."
	default:
		return "Something went wrong. Please try again."
	}
}
