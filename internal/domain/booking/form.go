package booking

import (
	"context"
	"sync"
	"time"

	"little-lemon/internal/pkg/errs"
)

// ConfirmedRoute is where a successful submission navigates to.
const ConfirmedRoute = "/confirmed"

//go:generate mockgen -source=form.go -destination=../../../tests/mock/booking/booking_mock.go -package=bookingmock

// Submitter hands a completed draft to the reservation backend. false means
// the backend declined it; an error means the backend could not be reached.
type Submitter interface {
	Submit(ctx context.Context, draft ReservationDraft) (bool, error)
}

type Navigator interface {
	Navigate(path string)
}

type State int

const (
	StateEditing State = iota
	StateSubmitting
	StateConfirmed
)

func (s State) String() string {
	switch s {
	case StateEditing:
		return "editing"
	case StateSubmitting:
		return "submitting"
	case StateConfirmed:
		return "confirmed"
	default:
		return "unknown"
	}
}

type Form struct {
	mu        sync.Mutex
	fields    Fields
	state     State
	lastErr   error
	confirmed *ReservationDraft

	times     *Times
	submitter Submitter
	navigator Navigator
	timeout   time.Duration
}

type FormOption func(*Form)

// WithSubmitTimeout bounds the Submitter call.
func WithSubmitTimeout(d time.Duration) FormOption {
	return func(f *Form) { f.timeout = d }
}

func NewForm(times *Times, submitter Submitter, navigator Navigator, opts ...FormOption) *Form {
	f := &Form{
		fields:    DefaultFields(),
		state:     StateEditing,
		times:     times,
		submitter: submitter,
		navigator: navigator,
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

func (f *Form) Fields() Fields {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.fields
}

func (f *Form) State() State {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.state
}

// Err is the last submission or validation error, cleared by a successful submit.
func (f *Form) Err() error {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.lastErr
}

func (f *Form) Times() AvailableTimes {
	return f.times.Current()
}

// CanSubmit drives the enabled state of the submit control.
func (f *Form) CanSubmit() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.state == StateEditing && f.fields.Valid()
}

func (f *Form) Confirmation() (ReservationDraft, bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.confirmed == nil {
		return ReservationDraft{}, false
	}
	return *f.confirmed, true
}

// Edit updates time, guests and occasion. The date only changes through ChangeDate.
func (f *Form) Edit(fields Fields) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.state != StateEditing {
		return
	}
	fields.Date = f.fields.Date
	f.fields = fields
}

// ChangeDate records the picked date and refreshes the offered times.
func (f *Form) ChangeDate(ctx context.Context, date string) (AvailableTimes, error) {
	if date == "" {
		f.mu.Lock()
		f.fields.Date = ""
		f.mu.Unlock()
		return f.times.Current(), nil
	}

	parsed, err := ParseDate(date)
	if err != nil {
		return f.times.Current(), err
	}

	f.mu.Lock()
	switch f.state {
	case StateSubmitting:
		f.mu.Unlock()
		return f.times.Current(), ErrSubmitInProgress
	case StateConfirmed:
		f.mu.Unlock()
		return f.times.Current(), ErrAlreadyConfirmed
	}
	f.fields.Date = date
	f.mu.Unlock()

	return f.times.Dispatch(ctx, DateChanged{Date: parsed})
}

// Submit re-validates fields regardless of what the client thought, then
// hands the draft to the Submitter. Only one submission may be outstanding.
// On failure the form returns to editing with the fields kept.
func (f *Form) Submit(ctx context.Context, fields Fields) (ReservationDraft, error) {
	f.mu.Lock()
	switch f.state {
	case StateSubmitting:
		f.mu.Unlock()
		return ReservationDraft{}, ErrSubmitInProgress
	case StateConfirmed:
		f.mu.Unlock()
		return ReservationDraft{}, ErrAlreadyConfirmed
	}

	f.fields = fields
	if !fields.Valid() {
		err := errs.WithDetail(ErrInvalidDraft, fields.Validate())
		f.lastErr = err
		f.mu.Unlock()
		return ReservationDraft{}, err
	}
	draft, err := fields.Draft()
	if err != nil {
		f.lastErr = err
		f.mu.Unlock()
		return ReservationDraft{}, err
	}

	f.state = StateSubmitting
	f.mu.Unlock()

	accepted, submitErr := f.submit(ctx, draft)

	f.mu.Lock()
	switch {
	case submitErr != nil:
		f.state = StateEditing
		f.lastErr = errs.Mark(errs.Wrap(submitErr, "submit reservation"), ErrSubmissionFailed)
		err := f.lastErr
		f.mu.Unlock()
		return ReservationDraft{}, err
	case !accepted:
		f.state = StateEditing
		f.lastErr = ErrSubmissionRejected
		f.mu.Unlock()
		return ReservationDraft{}, ErrSubmissionRejected
	}
	f.state = StateConfirmed
	f.lastErr = nil
	f.confirmed = &draft
	f.mu.Unlock()

	// outside the lock: navigation listeners may read the form
	f.navigator.Navigate(ConfirmedRoute)
	return draft, nil
}

// Reset starts a new booking. Offered times are kept.
func (f *Form) Reset() {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.state == StateSubmitting {
		return
	}
	f.fields = DefaultFields()
	f.state = StateEditing
	f.lastErr = nil
}

func (f *Form) submit(ctx context.Context, draft ReservationDraft) (bool, error) {
	// a panicking Submitter must not leave the form stuck in Submitting
	defer func() {
		if r := recover(); r != nil {
			f.mu.Lock()
			f.state = StateEditing
			f.lastErr = errs.Mark(errs.Newf("submitter panicked: %v", r), ErrSubmissionFailed)
			f.mu.Unlock()
			panic(r)
		}
	}()

	if f.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, f.timeout)
		defer cancel()
	}
	return f.submitter.Submit(ctx, draft)
}
