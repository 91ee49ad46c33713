package booking

import (
	"context"
	"sync"
	"time"

	"little-lemon/internal/domain/availability"
	"little-lemon/internal/pkg/errs"
)

// Times owns the AvailableTimes state of one booking form. Date changes are
// last-write-wins: a newer dispatch cancels the fetch of an older one and any
// result that arrives for a superseded generation is dropped.
type Times struct {
	mu         sync.Mutex
	state      AvailableTimes
	generation uint64
	cancel     context.CancelFunc
	provider   availability.Provider
	timeout    time.Duration
}

type TimesOption func(*Times)

// WithFetchTimeout bounds every provider call.
func WithFetchTimeout(d time.Duration) TimesOption {
	return func(t *Times) { t.timeout = d }
}

// NewTimes loads the initial state for today.
func NewTimes(ctx context.Context, provider availability.Provider, today time.Time, opts ...TimesOption) (*Times, error) {
	t := &Times{provider: provider}
	for _, opt := range opts {
		opt(t)
	}
	if _, err := t.Dispatch(ctx, DateChanged{Date: today}); err != nil {
		return nil, err
	}
	return t, nil
}

func (t *Times) Current() AvailableTimes {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.state
}

// Dispatch applies ev and returns the resulting state. Unknown events leave
// the state untouched.
func (t *Times) Dispatch(ctx context.Context, ev Event) (AvailableTimes, error) {
	changed, ok := asDateChanged(ev)
	if !ok {
		t.mu.Lock()
		defer t.mu.Unlock()
		t.state = Reduce(t.state, ev, nil)
		return t.state, nil
	}

	t.mu.Lock()
	t.generation++
	gen := t.generation
	if t.cancel != nil {
		t.cancel()
	}
	fetchCtx, cancel := t.fetchContext(ctx)
	t.cancel = cancel
	t.mu.Unlock()

	slots, err := t.provider.TimesFor(fetchCtx, changed.Date)

	t.mu.Lock()
	defer t.mu.Unlock()
	if gen != t.generation {
		cancel()
		return t.state, ErrStaleAvailability
	}
	cancel()
	t.cancel = nil
	if err != nil {
		return t.state, errs.Mark(errs.Wrap(err, "times for "+FormatDate(changed.Date)), ErrAvailabilityUnavailable)
	}

	t.state = Reduce(t.state, changed, func(time.Time) []availability.TimeSlot { return slots })
	return t.state, nil
}

func (t *Times) fetchContext(ctx context.Context) (context.Context, context.CancelFunc) {
	if t.timeout > 0 {
		return context.WithTimeout(ctx, t.timeout)
	}
	return context.WithCancel(ctx)
}

func asDateChanged(ev Event) (DateChanged, bool) {
	switch e := ev.(type) {
	case DateChanged:
		return e, true
	case *DateChanged:
		if e != nil {
			return *e, true
		}
	}
	return DateChanged{}, false
}
