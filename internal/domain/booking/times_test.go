//go:build unit

package booking_test

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"little-lemon/internal/domain/availability"
	"little-lemon/internal/domain/booking"
	"little-lemon/internal/pkg/errs"
	availabilitymock "little-lemon/tests/mock/availability"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type TimesTestSuite struct {
	suite.Suite
	ctrl     *gomock.Controller
	provider *availabilitymock.MockProvider
}

func (s *TimesTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.provider = availabilitymock.NewMockProvider(s.ctrl)
}

func (s *TimesTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func TestTimesSuite(t *testing.T) {
	suite.Run(t, new(TimesTestSuite))
}

func (s *TimesTestSuite) TestInitialStateIsTimesForToday() {
	times, err := booking.NewTimes(context.Background(), availability.NewSeededProvider(), date(19))
	s.Require().NoError(err)

	s.Equal(availability.Strings(availability.TimesFor(date(19))), times.Current().Strings())
	s.Equal(date(19), times.Current().Date())
}

func (s *TimesTestSuite) TestInitialLoadFailure() {
	s.provider.EXPECT().TimesFor(gomock.Any(), date(19)).Return(nil, errors.New("boom"))

	_, err := booking.NewTimes(context.Background(), s.provider, date(19))
	s.True(errs.Is(err, booking.ErrAvailabilityUnavailable))
}

func (s *TimesTestSuite) TestDispatchReplacesState() {
	times, err := booking.NewTimes(context.Background(), availability.NewSeededProvider(), date(1))
	s.Require().NoError(err)

	next, err := times.Dispatch(context.Background(), booking.DateChanged{Date: date(15)})
	s.Require().NoError(err)

	s.Equal([]string{"17:00", "17:30", "20:30", "22:30"}, next.Strings())
	s.Equal(next, times.Current())
}

func (s *TimesTestSuite) TestUnknownEventIsIgnored() {
	times, err := booking.NewTimes(context.Background(), availability.NewSeededProvider(), date(1))
	s.Require().NoError(err)
	before := times.Current()

	after, err := times.Dispatch(context.Background(), unknownEvent{})
	s.NoError(err)
	s.Equal(before, after)
}

func (s *TimesTestSuite) TestProviderErrorKeepsState() {
	gomock.InOrder(
		s.provider.EXPECT().TimesFor(gomock.Any(), date(1)).Return(availability.TimesFor(date(1)), nil),
		s.provider.EXPECT().TimesFor(gomock.Any(), date(2)).Return(nil, errors.New("inventory offline")),
	)

	times, err := booking.NewTimes(context.Background(), s.provider, date(1))
	s.Require().NoError(err)

	state, err := times.Dispatch(context.Background(), booking.DateChanged{Date: date(2)})
	s.True(errs.Is(err, booking.ErrAvailabilityUnavailable))
	s.Equal(date(1), state.Date())
	s.Equal(date(1), times.Current().Date())
}

func (s *TimesTestSuite) TestFetchTimeout() {
	gomock.InOrder(
		s.provider.EXPECT().TimesFor(gomock.Any(), date(1)).Return(nil, nil),
		s.provider.EXPECT().TimesFor(gomock.Any(), date(2)).DoAndReturn(
			func(ctx context.Context, _ time.Time) ([]availability.TimeSlot, error) {
				<-ctx.Done()
				return nil, ctx.Err()
			}),
	)

	times, err := booking.NewTimes(context.Background(), s.provider, date(1), booking.WithFetchTimeout(10*time.Millisecond))
	s.Require().NoError(err)

	_, err = times.Dispatch(context.Background(), booking.DateChanged{Date: date(2)})
	s.True(errs.Is(err, booking.ErrAvailabilityUnavailable))
	s.ErrorIs(err, context.DeadlineExceeded)
}

// blockingProvider parks the first lookup for a date until released.
type blockingProvider struct {
	mu      sync.Mutex
	started map[int]chan struct{}
	release map[int]chan struct{}
}

func newBlockingProvider(days ...int) *blockingProvider {
	p := &blockingProvider{started: map[int]chan struct{}{}, release: map[int]chan struct{}{}}
	for _, d := range days {
		p.started[d] = make(chan struct{})
		p.release[d] = make(chan struct{})
	}
	return p
}

func (p *blockingProvider) TimesFor(_ context.Context, d time.Time) ([]availability.TimeSlot, error) {
	p.mu.Lock()
	started, ok := p.started[d.Day()]
	release := p.release[d.Day()]
	p.mu.Unlock()
	if ok {
		close(started)
		<-release
	}
	return availability.TimesFor(d), nil
}

func TestTimesLastWriteWins(t *testing.T) {
	provider := newBlockingProvider(2)
	times, err := booking.NewTimes(context.Background(), provider, date(1))
	require.NoError(t, err)

	staleErr := make(chan error, 1)
	go func() {
		_, err := times.Dispatch(context.Background(), booking.DateChanged{Date: date(2)})
		staleErr <- err
	}()
	<-provider.started[2]

	latest, err := times.Dispatch(context.Background(), booking.DateChanged{Date: date(15)})
	require.NoError(t, err)
	require.Equal(t, date(15), latest.Date())

	close(provider.release[2])
	require.ErrorIs(t, <-staleErr, booking.ErrStaleAvailability)

	require.Equal(t, date(15), times.Current().Date())
	require.Equal(t, availability.Strings(availability.TimesFor(date(15))), times.Current().Strings())
}

func TestTimesSupersededFetchIsCancelled(t *testing.T) {
	cancelled := make(chan struct{})
	provider := providerFunc(func(ctx context.Context, d time.Time) ([]availability.TimeSlot, error) {
		if d.Day() == 2 {
			<-ctx.Done()
			close(cancelled)
			return nil, ctx.Err()
		}
		return availability.TimesFor(d), nil
	})

	times, err := booking.NewTimes(context.Background(), provider, date(1))
	require.NoError(t, err)

	done := make(chan error, 1)
	go func() {
		_, err := times.Dispatch(context.Background(), booking.DateChanged{Date: date(2)})
		done <- err
	}()

	// retry until the slow fetch has registered, then supersede it
	require.Eventually(t, func() bool {
		_, err := times.Dispatch(context.Background(), booking.DateChanged{Date: date(3)})
		if err != nil {
			return false
		}
		select {
		case <-cancelled:
			return true
		default:
			return false
		}
	}, time.Second, 5*time.Millisecond)

	require.ErrorIs(t, <-done, booking.ErrStaleAvailability)
	require.Equal(t, date(3), times.Current().Date())
}

type providerFunc func(ctx context.Context, d time.Time) ([]availability.TimeSlot, error)

func (f providerFunc) TimesFor(ctx context.Context, d time.Time) ([]availability.TimeSlot, error) {
	return f(ctx, d)
}
