//go:build unit

package commands_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"little-lemon/internal/domain/availability"
	"little-lemon/internal/domain/booking"
	"little-lemon/internal/navigation"
	"little-lemon/internal/pkg/clock"
	"little-lemon/internal/pkg/config"
	"little-lemon/internal/pkg/errs"
	"little-lemon/internal/usecase"
	"little-lemon/internal/usecase/commands"
	"little-lemon/tests/common/builder"
	bookingmock "little-lemon/tests/mock/booking"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type BookingCommandsTestSuite struct {
	suite.Suite
	ctrl      *gomock.Controller
	submitter *bookingmock.MockSubmitter
	sess      *usecase.Session
	cmds      commands.BookingCommands
}

func (s *BookingCommandsTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.submitter = bookingmock.NewMockSubmitter(s.ctrl)

	cfg := config.NewTestConfig()
	cfg.Booking.TimeZone = "UTC"
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	clk := clock.NewMockClock(time.Date(2026, time.October, 1, 18, 0, 0, 0, time.UTC))

	store := usecase.NewSessionStore(cfg, availability.NewSeededProvider(), s.submitter, clk, logger)
	sess, err := store.Create(context.Background())
	s.Require().NoError(err)
	s.sess = sess
	s.sess.Router.Navigate(navigation.RouteBooking)

	s.cmds = commands.NewBookingCommands(logger)
}

func (s *BookingCommandsTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func TestBookingCommandsSuite(t *testing.T) {
	suite.Run(t, new(BookingCommandsTestSuite))
}

func (s *BookingCommandsTestSuite) TestChangeDate() {
	s.Run("valid date replaces the offered times", func() {
		times, err := s.cmds.ChangeDate(context.Background(), s.sess, "2026-10-15")
		s.Require().NoError(err)
		s.Equal([]string{"17:00", "17:30", "20:30", "22:30"}, times.Strings())
		s.Equal("2026-10-15", s.sess.Form.Fields().Date)
	})

	s.Run("invalid date keeps the current times", func() {
		times, err := s.cmds.ChangeDate(context.Background(), s.sess, "15/10/2026")
		s.ErrorIs(err, booking.ErrInvalidDate)
		s.Equal(15, times.Date().Day())
	})
}

func (s *BookingCommandsTestSuite) TestEditLeavesDateAlone() {
	_, err := s.cmds.ChangeDate(context.Background(), s.sess, "2026-10-15")
	s.Require().NoError(err)

	s.cmds.Edit(s.sess, booking.Fields{Date: "2026-12-24", Time: "17:30", Guests: 3, Occasion: "Other"})

	got := s.sess.Form.Fields()
	s.Equal("2026-10-15", got.Date)
	s.Equal("17:30", got.Time)
	s.Equal(3, got.Guests)
}

func (s *BookingCommandsTestSuite) TestSubmit() {
	s.Run("success navigates to confirmed", func() {
		s.submitter.EXPECT().Submit(gomock.Any(), gomock.Any()).Return(true, nil).Times(1)

		result, err := s.cmds.Submit(context.Background(), s.sess, builder.NewBookingBuilder().BuildFields())
		s.Require().NoError(err)
		s.Equal(navigation.RouteConfirmed, result.Route)
		s.Equal(builder.NewBookingBuilder().MustBuildDraft(), result.Draft)
		s.Equal(navigation.RouteConfirmed, s.sess.Router.Path())
	})

	s.Run("route is confirmed even if the visitor moves on meanwhile", func() {
		s.cmds.Reset(s.sess)
		s.submitter.EXPECT().Submit(gomock.Any(), gomock.Any()).Return(true, nil).Times(1)

		// a parallel page load syncs the router right after the navigation
		moved := false
		unsubscribe := s.sess.Router.Subscribe(func(path string) {
			if !moved && path == navigation.RouteConfirmed {
				moved = true
				s.sess.Router.Sync(navigation.RouteMenu)
			}
		})
		defer unsubscribe()

		result, err := s.cmds.Submit(context.Background(), s.sess, builder.NewBookingBuilder().BuildFields())
		s.Require().NoError(err)
		s.True(moved)
		s.Equal(navigation.RouteMenu, s.sess.Router.Path())
		s.Equal(navigation.RouteConfirmed, result.Route)
	})

	s.Run("reset allows a new booking", func() {
		s.cmds.Reset(s.sess)
		s.Equal(booking.StateEditing, s.sess.Form.State())
		s.Equal(booking.DefaultFields(), s.sess.Form.Fields())
	})

	s.Run("backend failure is returned and the form stays editable", func() {
		s.submitter.EXPECT().Submit(gomock.Any(), gomock.Any()).Return(false, errors.New("connection refused")).Times(1)

		result, err := s.cmds.Submit(context.Background(), s.sess, builder.NewBookingBuilder().BuildFields())
		s.Nil(result)
		s.True(errs.Is(err, booking.ErrSubmissionFailed))
		s.Equal(booking.StateEditing, s.sess.Form.State())
	})

	s.Run("invalid fields never reach the submitter", func() {
		result, err := s.cmds.Submit(context.Background(), s.sess, builder.NewBookingBuilder().WithGuests(0).BuildFields())
		s.Nil(result)
		s.ErrorIs(err, booking.ErrInvalidDraft)
	})
}
