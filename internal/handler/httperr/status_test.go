//go:build unit

package httperr_test

import (
	"errors"
	"net/http"
	"testing"

	"little-lemon/internal/domain/availability"
	"little-lemon/internal/domain/booking"
	"little-lemon/internal/handler/httperr"
	"little-lemon/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
)

func TestStatusFor(t *testing.T) {
	cases := []struct {
		name string
		err  error
		want int
	}{
		{"invalid draft with detail", errs.WithDetail(booking.ErrInvalidDraft, booking.FieldErrors{"guests": "x"}), http.StatusUnprocessableEntity},
		{"invalid date", errs.Wrap(booking.ErrInvalidDate, "tomorrow"), http.StatusUnprocessableEntity},
		{"invalid slot", availability.ErrInvalidTimeSlot, http.StatusUnprocessableEntity},
		{"in progress", booking.ErrSubmitInProgress, http.StatusConflict},
		{"confirmed", booking.ErrAlreadyConfirmed, http.StatusConflict},
		{"rejected", booking.ErrSubmissionRejected, http.StatusConflict},
		{"failed", errs.Mark(errors.New("dial tcp"), booking.ErrSubmissionFailed), http.StatusServiceUnavailable},
		{"availability", errs.Mark(errors.New("timeout"), booking.ErrAvailabilityUnavailable), http.StatusServiceUnavailable},
		{"session", errs.Mark(errors.New("boom"), errs.ErrSessionUnavailable), http.StatusServiceUnavailable},
		{"unknown", errors.New("boom"), http.StatusInternalServerError},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, msg := httperr.StatusFor(tc.err)
			assert.Equal(t, tc.want, got)
			assert.NotEmpty(t, msg)
		})
	}
}
