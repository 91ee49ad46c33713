//go:build unit

package response_test

import (
	"testing"

	"little-lemon/internal/domain/booking"
	"little-lemon/internal/handler/dto/response"
	"little-lemon/internal/usecase/commands"
	"little-lemon/internal/usecase/queries"
	"little-lemon/tests/common/builder"

	"github.com/stretchr/testify/assert"
)

func TestFromBookingView(t *testing.T) {
	view := &queries.BookingView{
		Route:     "/booking",
		State:     "editing",
		Fields:    booking.Fields{Date: "2026-10-15", Time: "16:00", Guests: 2, Occasion: "Other"},
		Times:     queries.AvailabilityView{Date: "2026-10-15", Times: []string{"17:00", "17:30"}},
		CanSubmit: true,
		Errors:    booking.FieldErrors{"time": "Please choose one of the offered times"},
		Message:   "Please correct the highlighted fields.",
	}

	got := response.FromBookingView(view)

	assert.Equal(t, response.BookingFieldsResponse{Date: "2026-10-15", Time: "16:00", Guests: 2, Occasion: "Other"}, got.Fields)
	assert.Equal(t, []string{"17:00", "17:30"}, got.Times.Times)
	assert.Equal(t, map[string]string{"time": "Please choose one of the offered times"}, got.Errors)
	assert.Nil(t, got.Confirmation)

	view.Confirmation = &queries.ConfirmationView{Date: "2026-10-15", Time: "17:00", Guests: 2, Occasion: "Other"}
	got = response.FromBookingView(view)
	assert.Equal(t, &response.ReservationResponse{Date: "2026-10-15", Time: "17:00", Guests: 2, Occasion: "Other"}, got.Confirmation)
}

func TestFromAvailabilityViewNeverNil(t *testing.T) {
	got := response.FromAvailabilityView(&queries.AvailabilityView{Date: "2026-10-03"})
	assert.NotNil(t, got.Times, "an empty day serializes as [] not null")
	assert.Empty(t, got.Times)
}

func TestFromSubmitResult(t *testing.T) {
	got := response.FromSubmitResult(&commands.SubmitResult{
		Route: "/confirmed",
		Draft: builder.NewBookingBuilder().MustBuildDraft(),
	})

	assert.Equal(t, "/confirmed", got.Route)
	assert.Equal(t, response.ReservationResponse{Date: "2026-10-15", Time: "20:30", Guests: 2, Occasion: "Anniversary"}, got.Reservation)
}
