package request

import (
	"strings"

	"little-lemon/internal/domain/booking"
	"little-lemon/internal/pkg/patch"
)

// BookingRequest is bound from both the HTML form and JSON. Values are not
// validated here; the booking form re-validates every submission.
type BookingRequest struct {
	Date     string  `json:"date" form:"date" example:"2026-10-15"`
	Time     string  `json:"time" form:"time" example:"20:30"`
	Guests   *int    `json:"guests,omitempty" form:"guests" example:"2"`
	Occasion *string `json:"occasion,omitempty" form:"occasion" example:"Birthday"`
}

func (r BookingRequest) ToFields() booking.Fields {
	defaults := booking.DefaultFields()
	return booking.Fields{
		Date:     strings.TrimSpace(r.Date),
		Time:     strings.TrimSpace(r.Time),
		Guests:   patch.Coalesce(r.Guests, defaults.Guests),
		Occasion: strings.TrimSpace(patch.Coalesce(r.Occasion, defaults.Occasion)),
	}
}

type ChangeDateRequest struct {
	Date string `json:"date" form:"date" binding:"required" example:"2026-10-15"`
}

type AvailabilityQuery struct {
	Date string `form:"date" binding:"required"`
}
