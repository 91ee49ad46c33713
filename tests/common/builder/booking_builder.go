//go:build unit || e2e

package builder

import (
	"net/url"
	"strconv"
	"time"

	"little-lemon/internal/domain/booking"
	reqdto "little-lemon/internal/handler/dto/request"
)

type BookingBuilder struct {
	Date     string
	Time     string
	Guests   int
	Occasion string
}

// NewBookingBuilder returns a valid booking; 20:30 is offered on the 15th.
func NewBookingBuilder() *BookingBuilder {
	return &BookingBuilder{
		Date:     "2026-10-15",
		Time:     "20:30",
		Guests:   2,
		Occasion: string(booking.OccasionAnniversary),
	}
}

func (b *BookingBuilder) With(mutate func(*BookingBuilder)) *BookingBuilder {
	mutate(b)
	return b
}

func (b *BookingBuilder) WithGuests(n int) *BookingBuilder {
	b.Guests = n
	return b
}

func (b *BookingBuilder) WithDate(d string) *BookingBuilder {
	b.Date = d
	return b
}

func (b *BookingBuilder) WithTime(t string) *BookingBuilder {
	b.Time = t
	return b
}

// Build methods
func (b *BookingBuilder) BuildFields() booking.Fields {
	return booking.Fields{
		Date:     b.Date,
		Time:     b.Time,
		Guests:   b.Guests,
		Occasion: b.Occasion,
	}
}

func (b *BookingBuilder) BuildDraft() (booking.ReservationDraft, error) {
	return b.BuildFields().Draft()
}

func (b *BookingBuilder) MustBuildDraft() booking.ReservationDraft {
	d, err := b.BuildDraft()
	if err != nil {
		panic(err)
	}
	return d
}

func (b *BookingBuilder) BuildDateTime() time.Time {
	d, err := booking.ParseDate(b.Date)
	if err != nil {
		panic(err)
	}
	return d
}

func (b *BookingBuilder) BuildRequestDTO() reqdto.BookingRequest {
	guests := b.Guests
	occasion := b.Occasion
	return reqdto.BookingRequest{
		Date:     b.Date,
		Time:     b.Time,
		Guests:   &guests,
		Occasion: &occasion,
	}
}

func (b *BookingBuilder) BuildFormValues() url.Values {
	return url.Values{
		"date":     {b.Date},
		"time":     {b.Time},
		"guests":   {strconv.Itoa(b.Guests)},
		"occasion": {b.Occasion},
	}
}
