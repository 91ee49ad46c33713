package booking

import (
	"time"

	"little-lemon/internal/domain/availability"
	"little-lemon/internal/pkg/errs"
)

const (
	MinGuests = 1
	MaxGuests = 10

	DateLayout = "2006-01-02"
)

// Fields is the editable, possibly incomplete form state.
type Fields struct {
	Date     string
	Time     string
	Guests   int
	Occasion string
}

func DefaultFields() Fields {
	return Fields{
		Guests:   MinGuests,
		Occasion: string(OccasionBirthday),
	}
}

// Valid gates the submit control: every field present and guests in range.
func (f Fields) Valid() bool {
	return f.Date != "" &&
		f.Time != "" &&
		f.Guests >= MinGuests && f.Guests <= MaxGuests &&
		f.Occasion != ""
}

// FieldErrors maps a form field name to a user facing message.
type FieldErrors map[string]string

func (fe FieldErrors) Has(field string) bool {
	_, ok := fe[field]
	return ok
}

// Validate reports inline messages. It is stricter than Valid: values must
// also parse.
func (f Fields) Validate() FieldErrors {
	fe := FieldErrors{}

	if f.Date == "" {
		fe["date"] = "Please choose a date"
	} else if _, err := ParseDate(f.Date); err != nil {
		fe["date"] = "Please choose a valid date"
	}

	if f.Time == "" {
		fe["time"] = "Please choose a time"
	} else if _, err := availability.ParseTimeSlot(f.Time); err != nil {
		fe["time"] = "Please choose one of the offered times"
	}

	if f.Guests < MinGuests || f.Guests > MaxGuests {
		fe["guests"] = "Number of guests must be between 1 and 10"
	}

	if f.Occasion == "" {
		fe["occasion"] = "Please choose an occasion"
	} else if _, err := ParseOccasion(f.Occasion); err != nil {
		fe["occasion"] = "Please choose Birthday, Anniversary or Other"
	}

	if len(fe) == 0 {
		return nil
	}
	return fe
}

// Draft converts valid fields into a ReservationDraft. Invalid fields yield
// ErrInvalidDraft carrying FieldErrors as detail.
func (f Fields) Draft() (ReservationDraft, error) {
	if fe := f.Validate(); fe != nil {
		return ReservationDraft{}, errs.WithDetail(ErrInvalidDraft, fe)
	}
	date, _ := ParseDate(f.Date)
	slot, _ := availability.ParseTimeSlot(f.Time)
	occasion, _ := ParseOccasion(f.Occasion)
	return NewReservationDraft(date, slot, f.Guests, occasion)
}

// ParseDate reads the HTML date input format. The result is midnight UTC so
// Day() is the calendar day the visitor picked.
func ParseDate(s string) (time.Time, error) {
	d, err := time.Parse(DateLayout, s)
	if err != nil {
		return time.Time{}, errs.Wrap(ErrInvalidDate, s)
	}
	return d, nil
}

func FormatDate(t time.Time) string {
	return t.Format(DateLayout)
}

type ReservationDraft struct {
	date     time.Time
	time     availability.TimeSlot
	guests   int
	occasion Occasion
}

func NewReservationDraft(date time.Time, slot availability.TimeSlot, guests int, occasion Occasion) (ReservationDraft, error) {
	if date.IsZero() {
		return ReservationDraft{}, ErrInvalidDate
	}
	if slot.IsZero() {
		return ReservationDraft{}, availability.ErrInvalidTimeSlot
	}
	if guests < MinGuests || guests > MaxGuests {
		return ReservationDraft{}, ErrInvalidGuests
	}
	if _, err := ParseOccasion(string(occasion)); err != nil {
		return ReservationDraft{}, err
	}
	return ReservationDraft{
		date:     time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, time.UTC),
		time:     slot,
		guests:   guests,
		occasion: occasion,
	}, nil
}

func (d ReservationDraft) Date() time.Time             { return d.date }
func (d ReservationDraft) Time() availability.TimeSlot { return d.time }
func (d ReservationDraft) Guests() int                 { return d.guests }
func (d ReservationDraft) Occasion() Occasion          { return d.occasion }

func (d ReservationDraft) Fields() Fields {
	return Fields{
		Date:     FormatDate(d.date),
		Time:     d.time.String(),
		Guests:   d.guests,
		Occasion: string(d.occasion),
	}
}
