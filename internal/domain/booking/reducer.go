package booking

import (
	"slices"
	"time"

	"little-lemon/internal/domain/availability"
)

type EventKind string

const KindDateChanged EventKind = "DateChanged"

// Event is dispatched to the reducer. Kinds other than DateChanged are
// accepted and ignored.
type Event interface {
	Kind() EventKind
}

type DateChanged struct {
	Date time.Time
}

func (DateChanged) Kind() EventKind { return KindDateChanged }

// AvailableTimes is the reducer state. It is replaced wholesale, never edited.
type AvailableTimes struct {
	date  time.Time
	slots []availability.TimeSlot
}

func NewAvailableTimes(date time.Time, slots []availability.TimeSlot) AvailableTimes {
	return AvailableTimes{date: date, slots: slices.Clone(slots)}
}

func (a AvailableTimes) Date() time.Time { return a.date }
func (a AvailableTimes) Len() int        { return len(a.slots) }
func (a AvailableTimes) IsEmpty() bool   { return len(a.slots) == 0 }

func (a AvailableTimes) Slots() []availability.TimeSlot {
	return slices.Clone(a.slots)
}

func (a AvailableTimes) Strings() []string {
	return availability.Strings(a.slots)
}

func (a AvailableTimes) Contains(slot availability.TimeSlot) bool {
	return slices.Contains(a.slots, slot)
}

type TimesFunc func(date time.Time) []availability.TimeSlot

// Reduce is the pure transition function of the available-times state.
func Reduce(state AvailableTimes, ev Event, timesFor TimesFunc) AvailableTimes {
	switch e := ev.(type) {
	case DateChanged:
		return NewAvailableTimes(e.Date, timesFor(e.Date))
	case *DateChanged:
		if e == nil {
			return state
		}
		return NewAvailableTimes(e.Date, timesFor(e.Date))
	default:
		return state
	}
}
