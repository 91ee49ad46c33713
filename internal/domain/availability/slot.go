package availability

import (
	"fmt"

	"little-lemon/internal/pkg/errs"
)

const (
	FirstHour = 17
	LastHour  = 23
)

var ErrInvalidTimeSlot = errs.Mark(errs.New("invalid time slot"), errs.ErrDomainValidation)

// TimeSlot is a bookable half-hour between 17:00 and 23:30.
type TimeSlot struct {
	hour   int
	minute int
}

func NewTimeSlot(hour, minute int) (TimeSlot, error) {
	if hour < FirstHour || hour > LastHour || (minute != 0 && minute != 30) {
		return TimeSlot{}, ErrInvalidTimeSlot
	}
	return TimeSlot{hour: hour, minute: minute}, nil
}

// ParseTimeSlot accepts the "HH:MM" form produced by String.
func ParseTimeSlot(s string) (TimeSlot, error) {
	var hour, minute int
	if len(s) != 5 || s[2] != ':' {
		return TimeSlot{}, ErrInvalidTimeSlot
	}
	if _, err := fmt.Sscanf(s, "%02d:%02d", &hour, &minute); err != nil {
		return TimeSlot{}, ErrInvalidTimeSlot
	}
	return NewTimeSlot(hour, minute)
}

func MustParseTimeSlot(s string) TimeSlot {
	ts, err := ParseTimeSlot(s)
	if err != nil {
		panic(err)
	}
	return ts
}

// Candidates lists every slot the restaurant can offer, in serving order.
func Candidates() []TimeSlot {
	out := make([]TimeSlot, 0, (LastHour-FirstHour+1)*2)
	for h := FirstHour; h <= LastHour; h++ {
		out = append(out, TimeSlot{hour: h}, TimeSlot{hour: h, minute: 30})
	}
	return out
}

func (ts TimeSlot) Hour() int   { return ts.hour }
func (ts TimeSlot) Minute() int { return ts.minute }
func (ts TimeSlot) IsZero() bool {
	return ts.hour == 0 && ts.minute == 0
}

func (ts TimeSlot) String() string {
	return fmt.Sprintf("%02d:%02d", ts.hour, ts.minute)
}

func (ts TimeSlot) Before(other TimeSlot) bool {
	if ts.hour != other.hour {
		return ts.hour < other.hour
	}
	return ts.minute < other.minute
}

func (ts TimeSlot) MarshalText() ([]byte, error) {
	return []byte(ts.String()), nil
}

func (ts *TimeSlot) UnmarshalText(b []byte) error {
	parsed, err := ParseTimeSlot(string(b))
	if err != nil {
		return err
	}
	*ts = parsed
	return nil
}

// Strings renders slots for templates and DTOs.
func Strings(slots []TimeSlot) []string {
	out := make([]string, len(slots))
	for i, s := range slots {
		out[i] = s.String()
	}
	return out
}
