package availability

import (
	"context"
	"time"
)

// Park–Miller style multiplicative generator. modulus*multiplier stays below
// 2^53, so the int64 state is exact and matches the float reference values.
const (
	modulus    int64 = 1<<35 - 31
	multiplier int64 = 185852
	threshold        = 0.5
)

type seededRandom struct {
	state int64
}

func newSeededRandom(seed int64) *seededRandom {
	return &seededRandom{state: seed % modulus}
}

func (r *seededRandom) next() float64 {
	r.state = r.state * multiplier % modulus
	return float64(r.state) / float64(modulus)
}

// TimesFor derives the bookable slots for date from its day of month.
// Identical days always produce identical lists; the result may be empty.
func TimesFor(date time.Time) []TimeSlot {
	random := newSeededRandom(int64(date.Day()))

	slots := make([]TimeSlot, 0, (LastHour-FirstHour+1)*2)
	for h := FirstHour; h <= LastHour; h++ {
		if random.next() < threshold {
			slots = append(slots, TimeSlot{hour: h})
		}
		if random.next() < threshold {
			slots = append(slots, TimeSlot{hour: h, minute: 30})
		}
	}
	return slots
}

//go:generate mockgen -source=generator.go -destination=../../../tests/mock/availability/provider_mock.go -package=availabilitymock

// Provider answers which slots are bookable on a date. Implementations may do
// I/O and must honor ctx.
type Provider interface {
	TimesFor(ctx context.Context, date time.Time) ([]TimeSlot, error)
}

// SeededProvider is the placeholder backend used when no inventory is configured.
type SeededProvider struct{}

func NewSeededProvider() *SeededProvider {
	return &SeededProvider{}
}

func (p *SeededProvider) TimesFor(ctx context.Context, date time.Time) ([]TimeSlot, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return TimesFor(date), nil
}
