//go:build unit

package navigation_test

import (
	"testing"

	"little-lemon/internal/navigation"

	"github.com/stretchr/testify/assert"
)

func TestRegistry(t *testing.T) {
	reg := navigation.NewRegistry[string]().
		Register(navigation.RouteHome, "home").
		Register(navigation.RouteBooking, "booking").
		Register(navigation.RouteConfirmed, "confirmed")

	t.Run("resolves exactly the registered view", func(t *testing.T) {
		v, ok := reg.Resolve("/booking")
		assert.True(t, ok)
		assert.Equal(t, "booking", v)

		v, ok = reg.Resolve("/booking/")
		assert.True(t, ok)
		assert.Equal(t, "booking", v)
	})

	t.Run("unknown path resolves to nothing without panicking", func(t *testing.T) {
		assert.NotPanics(t, func() {
			v, ok := reg.Resolve("/nonexistent")
			assert.False(t, ok)
			assert.Empty(t, v)
		})
	})

	t.Run("keeps registration order", func(t *testing.T) {
		assert.Equal(t, []string{"/", "/booking", "/confirmed"}, reg.Paths())
	})

	t.Run("duplicate registration panics", func(t *testing.T) {
		assert.Panics(t, func() { reg.Register("/booking/", "again") })
	})
}
