//go:build unit

package errs_test

import (
	"errors"
	"testing"

	"little-lemon/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
)

var errSentinel = errs.New("sentinel")

func TestWrapAndMark(t *testing.T) {
	t.Run("wrap keeps the sentinel reachable", func(t *testing.T) {
		err := errs.Wrap(errSentinel, "context")
		assert.True(t, errs.Is(err, errSentinel))
		assert.True(t, errors.Is(err, errSentinel))
		assert.Contains(t, err.Error(), "context")
	})

	t.Run("wrap of nil is nil", func(t *testing.T) {
		assert.NoError(t, errs.Wrap(nil, "context"))
	})

	t.Run("mark classifies without changing the message", func(t *testing.T) {
		cause := errors.New("connection refused")
		err := errs.Mark(cause, errs.ErrBackendUnavailable)
		assert.True(t, errs.Is(err, errs.ErrBackendUnavailable))
		assert.Equal(t, "connection refused", err.Error())
	})

	t.Run("mark of nil returns the mark", func(t *testing.T) {
		assert.Equal(t, errs.ErrBackendUnavailable, errs.Mark(nil, errs.ErrBackendUnavailable))
	})
}

func TestDetail(t *testing.T) {
	detail := map[string]string{"guests": "must be between 1 and 10"}
	err := errs.Wrap(errs.WithDetail(errSentinel, detail), "submit")

	got, ok := errs.DetailOf[map[string]string](err)
	assert.True(t, ok)
	assert.Equal(t, detail, got)
	assert.True(t, errs.Is(err, errSentinel))

	_, ok = errs.DetailOf[int](err)
	assert.False(t, ok)
}

func TestExtractStackLines(t *testing.T) {
	lines := errs.ExtractStackLines(errs.Wrap(errSentinel, "outer"), 3)
	assert.LessOrEqual(t, len(lines), 3)
	assert.Nil(t, errs.ExtractStackLines(nil, 3))
}
