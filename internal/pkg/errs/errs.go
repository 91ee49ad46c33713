package errs

import (
	"fmt"
	"strings"

	cr "github.com/cockroachdb/errors"
)

func Wrap(err error, msg string) error {
	if err == nil {
		return nil
	}
	return cr.Wrap(err, msg)
}

func Wrapf(err error, format string, args ...any) error {
	if err == nil {
		return nil
	}
	return cr.Wrapf(err, format, args...)
}

func New(msg string) error {
	return cr.New(msg)
}

func Newf(format string, args ...any) error {
	return cr.Newf(format, args...)
}

func Mark(err error, markErr error) error {
	if err == nil {
		return markErr
	}
	return cr.Mark(err, markErr)
}

// Is understands both wrapping and marks. Plain errors.Is does not see marks.
func Is(err, reference error) bool {
	return cr.Is(err, reference)
}

// WithDetail attaches a value retrievable with DetailOf, e.g. per-field validation messages.
func WithDetail[T any](err error, detail T) error {
	if err == nil {
		return nil
	}
	return &detailError[T]{cause: err, detail: detail}
}

func DetailOf[T any](err error) (T, bool) {
	var d *detailError[T]
	if cr.As(err, &d) {
		return d.detail, true
	}
	var zero T
	return zero, false
}

type detailError[T any] struct {
	cause  error
	detail T
}

func (e *detailError[T]) Error() string { return e.cause.Error() }
func (e *detailError[T]) Unwrap() error { return e.cause }

func ExtractStackLines(err error, maxLines int) []string {
	if err == nil {
		return nil
	}
	s := fmt.Sprintf("%+v", err)
	lines := strings.Split(s, "\n")
	if maxLines > 0 && len(lines) > maxLines {
		lines = lines[:maxLines]
	}
	return lines
}
