package httperr

import (
	"net/http"

	"little-lemon/internal/domain/booking"
	"little-lemon/internal/pkg/errs"
)

// StatusFor maps a use-case error to the HTTP status and public message both
// the pages and the API answer with.
func StatusFor(err error) (int, string) {
	switch {
	case errs.Is(err, booking.ErrInvalidDraft):
		return http.StatusUnprocessableEntity, "Validation failed"
	case errs.Is(err, errs.ErrDomainValidation):
		return http.StatusUnprocessableEntity, "Invalid input"
	case errs.Is(err, booking.ErrSubmitInProgress):
		return http.StatusConflict, "Reservation is already being submitted"
	case errs.Is(err, booking.ErrAlreadyConfirmed):
		return http.StatusConflict, "Reservation is already confirmed"
	case errs.Is(err, booking.ErrSubmissionRejected):
		return http.StatusConflict, "Reservation was not accepted"
	case errs.Is(err, booking.ErrSubmissionFailed):
		return http.StatusServiceUnavailable, "Reservation service unavailable"
	case errs.Is(err, booking.ErrAvailabilityUnavailable):
		return http.StatusServiceUnavailable, "Availability service unavailable"
	case errs.Is(err, errs.ErrSessionUnavailable):
		return http.StatusServiceUnavailable, "Session unavailable"
	default:
		return http.StatusInternalServerError, "Internal server error"
	}
}
