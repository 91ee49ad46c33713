package booking

import "little-lemon/internal/pkg/errs"

var (
	ErrInvalidDate     = errs.Mark(errs.New("invalid date"), errs.ErrDomainValidation)
	ErrInvalidGuests   = errs.Mark(errs.New("guests out of range"), errs.ErrDomainValidation)
	ErrInvalidOccasion = errs.Mark(errs.New("invalid occasion"), errs.ErrDomainValidation)
	ErrInvalidDraft    = errs.Mark(errs.New("reservation draft is not valid"), errs.ErrDomainValidation)

	ErrSubmitInProgress   = errs.New("submission already in progress")
	ErrAlreadyConfirmed   = errs.New("reservation already confirmed")
	ErrSubmissionRejected = errs.New("reservation was not accepted")
	ErrSubmissionFailed   = errs.Mark(errs.New("reservation submission failed"), errs.ErrBackendUnavailable)

	ErrStaleAvailability       = errs.New("availability superseded by a newer date")
	ErrAvailabilityUnavailable = errs.Mark(errs.New("availability lookup failed"), errs.ErrBackendUnavailable)
)
