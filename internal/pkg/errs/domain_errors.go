package errs

import "errors"

// Cross-layer sentinel errors. Package-local sentinels (booking, availability)
// are marked with these where the handler layer only needs the category.
var (
	// Session errors
	ErrSessionUnavailable = errors.New("session unavailable")

	// Validation errors
	ErrDomainValidation = errors.New("domain validation error")

	// Backend errors
	ErrBackendUnavailable = errors.New("backend unavailable")

	// Operation errors
	ErrDatabaseOperationFailed = errors.New("database operation failed")
)
