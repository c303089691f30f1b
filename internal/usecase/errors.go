package usecase

import "errors"

// Error taxonomy shared by every usecase. Handlers map these to HTTP status
// codes with errors.Is; wrapped messages carry the user-facing detail.
var (
	ErrValidation      = errors.New("validation failed")
	ErrUnauthenticated = errors.New("authentication required")
	ErrForbidden       = errors.New("not permitted")
	ErrNotFound        = errors.New("not found")
	ErrConflict        = errors.New("conflict")
	ErrUpstream        = errors.New("upstream unavailable")
	ErrMisconfigured   = errors.New("misconfigured")
)
