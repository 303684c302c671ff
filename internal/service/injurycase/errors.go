package injurycase

import "errors"

// Error kinds returned by the service. Callers classify with errors.Is;
// the HTTP layer maps each kind to a status code.
var (
	ErrInvalidArgument  = errors.New("invalid argument")
	ErrNotFound         = errors.New("not found")
	ErrPermissionDenied = errors.New("permission denied")
	ErrAssessmentExists = errors.New("assessment already filed")
	ErrInvalidState     = errors.New("invalid case state")
	ErrConflict         = errors.New("conflict")
)
