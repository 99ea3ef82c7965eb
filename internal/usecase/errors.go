package usecase

import "errors"

var (
	// ErrJobForbidden means the caller's scope does not include the
	// requested job. Surfaced to the caller as a rejection.
	ErrJobForbidden = errors.New("job is outside the caller's scope")

	// ErrInvalidLimit rejects single-job limits outside [1, 50].
	ErrInvalidLimit = errors.New("limit must be between 1 and 50")

	ErrNoJobIDs      = errors.New("at least one job id is required")
	ErrBatchTooLarge = errors.New("maximum 10 jobs can be processed in batch")
)
