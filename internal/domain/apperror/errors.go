// Package apperror defines the failure categories a run can end with.
// Callers wrap these with fmt.Errorf("...: %w") and classify with errors.Is.
package apperror

import "errors"

var (
	// ErrConfiguration: required settings are missing or empty.
	ErrConfiguration = errors.New("configuration error")
	// ErrMalformedEntry: an entry has no usable publication time.
	ErrMalformedEntry = errors.New("malformed entry")
	// ErrMalformedLink: an entry link does not end in a decimal article ID.
	ErrMalformedLink = errors.New("malformed link")
	// ErrInvalidCheckpointType: the stored checkpoint is not numeric.
	ErrInvalidCheckpointType = errors.New("invalid checkpoint type")
	ErrFetch                 = errors.New("fetch error")
	ErrNotify                = errors.New("notify error")
	// ErrProcessing wraps every failure that is not a configuration error.
	ErrProcessing = errors.New("processing error")
)
