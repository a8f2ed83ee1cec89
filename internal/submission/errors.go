package submission

import "errors"

var (
	// ErrEmptyInput is returned by Begin when there is nothing to submit.
	ErrEmptyInput = errors.New("input is empty")

	// ErrInFlight is returned by Begin when a request is pending and
	// overlapping submissions are disabled.
	ErrInFlight = errors.New("submission already in flight")

	// ErrNoResult is returned by Redirect before any submission succeeded.
	ErrNoResult = errors.New("no short url to open")

	// ErrSubmissionFailed matches every Failure via errors.Is.
	ErrSubmissionFailed = errors.New("submission failed")
)

const failurePrefix = "Failed to fetch data: "

// Failure describes why a submission produced no short URL.
type Failure struct {
	Cause error
}

func (e *Failure) Error() string {
	if e.Cause == nil {
		return failurePrefix + "unknown error"
	}
	return failurePrefix + e.Cause.Error()
}

func (e *Failure) Unwrap() error { return e.Cause }

// Is reports ErrSubmissionFailed as a match.
func (e *Failure) Is(target error) bool {
	return target == ErrSubmissionFailed
}
