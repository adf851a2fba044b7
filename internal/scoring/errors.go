package scoring

import "fmt"

// ReviewError indicates the remote review service could not produce a usable
// response. Callers treat it as a signal to fall back to the built-in scorer.
type ReviewError struct {
	Message string
	Cause   error
}

func (e *ReviewError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

func (e *ReviewError) Unwrap() error {
	return e.Cause
}

// NewReviewError creates a ReviewError with the given message and cause.
func NewReviewError(message string, cause error) *ReviewError {
	return &ReviewError{Message: message, Cause: cause}
}
