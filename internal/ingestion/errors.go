package ingestion

import "fmt"

// IngestError describes a failure to turn an input (file or URL) into text.
type IngestError struct {
	Message string
	Cause   error
}

func (e *IngestError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

func (e *IngestError) Unwrap() error {
	return e.Cause
}

// NewIngestError creates an IngestError with the given message and cause.
func NewIngestError(message string, cause error) *IngestError {
	return &IngestError{Message: message, Cause: cause}
}
