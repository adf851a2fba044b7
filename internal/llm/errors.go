package llm

import (
	"errors"
	"strings"

	"google.golang.org/api/googleapi"
)

// IsQuotaError reports whether an error means the provider's quota is
// exhausted. Quota errors are terminal for a session: callers must stop
// issuing model calls and fall back to deterministic behavior.
func IsQuotaError(err error) bool {
	if err == nil {
		return false
	}

	var apiErr *googleapi.Error
	if errors.As(err, &apiErr) && apiErr.Code == 429 {
		return true
	}

	msg := err.Error()
	return strings.Contains(msg, "429") ||
		strings.Contains(strings.ToLower(msg), "quota") ||
		strings.Contains(msg, "insufficient_quota") ||
		strings.Contains(strings.ToLower(msg), "resource_exhausted")
}
