package llm

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"google.golang.org/api/googleapi"
)

func TestIsQuotaError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want bool
	}{
		{"nil", nil, false},
		{"googleapi 429", &googleapi.Error{Code: 429, Message: "rate limited"}, true},
		{"wrapped googleapi 429", fmt.Errorf("generate: %w", &googleapi.Error{Code: 429}), true},
		{"429 in message", errors.New("server returned 429"), true},
		{"quota in message", errors.New("Quota exceeded for project"), true},
		{"insufficient_quota", errors.New("insufficient_quota: billing required"), true},
		{"resource exhausted", errors.New("rpc error: RESOURCE_EXHAUSTED"), true},
		{"unrelated", errors.New("connection refused"), false},
		{"googleapi 500", &googleapi.Error{Code: 500}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsQuotaError(tt.err))
		})
	}
}
