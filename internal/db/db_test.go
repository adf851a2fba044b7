package db

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestArtifactKindConstants(t *testing.T) {
	kinds := []string{
		KindOriginalRecord,
		KindOriginalReport,
		KindEnhancedRecord,
		KindEnhancedReport,
		KindRawText,
		KindJobDescription,
	}

	seen := make(map[string]bool, len(kinds))
	for _, kind := range kinds {
		assert.NotEmpty(t, kind, "kind constant should not be empty")
		assert.False(t, seen[kind], "kind constant %q duplicated", kind)
		seen[kind] = true
	}
}

func TestSessionType(t *testing.T) {
	s := Session{
		Filename: "resume.pdf",
		Template: "Classic Professional",
		Status:   StatusParsed,
	}

	assert.Equal(t, "resume.pdf", s.Filename)
	assert.Equal(t, StatusParsed, s.Status)
	assert.Nil(t, s.UserID)
}

func TestUserTypeHidesPasswordHash(t *testing.T) {
	u := User{Name: "Jane", Email: "jane@example.com", PasswordHash: "secret"}

	data, err := json.Marshal(u)

	assert.NoError(t, err)
	assert.NotContains(t, string(data), "secret")
	assert.Contains(t, string(data), "jane@example.com")
}
