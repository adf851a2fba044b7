package extraction

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResolveName(t *testing.T) {
	tests := []struct {
		name  string
		lines []string
		want  string
	}{
		{
			name:  "clean top line",
			lines: []string{"Jane Doe", "jane@example.com", "EXPERIENCE"},
			want:  "Jane Doe",
		},
		{
			name:  "all caps gets title cased",
			lines: []string{"JANE DOE", "jane@example.com"},
			want:  "Jane Doe",
		},
		{
			name:  "section words skipped",
			lines: []string{"Professional Summary", "Jane Doe", "more text here now ok"},
			want:  "Jane Doe",
		},
		{
			name:  "second pass strips contact noise",
			lines: []string{"jane doe | jane@example.com | +91 9876543210", "Results-driven engineer with experience"},
			want:  "Jane Doe",
		},
		{
			name:  "third pass takes trailing window of first line",
			lines: []string{"Senior Software Engineering Resume of Jane Doe"},
			want:  "Jane Doe",
		},
		{
			name:  "fallback truncates first line",
			lines: []string{"1234567890 $$$ 1234567890"},
			want:  "1234567890 $$$ 1234567890",
		},
		{
			name:  "no lines",
			lines: nil,
			want:  "",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ResolveName(tt.lines))
		})
	}
}

func TestIsPlausibleName(t *testing.T) {
	assert.True(t, isPlausibleName("Jane Doe"))
	assert.True(t, isPlausibleName("Mary-Jane O'Brien"))
	assert.False(t, isPlausibleName("Jane"))
	assert.False(t, isPlausibleName("One Two Three Four Five"))
	assert.False(t, isPlausibleName("Work Experience"))
	assert.False(t, isPlausibleName("Jane Doe42"))
}

func TestTitleCase(t *testing.T) {
	assert.Equal(t, "Jane Doe", titleCase("JANE DOE"))
	assert.Equal(t, "Mary-Jane O'Brien", titleCase("mary-jane o'brien"))
}
