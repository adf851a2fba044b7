package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestManualInputValidate(t *testing.T) {
	tests := []struct {
		name    string
		input   ManualResumeInput
		wantErr bool
	}{
		{"valid minimal", ManualResumeInput{Name: "Jane Doe", Email: "jane@example.com"}, false},
		{"missing name", ManualResumeInput{Email: "jane@example.com"}, true},
		{"bad email", ManualResumeInput{Name: "Jane Doe", Email: "not-an-email"}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.input.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestManualInputToRecord(t *testing.T) {
	input := &ManualResumeInput{
		Name:            "Jane Doe",
		Email:           "jane@example.com",
		TechnicalSkills: []string{"Go", "Python", "go"},
		SoftSkills:      []string{"Leadership"},
		Certifications:  []string{"AWS SAA", " "},
		Education: []EducationEntry{
			{Degree: "B.Tech", Institution: "IIT Bombay", Year: "2022", GPA: "8.5/10"},
			{Institution: "ignored, no degree"},
		},
		Experience: []ExperienceEntry{
			{Title: "Software Engineer", Company: "Google", Duration: "Jan 2022 - Present",
				Responsibilities: []string{"• Developed REST APIs", "• Reduced latency by 40%"}},
		},
		Projects: []ProjectEntry{
			{Name: "Tracker", Tech: "Python, React", Description: "Issue tracking tool"},
		},
	}

	rec := input.ToRecord()

	assert.Equal(t, []string{"Go", "Python", "Leadership"}, rec.Skills)
	assert.Equal(t, []string{"AWS SAA"}, rec.Certifications)
	assert.Equal(t, "B.Tech | IIT Bombay | 2022 | GPA 8.5/10", rec.EducationText)
	assert.Equal(t,
		"Software Engineer at Google (Jan 2022 - Present)\n• Developed REST APIs\n• Reduced latency by 40%",
		rec.ExperienceText)
	assert.Equal(t, "Tracker | Tech: Python, React\nIssue tracking tool", rec.ProjectsText)
	require.NotEmpty(t, rec.FullText)
	assert.Contains(t, rec.FullText, "Jane Doe")
}
