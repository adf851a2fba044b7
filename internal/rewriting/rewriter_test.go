package rewriting

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/resume-ats/internal/types"
)

func TestEnhance(t *testing.T) {
	rec := &types.ResumeRecord{
		Name:           "Jane Doe",
		Email:          "jane@example.com",
		Summary:        "Engineer with 4 years of experience.",
		Skills:         []string{"Python", "Django"},
		ExperienceText: "Worked on ETL pipelines\nWas responsible for on-call rotation",
		ProjectsText:   "Used Python to build a scraper",
	}
	rec.RecomputeFullText()

	enhanced := Enhance(rec, "", "")

	// Original untouched.
	assert.Equal(t, "Engineer with 4 years of experience.", rec.Summary)
	assert.Equal(t, "Worked on ETL pipelines\nWas responsible for on-call rotation", rec.ExperienceText)

	assert.Contains(t, enhanced.Summary, "Results-driven Python Developer with 4+ years of")
	assert.Equal(t, "Developed ETL pipelines\nManaged on-call rotation", enhanced.ExperienceText)
	assert.Equal(t, "Leveraged Python to build a scraper", enhanced.ProjectsText)
	assert.Contains(t, enhanced.Skills, "FastAPI")
	assert.Contains(t, enhanced.Skills, "Git")
	assert.Contains(t, enhanced.FullText, "Developed ETL pipelines")
}

func TestEnhanceRerendersStructuredExperience(t *testing.T) {
	rec := &types.ResumeRecord{
		Name: "Jane Doe",
		ExperienceEntries: []types.ExperienceEntry{
			{
				Title:            "Backend Engineer",
				Company:          "Acme",
				Duration:         "2021 - Present",
				Responsibilities: []string{"Worked on billing", "Helped with deploys"},
			},
		},
		ExperienceText: "stale text",
	}

	enhanced := Enhance(rec, "Backend Developer", "")

	require.Len(t, enhanced.ExperienceEntries, 1)
	assert.Equal(t, []string{"Developed billing", "Assisted in deploys"}, enhanced.ExperienceEntries[0].Responsibilities)
	assert.Equal(t,
		"Backend Engineer | Acme (2021 - Present)\n• Developed billing\n• Assisted in deploys",
		enhanced.ExperienceText)
}

func TestEnhanceEmptyRecordStillGetsSummaryAndSkills(t *testing.T) {
	rec := &types.ResumeRecord{}

	enhanced := Enhance(rec, "", "")

	assert.Contains(t, enhanced.Summary, "Results-driven Software Developer")
	assert.Contains(t, enhanced.Skills, "Git")
	assert.NotEmpty(t, enhanced.FullText)
}
