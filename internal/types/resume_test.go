package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCloneIsDeep(t *testing.T) {
	orig := &ResumeRecord{
		Name:   "Jane Doe",
		Skills: []string{"Go", "Python"},
		ExperienceEntries: []ExperienceEntry{
			{Title: "Engineer", Responsibilities: []string{"Built services"}},
		},
	}

	clone := orig.Clone()
	clone.Skills[0] = "Rust"
	clone.ExperienceEntries[0].Responsibilities[0] = "changed"

	assert.Equal(t, "Go", orig.Skills[0])
	assert.Equal(t, "Built services", orig.ExperienceEntries[0].Responsibilities[0])
}

func TestRecomputeFullText(t *testing.T) {
	rec := &ResumeRecord{
		Name:    "Jane Doe",
		Email:   "jane@example.com",
		Summary: "Engineer.",
		Skills:  []string{"Go", "SQL"},
		ExperienceEntries: []ExperienceEntry{
			{Title: "Backend Engineer", Company: "Acme", Responsibilities: []string{"Shipped APIs"}},
		},
		ProjectEntries: []ProjectEntry{
			{Name: "Tracker", Tech: "Go, Postgres", Description: "Issue tracker"},
		},
	}

	rec.RecomputeFullText()

	for _, want := range []string{"Jane Doe", "jane@example.com", "Engineer.", "Go, SQL", "Backend Engineer", "Acme", "Shipped APIs", "Tracker", "Issue tracker"} {
		assert.Contains(t, rec.FullText, want)
	}
}

func TestPresenceHelpers(t *testing.T) {
	tests := []struct {
		name string
		rec  ResumeRecord
		has  bool
	}{
		{"free text experience", ResumeRecord{ExperienceText: "Engineer at Acme"}, true},
		{"structured experience", ResumeRecord{ExperienceEntries: []ExperienceEntry{{Title: "Engineer"}}}, true},
		{"empty structured entry", ResumeRecord{ExperienceEntries: []ExperienceEntry{{}}}, false},
		{"whitespace only", ResumeRecord{ExperienceText: "   "}, false},
		{"empty record", ResumeRecord{}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.has, tt.rec.HasExperience())
		})
	}

	assert.False(t, (&ResumeRecord{Skills: []string{" ", ""}}).HasSkills())
	assert.True(t, (&ResumeRecord{Skills: []string{"Go"}}).HasSkills())
	assert.True(t, (&ResumeRecord{EducationEntries: []EducationEntry{{Degree: "BSc"}}}).HasEducation())
	assert.False(t, (&ResumeRecord{EducationEntries: []EducationEntry{{}}}).HasEducation())
}

func TestMergeMissing(t *testing.T) {
	orig := &ResumeRecord{
		Name:   "Jane Doe",
		Email:  "jane@example.com",
		Phone:  "9876543210",
		Skills: []string{"Go"},
	}
	enhanced := &ResumeRecord{
		Name:    "Jane Doe",
		Summary: "Results-driven engineer.",
	}

	enhanced.MergeMissing(orig)

	assert.Equal(t, "jane@example.com", enhanced.Email)
	assert.Equal(t, "9876543210", enhanced.Phone)
	assert.Equal(t, []string{"Go"}, enhanced.Skills)
	assert.Equal(t, "Results-driven engineer.", enhanced.Summary)
}

func TestRenderExperienceEntries(t *testing.T) {
	entries := []ExperienceEntry{
		{
			Title:            "Backend Engineer",
			Company:          "Acme",
			Duration:         "2021-2024",
			Responsibilities: []string{"Shipped APIs", "• Cut latency by 40%"},
		},
		{
			Title:            "Intern",
			Duration:         "2020",
			Responsibilities: []string{"Wrote tests", "  "},
		},
	}

	got := RenderExperienceEntries(entries)

	want := "Backend Engineer | Acme (2021-2024)\n" +
		"• Shipped APIs\n" +
		"• Cut latency by 40%\n\n" +
		"Intern (2020)\n" +
		"• Wrote tests"
	assert.Equal(t, want, got)
}

func TestDedupeFold(t *testing.T) {
	tests := []struct {
		name  string
		items []string
		max   int
		want  []string
	}{
		{"case-insensitive dedupe keeps first form", []string{"Go", "go", "GO", "SQL"}, 0, []string{"Go", "SQL"}},
		{"cap applies after dedupe", []string{"a", "A", "b", "c"}, 2, []string{"a", "b"}},
		{"empty input", nil, 5, []string{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, DedupeFold(tt.items, tt.max))
		})
	}
}

func TestPlainText(t *testing.T) {
	rec := &ResumeRecord{
		Name:           "Jane Doe",
		Email:          "jane@example.com",
		Skills:         []string{"Go", "SQL"},
		ExperienceText: "Engineer at Acme",
	}

	got := rec.PlainText()

	require.Contains(t, got, "Jane Doe\njane@example.com")
	assert.Contains(t, got, "Skills: Go, SQL")
	assert.Contains(t, got, "Engineer at Acme")
}
