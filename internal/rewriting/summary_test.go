package rewriting

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRewriteSummary(t *testing.T) {
	original := "Engineer with 5 years of experience building backend systems."
	skills := []string{"Go", "PostgreSQL", "Docker", "AWS", "Redis", "Kafka"}
	exp := "Backend Engineer at Acme\n• Reduced infrastructure cost by 35% across three regions"

	got := RewriteSummary(original, skills, exp, "Backend Developer")

	assert.True(t, strings.HasPrefix(got, "Results-driven Backend Developer with 5+ years of hands-on expertise in Go, PostgreSQL, Docker, AWS, Redis."))
	assert.Contains(t, got, "Reduced infrastructure cost by 35% across three regions")
	assert.Contains(t, got, "Thrives in collaborative environments")
	assert.NotContains(t, got, "Kafka") // only the top five skills appear
}

func TestRewriteSummaryDefaults(t *testing.T) {
	got := RewriteSummary("", nil, "", "")

	assert.Contains(t, got, "Results-driven Software Developer with hands-on expertise in modern technologies.")
}

func TestInferRole(t *testing.T) {
	tests := []struct {
		name   string
		exp    string
		skills []string
		want   string
	}{
		{"flutter wins", "built Flutter apps with react", nil, "Flutter Developer"},
		{"ml over frontend", "machine learning pipelines with react", nil, "AI/ML Engineer"},
		{"frontend", "", []string{"React"}, "Frontend Developer"},
		{"backend", "node services", nil, "Backend Developer"},
		{"python", "", []string{"Python"}, "Python Developer"},
		{"default", "wrote documentation", nil, "Software Developer"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, InferRole(tt.exp, tt.skills))
		})
	}
}

func TestExtractImpact(t *testing.T) {
	tests := []struct {
		name string
		exp  string
		want string
	}{
		{
			name: "numeric line of the right length",
			exp:  "Backend Engineer\n• Cut release time by 60% for twelve teams",
			want: "Cut release time by 60% for twelve teams",
		},
		{
			name: "short numeric line skipped",
			exp:  "Top 1% engineer\nImproved throughput by 3x in the ingestion pipeline",
			want: "Improved throughput by 3x in the ingestion pipeline",
		},
		{
			name: "no numbers",
			exp:  "Maintained internal tooling",
			want: "",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, extractImpact(tt.exp))
		})
	}
}
