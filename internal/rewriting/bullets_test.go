package rewriting

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRewriteBullets(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{
			name: "weak opener replaced",
			in:   "Worked on payment processing services",
			want: "Developed payment processing services",
		},
		{
			name: "self-intro stripped",
			in:   "As a Software Engineer at Acme, I built the billing system",
			want: "Built the billing system",
		},
		{
			name: "responsible-for becomes managed",
			in:   "Was responsible for release automation",
			want: "Managed release automation",
		},
		{
			name: "helped becomes assisted",
			in:   "Helped to migrate the database",
			want: "Assisted in migrate the database",
		},
		{
			name: "first match wins",
			in:   "Contributed to the design and development of the API gateway",
			want: "Designed and developed the API gateway",
		},
		{
			name: "bullet marker preserved",
			in:   "• Used Go for backend services",
			want: "• Leveraged Go for backend services",
		},
		{
			name: "dash marker preserved",
			in:   "- Made internal dashboards",
			want: "- Created internal dashboards",
		},
		{
			name: "strong line untouched",
			in:   "Delivered a 40% latency reduction",
			want: "Delivered a 40% latency reduction",
		},
		{
			name: "lowercase start capitalized",
			in:   "built the deployment pipeline",
			want: "Built the deployment pipeline",
		},
		{
			name: "blank lines kept",
			in:   "Worked on APIs\n\nUsed Docker",
			want: "Developed APIs\n\nLeveraged Docker",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, RewriteBullets(tt.in))
		})
	}
}

func TestRewriteBulletsIdempotentOnStrongText(t *testing.T) {
	text := "• Led migration to Kubernetes\n• Reduced costs by 30%"
	assert.Equal(t, text, RewriteBullets(text))
}
