package scoring

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/resume-ats/internal/types"
)

func TestReviewClientReview(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/resume/en/v1/review", r.URL.Path)
		require.Equal(t, "Bearer test-key", r.Header.Get("Authorization"))
		require.NoError(t, r.ParseMultipartForm(1<<20))
		_, header, err := r.FormFile("resume")
		require.NoError(t, err)
		assert.Equal(t, "resume.pdf", header.Filename)

		json.NewEncoder(w).Encode(map[string]any{
			"data": map[string]any{
				"score": 72,
				"sections": map[string]any{
					"skills":     map[string]any{"score": 80, "cons": []string{"List cloud platforms"}},
					"experience": map[string]any{"score": 65},
				},
				"suggestions":      []string{"Tighten the summary"},
				"missing_keywords": []string{"Terraform"},
			},
		})
	}))
	defer srv.Close()

	client := NewReviewClient(srv.URL, "test-key")
	report, err := client.Review(context.Background(), []byte("resume bytes"), "resume.pdf")

	require.NoError(t, err)
	require.NotNil(t, report)
	assert.Equal(t, 72, report.Overall)
	assert.Equal(t, 80, report.Keyword)
	assert.Equal(t, 65, report.Content)
	assert.Equal(t, 72, report.Format)  // no contact section, falls back to overall
	assert.Equal(t, 72, report.Section) // no summary section, falls back to overall
	assert.Contains(t, report.Suggestions, "Tighten the summary")
	assert.Contains(t, report.Suggestions, "List cloud platforms")
	assert.Equal(t, []string{"Terraform"}, report.MissingKeywords)
	assert.Equal(t, types.SourceRemote, report.Source)
}

func TestReviewClientZeroScoreIsNil(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]any{"data": map[string]any{"score": 0}})
	}))
	defer srv.Close()

	client := NewReviewClient(srv.URL, "test-key")
	report, err := client.Review(context.Background(), []byte("x"), "resume.pdf")

	require.NoError(t, err)
	assert.Nil(t, report)
}

func TestReviewClientHTTPError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "upstream down", http.StatusBadGateway)
	}))
	defer srv.Close()

	client := NewReviewClient(srv.URL, "test-key")
	_, err := client.Review(context.Background(), []byte("x"), "resume.pdf")

	require.Error(t, err)
	var reviewErr *ReviewError
	assert.ErrorAs(t, err, &reviewErr)
}

func TestReviewClientMatchScore(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/resume/en/v1/score", r.URL.Path)
		require.NoError(t, r.ParseMultipartForm(1<<20))
		assert.Equal(t, "Need Go engineers", r.FormValue("job_description"))
		json.NewEncoder(w).Encode(map[string]any{"data": map[string]any{"score": 85}})
	}))
	defer srv.Close()

	client := NewReviewClient(srv.URL, "test-key")
	score, err := client.MatchScore(context.Background(), []byte("x"), "Need Go engineers", "resume.pdf")

	require.NoError(t, err)
	assert.Equal(t, 85, score)
}

func TestReviewClientDisabled(t *testing.T) {
	assert.False(t, (*ReviewClient)(nil).Enabled())
	assert.False(t, NewReviewClient("", "  ").Enabled())
	assert.True(t, NewReviewClient("", "key").Enabled())
}

func TestParseReviewTopLevelPayload(t *testing.T) {
	report := parseReview(map[string]any{"score": float64(55)})

	require.NotNil(t, report)
	assert.Equal(t, 55, report.Overall)
}
