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

func TestCalculateBuiltinOnly(t *testing.T) {
	scorer := NewScorer(nil)
	rec := strongRecord()
	rec.RecomputeFullText()

	report := scorer.Calculate(context.Background(), rec, rec.FullText, "", nil, "")

	require.NotNil(t, report)
	assert.Equal(t, types.SourceBuiltin, report.Source)
}

func TestCalculateMergesRemote(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/resume/en/v1/review":
			json.NewEncoder(w).Encode(map[string]any{
				"data": map[string]any{
					"score":    81,
					"sections": map[string]any{"skills": map[string]any{"score": 90}},
				},
			})
		case "/resume/en/v1/score":
			json.NewEncoder(w).Encode(map[string]any{"data": map[string]any{"score": 77}})
		default:
			http.NotFound(w, r)
		}
	}))
	defer srv.Close()

	scorer := NewScorer(NewReviewClient(srv.URL, "key"))
	rec := strongRecord()
	rec.RecomputeFullText()

	report := scorer.Calculate(context.Background(), rec, rec.FullText, "Go engineer role", []byte("pdf bytes"), "resume.pdf")

	require.NotNil(t, report)
	assert.Equal(t, types.SourceMerged, report.Source)
	assert.Equal(t, 81, report.Overall)
	assert.Equal(t, 81, report.RemoteOverall)
	assert.Equal(t, 90, report.Keyword)
	assert.Equal(t, 77, report.JobMatch)
	assert.NotZero(t, report.BuiltinOverall)
	assert.NotZero(t, report.PowerVerbCount)
}

func TestCalculateFallsBackWhenRemoteDown(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "nope", http.StatusInternalServerError)
	}))
	defer srv.Close()

	scorer := NewScorer(NewReviewClient(srv.URL, "key"))
	rec := strongRecord()
	rec.RecomputeFullText()

	report := scorer.Calculate(context.Background(), rec, rec.FullText, "", []byte("pdf bytes"), "resume.pdf")

	require.NotNil(t, report)
	assert.Equal(t, types.SourceBuiltin+" (remote unavailable)", report.Source)
	assert.NotZero(t, report.Overall)
}

func TestCalculateSynthesizesTextUpload(t *testing.T) {
	var gotFilename string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, r.ParseMultipartForm(1<<20))
		_, header, err := r.FormFile("resume")
		require.NoError(t, err)
		gotFilename = header.Filename
		json.NewEncoder(w).Encode(map[string]any{"data": map[string]any{"score": 50}})
	}))
	defer srv.Close()

	scorer := NewScorer(NewReviewClient(srv.URL, "key"))
	rec := strongRecord()
	rec.RecomputeFullText()

	report := scorer.Calculate(context.Background(), rec, rec.FullText, "", nil, "")

	require.NotNil(t, report)
	assert.Equal(t, "resume.txt", gotFilename)
	assert.Equal(t, types.SourceMerged, report.Source)
}
