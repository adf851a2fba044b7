package enhancement

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/resume-ats/internal/llm"
	"github.com/jonathan/resume-ats/internal/types"
)

// fakeClient scripts model responses per prompt key.
type fakeClient struct {
	calls     int
	responses map[string]string
	err       error
	errAfter  int // return err starting with this call number (1-based); 0 means always
}

func (f *fakeClient) GenerateText(_ context.Context, prompt string, _ llm.ModelTier) (string, error) {
	f.calls++
	if f.err != nil && (f.errAfter == 0 || f.calls >= f.errAfter) {
		return "", f.err
	}
	for marker, resp := range f.responses {
		if strings.Contains(prompt, marker) {
			return resp, nil
		}
	}
	return "", nil
}

func (f *fakeClient) Close() error { return nil }

func baseRecord() *types.ResumeRecord {
	rec := &types.ResumeRecord{
		Name:           "Jane Doe",
		Summary:        "Engineer with 3 years of experience.",
		Skills:         []string{"Python"},
		ExperienceText: "Worked on data pipelines",
	}
	rec.RecomputeFullText()
	return rec
}

func TestEnhanceUsesAIWhenImproved(t *testing.T) {
	client := &fakeClient{responses: map[string]string{
		"rewritten summary":        "Accomplished data engineer with 3+ years of experience.",
		"improved experience text": "Engineered data pipelines processing 2TB daily",
	}}
	o := New(client)

	got := o.Enhance(context.Background(), baseRecord(), Options{TargetRole: "Data Engineer"})

	assert.Equal(t, "Accomplished data engineer with 3+ years of experience.", got.Summary)
	assert.Equal(t, "Engineered data pipelines processing 2TB daily", got.ExperienceText)
	assert.Contains(t, got.FullText, "Engineered data pipelines")
}

func TestEnhanceFallsBackWhenUnchanged(t *testing.T) {
	rec := baseRecord()
	client := &fakeClient{responses: map[string]string{
		"rewritten summary":        rec.Summary,
		"improved experience text": rec.ExperienceText,
	}}
	o := New(client)

	got := o.Enhance(context.Background(), rec, Options{})

	// Unchanged AI output is rejected; the rule-based rewriter runs instead.
	assert.Contains(t, got.Summary, "Results-driven")
	assert.Equal(t, "Developed data pipelines", got.ExperienceText)
}

func TestEnhanceQuotaIsSticky(t *testing.T) {
	client := &fakeClient{err: errors.New("googleapi: Error 429: quota exceeded")}
	o := New(client)
	rec := baseRecord()

	first := o.Enhance(context.Background(), rec, Options{})
	callsAfterFirst := client.calls
	second := o.Enhance(context.Background(), rec, Options{})

	assert.Contains(t, first.Summary, "Results-driven")
	assert.Contains(t, second.Summary, "Results-driven")
	// No model call is issued once the quota flag is set.
	assert.Equal(t, callsAfterFirst, client.calls)
	assert.Equal(t, 1, callsAfterFirst)
}

func TestEnhanceNonQuotaErrorKeepsFieldAndRetriesLater(t *testing.T) {
	client := &fakeClient{err: errors.New("connection refused")}
	o := New(client)
	rec := baseRecord()

	got := o.Enhance(context.Background(), rec, Options{})

	// Per-field failures leave the AI result unimproved, so the rule path runs.
	assert.Contains(t, got.Summary, "Results-driven")

	// A later run tries the model again: non-quota failures are not sticky.
	callsBefore := client.calls
	o.Enhance(context.Background(), rec, Options{})
	assert.Greater(t, client.calls, callsBefore)
}

func TestEnhanceNilClientGoesStraightToRules(t *testing.T) {
	o := New(nil)
	rec := baseRecord()

	got := o.Enhance(context.Background(), rec, Options{TargetRole: "Backend Developer"})

	assert.Contains(t, got.Summary, "Results-driven Backend Developer")
	assert.Contains(t, got.Skills, "Git")
}

func TestEnhanceQuotaMidChainAbortsToRules(t *testing.T) {
	client := &fakeClient{
		responses: map[string]string{"rewritten summary": "Fresh summary text here."},
		err:       errors.New("insufficient_quota"),
		errAfter:  2,
	}
	o := New(client)
	rec := baseRecord()

	got := o.Enhance(context.Background(), rec, Options{})

	// The summary call succeeded but the chain aborted; nothing from the AI
	// path survives.
	assert.Contains(t, got.Summary, "Results-driven")
	assert.Equal(t, 2, client.calls)
}

func TestEnhanceExpandsSkillsFromModelList(t *testing.T) {
	client := &fakeClient{responses: map[string]string{
		"rewritten summary":        "Completely new summary for the role.",
		"improved experience text": "Rebuilt the ingestion layer end to end",
		"comma-separated list":     "Python, Airflow, dbt, Spark",
	}}
	o := New(client)
	rec := baseRecord()

	got := o.Enhance(context.Background(), rec, Options{})

	require.Contains(t, got.Skills, "Airflow")
	assert.Contains(t, got.Skills, "Spark")
	assert.Equal(t, "Python", got.Skills[0])
	assert.LessOrEqual(t, len(got.Skills), types.MaxSkills)
}
