package scoring

import (
	"context"
	"log"

	"golang.org/x/sync/errgroup"

	"github.com/jonathan/resume-ats/internal/types"
)

// Scorer produces score reports. The built-in scorer always runs; when the
// review client is enabled its result takes precedence, with built-in
// sub-scores backfilled into any gap the remote report leaves.
type Scorer struct {
	client *ReviewClient
}

// NewScorer creates a scorer. client may be nil to run built-in only.
func NewScorer(client *ReviewClient) *Scorer {
	return &Scorer{client: client}
}

// Calculate scores the record. resumeBytes is the original uploaded document
// when available; when empty, a plain-text reconstruction of the record is
// uploaded instead. The returned report is always non-nil.
func (s *Scorer) Calculate(ctx context.Context, rec *types.ResumeRecord, rawText, jobDescription string, resumeBytes []byte, filename string) *types.ScoreReport {
	builtin := ScoreBuiltin(rec, rawText, jobDescription)

	if !s.client.Enabled() {
		return builtin
	}

	if len(resumeBytes) == 0 {
		text := rec.PlainText()
		if text == "" {
			text = rawText
		}
		resumeBytes = []byte(text)
		filename = "resume.txt"
	}

	var remote *types.ScoreReport
	var jobMatch int
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		r, err := s.client.Review(gctx, resumeBytes, filename)
		if err != nil {
			logReviewFailure("review", err)
			return nil
		}
		remote = r
		return nil
	})
	if jobDescription != "" {
		g.Go(func() error {
			m, err := s.client.MatchScore(gctx, resumeBytes, jobDescription, filename)
			if err != nil {
				logReviewFailure("match score", err)
				return nil
			}
			jobMatch = m
			return nil
		})
	}
	_ = g.Wait()

	if remote == nil {
		log.Printf("[score] remote review unavailable, using built-in result")
		fallback := *builtin
		fallback.Source = types.SourceBuiltin + " (remote unavailable)"
		return &fallback
	}

	merged := *remote
	if merged.Keyword == 0 {
		merged.Keyword = builtin.Keyword
	}
	if merged.Format == 0 {
		merged.Format = builtin.Format
	}
	if merged.Content == 0 {
		merged.Content = builtin.Content
	}
	if merged.Section == 0 {
		merged.Section = builtin.Section
	}
	merged.PowerVerbCount = builtin.PowerVerbCount
	merged.QuantifiedAchievements = builtin.QuantifiedAchievements
	merged.BuiltinOverall = builtin.Overall
	merged.RemoteOverall = remote.Overall
	merged.JobMatch = jobMatch
	merged.Source = types.SourceMerged
	return &merged
}
