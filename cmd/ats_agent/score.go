package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/jonathan/resume-ats/internal/config"
	"github.com/jonathan/resume-ats/internal/schemas"
	"github.com/jonathan/resume-ats/internal/scoring"
)

var scoreCmd = &cobra.Command{
	Use:   "score",
	Short: "Score a resume the way applicant tracking systems do",
	Long: `Score a resume across keyword coverage, formatting, content strength, and section completeness.

When a job description is supplied (--job or --job-url) the report includes a job match score and missing keywords. When REVIEW_API_KEY is configured the builtin score is merged with the remote review service.`,
	RunE: runScore,
}

var (
	scoreConfigPath   string
	scoreResume       string
	scoreJob          string
	scoreJobURL       string
	scoreOutput       string
	scoreReviewAPIURL string
	scoreReviewAPIKey string
	scoreVerbose      bool
)

func init() {
	scoreCmd.Flags().StringVar(&scoreConfigPath, "config", "", "Path to config.json file (values can be overridden by other flags)")
	scoreCmd.Flags().StringVarP(&scoreResume, "resume", "r", "", "Path to resume document (pdf, docx, txt)")
	scoreCmd.Flags().StringVarP(&scoreJob, "job", "j", "", "Path to job description text file (mutually exclusive with --job-url)")
	scoreCmd.Flags().StringVar(&scoreJobURL, "job-url", "", "URL to fetch job description from (mutually exclusive with --job)")
	scoreCmd.Flags().StringVarP(&scoreOutput, "out", "o", "", "Path to output JSON file (defaults to stdout)")
	scoreCmd.Flags().StringVar(&scoreReviewAPIURL, "review-api-url", "", "External review service base URL (optional, defaults to REVIEW_API_URL env var)")
	scoreCmd.Flags().StringVar(&scoreReviewAPIKey, "review-api-key", "", "External review service key (optional, defaults to REVIEW_API_KEY env var)")
	scoreCmd.Flags().BoolVarP(&scoreVerbose, "verbose", "v", false, "Print detailed debug information")

	rootCmd.AddCommand(scoreCmd)
}

func runScore(_ *cobra.Command, _ []string) error {
	cfg, err := mergeConfig(scoreConfigPath, config.Config{
		Resume:       scoreResume,
		Job:          scoreJob,
		JobURL:       scoreJobURL,
		Output:       scoreOutput,
		ReviewAPIURL: scoreReviewAPIURL,
		ReviewAPIKey: scoreReviewAPIKey,
		Verbose:      scoreVerbose,
	})
	if err != nil {
		return err
	}

	ctx := context.Background()

	rec, rawText, data, err := loadResumeFile(cfg.Resume)
	if err != nil {
		return err
	}

	jobText, err := resolveJobText(ctx, cfg)
	if err != nil {
		return err
	}

	var reviewClient *scoring.ReviewClient
	if cfg.ReviewAPIKey != "" {
		reviewClient = scoring.NewReviewClient(cfg.ReviewAPIURL, cfg.ReviewAPIKey)
		if cfg.Verbose {
			fmt.Fprintln(os.Stderr, "Remote review service enabled")
		}
	}

	scorer := scoring.NewScorer(reviewClient)
	report := scorer.Calculate(ctx, rec, rawText, jobText, data, filepath.Base(cfg.Resume))

	if err := schemas.ValidateScoreReport(report); err != nil {
		return fmt.Errorf("score report failed validation: %w", err)
	}

	return writeJSONOutput(cfg.Output, report)
}
