package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/resume-ats/internal/config"
	"github.com/jonathan/resume-ats/internal/enhancement"
	"github.com/jonathan/resume-ats/internal/llm"
	"github.com/jonathan/resume-ats/internal/schemas"
)

var enhanceCmd = &cobra.Command{
	Use:   "enhance",
	Short: "Rewrite weak resume content into stronger language",
	Long: `Rewrite the resume summary, experience bullets, and skills into stronger, achievement-oriented language tailored to a target role.

Uses the Gemini API when GEMINI_API_KEY is configured; otherwise falls back to rule-based rewriting.`,
	RunE: runEnhance,
}

var (
	enhanceConfigPath string
	enhanceResume     string
	enhanceJob        string
	enhanceJobURL     string
	enhanceOutput     string
	enhanceTargetRole string
	enhanceLevel      string
	enhanceAPIKey     string
	enhanceVerbose    bool
)

func init() {
	enhanceCmd.Flags().StringVar(&enhanceConfigPath, "config", "", "Path to config.json file (values can be overridden by other flags)")
	enhanceCmd.Flags().StringVarP(&enhanceResume, "resume", "r", "", "Path to resume document (pdf, docx, txt)")
	enhanceCmd.Flags().StringVarP(&enhanceJob, "job", "j", "", "Path to job description text file (mutually exclusive with --job-url)")
	enhanceCmd.Flags().StringVar(&enhanceJobURL, "job-url", "", "URL to fetch job description from (mutually exclusive with --job)")
	enhanceCmd.Flags().StringVarP(&enhanceOutput, "out", "o", "", "Path to output JSON file (defaults to stdout)")
	enhanceCmd.Flags().StringVar(&enhanceTargetRole, "target-role", "", "Target role to tailor the rewrite toward")
	enhanceCmd.Flags().StringVar(&enhanceLevel, "experience-level", "", "Experience level hint (entry, mid, senior, executive)")
	enhanceCmd.Flags().StringVar(&enhanceAPIKey, "api-key", "", "Gemini API Key (optional, defaults to GEMINI_API_KEY env var)")
	enhanceCmd.Flags().BoolVarP(&enhanceVerbose, "verbose", "v", false, "Print detailed debug information")

	rootCmd.AddCommand(enhanceCmd)
}

func runEnhance(_ *cobra.Command, _ []string) error {
	cfg, err := mergeConfig(enhanceConfigPath, config.Config{
		Resume:          enhanceResume,
		Job:             enhanceJob,
		JobURL:          enhanceJobURL,
		Output:          enhanceOutput,
		TargetRole:      enhanceTargetRole,
		ExperienceLevel: enhanceLevel,
		APIKey:          enhanceAPIKey,
		Verbose:         enhanceVerbose,
	})
	if err != nil {
		return err
	}

	ctx := context.Background()

	rec, _, _, err := loadResumeFile(cfg.Resume)
	if err != nil {
		return err
	}

	jobText, err := resolveJobText(ctx, cfg)
	if err != nil {
		return err
	}

	var client llm.Client
	if cfg.APIKey != "" {
		geminiClient, err := llm.NewGeminiClient(ctx, llm.DefaultConfig(), cfg.APIKey)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Warning: gemini client unavailable, using rule-based rewriting: %v\n", err)
		} else {
			client = geminiClient
			defer geminiClient.Close()
		}
	} else if cfg.Verbose {
		fmt.Fprintln(os.Stderr, "No API key configured, using rule-based rewriting")
	}

	orchestrator := enhancement.New(client)
	enhanced := orchestrator.Enhance(ctx, rec, enhancement.Options{
		JobDescription:  jobText,
		TargetRole:      cfg.TargetRole,
		ExperienceLevel: cfg.ExperienceLevel,
	})

	if err := schemas.ValidateResumeRecord(enhanced); err != nil {
		return fmt.Errorf("enhanced record failed validation: %w", err)
	}

	return writeJSONOutput(cfg.Output, enhanced)
}
