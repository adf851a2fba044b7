package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/resume-ats/internal/config"
	"github.com/jonathan/resume-ats/internal/schemas"
)

var parseCmd = &cobra.Command{
	Use:   "parse",
	Short: "Parse a resume document into a structured record",
	Long:  "Parse a resume document (pdf, docx, or txt) into a structured JSON record with contact details, sections, skills, and experience entries.",
	RunE:  runParse,
}

var (
	parseConfigPath string
	parseResume     string
	parseOutput     string
	parseVerbose    bool
)

func init() {
	parseCmd.Flags().StringVar(&parseConfigPath, "config", "", "Path to config.json file (values can be overridden by other flags)")
	parseCmd.Flags().StringVarP(&parseResume, "resume", "r", "", "Path to resume document (pdf, docx, txt)")
	parseCmd.Flags().StringVarP(&parseOutput, "out", "o", "", "Path to output JSON file (defaults to stdout)")
	parseCmd.Flags().BoolVarP(&parseVerbose, "verbose", "v", false, "Print detailed debug information")

	rootCmd.AddCommand(parseCmd)
}

func runParse(_ *cobra.Command, _ []string) error {
	cfg, err := mergeConfig(parseConfigPath, config.Config{
		Resume:  parseResume,
		Output:  parseOutput,
		Verbose: parseVerbose,
	})
	if err != nil {
		return err
	}

	rec, rawText, _, err := loadResumeFile(cfg.Resume)
	if err != nil {
		return err
	}

	if err := schemas.ValidateResumeRecord(rec); err != nil {
		return fmt.Errorf("parsed record failed validation: %w", err)
	}

	if cfg.Verbose {
		fmt.Fprintf(os.Stderr, "Parsed %s: name=%q sections=%d chars\n", cfg.Resume, rec.Name, len(rawText))
	}

	return writeJSONOutput(cfg.Output, rec)
}
