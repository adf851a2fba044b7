package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/jonathan/resume-ats/internal/config"
	"github.com/jonathan/resume-ats/internal/rendering"
	"github.com/jonathan/resume-ats/internal/types"
)

var renderCmd = &cobra.Command{
	Use:   "render",
	Short: "Render a resume into a polished document",
	Long: `Render a resume into a polished DOCX, HTML, or PDF document using one of the built-in visual templates.

The input is either a resume document (--resume) or a structured record JSON produced by the parse or enhance commands (--record). PDF output requires a local Chrome or Chromium installation.`,
	RunE: runRender,
}

var (
	renderConfigPath string
	renderResume     string
	renderRecord     string
	renderOutput     string
	renderTemplate   string
	renderFormat     string
	renderVerbose    bool
)

func init() {
	renderCmd.Flags().StringVar(&renderConfigPath, "config", "", "Path to config.json file (values can be overridden by other flags)")
	renderCmd.Flags().StringVarP(&renderResume, "resume", "r", "", "Path to resume document (mutually exclusive with --record)")
	renderCmd.Flags().StringVar(&renderRecord, "record", "", "Path to structured record JSON (mutually exclusive with --resume)")
	renderCmd.Flags().StringVarP(&renderOutput, "out", "o", "", "Output file path (extension inferred from --format if omitted)")
	renderCmd.Flags().StringVarP(&renderTemplate, "template", "t", "", "Visual template name (see 'ats_agent templates')")
	renderCmd.Flags().StringVarP(&renderFormat, "format", "f", "docx", "Output format: docx, html, or pdf")
	renderCmd.Flags().BoolVarP(&renderVerbose, "verbose", "v", false, "Print detailed debug information")

	rootCmd.AddCommand(renderCmd)
}

func runRender(_ *cobra.Command, _ []string) error {
	if renderResume != "" && renderRecord != "" {
		return fmt.Errorf("--resume and --record are mutually exclusive; provide only one")
	}
	if renderResume == "" && renderRecord == "" {
		return fmt.Errorf("either --resume or --record must be provided")
	}

	cfg, err := mergeConfig(renderConfigPath, config.Config{
		Resume:   renderResume,
		Output:   renderOutput,
		Template: renderTemplate,
		Verbose:  renderVerbose,
	})
	if err != nil {
		return err
	}
	if cfg.Template == "" {
		cfg.Template = rendering.DefaultTemplate
	}

	var rec *types.ResumeRecord
	if renderRecord != "" {
		data, err := os.ReadFile(renderRecord)
		if err != nil {
			return fmt.Errorf("failed to read record file: %w", err)
		}
		rec = &types.ResumeRecord{}
		if err := json.Unmarshal(data, rec); err != nil {
			return fmt.Errorf("failed to parse record JSON: %w", err)
		}
	} else {
		rec, _, _, err = loadResumeFile(cfg.Resume)
		if err != nil {
			return err
		}
	}

	format := strings.ToLower(renderFormat)
	output := cfg.Output
	if output == "" {
		output = "resume." + format
	}

	var content []byte
	switch format {
	case "docx":
		content, err = rendering.GenerateDocx(rec, cfg.Template)
	case "html":
		var html string
		html, err = rendering.BuildHTML(rec, cfg.Template)
		content = []byte(html)
	case "pdf":
		content, err = rendering.GeneratePDF(context.Background(), rec, cfg.Template)
	default:
		return fmt.Errorf("unsupported format %q (expected docx, html, or pdf)", renderFormat)
	}
	if err != nil {
		return fmt.Errorf("failed to render %s: %w", format, err)
	}

	if err := os.WriteFile(output, content, 0644); err != nil {
		return fmt.Errorf("failed to write output file: %w", err)
	}

	if cfg.Verbose {
		fmt.Fprintf(os.Stderr, "Rendered %s (%d bytes) with template %q\n", output, len(content), cfg.Template)
	}
	fmt.Println(output)
	return nil
}
