package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/jonathan/resume-ats/internal/config"
	"github.com/jonathan/resume-ats/internal/ingestion"
	"github.com/jonathan/resume-ats/internal/types"
)

// mergeConfig layers configuration sources: CLI flags win, then config file
// values, then environment variables.
func mergeConfig(configPath string, flags config.Config) (config.Config, error) {
	cfg := flags

	if configPath != "" {
		loaded, err := config.LoadConfig(configPath)
		if err != nil {
			return cfg, fmt.Errorf("failed to load config: %w", err)
		}
		cfg = cfg.MergeWithDefaults(*loaded)
	}

	cfg = cfg.MergeWithDefaults(config.FromEnv())

	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// loadResumeFile reads and parses a resume document from disk.
func loadResumeFile(path string) (*types.ResumeRecord, string, []byte, error) {
	if path == "" {
		return nil, "", nil, fmt.Errorf("--resume is required (via flag or config)")
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, "", nil, fmt.Errorf("failed to read resume file: %w", err)
	}

	rec, rawText, err := ingestion.ParseResume(filepath.Base(path), data)
	if err != nil {
		return nil, "", nil, fmt.Errorf("failed to parse resume: %w", err)
	}

	return rec, rawText, data, nil
}

// resolveJobText loads the job description from a file or fetches it from a
// URL. Returns "" when neither is configured.
func resolveJobText(ctx context.Context, cfg config.Config) (string, error) {
	switch {
	case cfg.Job != "":
		data, err := os.ReadFile(cfg.Job)
		if err != nil {
			return "", fmt.Errorf("failed to read job file: %w", err)
		}
		return string(data), nil
	case cfg.JobURL != "":
		text, err := ingestion.FetchJobDescription(ctx, cfg.JobURL)
		if err != nil {
			return "", fmt.Errorf("failed to fetch job description: %w", err)
		}
		return text, nil
	default:
		return "", nil
	}
}

// writeJSONOutput marshals v with indentation and writes it to the output
// path, or to stdout when the path is empty.
func writeJSONOutput(path string, v any) error {
	jsonBytes, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal JSON: %w", err)
	}

	if path == "" {
		fmt.Println(string(jsonBytes))
		return nil
	}

	if err := os.WriteFile(path, jsonBytes, 0644); err != nil {
		return fmt.Errorf("failed to write output file: %w", err)
	}
	return nil
}
