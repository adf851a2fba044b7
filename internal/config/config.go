// Package config provides configuration loading and validation for the CLI
// and server.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// Config represents configuration that can be loaded from a JSON file.
// All fields are optional; missing values use defaults or must be provided
// via CLI flags or environment variables.
type Config struct {
	// Paths
	Resume string `json:"resume,omitempty"`  // Path to the resume document (pdf, docx, txt)
	Job    string `json:"job,omitempty"`     // Path to job description text file
	JobURL string `json:"job_url,omitempty"` // URL to fetch job description from
	Output string `json:"output,omitempty"`  // Output path for rendered documents

	// Tailoring
	Template        string `json:"template,omitempty"`         // Visual template name
	TargetRole      string `json:"target_role,omitempty"`      // Target role for enhancement
	ExperienceLevel string `json:"experience_level,omitempty"` // Experience level hint for enhancement

	// Behavior
	APIKey       string `json:"api_key,omitempty"`        // Gemini API key
	ReviewAPIURL string `json:"review_api_url,omitempty"` // External review service base URL
	ReviewAPIKey string `json:"review_api_key,omitempty"` // External review service key
	DatabaseURL  string `json:"database_url,omitempty"`   // PostgreSQL connection URL
	Verbose      bool   `json:"verbose,omitempty"`        // Print detailed debug information
}

// LoadConfig loads configuration from a JSON file.
// Returns an error if the file cannot be read or parsed.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		return nil, fmt.Errorf("config path is empty")
	}

	if !filepath.IsAbs(path) {
		cwd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("failed to get current directory: %w", err)
		}
		path = filepath.Join(cwd, path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config JSON: %w", err)
	}

	return &cfg, nil
}

// FromEnv builds a Config from environment variables. File-based config and
// CLI flags take precedence over these values.
func FromEnv() Config {
	return Config{
		APIKey:       os.Getenv("GEMINI_API_KEY"),
		ReviewAPIURL: os.Getenv("REVIEW_API_URL"),
		ReviewAPIKey: os.Getenv("REVIEW_API_KEY"),
		DatabaseURL:  os.Getenv("DATABASE_URL"),
	}
}

// Validate checks that the configuration has valid values.
// Required fields are enforced by CLI flag validation after merging.
func (c *Config) Validate() error {
	if c.Job != "" && c.JobURL != "" {
		return fmt.Errorf("config error: 'job' and 'job_url' are mutually exclusive")
	}

	if c.Resume != "" {
		if _, err := os.Stat(c.Resume); os.IsNotExist(err) {
			return fmt.Errorf("config error: resume file not found: %s", c.Resume)
		}
	}

	if c.Job != "" {
		if _, err := os.Stat(c.Job); os.IsNotExist(err) {
			return fmt.Errorf("config error: job file not found: %s", c.Job)
		}
	}

	return nil
}

// MergeWithDefaults returns a new Config with empty string fields filled from
// defaults. Used to apply config file and environment values as defaults for
// CLI flags.
func (c *Config) MergeWithDefaults(defaults Config) Config {
	result := *c

	if result.Resume == "" {
		result.Resume = defaults.Resume
	}
	if result.Job == "" {
		result.Job = defaults.Job
	}
	if result.JobURL == "" {
		result.JobURL = defaults.JobURL
	}
	if result.Output == "" {
		result.Output = defaults.Output
	}
	if result.Template == "" {
		result.Template = defaults.Template
	}
	if result.TargetRole == "" {
		result.TargetRole = defaults.TargetRole
	}
	if result.ExperienceLevel == "" {
		result.ExperienceLevel = defaults.ExperienceLevel
	}
	if result.APIKey == "" {
		result.APIKey = defaults.APIKey
	}
	if result.ReviewAPIURL == "" {
		result.ReviewAPIURL = defaults.ReviewAPIURL
	}
	if result.ReviewAPIKey == "" {
		result.ReviewAPIKey = defaults.ReviewAPIKey
	}
	if result.DatabaseURL == "" {
		result.DatabaseURL = defaults.DatabaseURL
	}

	// Bool fields: cannot distinguish unset from false, so we don't merge
	// (CLI flags should always win for bools)

	return result
}
