// Package llm provides the model client used by the AI enhancement path.
package llm

import "os"

// ModelTier selects a capability level.
type ModelTier string

const (
	// TierLite is for cheap list-style output (skill expansion).
	TierLite ModelTier = "lite"
	// TierStandard is for prose rewriting (summary, bullets, projects).
	TierStandard ModelTier = "standard"
)

// Config holds the model names per tier.
type Config struct {
	Models map[ModelTier]string
}

// DefaultConfig returns the default Gemini model assignment, with
// GEMINI_MODEL overriding the standard tier.
func DefaultConfig() *Config {
	cfg := &Config{
		Models: map[ModelTier]string{
			TierLite:     "gemini-2.5-flash-lite",
			TierStandard: "gemini-2.5-flash",
		},
	}
	if m := os.Getenv("GEMINI_MODEL"); m != "" {
		cfg.Models[TierStandard] = m
	}
	return cfg
}

// GetModel returns the model for a tier, falling back to the standard tier.
func (c *Config) GetModel(tier ModelTier) string {
	if m, ok := c.Models[tier]; ok {
		return m
	}
	return c.Models[TierStandard]
}
