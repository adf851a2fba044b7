// Package main provides the entry point for the resume ATS agent.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "ats_agent",
	Short: "Resume ATS parser, scorer, and rewriter",
	Long:  "ats_agent parses resumes into structured records, scores them the way applicant tracking systems do, rewrites weak content, and renders polished documents via CLI or REST API.",
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
