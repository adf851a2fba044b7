package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jonathan/resume-ats/internal/rendering"
)

var templatesCmd = &cobra.Command{
	Use:   "templates",
	Short: "List the available visual templates",
	RunE:  runTemplates,
}

func init() {
	rootCmd.AddCommand(templatesCmd)
}

func runTemplates(_ *cobra.Command, _ []string) error {
	for _, name := range rendering.TemplateNames {
		tpl := rendering.LookupTemplate(name)
		marker := " "
		if name == rendering.DefaultTemplate {
			marker = "*"
		}
		fmt.Printf("%s %-22s %s, %s style\n", marker, name, tpl.FontName, tpl.HeaderStyle)
	}
	return nil
}
