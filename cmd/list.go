package cmd

import (
	"fmt"

	"plotline/internal/template"

	"github.com/spf13/cobra"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List available templates and exit",
	Long:  `List the built-in templates plus everything in the template directory.`,
	RunE:  runList,
}

func init() {
	rootCmd.AddCommand(listCmd)
}

func runList(cmd *cobra.Command, args []string) error {
	// Ensure config is loaded
	if cfg == nil {
		initConfig()
	}

	templates := template.Builtins()

	loaded, err := template.LoadDir(cfg.TemplateDir)
	if err != nil {
		return fmt.Errorf("error loading templates from %s: %w", cfg.TemplateDir, err)
	}
	templates = append(templates, loaded...)

	fmt.Printf("Templates (%d built-in, %d from %s):\n", len(template.Builtins()), len(loaded), cfg.TemplateDir)
	for _, tpl := range templates {
		fmt.Printf("  %-20s %d rows, %d events", tpl.ID, len(tpl.Rows), len(tpl.Events))
		if tpl.Description != "" {
			fmt.Printf("  - %s", tpl.Description)
		}
		fmt.Println()
	}

	return nil
}
