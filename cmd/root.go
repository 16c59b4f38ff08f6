package cmd

import (
	"fmt"
	"os"

	"plotline/internal/config"
	"plotline/internal/ui"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
)

var (
	cfgFile     string
	templateDir string
	cfg         *config.Config
)

var rootCmd = &cobra.Command{
	Use:   "plotline",
	Short: "A terminal timeline editor for project planning",
	Long: `Plotline is a terminal timeline editor: rows of date-ranged events on
a zoomable time axis, with templates, keyboard dragging, and undo/redo.`,
	RunE: runTUI,
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "Path to config file")
	rootCmd.PersistentFlags().StringVar(&templateDir, "templates", "", "Template directory (overrides config)")
}

func initConfig() {
	var err error
	if cfgFile != "" {
		cfg, err = config.LoadConfigFile(cfgFile)
	} else {
		cfg, err = config.LoadConfig()
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}

	if templateDir != "" {
		cfg.TemplateDir = templateDir
	}
}

func runTUI(cmd *cobra.Command, args []string) error {
	model := ui.NewModel(cfg)
	defer model.Close()

	p := tea.NewProgram(model, tea.WithAltScreen())

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("error running program: %w", err)
	}

	return nil
}
