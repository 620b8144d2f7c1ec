package cmd

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/user/pwa-builder/internal/builder"
	"github.com/user/pwa-builder/internal/export"
	"github.com/user/pwa-builder/internal/tui/builderui"
)

var (
	wizardOutput   string
	wizardFormat   string
	wizardThrottle int
)

var wizardCmd = &cobra.Command{
	Use:   "wizard",
	Short: "Build a PWA configuration interactively",
	Long: `Launch the interactive wizard.

Fields appear and disappear as you answer: the framework picker is shown
when updates prompt the user or the user is warned about offline readiness,
and the registration picker only for silent auto updates.

Keys: tab/shift+tab move, space selects, ctrl+g generates, ctrl+r resets.

The configuration is written to <output>/<title>.pwa.<format>.`,
	RunE: runWizard,
}

func init() {
	rootCmd.AddCommand(wizardCmd)
	wizardCmd.Flags().StringVarP(&wizardOutput, "output", "o", "", "Output directory (default from config, then .)")
	wizardCmd.Flags().StringVarP(&wizardFormat, "format", "f", "", "Output format: yaml, json or html")
	wizardCmd.Flags().IntVar(&wizardThrottle, "throttle-ms", 0, "Submit cooldown in milliseconds")
}

func runWizard(cmd *cobra.Command, args []string) error {
	overrides := map[string]any{
		"wizard.output_dir": wizardOutput,
		"wizard.format":     wizardFormat,
	}
	if wizardThrottle > 0 {
		overrides["wizard.throttle_ms"] = wizardThrottle
	}

	cfg, err := loadGlobalConfig(".", overrides)
	if err != nil {
		return HandleCommandError(err)
	}

	// The TUI owns the terminal, so logs only go to the file
	logger, err := InitLogger(cfg.Logging, debugFlag, verboseFlag, false)
	if err != nil {
		return err
	}
	defer func() { _ = logger.Close() }()

	gen, err := export.NewFileGenerator(cfg.Wizard.OutputDir, export.Format(cfg.Wizard.Format))
	if err != nil {
		return HandleCommandError(err)
	}

	model := builderui.New(cmd.Context(),
		builder.WithLogger(logger),
		builder.WithGenerator(gen),
		builder.WithThrottleWait(cfg.Wizard.ThrottleWait()),
	)
	defer model.Wizard().Close()

	p := tea.NewProgram(model, tea.WithAltScreen())
	model.Attach(p.Send)

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("error running wizard: %w", err)
	}

	if out := model.Wizard().Output(); out != "" {
		fmt.Fprintf(cmd.OutOrStdout(), "Configuration written to %s\n", out)
	}
	return HandleCommandError(model.Err())
}
