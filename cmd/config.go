package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/user/pwa-builder/internal/config"
)

var (
	configRepo     string
	configGlobal   bool
	configFormat   string
	configOutput   string
	configThrottle int
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage pwa-builder settings",
	Long: `Manage pwa-builder settings.

Settings are merged from, in increasing precedence:
  - Defaults
  - Environment variables prefixed with PWA_BUILDER_
  - Global: ~/.pwa-builder.yaml
  - Project: .pwa/config.yaml
  - Command line flags`,
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Write a configuration file with the current settings",
	RunE:  runConfigInit,
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the merged configuration",
	RunE:  runConfigShow,
}

func init() {
	rootCmd.AddCommand(configCmd)
	configCmd.AddCommand(configInitCmd, configShowCmd)

	configCmd.PersistentFlags().StringVar(&configRepo, "repo", ".", "Project directory")

	configInitCmd.Flags().BoolVar(&configGlobal, "global", false, "Write ~/.pwa-builder.yaml instead of the project file")
	configInitCmd.Flags().StringVar(&configFormat, "format", "", "Default output format: yaml, json or html")
	configInitCmd.Flags().StringVar(&configOutput, "output", "", "Default output directory")
	configInitCmd.Flags().IntVar(&configThrottle, "throttle-ms", 0, "Submit cooldown in milliseconds")
}

func runConfigInit(cmd *cobra.Command, args []string) error {
	overrides := map[string]any{
		"wizard.format":     configFormat,
		"wizard.output_dir": configOutput,
	}
	if configThrottle > 0 {
		overrides["wizard.throttle_ms"] = configThrottle
	}

	cfg, err := loadGlobalConfig(configRepo, overrides)
	if err != nil {
		return HandleCommandError(err)
	}

	saver := config.NewSaver()
	path := config.ProjectConfigPath(configRepo)
	if configGlobal {
		err = saver.SaveGlobalConfig(cfg)
		path = config.NewLoader().GlobalConfigPath()
	} else {
		err = saver.SaveProjectConfig(configRepo, cfg)
	}
	if err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Configuration saved to %s\n", path)
	return nil
}

func runConfigShow(cmd *cobra.Command, args []string) error {
	cfg, err := loadGlobalConfig(configRepo, nil)
	if err != nil {
		return HandleCommandError(err)
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}
	_, err = cmd.OutOrStdout().Write(data)
	return err
}
