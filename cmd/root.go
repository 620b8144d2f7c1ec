package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/user/pwa-builder/internal/errors"
)

var (
	debugFlag   bool
	verboseFlag bool
	logDirFlag  string
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "pwa-builder",
	Short: "Interactive PWA configuration builder",
	Long: `Build the manifest and service worker configuration of a Progressive Web App.

The wizard asks for the application name, theme color, service worker
strategy and update behavior, then writes a configuration file you can feed
to your build. The serve command runs a local HTTPS server to try the built
application, with an HTTP listener that redirects to it.`,
	Version:       "1.0.0",
	SilenceErrors: true,
	SilenceUsage:  true,
}

// Execute runs the root command and exits with the code of the failure
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		if _, ok := errors.AsAppError(err); !ok {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		}
		os.Exit(errors.ExitCodeOf(err).Int())
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&debugFlag, "debug", false, "Enable debug mode")
	rootCmd.PersistentFlags().BoolVarP(&verboseFlag, "verbose", "v", false, "Mirror log output on the console")
	rootCmd.PersistentFlags().StringVar(&logDirFlag, "log-dir", "", "Directory of the log file (default .pwa/logs)")
}
