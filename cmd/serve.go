package cmd

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/user/pwa-builder/internal/config"
	"github.com/user/pwa-builder/internal/server"
)

var (
	serveConfigPath  string
	serveRoot        string
	serveHostname    string
	serveMetricsAddr string
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the built application over HTTPS",
	Long: `Serve static files over HTTPS and redirect plain HTTP to it.

Settings are read from .env.local.json:

  {
    "ca": "certs/ca.pem",
    "key": "certs/key.pem",
    "cer": "certs/cert.pem",
    "hostname": "localhost",
    "httpsPort": 443,
    "httpPort": 80
  }

Every value can be overridden with PWA_BUILDER_<KEY> environment variables,
for example PWA_BUILDER_HTTPS_PORT=8443.`,
	RunE: runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)
	serveCmd.Flags().StringVarP(&serveConfigPath, "config", "c", config.DefaultServeConfigFile, "Server settings file")
	serveCmd.Flags().StringVar(&serveRoot, "root", "", "Directory to serve (default ./dist)")
	serveCmd.Flags().StringVar(&serveHostname, "hostname", "", "Hostname used in redirects and log lines")
	serveCmd.Flags().StringVar(&serveMetricsAddr, "metrics-addr", "", "Expose Prometheus metrics on this address, e.g. :9090")
}

func runServe(cmd *cobra.Command, args []string) error {
	global, err := loadGlobalConfig(".", nil)
	if err != nil {
		return HandleCommandError(err)
	}

	cfg, err := config.NewLoader().LoadServeConfig(serveConfigPath, map[string]any{
		"root":        serveRoot,
		"hostname":    serveHostname,
		"metricsAddr": serveMetricsAddr,
	})
	if err != nil {
		return HandleCommandError(err)
	}

	logger, err := InitLogger(global.Logging, debugFlag, verboseFlag, true)
	if err != nil {
		return err
	}
	defer func() { _ = logger.Close() }()

	srv, err := server.New(cfg, logger)
	if err != nil {
		return HandleCommandError(err)
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	return HandleCommandError(srv.Run(ctx))
}
