package cmd

import (
	"fmt"
	"io"
	"os"

	"go.uber.org/zap/zapcore"

	"github.com/user/pwa-builder/internal/config"
	"github.com/user/pwa-builder/internal/errors"
	"github.com/user/pwa-builder/internal/logging"
)

// errOut receives user-facing error messages
var errOut io.Writer = os.Stderr

// InitLogger creates a configured logger for CLI commands.
//
// Parameters:
//   - cfg: log directory and levels from the merged configuration
//   - debug: enables caller information and debug file logging
//   - verbose: keeps the configured console level instead of info
//   - console: mirrors log output on stderr
//
// The caller is responsible for calling logger.Close() when done.
func InitLogger(cfg config.LoggingConfig, debug, verbose, console bool) (*logging.Logger, error) {
	fileLevel := logging.LevelFromString(cfg.FileLevel)
	consoleLevel := logging.LevelFromString(cfg.ConsoleLevel)
	if debug {
		fileLevel = zapcore.DebugLevel
	} else if !verbose {
		consoleLevel = zapcore.InfoLevel
	}

	logCfg := logging.Config{
		Dir:          cfg.LogDir,
		FileLevel:    fileLevel,
		ConsoleLevel: consoleLevel,
		Caller:       debug,
	}
	if console {
		logCfg.Console = os.Stderr
	}

	logger, err := logging.NewLogger(logCfg)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}
	return logger, nil
}

// loadGlobalConfig merges config files with the persistent flags
func loadGlobalConfig(repoPath string, overrides map[string]any) (*config.GlobalConfig, error) {
	if overrides == nil {
		overrides = map[string]any{}
	}
	overrides["logging.log_dir"] = logDirFlag
	return config.NewLoader().LoadMergedConfig(repoPath, overrides)
}

// HandleCommandError prints the user-facing message of application errors
// and returns err unchanged so the exit code can be derived from it.
func HandleCommandError(err error) error {
	if err == nil {
		return nil
	}

	if appErr, ok := errors.AsAppError(err); ok {
		fmt.Fprintln(errOut, appErr.GetUserMessage())
	}
	return err
}
