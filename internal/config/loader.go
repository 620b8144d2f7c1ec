package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-viper/mapstructure/v2"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"github.com/user/pwa-builder/internal/errors"
)

// EnvPrefix prefixes every environment override
const EnvPrefix = "PWA_BUILDER"

// DefaultServeConfigFile is read by the serve command when --config is not given
const DefaultServeConfigFile = ".env.local.json"

// serveEnvBindings maps .env.local.json keys to their environment overrides
var serveEnvBindings = map[string]string{
	"ca":          EnvPrefix + "_CA",
	"key":         EnvPrefix + "_KEY",
	"cer":         EnvPrefix + "_CER",
	"hostname":    EnvPrefix + "_HOSTNAME",
	"httpsPort":   EnvPrefix + "_HTTPS_PORT",
	"httpPort":    EnvPrefix + "_HTTP_PORT",
	"root":        EnvPrefix + "_ROOT",
	"metricsAddr": EnvPrefix + "_METRICS_ADDR",
}

// Loader handles loading configuration from multiple sources
type Loader struct {
	homeDir string
}

// NewLoader creates a new configuration loader
func NewLoader() *Loader {
	// Load .env file if exists
	_ = godotenv.Load()

	home, _ := os.UserHomeDir()
	return &Loader{homeDir: home}
}

// WithHomeDir overrides where the global config file is looked up
func (l *Loader) WithHomeDir(dir string) *Loader {
	l.homeDir = dir
	return l
}

// LoadServeConfig loads the static server settings.
// Precedence: CLI > environment > config file > defaults
func (l *Loader) LoadServeConfig(path string, cliOverrides map[string]any) (*ServeConfig, error) {
	if path == "" {
		path = DefaultServeConfigFile
	}

	v := viper.New()
	v.SetConfigType("json")
	v.SetDefault("hostname", "localhost")
	v.SetDefault("httpsPort", 443)
	v.SetDefault("httpPort", 80)
	v.SetDefault("root", "./dist")
	v.SetDefault("ca", "")
	v.SetDefault("key", "")
	v.SetDefault("cer", "")
	v.SetDefault("metricsAddr", "")

	for key, env := range serveEnvBindings {
		if err := v.BindEnv(key, env); err != nil {
			return nil, fmt.Errorf("failed to bind %s: %w", env, err)
		}
	}

	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		return nil, errors.NewConfigFileError(path, err)
	}

	applyCLIOverrides(v, cliOverrides)

	cfg := &ServeConfig{}
	if err := decode(v.AllSettings(), cfg); err != nil {
		return nil, errors.NewConfigFileError(path, err)
	}

	if err := validateServeConfig(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func validateServeConfig(cfg *ServeConfig) error {
	if cfg.Cert == "" {
		return errors.NewInvalidSettingError("cer", cfg.Cert, "certificate path is required")
	}
	if cfg.Key == "" {
		return errors.NewInvalidSettingError("key", cfg.Key, "private key path is required")
	}
	if strings.TrimSpace(cfg.Hostname) == "" {
		return errors.NewInvalidSettingError("hostname", cfg.Hostname, "hostname must not be empty")
	}
	if cfg.HTTPSPort < 1 || cfg.HTTPSPort > 65535 {
		return errors.NewInvalidSettingError("httpsPort", cfg.HTTPSPort, "must be between 1 and 65535")
	}
	if cfg.HTTPPort < 1 || cfg.HTTPPort > 65535 {
		return errors.NewInvalidSettingError("httpPort", cfg.HTTPPort, "must be between 1 and 65535")
	}
	if cfg.HTTPPort == cfg.HTTPSPort {
		return errors.NewInvalidSettingError("httpPort", cfg.HTTPPort, "must differ from httpsPort")
	}
	return nil
}

// LoadMergedConfig loads config with proper precedence
// (CLI > .pwa/config.yaml > ~/.pwa-builder.yaml > environment > defaults)
func (l *Loader) LoadMergedConfig(repoPath string, cliOverrides map[string]any) (*GlobalConfig, error) {
	v := viper.New()
	v.SetConfigType("yaml")
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	defaults := DefaultGlobalConfig()
	v.SetDefault("version", defaults.Version)
	v.SetDefault("wizard.output_dir", defaults.Wizard.OutputDir)
	v.SetDefault("wizard.format", defaults.Wizard.Format)
	v.SetDefault("wizard.throttle_ms", defaults.Wizard.ThrottleMS)
	v.SetDefault("logging.log_dir", defaults.Logging.LogDir)
	v.SetDefault("logging.file_level", defaults.Logging.FileLevel)
	v.SetDefault("logging.console_level", defaults.Logging.ConsoleLevel)

	if err := l.loadGlobalConfig(v); err != nil {
		return nil, err
	}
	if err := loadProjectConfig(v, repoPath); err != nil {
		return nil, err
	}
	applyCLIOverrides(v, cliOverrides)

	cfg := &GlobalConfig{}
	if err := decode(v.AllSettings(), cfg); err != nil {
		return nil, errors.NewConfigurationError(fmt.Sprintf("Invalid wizard configuration: %v", err))
	}

	switch cfg.Wizard.Format {
	case "yaml", "json", "html":
	default:
		return nil, errors.NewInvalidSettingError("wizard.format", cfg.Wizard.Format, "must be yaml, json or html")
	}
	return cfg, nil
}

// GlobalConfigPath returns the path of the per-user config file
func (l *Loader) GlobalConfigPath() string {
	return filepath.Join(l.homeDir, ".pwa-builder.yaml")
}

// ProjectConfigPath returns the path of the project config file
func ProjectConfigPath(repoPath string) string {
	if repoPath == "" {
		repoPath = "."
	}
	return filepath.Join(repoPath, ".pwa", "config.yaml")
}

// loadGlobalConfig loads configuration from ~/.pwa-builder.yaml
func (l *Loader) loadGlobalConfig(v *viper.Viper) error {
	if l.homeDir == "" {
		return nil // Not a fatal error
	}

	globalConfig := l.GlobalConfigPath()
	if _, err := os.Stat(globalConfig); err != nil {
		return nil // File doesn't exist, skip
	}

	v.SetConfigFile(globalConfig)
	if err := v.MergeInConfig(); err != nil {
		return errors.NewConfigFileError(globalConfig, err)
	}
	return nil
}

// loadProjectConfig loads configuration from .pwa/config.yaml
func loadProjectConfig(v *viper.Viper, repoPath string) error {
	configPath := ProjectConfigPath(repoPath)
	if _, err := os.Stat(configPath); err != nil {
		return nil // File doesn't exist, skip
	}

	v.SetConfigFile(configPath)
	if err := v.MergeInConfig(); err != nil {
		return errors.NewConfigFileError(configPath, err)
	}
	return nil
}

// applyCLIOverrides applies CLI flag overrides, skipping nil and empty values
func applyCLIOverrides(v *viper.Viper, overrides map[string]any) {
	for key, value := range overrides {
		if value == nil {
			continue
		}
		if s, ok := value.(string); ok && s == "" {
			continue
		}
		v.Set(key, value)
	}
}

func decode(input map[string]any, out any) error {
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		WeaklyTypedInput: true,
		Result:           out,
		TagName:          "mapstructure",
	})
	if err != nil {
		return fmt.Errorf("failed to create config decoder: %w", err)
	}
	return decoder.Decode(input)
}
