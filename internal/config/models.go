package config

import (
	"fmt"
	"net"
	"strconv"
	"time"
)

// CurrentConfigVersion is written into saved config files
const CurrentConfigVersion = 1

// ServeConfig holds the static example server settings read from .env.local.json
type ServeConfig struct {
	CA          string `mapstructure:"ca"`          // Optional CA chain appended to the certificate
	Key         string `mapstructure:"key"`         // PEM private key
	Cert        string `mapstructure:"cer"`         // PEM certificate
	Hostname    string `mapstructure:"hostname"`    // Default: localhost
	HTTPSPort   int    `mapstructure:"httpsPort"`   // Default: 443
	HTTPPort    int    `mapstructure:"httpPort"`    // Default: 80
	Root        string `mapstructure:"root"`        // Default: ./dist
	MetricsAddr string `mapstructure:"metricsAddr"` // Empty disables the metrics listener
}

// HTTPSAddr returns the listen address of the static file server
func (c *ServeConfig) HTTPSAddr() string {
	return net.JoinHostPort("", strconv.Itoa(c.HTTPSPort))
}

// HTTPAddr returns the listen address of the redirect server
func (c *ServeConfig) HTTPAddr() string {
	return net.JoinHostPort("", strconv.Itoa(c.HTTPPort))
}

// HTTPSOrigin returns the origin every redirect points to
func (c *ServeConfig) HTTPSOrigin() string {
	return fmt.Sprintf("https://%s:%d", c.Hostname, c.HTTPSPort)
}

// WizardConfig holds wizard behaviour and output settings
type WizardConfig struct {
	OutputDir  string `mapstructure:"output_dir" yaml:"output_dir"`
	Format     string `mapstructure:"format" yaml:"format"`           // yaml, json
	ThrottleMS int    `mapstructure:"throttle_ms" yaml:"throttle_ms"` // Submit cooldown in milliseconds
}

// ThrottleWait returns the submit cooldown as a time.Duration
func (c *WizardConfig) ThrottleWait() time.Duration {
	if c.ThrottleMS <= 0 {
		return 256 * time.Millisecond
	}
	return time.Duration(c.ThrottleMS) * time.Millisecond
}

// LoggingConfig holds logging configuration
type LoggingConfig struct {
	LogDir       string `mapstructure:"log_dir" yaml:"log_dir"`
	FileLevel    string `mapstructure:"file_level" yaml:"file_level"`       // debug, info, warn, error
	ConsoleLevel string `mapstructure:"console_level" yaml:"console_level"` // debug, info, warn, error
}

// GlobalConfig holds top-level configuration from ~/.pwa-builder.yaml and .pwa/config.yaml
type GlobalConfig struct {
	Version int           `mapstructure:"version" yaml:"version"`
	Wizard  WizardConfig  `mapstructure:"wizard" yaml:"wizard"`
	Logging LoggingConfig `mapstructure:"logging" yaml:"logging"`
}

// DefaultGlobalConfig returns the configuration used when no file sets a value
func DefaultGlobalConfig() *GlobalConfig {
	return &GlobalConfig{
		Version: CurrentConfigVersion,
		Wizard: WizardConfig{
			OutputDir:  ".",
			Format:     "yaml",
			ThrottleMS: 256,
		},
		Logging: LoggingConfig{
			LogDir:       ".pwa/logs",
			FileLevel:    "info",
			ConsoleLevel: "debug",
		},
	}
}
