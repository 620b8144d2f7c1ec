package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Saver writes configuration files to disk
type Saver struct {
	homeDir string
}

// NewSaver creates a saver rooted at the user's home directory
func NewSaver() *Saver {
	home, _ := os.UserHomeDir()
	return &Saver{homeDir: home}
}

// WithHomeDir overrides where the global config file is written
func (s *Saver) WithHomeDir(dir string) *Saver {
	s.homeDir = dir
	return s
}

// SaveGlobalConfig writes cfg to ~/.pwa-builder.yaml
func (s *Saver) SaveGlobalConfig(cfg *GlobalConfig) error {
	if s.homeDir == "" {
		return fmt.Errorf("cannot determine home directory")
	}
	return writeYAML(filepath.Join(s.homeDir, ".pwa-builder.yaml"), cfg)
}

// SaveProjectConfig writes cfg to <repoPath>/.pwa/config.yaml, creating the directory
func (s *Saver) SaveProjectConfig(repoPath string, cfg *GlobalConfig) error {
	path := ProjectConfigPath(repoPath)
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}
	return writeYAML(path, cfg)
}

func writeYAML(path string, cfg *GlobalConfig) error {
	if cfg.Version == 0 {
		cfg.Version = CurrentConfigVersion
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	header := "# pwa-builder configuration\n# Environment variables prefixed with PWA_BUILDER_ override these values.\n\n"
	if err := os.WriteFile(path, append([]byte(header), data...), 0600); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	return nil
}
