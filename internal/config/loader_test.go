package config

import (
	stderrors "errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/user/pwa-builder/internal/errors"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte(content), 0600); err != nil {
		t.Fatal(err)
	}
}

func TestLoadServeConfig_Defaults(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, ".env.local.json")
	writeFile(t, path, `{"cer": "cert.pem", "key": "key.pem"}`)

	cfg, err := NewLoader().WithHomeDir(dir).LoadServeConfig(path, nil)
	if err != nil {
		t.Fatalf("LoadServeConfig failed: %v", err)
	}

	if cfg.Hostname != "localhost" {
		t.Errorf("Hostname = %q, want localhost", cfg.Hostname)
	}
	if cfg.HTTPSPort != 443 || cfg.HTTPPort != 80 {
		t.Errorf("ports = %d/%d, want 443/80", cfg.HTTPSPort, cfg.HTTPPort)
	}
	if cfg.Root != "./dist" {
		t.Errorf("Root = %q, want ./dist", cfg.Root)
	}
	if cfg.CA != "" {
		t.Errorf("CA = %q, want empty", cfg.CA)
	}
	if cfg.HTTPSOrigin() != "https://localhost:443" {
		t.Errorf("HTTPSOrigin() = %q", cfg.HTTPSOrigin())
	}
}

func TestLoadServeConfig_FileValues(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, ".env.local.json")
	writeFile(t, path, `{
  "ca": "ca.pem",
  "key": "key.pem",
  "cer": "cert.pem",
  "hostname": "pwa.test",
  "httpsPort": 8443,
  "httpPort": 8080
}`)

	cfg, err := NewLoader().WithHomeDir(dir).LoadServeConfig(path, nil)
	if err != nil {
		t.Fatalf("LoadServeConfig failed: %v", err)
	}

	if cfg.CA != "ca.pem" || cfg.Cert != "cert.pem" || cfg.Key != "key.pem" {
		t.Errorf("tls paths = %q %q %q", cfg.CA, cfg.Cert, cfg.Key)
	}
	if cfg.Hostname != "pwa.test" {
		t.Errorf("Hostname = %q", cfg.Hostname)
	}
	if cfg.HTTPSAddr() != ":8443" || cfg.HTTPAddr() != ":8080" {
		t.Errorf("addrs = %q %q", cfg.HTTPSAddr(), cfg.HTTPAddr())
	}
}

func TestLoadServeConfig_EnvAndCLIPrecedence(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, ".env.local.json")
	writeFile(t, path, `{"cer": "cert.pem", "key": "key.pem", "httpsPort": 8443, "root": "public"}`)

	t.Setenv("PWA_BUILDER_HTTPS_PORT", "9443")
	t.Setenv("PWA_BUILDER_HOSTNAME", "env.test")

	cfg, err := NewLoader().WithHomeDir(dir).LoadServeConfig(path, map[string]any{
		"hostname": "cli.test",
		"root":     "",
	})
	if err != nil {
		t.Fatalf("LoadServeConfig failed: %v", err)
	}

	if cfg.HTTPSPort != 9443 {
		t.Errorf("HTTPSPort = %d, want env value 9443", cfg.HTTPSPort)
	}
	if cfg.Hostname != "cli.test" {
		t.Errorf("Hostname = %q, want CLI value", cfg.Hostname)
	}
	if cfg.Root != "public" {
		t.Errorf("Root = %q, empty CLI override must be ignored", cfg.Root)
	}
}

func TestLoadServeConfig_MissingFile(t *testing.T) {
	dir := t.TempDir()
	_, err := NewLoader().WithHomeDir(dir).LoadServeConfig(filepath.Join(dir, "nope.json"), nil)

	var fileErr *errors.ConfigFileError
	if !stderrors.As(err, &fileErr) {
		t.Fatalf("expected ConfigFileError, got %v", err)
	}
}

func TestLoadServeConfig_Validation(t *testing.T) {
	cases := map[string]string{
		"missing cert":  `{"key": "key.pem"}`,
		"missing key":   `{"cer": "cert.pem"}`,
		"bad port":      `{"cer": "c", "key": "k", "httpsPort": 70000}`,
		"same ports":    `{"cer": "c", "key": "k", "httpsPort": 8080, "httpPort": 8080}`,
		"empty host":    `{"cer": "c", "key": "k", "hostname": " "}`,
		"negative port": `{"cer": "c", "key": "k", "httpPort": -1}`,
	}

	for name, body := range cases {
		t.Run(name, func(t *testing.T) {
			dir := t.TempDir()
			path := filepath.Join(dir, ".env.local.json")
			writeFile(t, path, body)

			_, err := NewLoader().WithHomeDir(dir).LoadServeConfig(path, nil)
			var settingErr *errors.InvalidSettingError
			if !stderrors.As(err, &settingErr) {
				t.Fatalf("expected InvalidSettingError, got %v", err)
			}
		})
	}
}

func TestLoadMergedConfig_Defaults(t *testing.T) {
	dir := t.TempDir()
	cfg, err := NewLoader().WithHomeDir(dir).LoadMergedConfig(dir, nil)
	if err != nil {
		t.Fatalf("LoadMergedConfig failed: %v", err)
	}

	want := DefaultGlobalConfig()
	if cfg.Wizard != want.Wizard {
		t.Errorf("Wizard = %+v, want %+v", cfg.Wizard, want.Wizard)
	}
	if cfg.Logging != want.Logging {
		t.Errorf("Logging = %+v, want %+v", cfg.Logging, want.Logging)
	}
}

func TestLoadMergedConfig_ProjectOverridesGlobal(t *testing.T) {
	home := t.TempDir()
	repo := t.TempDir()

	writeFile(t, filepath.Join(home, ".pwa-builder.yaml"), `
wizard:
  format: json
  output_dir: /tmp/global
logging:
  file_level: debug
`)
	writeFile(t, filepath.Join(repo, ".pwa", "config.yaml"), `
wizard:
  output_dir: out
`)

	cfg, err := NewLoader().WithHomeDir(home).LoadMergedConfig(repo, map[string]any{
		"wizard.throttle_ms": 100,
	})
	if err != nil {
		t.Fatalf("LoadMergedConfig failed: %v", err)
	}

	if cfg.Wizard.Format != "json" {
		t.Errorf("Format = %q, want global json", cfg.Wizard.Format)
	}
	if cfg.Wizard.OutputDir != "out" {
		t.Errorf("OutputDir = %q, want project value", cfg.Wizard.OutputDir)
	}
	if cfg.Wizard.ThrottleMS != 100 {
		t.Errorf("ThrottleMS = %d, want CLI value", cfg.Wizard.ThrottleMS)
	}
	if cfg.Logging.FileLevel != "debug" {
		t.Errorf("FileLevel = %q, want debug", cfg.Logging.FileLevel)
	}
}

func TestLoadMergedConfig_RejectsUnknownFormat(t *testing.T) {
	dir := t.TempDir()
	_, err := NewLoader().WithHomeDir(dir).LoadMergedConfig(dir, map[string]any{"wizard.format": "toml"})

	var settingErr *errors.InvalidSettingError
	if !stderrors.As(err, &settingErr) {
		t.Fatalf("expected InvalidSettingError, got %v", err)
	}
}

func TestLoadMergedConfig_UndecodableValue(t *testing.T) {
	home := t.TempDir()
	repo := t.TempDir()
	writeFile(t, filepath.Join(repo, ".pwa", "config.yaml"), `
wizard:
  throttle_ms: fast
`)

	_, err := NewLoader().WithHomeDir(home).LoadMergedConfig(repo, nil)

	var cfgErr *errors.ConfigurationError
	if !stderrors.As(err, &cfgErr) {
		t.Fatalf("expected ConfigurationError, got %v", err)
	}
	if errors.ExitCodeOf(err) != errors.ExitConfigError {
		t.Errorf("exit code = %d, want %d", errors.ExitCodeOf(err), errors.ExitConfigError)
	}
}

func TestWizardConfig_ThrottleWait(t *testing.T) {
	if got := (&WizardConfig{}).ThrottleWait().Milliseconds(); got != 256 {
		t.Errorf("default ThrottleWait = %dms, want 256ms", got)
	}
	if got := (&WizardConfig{ThrottleMS: 50}).ThrottleWait().Milliseconds(); got != 50 {
		t.Errorf("ThrottleWait = %dms, want 50ms", got)
	}
}
