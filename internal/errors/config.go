package errors

import (
	"strings"
	"unicode"
)

// ConfigurationError is a settings problem without a specific key.
type ConfigurationError struct {
	*AppError
}

func NewConfigurationError(message string) *ConfigurationError {
	return &ConfigurationError{newAppError(ExitConfigError, nil, nil, "%s", message)}
}

// InvalidSettingError reports a key whose value is out of range.
type InvalidSettingError struct {
	*AppError
}

func NewInvalidSettingError(key string, value any, reason string) *InvalidSettingError {
	return &InvalidSettingError{newAppError(ExitConfigError, nil, &ErrorContext{
		Operation: "Validating configuration",
		Component: "Config",
		Details: []Detail{
			{"key", key},
			{"value", value},
			{"reason", reason},
		},
		Suggestions: []string{
			"Fix '" + key + "' in the configuration file",
			"Or override it with PWA_BUILDER_" + envKey(key),
		},
	}, "Setting '%s' has an invalid value", key)}
}

// ConfigFileError reports a settings file that cannot be read or parsed.
type ConfigFileError struct {
	*AppError
}

func NewConfigFileError(filePath string, cause error) *ConfigFileError {
	return &ConfigFileError{newAppError(ExitConfigError, cause, &ErrorContext{
		Operation: "Loading configuration",
		Component: "Config File",
		Details:   []Detail{{"file_path", filePath}},
		Suggestions: []string{
			"Check that the file exists and is readable",
			"Validate JSON/YAML syntax",
			"Check file permissions",
		},
	}, "Failed to load configuration file: %s", filePath)}
}

// envKey converts a config key to its environment variable suffix:
// httpsPort becomes HTTPS_PORT, wizard.output_dir becomes WIZARD_OUTPUT_DIR.
func envKey(key string) string {
	var sb strings.Builder
	prev := rune(0)
	for _, r := range key {
		switch {
		case r == '.':
			r = '_'
		case unicode.IsUpper(r) && prev != 0 && prev != '_' && prev != '.':
			sb.WriteByte('_')
		}
		sb.WriteRune(unicode.ToUpper(r))
		prev = r
	}
	return sb.String()
}
