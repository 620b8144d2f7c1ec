package builder

import "fmt"

// Keys of the wizard fields.
const (
	KeyTitle          = "title"
	KeyShortName      = "shortName"
	KeyDescription    = "description"
	KeyThemeColor     = "themeColor"
	KeyStrategy       = "strategy"
	KeyBehavior       = "behavior"
	KeyWarn           = "warn"
	KeyInjectRegister = "injectRegister"
	KeyFrameworks     = "frameworks"
	KeyTypeScript     = "typescript"
)

// AlwaysVisibleKeys are validated on every submission, in this order.
var AlwaysVisibleKeys = []string{
	KeyTitle,
	KeyShortName,
	KeyDescription,
	KeyThemeColor,
	KeyStrategy,
	KeyBehavior,
	KeyWarn,
}

// FieldError is a validation failure of one field.
type FieldError struct {
	Key     string
	Message string
	// Focus moves input focus to the offending field. May be nil.
	Focus func()
}

func (e FieldError) Error() string {
	return fmt.Sprintf("%s: %s", e.Key, e.Message)
}

// Field is a mounted input bound to one configuration value.
type Field interface {
	Key() string
	// Validate checks the current value. Only the first returned error is used.
	Validate() []FieldError
	// IsValid reports validity without touching the error display.
	IsValid() bool
	// WithState updates the error indicator and optionally claims focus.
	WithState(showError, takeFocus bool)
	Focus()
}
