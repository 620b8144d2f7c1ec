// Package rules holds the per-field validators used by the wizard front-ends.
package rules

import (
	"fmt"
	"regexp"
	"unicode/utf8"

	"github.com/user/pwa-builder/internal/builder"
)

// Rule validates a raw field value.
type Rule func(string) error

// Required rejects empty values. An empty name yields the bare "required" message.
func Required(name string) Rule {
	return func(s string) error {
		if s != "" {
			return nil
		}
		if name == "" {
			return fmt.Errorf("required")
		}
		return fmt.Errorf("%s is required", name)
	}
}

// MaxLength rejects values longer than max runes.
func MaxLength(max int) Rule {
	return func(s string) error {
		if utf8.RuneCountInString(s) > max {
			return fmt.Errorf("must be at most %d characters", max)
		}
		return nil
	}
}

var hexColorRegex = regexp.MustCompile(`^#(?:[0-9a-fA-F]{3}|[0-9a-fA-F]{6})$`)

// HexColor accepts #rgb and #rrggbb colors.
func HexColor() Rule {
	return func(s string) error {
		if s == "" {
			return nil
		}
		if !hexColorRegex.MatchString(s) {
			return fmt.Errorf("must be a hex color like #ffffff")
		}
		return nil
	}
}

// OneOf rejects values outside allowed.
func OneOf(allowed ...string) Rule {
	return func(s string) error {
		if s == "" {
			return nil
		}
		for _, a := range allowed {
			if s == a {
				return nil
			}
		}
		return fmt.Errorf("must be one of: %v", allowed)
	}
}

// Enabled rejects catalog entries marked as disabled.
func Enabled[T ~string](catalog builder.Catalog[T]) Rule {
	return func(s string) error {
		if opt, ok := catalog.Find(T(s)); ok && opt.Disabled {
			return fmt.Errorf("%s is not available yet", opt.Label)
		}
		return nil
	}
}

// Chain runs rules in order and returns the first failure.
func Chain(rules ...Rule) Rule {
	return func(s string) error {
		for _, r := range rules {
			if err := r(s); err != nil {
				return err
			}
		}
		return nil
	}
}

// For returns the default rule of a wizard field.
func For(key string) Rule {
	switch key {
	case builder.KeyTitle:
		return Chain(Required("title"), MaxLength(45))
	case builder.KeyShortName:
		return Chain(Required("short name"), MaxLength(12))
	case builder.KeyDescription:
		return MaxLength(300)
	case builder.KeyThemeColor:
		return Chain(Required("theme color"), HexColor())
	case builder.KeyStrategy:
		return Chain(Required(""), OneOf(builder.Strategies.Values()...))
	case builder.KeyBehavior:
		return Chain(Required(""), OneOf(builder.Behaviors.Values()...))
	case builder.KeyWarn:
		return Chain(Required(""), OneOf(builder.WarnOptions.Values()...))
	case builder.KeyInjectRegister:
		return Chain(Required(""), OneOf(builder.InjectRegisters.Values()...))
	case builder.KeyFrameworks:
		return Chain(Required(""), OneOf(builder.Frameworks.Values()...), Enabled(builder.Frameworks))
	case builder.KeyTypeScript:
		return Chain(Required(""), OneOf(builder.TypeScriptOptions.Values()...))
	}
	return func(string) error { return nil }
}
