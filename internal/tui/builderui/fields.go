package builderui

import (
	"github.com/user/pwa-builder/internal/builder"
	"github.com/user/pwa-builder/internal/builder/rules"
	"github.com/user/pwa-builder/internal/tui/components"
)

// fieldView binds one widget to a wizard key. It is the builder.Field the
// wizard validates, registered while the widget is on screen.
type fieldView struct {
	key   string
	label string
	input components.Input
	rule  rules.Rule
	model *Model
}

func (f *fieldView) Key() string {
	return f.key
}

func (f *fieldView) Validate() []builder.FieldError {
	if err := f.rule(f.input.Value()); err != nil {
		return []builder.FieldError{{Key: f.key, Message: err.Error(), Focus: f.Focus}}
	}
	return nil
}

func (f *fieldView) IsValid() bool {
	return f.rule(f.input.Value()) == nil
}

func (f *fieldView) WithState(showError, takeFocus bool) {
	if showError {
		f.input.SetError(f.rule(f.input.Value()))
	} else {
		f.input.SetError(nil)
	}
	if takeFocus {
		f.Focus()
	}
}

func (f *fieldView) Focus() {
	f.model.focusInput(f.input)
}

// fieldSpec describes how to build the widget of a key.
type fieldSpec struct {
	label string
	build func() components.Input
}

func radio[T ~string](label, help string, catalog builder.Catalog[T]) fieldSpec {
	return fieldSpec{
		label: label,
		build: func() components.Input {
			opts := make([]components.RadioOption, 0, len(catalog))
			for _, o := range catalog {
				opts = append(opts, components.RadioOption{Value: string(o.Value), Label: o.Label, Disabled: o.Disabled})
			}
			return components.NewRadio(label, opts, help)
		},
	}
}

func text(label string, opts ...components.TextFieldOption) fieldSpec {
	return fieldSpec{
		label: label,
		build: func() components.Input {
			return components.NewTextField(label, opts...)
		},
	}
}

var fieldSpecs = map[string]fieldSpec{
	builder.KeyTitle: text("Title",
		components.WithPlaceholder("My Awesome App"),
		components.WithRequired(),
		components.WithHelp("Full application name, at most 45 characters")),
	builder.KeyShortName: text("Short name",
		components.WithPlaceholder("Awesome"),
		components.WithRequired(),
		components.WithHelp("Shown under the home screen icon, at most 12 characters")),
	builder.KeyDescription: text("Description",
		components.WithPlaceholder("What the application does")),
	builder.KeyThemeColor: text("Theme color",
		components.WithPlaceholder(builder.DefaultThemeColor),
		components.WithRequired(),
		components.WithCharLimit(7)),
	builder.KeyStrategy: radio("Service worker strategy", "", builder.Strategies),
	builder.KeyBehavior: radio("Behavior", "How new content reaches the user", builder.Behaviors),
	builder.KeyWarn:     radio("Warn user when the app is ready to work offline?", "", builder.WarnOptions),
	builder.KeyInjectRegister: radio("Service worker registration", "Only used with auto update and no offline warning",
		builder.InjectRegisters),
	builder.KeyFrameworks: radio("Framework", "", builder.Frameworks),
	builder.KeyTypeScript: radio("Use TypeScript?", "", builder.TypeScriptOptions),
}

func (m *Model) newField(key string) *fieldView {
	spec := fieldSpecs[key]
	return &fieldView{
		key:   key,
		label: spec.label,
		input: spec.build(),
		rule:  rules.For(key),
		model: m,
	}
}
