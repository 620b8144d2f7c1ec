package builder

// Choice is one selectable entry of a catalog.
type Choice[T ~string] struct {
	Value    T
	Label    string
	Disabled bool
}

// Catalog is an ordered list of choices.
type Catalog[T ~string] []Choice[T]

// Find returns the option with the given value.
func (c Catalog[T]) Find(value T) (Choice[T], bool) {
	for _, opt := range c {
		if opt.Value == value {
			return opt, true
		}
	}
	return Choice[T]{}, false
}

// Label returns the display label of value, or the raw value when unknown.
func (c Catalog[T]) Label(value T) string {
	if opt, ok := c.Find(value); ok {
		return opt.Label
	}
	return string(value)
}

// Values returns the raw values of every option, disabled ones included.
func (c Catalog[T]) Values() []string {
	values := make([]string, 0, len(c))
	for _, opt := range c {
		values = append(values, string(opt.Value))
	}
	return values
}

var Frameworks = Catalog[Framework]{
	{Value: FrameworkJavaScript, Label: "Vanilla JS"},
	{Value: FrameworkTypeScript, Label: "TypeScript"},
	{Value: FrameworkVue, Label: "Vue 3"},
	{Value: FrameworkReact, Label: "React"},
	{Value: FrameworkPreact, Label: "Preact"},
	{Value: FrameworkSvelte, Label: "Svelte"},
	{Value: FrameworkSolid, Label: "Solid JS"},
	{Value: FrameworkSvelteKit, Label: "Svelte Kit (WIP: coming soon)", Disabled: true},
	{Value: FrameworkVitePress, Label: "VitePress"},
	{Value: FrameworkIles, Label: "Îles"},
	{Value: FrameworkAstro, Label: "Astro (WIP: coming soon)", Disabled: true},
}

var Strategies = Catalog[Strategy]{
	{Value: StrategyGenerateSW, Label: "Generate the service worker for me"},
	{Value: StrategyInjectManifest, Label: "I want to provide my own service worker"},
}

var Behaviors = Catalog[Behavior]{
	{Value: BehaviorAutoUpdate, Label: "Just auto update my application"},
	{Value: BehaviorPrompt, Label: "I want to ask the user before update"},
}

var WarnOptions = Catalog[YesNo]{
	{Value: Yes, Label: "Yes, I want to inform user"},
	{Value: No, Label: "No, just keep it as simple as possible"},
}

var InjectRegisters = Catalog[InjectRegister]{
	{Value: InjectRegisterInline, Label: "As simple as possible"},
	{Value: InjectRegisterScript, Label: "Generate registerSW.js script"},
}

var TypeScriptOptions = Catalog[YesNo]{
	{Value: Yes, Label: "Yes"},
	{Value: No, Label: "No"},
}
