package builder

// Phase is the stage of a wizard session.
type Phase int

const (
	PhaseInitial Phase = iota
	PhaseResult
)

func (p Phase) String() string {
	switch p {
	case PhaseInitial:
		return "initial"
	case PhaseResult:
		return "result"
	default:
		return "unknown"
	}
}

// Strategy selects how the service worker is produced.
type Strategy string

const (
	StrategyGenerateSW     Strategy = "generateSW"
	StrategyInjectManifest Strategy = "injectManifest"
)

// Behavior selects how updates reach the user.
type Behavior string

const (
	BehaviorPrompt     Behavior = "prompt"
	BehaviorAutoUpdate Behavior = "autoUpdate"
)

// YesNo is a tri-state answer; the zero value means "not answered".
type YesNo string

const (
	Yes YesNo = "true"
	No  YesNo = "false"
)

// InjectRegister selects how the service worker registration is injected.
type InjectRegister string

const (
	InjectRegisterInline InjectRegister = "inline"
	InjectRegisterScript InjectRegister = "script"
)

// Framework is a frontend target from the framework catalog.
type Framework string

const (
	FrameworkJavaScript Framework = "javascript"
	FrameworkTypeScript Framework = "typescript"
	FrameworkVue        Framework = "vue"
	FrameworkReact      Framework = "react"
	FrameworkPreact     Framework = "preact"
	FrameworkSvelte     Framework = "svelte"
	FrameworkSolid      Framework = "solid"
	FrameworkSvelteKit  Framework = "sveltekit"
	FrameworkVitePress  Framework = "vitepress"
	FrameworkIles       Framework = "iles"
	FrameworkAstro      Framework = "astro"
)

// DefaultThemeColor is the theme color of a fresh session.
const DefaultThemeColor = "#ffffff"

// State holds every user-selected value of one wizard session.
// Empty strings mean "unset".
type State struct {
	Title          string
	Description    string
	ShortName      string
	ThemeColor     string
	Strategy       Strategy
	Behavior       Behavior
	WarnUser       YesNo
	InjectRegister InjectRegister
	Framework      Framework
	TypeScript     YesNo
}

// DefaultState returns the values a session starts with and returns to on reset.
func DefaultState() State {
	return State{
		ThemeColor: DefaultThemeColor,
		Strategy:   StrategyGenerateSW,
		Behavior:   BehaviorPrompt,
		WarnUser:   No,
	}
}

// ShowFrameworks reports whether the framework picker is visible.
func (s State) ShowFrameworks() bool {
	return s.Behavior == BehaviorPrompt || s.WarnUser == Yes
}

// ShowInjectRegister reports whether the inject-register picker is visible.
func (s State) ShowInjectRegister() bool {
	return s.Behavior == BehaviorAutoUpdate && s.WarnUser == No
}

// ShowTypeScript reports whether the language picker is visible. Picking the
// plain javascript or typescript target already answers the question.
func (s State) ShowTypeScript() bool {
	return s.ShowFrameworks() && s.Framework != FrameworkJavaScript && s.Framework != FrameworkTypeScript
}

// GenerateTypeScript is the effective language choice.
func (s State) GenerateTypeScript() bool {
	if s.ShowTypeScript() {
		return s.TypeScript == Yes
	}
	return s.Framework == FrameworkTypeScript
}
