package builder

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFrameworks_Catalog(t *testing.T) {
	assert.Len(t, Frameworks, 11)

	var disabled []Framework
	for _, opt := range Frameworks {
		if opt.Disabled {
			disabled = append(disabled, opt.Value)
		}
	}
	assert.Equal(t, []Framework{FrameworkSvelteKit, FrameworkAstro}, disabled)

	assert.Equal(t, "Îles", Frameworks.Label(FrameworkIles))
	assert.Equal(t, "unknown", Frameworks.Label("unknown"))
}

func TestCatalog_FindAndValues(t *testing.T) {
	opt, ok := Behaviors.Find(BehaviorPrompt)
	assert.True(t, ok)
	assert.Equal(t, "I want to ask the user before update", opt.Label)

	_, ok = Behaviors.Find("never")
	assert.False(t, ok)

	assert.Equal(t, []string{"inline", "script"}, InjectRegisters.Values())
	assert.Equal(t, []string{"generateSW", "injectManifest"}, Strategies.Values())
}

func TestPhase_String(t *testing.T) {
	assert.Equal(t, "initial", PhaseInitial.String())
	assert.Equal(t, "result", PhaseResult.String())
	assert.Equal(t, "unknown", Phase(9).String())
}

func TestCatalog_ChoicesAndWizardOptionsCoexist(t *testing.T) {
	choice, ok := Strategies.Find(StrategyInjectManifest)
	assert.True(t, ok)
	assert.Equal(t, Choice[Strategy]{Value: StrategyInjectManifest, Label: "I want to provide my own service worker"}, choice)

	opts := []Option{WithThrottleWait(0), WithSessionID("s1")}
	w := New(opts...)
	defer w.Close()
	assert.Equal(t, "s1", w.ID())
}
