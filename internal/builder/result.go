package builder

import (
	"context"
	"time"
)

// Result is the finalized configuration of a fully valid submission.
type Result struct {
	SessionID          string
	State              State
	GenerateTypeScript bool
	CreatedAt          time.Time
}

// FrameworkLabel returns the display label of the selected framework.
func (r Result) FrameworkLabel() string {
	if r.State.Framework == "" {
		return ""
	}
	return Frameworks.Label(r.State.Framework)
}

// InjectRegisterMode returns the registration mode that applies to the
// result, or "" when the picker was hidden.
func (r Result) InjectRegisterMode() InjectRegister {
	if !r.State.ShowInjectRegister() {
		return ""
	}
	return r.State.InjectRegister
}

// Generator consumes a finalized result and produces artifacts from it.
// It returns a description of where the output went (usually a path).
type Generator interface {
	Generate(ctx context.Context, result Result) (string, error)
}

// GeneratorFunc adapts a function to the Generator interface.
type GeneratorFunc func(ctx context.Context, result Result) (string, error)

func (f GeneratorFunc) Generate(ctx context.Context, result Result) (string, error) {
	return f(ctx, result)
}
