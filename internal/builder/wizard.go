// Package builder holds the state and validation orchestration of the PWA
// configuration wizard. It is UI agnostic: a front-end mounts Field
// implementations into the wizard's Registry and calls Submit or Reset.
package builder

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/user/pwa-builder/internal/logging"
	"github.com/user/pwa-builder/internal/throttle"
)

// DefaultThrottleWait is the cooldown applied to Submit.
const DefaultThrottleWait = 256 * time.Millisecond

// ErrValidation is returned by Generate when at least one field is invalid.
// The failures themselves are available from Errors.
var ErrValidation = errors.New("validation failed")

// ErrUnknownField is returned by Set and Value for keys outside the wizard.
var ErrUnknownField = errors.New("unknown field")

// Wizard owns one editing session.
type Wizard struct {
	mu         sync.Mutex
	id         string
	state      State
	phase      Phase
	errors     []FieldError
	generating bool
	output     string

	registry  *Registry
	generator Generator
	settle    func()
	dispatch  func()
	throttle  *throttle.Throttle
	wait      time.Duration
	logger    *logging.Logger
	now       func() time.Time
}

// Option configures a Wizard.
type Option func(*Wizard)

// WithLogger sets the logger.
func WithLogger(l *logging.Logger) Option {
	return func(w *Wizard) {
		if l != nil {
			w.logger = l
		}
	}
}

// WithGenerator sets the collaborator that receives valid results.
func WithGenerator(g Generator) Option {
	return func(w *Wizard) {
		w.generator = g
	}
}

// WithSettle sets the barrier run after each state mutation so a front-end
// can render the change before dependent reads happen.
func WithSettle(fn func()) Option {
	return func(w *Wizard) {
		if fn != nil {
			w.settle = fn
		}
	}
}

// WithThrottleWait overrides the Submit cooldown.
func WithThrottleWait(d time.Duration) Option {
	return func(w *Wizard) {
		if d > 0 {
			w.wait = d
		}
	}
}

// WithRegistry shares an existing field registry.
func WithRegistry(r *Registry) Option {
	return func(w *Wizard) {
		if r != nil {
			w.registry = r
		}
	}
}

// WithSessionID fixes the session identifier instead of generating one.
func WithSessionID(id string) Option {
	return func(w *Wizard) {
		if id != "" {
			w.id = id
		}
	}
}

// WithClock replaces time.Now for result timestamps.
func WithClock(now func() time.Time) Option {
	return func(w *Wizard) {
		if now != nil {
			w.now = now
		}
	}
}

// New creates a wizard in its default state.
func New(opts ...Option) *Wizard {
	w := &Wizard{
		id:       uuid.NewString(),
		state:    DefaultState(),
		phase:    PhaseInitial,
		registry: NewRegistry(),
		settle:   func() {},
		wait:     DefaultThrottleWait,
		logger:   logging.NewNopLogger(),
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(w)
	}

	w.logger = w.logger.Named("builder").With(logging.String("session", w.id))
	w.throttle = throttle.New(w.wait, w.runDispatch)
	return w
}

// SetDispatcher changes what a throttled Submit runs. Front-ends with an
// event loop use it to post the submission back onto that loop; by default
// Generate runs directly.
func (w *Wizard) SetDispatcher(fn func()) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.dispatch = fn
}

func (w *Wizard) runDispatch() {
	w.mu.Lock()
	dispatch := w.dispatch
	w.mu.Unlock()

	if dispatch != nil {
		dispatch()
		return
	}
	if err := w.Generate(context.Background()); err != nil && !errors.Is(err, ErrValidation) {
		w.logger.Error("generation failed", logging.Error(err))
	}
}

// ID returns the session identifier.
func (w *Wizard) ID() string {
	return w.id
}

// Registry returns the mounted-field collection.
func (w *Wizard) Registry() *Registry {
	return w.registry
}

// State returns a copy of the current values.
func (w *Wizard) State() State {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.state
}

// Update applies fn to the state.
func (w *Wizard) Update(fn func(*State)) {
	w.mu.Lock()
	fn(&w.state)
	w.mu.Unlock()
}

// Phase returns the current phase.
func (w *Wizard) Phase() Phase {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.phase
}

// Generating reports whether a submission is in flight.
func (w *Wizard) Generating() bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.generating
}

// Errors returns a copy of the errors published by the last submission.
func (w *Wizard) Errors() []FieldError {
	w.mu.Lock()
	defer w.mu.Unlock()
	out := make([]FieldError, len(w.errors))
	copy(out, w.errors)
	return out
}

// ErrorFor returns the published error of one field.
func (w *Wizard) ErrorFor(key string) (FieldError, bool) {
	w.mu.Lock()
	defer w.mu.Unlock()
	for _, e := range w.errors {
		if e.Key == key {
			return e, true
		}
	}
	return FieldError{}, false
}

// Output returns what the generator reported for the last valid submission.
func (w *Wizard) Output() string {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.output
}

// Value returns the current value of a field as a string.
func (w *Wizard) Value(key string) (string, error) {
	s := w.State()
	switch key {
	case KeyTitle:
		return s.Title, nil
	case KeyShortName:
		return s.ShortName, nil
	case KeyDescription:
		return s.Description, nil
	case KeyThemeColor:
		return s.ThemeColor, nil
	case KeyStrategy:
		return string(s.Strategy), nil
	case KeyBehavior:
		return string(s.Behavior), nil
	case KeyWarn:
		return string(s.WarnUser), nil
	case KeyInjectRegister:
		return string(s.InjectRegister), nil
	case KeyFrameworks:
		return string(s.Framework), nil
	case KeyTypeScript:
		return string(s.TypeScript), nil
	}
	return "", fmt.Errorf("%w: %s", ErrUnknownField, key)
}

// Set stores a raw value for a field. Values are not checked here; each
// field validates its own value on submission.
func (w *Wizard) Set(key, value string) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	s := &w.state
	switch key {
	case KeyTitle:
		s.Title = value
	case KeyShortName:
		s.ShortName = value
	case KeyDescription:
		s.Description = value
	case KeyThemeColor:
		s.ThemeColor = value
	case KeyStrategy:
		s.Strategy = Strategy(value)
	case KeyBehavior:
		s.Behavior = Behavior(value)
	case KeyWarn:
		s.WarnUser = YesNo(value)
	case KeyInjectRegister:
		s.InjectRegister = InjectRegister(value)
	case KeyFrameworks:
		s.Framework = Framework(value)
	case KeyTypeScript:
		s.TypeScript = YesNo(value)
	default:
		return fmt.Errorf("%w: %s", ErrUnknownField, key)
	}
	return nil
}

// VisibleKeys returns the keys of every field that should be mounted for
// the current state, in display order.
func (w *Wizard) VisibleKeys() []string {
	s := w.State()
	keys := append([]string{}, AlwaysVisibleKeys...)
	return append(keys, conditionalKeys(s)...)
}

// conditionalKeys lists the optional field groups visible for s, in
// validation priority order.
func conditionalKeys(s State) []string {
	var keys []string
	if s.ShowInjectRegister() {
		keys = append(keys, KeyInjectRegister)
	}
	if s.ShowFrameworks() {
		keys = append(keys, KeyFrameworks)
	}
	if s.ShowTypeScript() {
		keys = append(keys, KeyTypeScript)
	}
	return keys
}

// Reset restores every value to its default, clears the errors and tells
// each mounted field to drop its error display. The title field also takes
// focus.
func (w *Wizard) Reset() {
	w.mu.Lock()
	w.state = DefaultState()
	w.phase = PhaseInitial
	w.output = ""
	w.mu.Unlock()
	w.settle()

	w.mu.Lock()
	w.errors = nil
	w.mu.Unlock()
	w.settle()

	for _, f := range w.registry.Fields() {
		f.WithState(false, f.Key() == KeyTitle)
	}
	w.logger.Debug("wizard reset")
}

// Submit requests a throttled Generate. Bursts collapse into one immediate
// run plus at most one trailing run after the cooldown.
func (w *Wizard) Submit() {
	w.throttle.Trigger()
}

// Generate validates the visible fields. On failure it publishes the errors,
// focuses the first one and returns ErrValidation. On success it moves to
// the result phase and hands the result to the generator. A call made while
// another is in flight returns nil without doing anything.
func (w *Wizard) Generate(ctx context.Context) error {
	w.mu.Lock()
	if w.generating {
		w.mu.Unlock()
		w.logger.Debug("submission already in flight, ignoring")
		return nil
	}
	w.generating = true
	w.mu.Unlock()

	defer func() {
		w.mu.Lock()
		w.generating = false
		w.mu.Unlock()
	}()

	w.settle()
	w.mu.Lock()
	w.errors = nil
	w.mu.Unlock()
	w.settle()

	state := w.State()
	keys := append(append([]string{}, AlwaysVisibleKeys...), conditionalKeys(state)...)

	var failures []FieldError
	for _, key := range keys {
		f, ok := w.registry.Find(key)
		if !ok {
			continue
		}
		if fe, failed := firstError(f); failed {
			failures = append(failures, fe)
		}
	}

	if len(failures) > 0 {
		w.mu.Lock()
		w.errors = failures
		w.mu.Unlock()
		w.settle()

		w.logger.Info("validation failed",
			logging.Int("errors", len(failures)),
			logging.String("first", failures[0].Key))

		if failures[0].Focus != nil {
			failures[0].Focus()
		}
		return fmt.Errorf("%w: %d field(s)", ErrValidation, len(failures))
	}

	if err := ctx.Err(); err != nil {
		return err
	}

	result := Result{
		SessionID:          w.id,
		State:              state,
		GenerateTypeScript: state.GenerateTypeScript(),
		CreatedAt:          w.now(),
	}

	w.mu.Lock()
	w.phase = PhaseResult
	w.mu.Unlock()

	if w.generator == nil {
		w.logger.Info("configuration validated", logging.String("title", state.Title))
		return nil
	}

	output, err := w.generator.Generate(ctx, result)
	if err != nil {
		w.mu.Lock()
		w.phase = PhaseInitial
		w.mu.Unlock()
		return fmt.Errorf("generate: %w", err)
	}

	w.mu.Lock()
	w.output = output
	w.mu.Unlock()

	w.logger.Info("configuration generated",
		logging.String("title", state.Title),
		logging.String("output", output))
	return nil
}

// Close tears the session down: pending submissions are dropped and every
// field is unmounted.
func (w *Wizard) Close() {
	w.throttle.Stop()
	w.registry.Clear()

	w.mu.Lock()
	w.errors = nil
	w.mu.Unlock()
}

func firstError(f Field) (FieldError, bool) {
	errs := f.Validate()
	if len(errs) == 0 {
		return FieldError{}, false
	}
	fe := errs[0]
	if fe.Key == "" {
		fe.Key = f.Key()
	}
	if fe.Focus == nil {
		fe.Focus = f.Focus
	}
	return fe, true
}
