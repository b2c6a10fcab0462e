// Package modules defines the contract every prompt module implements,
// the registry modules add themselves to, and the runner that renders a
// configured list of them.
package modules

import (
	"github.com/arthur-debert/promptline/pkg/errors"
	"github.com/arthur-debert/promptline/pkg/registry"
	"github.com/arthur-debert/promptline/pkg/types"
)

// Module inspects a render Context and produces segments. Render returns
// false when the module has nothing to show; it never fails the render
// pass.
type Module interface {
	Name() string
	Description() string
	Render(ctx types.Context) (types.Segments, bool)
}

// Evaluator is implemented by modules that can report why they rendered
// nothing. The runner prefers it over Render when present.
type Evaluator interface {
	Evaluate(ctx types.Context) types.Outcome
}

// Defaulter is implemented by modules with a configuration section.
// Defaults returns a new pointer to the module's config struct, filled
// with default values, on every call.
type Defaulter interface {
	Defaults() interface{}
}

var defaultRegistry = registry.New[Module]("module", errors.ErrModuleNotFound)

// Register adds a module to the global registry. Modules call it from
// init() and a duplicate name panics.
func Register(m Module) {
	defaultRegistry.MustRegister(m.Name(), m)
}

// Get returns the registered module with the given name
func Get(name string) (Module, error) {
	return defaultRegistry.Get(name)
}

// List returns the names of all registered modules, sorted
func List() []string {
	return defaultRegistry.List()
}

// Evaluate renders m and reports the outcome, falling back to Render for
// modules that do not distinguish absence causes.
func Evaluate(m Module, ctx types.Context) types.Outcome {
	if e, ok := m.(Evaluator); ok {
		return e.Evaluate(ctx)
	}
	if segs, ok := m.Render(ctx); ok {
		return types.Rendered(segs)
	}
	return types.Absent(types.OutcomeNotInProject)
}
