package modules

import (
	"sort"
	"sync"
	"time"

	"github.com/arthur-debert/promptline/pkg/logging"
	"github.com/arthur-debert/promptline/pkg/types"
)

// Result is one module's contribution to a render pass
type Result struct {
	Name        string
	Description string
	Outcome     types.Outcome
	Duration    time.Duration

	// Err is set when the module could not be found; Outcome is then empty
	Err error
}

// Segments returns what the module rendered, if anything
func (r Result) Segments() (types.Segments, bool) {
	if r.Err != nil {
		return nil, false
	}
	return r.Outcome.Result()
}

// Lookup resolves a module name
type Lookup func(name string) (Module, error)

// Runner renders modules concurrently, one goroutine per module
type Runner struct {
	lookup Lookup
}

// NewRunner creates a runner over the global registry
func NewRunner() *Runner {
	return &Runner{lookup: Get}
}

// NewRunnerWithLookup creates a runner that resolves modules with lookup
func NewRunnerWithLookup(lookup Lookup) *Runner {
	return &Runner{lookup: lookup}
}

// Run renders the named modules against ctx. Results come back in the
// order of names regardless of which module finishes first. Unknown names
// produce a Result with Err set and do not stop the others.
func (r *Runner) Run(ctx types.Context, names []string) []Result {
	logger := logging.GetLogger("runner")
	results := make([]Result, len(names))

	var wg sync.WaitGroup
	for i, name := range names {
		m, err := r.lookup(name)
		if err != nil {
			logger.Warn().Err(err).Str("module", name).Msg("Skipping unknown module")
			results[i] = Result{Name: name, Err: err}
			continue
		}

		wg.Add(1)
		go func(i int, m Module) {
			defer wg.Done()
			done := logging.LogOperationStart(logging.ModuleLogger(m.Name()), "render")
			start := time.Now()
			outcome := Evaluate(m, ctx)
			results[i] = Result{
				Name:        m.Name(),
				Description: m.Description(),
				Outcome:     outcome,
				Duration:    time.Since(start),
			}
			done()
		}(i, m)
	}
	wg.Wait()

	return results
}

// SortByDuration returns a copy of results ordered slowest first
func SortByDuration(results []Result) []Result {
	sorted := make([]Result, len(results))
	copy(sorted, results)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Duration > sorted[j].Duration
	})
	return sorted
}
