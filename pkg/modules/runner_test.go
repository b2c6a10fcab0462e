package modules_test

import (
	"sync/atomic"
	"testing"
	"time"

	"github.com/arthur-debert/promptline/pkg/errors"
	"github.com/arthur-debert/promptline/pkg/modules"
	"github.com/arthur-debert/promptline/pkg/testutil"
	"github.com/arthur-debert/promptline/pkg/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// textModule renders a fixed string after an optional delay
type textModule struct {
	name  string
	text  string
	delay time.Duration
	calls *int32
}

func (m textModule) Name() string        { return m.name }
func (m textModule) Description() string { return "renders " + m.name }

func (m textModule) Render(ctx types.Context) (types.Segments, bool) {
	if m.calls != nil {
		atomic.AddInt32(m.calls, 1)
	}
	time.Sleep(m.delay)
	if m.text == "" {
		return nil, false
	}
	return types.Segments{types.NewSegment(m.text, nil)}, true
}

// disabledModule reports a specific absence cause
type disabledModule struct{ textModule }

func (m disabledModule) Evaluate(ctx types.Context) types.Outcome {
	return types.Absent(types.OutcomeDisabled)
}

func lookupFrom(ms ...modules.Module) modules.Lookup {
	byName := make(map[string]modules.Module, len(ms))
	for _, m := range ms {
		byName[m.Name()] = m
	}
	return func(name string) (modules.Module, error) {
		if m, ok := byName[name]; ok {
			return m, nil
		}
		return nil, errors.Newf(errors.ErrModuleNotFound, "unknown module '%s'", name)
	}
}

func TestRunner_PreservesOrder(t *testing.T) {
	runner := modules.NewRunnerWithLookup(lookupFrom(
		textModule{name: "slow", text: "A", delay: 40 * time.Millisecond},
		textModule{name: "fast", text: "B"},
		textModule{name: "medium", text: "C", delay: 10 * time.Millisecond},
	))

	results := runner.Run(testutil.NewFakeContext(), []string{"slow", "fast", "medium"})
	require.Len(t, results, 3)

	var names, texts []string
	for _, r := range results {
		names = append(names, r.Name)
		segs, ok := r.Segments()
		require.True(t, ok)
		texts = append(texts, segs.String())
	}
	assert.Equal(t, []string{"slow", "fast", "medium"}, names)
	assert.Equal(t, []string{"A", "B", "C"}, texts)
}

func TestRunner_RendersConcurrently(t *testing.T) {
	var ms []modules.Module
	var names []string
	for _, n := range []string{"a", "b", "c", "d"} {
		ms = append(ms, textModule{name: n, text: n, delay: 100 * time.Millisecond})
		names = append(names, n)
	}
	runner := modules.NewRunnerWithLookup(lookupFrom(ms...))

	start := time.Now()
	runner.Run(testutil.NewFakeContext(), names)
	assert.Less(t, time.Since(start), 350*time.Millisecond)
}

func TestRunner_UnknownModule(t *testing.T) {
	var calls int32
	runner := modules.NewRunnerWithLookup(lookupFrom(textModule{name: "known", text: "x", calls: &calls}))

	results := runner.Run(testutil.NewFakeContext(), []string{"nope", "known"})
	require.Len(t, results, 2)

	assert.True(t, errors.IsErrorCode(results[0].Err, errors.ErrModuleNotFound))
	_, ok := results[0].Segments()
	assert.False(t, ok)

	_, ok = results[1].Segments()
	assert.True(t, ok)
	assert.Equal(t, int32(1), calls)
}

func TestRunner_RecordsOutcomeAndDuration(t *testing.T) {
	runner := modules.NewRunnerWithLookup(lookupFrom(
		textModule{name: "empty"},
		disabledModule{textModule{name: "off", text: "never"}},
		textModule{name: "timed", text: "t", delay: 20 * time.Millisecond},
	))

	results := runner.Run(testutil.NewFakeContext(), []string{"empty", "off", "timed"})

	assert.Equal(t, types.OutcomeNotInProject, results[0].Outcome.Kind)
	assert.Equal(t, types.OutcomeDisabled, results[1].Outcome.Kind)
	assert.Equal(t, types.OutcomeRendered, results[2].Outcome.Kind)
	assert.Equal(t, "renders timed", results[2].Description)
	assert.GreaterOrEqual(t, results[2].Duration, 20*time.Millisecond)
}

func TestSortByDuration(t *testing.T) {
	results := []modules.Result{
		{Name: "a", Duration: 1 * time.Millisecond},
		{Name: "b", Duration: 9 * time.Millisecond},
		{Name: "c", Duration: 5 * time.Millisecond},
	}

	sorted := modules.SortByDuration(results)

	assert.Equal(t, "b", sorted[0].Name)
	assert.Equal(t, "c", sorted[1].Name)
	assert.Equal(t, "a", sorted[2].Name)
	assert.Equal(t, "a", results[0].Name, "input is left untouched")
}

func TestEvaluate_FallsBackToRender(t *testing.T) {
	outcome := modules.Evaluate(textModule{name: "m", text: "hi"}, testutil.NewFakeContext())
	assert.Equal(t, types.OutcomeRendered, outcome.Kind)
	assert.Equal(t, "hi", outcome.Segments.String())
}
