package testutil

import (
	"fmt"

	"github.com/arthur-debert/promptline/pkg/modules"
	"github.com/arthur-debert/promptline/pkg/types"
)

// ModuleRenderer renders one registered module against a FakeContext:
//
//	segs, ok := testutil.Render("railway").
//		Env("IN_RAILWAY_SHELL", "true").
//		Cmd("railway starship", `{"name":"my-proj"}`).
//		Collect()
type ModuleRenderer struct {
	name string
	ctx  *FakeContext
}

// Render starts a renderer for the named module
func Render(name string) *ModuleRenderer {
	return &ModuleRenderer{name: name, ctx: NewFakeContext()}
}

// Env sets an environment variable
func (r *ModuleRenderer) Env(name, value string) *ModuleRenderer {
	r.ctx.WithEnv(name, value)
	return r
}

// Cmd makes cmdline succeed with stdout
func (r *ModuleRenderer) Cmd(cmdline, stdout string) *ModuleRenderer {
	r.ctx.WithCommand(cmdline, stdout)
	return r
}

// Config sets the module's own configuration section
func (r *ModuleRenderer) Config(section map[string]interface{}) *ModuleRenderer {
	r.ctx.WithModuleConfig(r.name, section)
	return r
}

// Strict turns on strict configuration decoding
func (r *ModuleRenderer) Strict() *ModuleRenderer {
	r.ctx.WithStrict()
	return r
}

// Context exposes the underlying fake, e.g. to inspect Calls
func (r *ModuleRenderer) Context() *FakeContext {
	return r.ctx
}

// Outcome renders the module and returns its internal outcome
func (r *ModuleRenderer) Outcome() types.Outcome {
	return modules.Evaluate(r.module(), r.ctx)
}

// Collect renders the module through its host-facing Render
func (r *ModuleRenderer) Collect() (types.Segments, bool) {
	return r.module().Render(r.ctx)
}

func (r *ModuleRenderer) module() modules.Module {
	m, err := modules.Get(r.name)
	if err != nil {
		panic(fmt.Sprintf("testutil: %v", err))
	}
	return m
}
