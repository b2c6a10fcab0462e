package testutil

import (
	"strings"
	"sync"

	"github.com/arthur-debert/promptline/pkg/types"
	"github.com/stretchr/testify/mock"
)

// MockContext is a testify mock of types.Context. Calls without a
// matching expectation fail the test, which makes it the tool of choice
// for proving a module does not touch the environment.
type MockContext struct {
	mock.Mock
}

var _ types.Context = (*MockContext)(nil)

func (m *MockContext) GetEnv(name string) (string, bool) {
	args := m.Called(name)
	return args.String(0), args.Bool(1)
}

func (m *MockContext) ExecCmd(program string, args ...string) (*types.CommandOutput, bool) {
	callArgs := m.Called(program, args)
	if callArgs.Get(0) == nil {
		return nil, callArgs.Bool(1)
	}
	return callArgs.Get(0).(*types.CommandOutput), callArgs.Bool(1)
}

func (m *MockContext) CurrentDir() string {
	return m.Called().String(0)
}

func (m *MockContext) ModuleConfig(name string) map[string]interface{} {
	args := m.Called(name)
	if args.Get(0) == nil {
		return nil
	}
	return args.Get(0).(map[string]interface{})
}

func (m *MockContext) StrictConfig() bool {
	return m.Called().Bool(0)
}

// FakeContext answers from in-memory tables and records every command it
// was asked to run. Commands not in the table fail, as a missing tool would.
type FakeContext struct {
	mu       sync.Mutex
	env      map[string]string
	commands map[string]*types.CommandOutput
	config   map[string]map[string]interface{}
	strict   bool
	dir      string
	calls    []string
}

var _ types.Context = (*FakeContext)(nil)

// NewFakeContext returns an empty context: no env, no tools, no config
func NewFakeContext() *FakeContext {
	return &FakeContext{
		env:      make(map[string]string),
		commands: make(map[string]*types.CommandOutput),
		config:   make(map[string]map[string]interface{}),
		dir:      "/",
	}
}

// WithEnv sets an environment variable
func (f *FakeContext) WithEnv(name, value string) *FakeContext {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.env[name] = value
	return f
}

// WithCommand makes cmdline ("railway starship") succeed with stdout
func (f *FakeContext) WithCommand(cmdline, stdout string) *FakeContext {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.commands[cmdline] = &types.CommandOutput{Stdout: stdout}
	return f
}

// WithModuleConfig sets the raw configuration section for a module
func (f *FakeContext) WithModuleConfig(module string, section map[string]interface{}) *FakeContext {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.config[module] = section
	return f
}

// WithStrict turns on strict module configuration decoding
func (f *FakeContext) WithStrict() *FakeContext {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.strict = true
	return f
}

// WithDir sets the directory the prompt is rendered for
func (f *FakeContext) WithDir(dir string) *FakeContext {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.dir = dir
	return f
}

func (f *FakeContext) GetEnv(name string) (string, bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	v, ok := f.env[name]
	return v, ok
}

func (f *FakeContext) ExecCmd(program string, args ...string) (*types.CommandOutput, bool) {
	cmdline := strings.Join(append([]string{program}, args...), " ")

	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls = append(f.calls, cmdline)

	out, ok := f.commands[cmdline]
	if !ok {
		return nil, false
	}
	copied := *out
	return &copied, true
}

func (f *FakeContext) CurrentDir() string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.dir
}

func (f *FakeContext) ModuleConfig(name string) map[string]interface{} {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.config[name]
}

func (f *FakeContext) StrictConfig() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.strict
}

// Calls returns the command lines ExecCmd was asked to run, in order
func (f *FakeContext) Calls() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	calls := make([]string, len(f.calls))
	copy(calls, f.calls)
	return calls
}
