package types

// CommandOutput is what a successful external command left on its output
// streams.
type CommandOutput struct {
	Stdout string
	Stderr string
}

// Context is the ambient execution environment handed to every module for
// one render pass. Implementations own process timeouts and cancellation;
// modules never see either.
type Context interface {
	// GetEnv returns the value of an environment variable and whether it
	// was set at all.
	GetEnv(name string) (string, bool)

	// ExecCmd runs program with args and returns its output. It returns
	// false when the program is missing, exits non-zero, times out or the
	// render pass was cancelled.
	ExecCmd(program string, args ...string) (*CommandOutput, bool)

	// CurrentDir is the directory the prompt is rendered for.
	CurrentDir() string

	// ModuleConfig returns the raw configuration section for a module, or
	// nil when the user configured nothing for it.
	ModuleConfig(name string) map[string]interface{}

	// StrictConfig reports whether unknown configuration fields must be
	// rejected.
	StrictConfig() bool
}
