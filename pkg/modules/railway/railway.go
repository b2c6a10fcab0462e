// Package railway shows the Railway project and environment the current
// directory is linked to, and whether the shell was started by
// `railway shell`.
package railway

import (
	"github.com/arthur-debert/promptline/pkg/config"
	"github.com/arthur-debert/promptline/pkg/formatter"
	"github.com/arthur-debert/promptline/pkg/logging"
	"github.com/arthur-debert/promptline/pkg/modules"
	"github.com/arthur-debert/promptline/pkg/types"
)

const (
	// Name is the module and configuration section name
	Name = "railway"

	// ShellEnvVar is set to "true" by `railway shell`
	ShellEnvVar = "IN_RAILWAY_SHELL"

	program = "railway"
)

// token is a variable the format string may reference
type token int

// tokenUnknown is the zero value, so a lookup miss resolves nothing
const (
	tokenUnknown token = iota
	tokenSymbol
	tokenStyle
	tokenProjectName
	tokenEnvironmentName
	tokenShell
)

var tokens = map[string]token{
	"symbol":           tokenSymbol,
	"style":            tokenStyle,
	"project_name":     tokenProjectName,
	"environment_name": tokenEnvironmentName,
	"shell":            tokenShell,
}

// Module renders the railway segment. It holds no state.
type Module struct{}

var _ modules.Evaluator = Module{}

func init() {
	modules.Register(Module{})
}

func (Module) Name() string { return Name }

func (Module) Description() string {
	return "The linked Railway project and environment"
}

// Defaults returns a fresh *Config holding the default values
func (Module) Defaults() interface{} {
	cfg := DefaultConfig()
	return &cfg
}

// Render implements modules.Module
func (m Module) Render(ctx types.Context) (types.Segments, bool) {
	return m.Evaluate(ctx).Result()
}

// Evaluate runs one render pass and reports how it ended
func (Module) Evaluate(ctx types.Context) types.Outcome {
	logger := logging.ModuleLogger(Name)
	cfg := config.LoadModule(ctx, Name, DefaultConfig())

	if cfg.Disabled {
		return types.Absent(types.OutcomeDisabled)
	}

	shellValue, set := ctx.GetEnv(ShellEnvVar)
	inShell := set && shellValue == "true"

	result, ok := ctx.ExecCmd(program, "starship")
	if !ok {
		logger.Debug().Msg("railway starship unavailable")
		return types.Absent(types.OutcomeNotInProject)
	}

	data, err := parseStarshipOutput(result.Stdout)
	if err != nil {
		logger.Debug().Err(err).Msg("Ignoring railway output")
		return types.Absent(types.OutcomeMalformedOutput)
	}
	if !data.linked() {
		logger.Debug().Msg("No linked railway project")
		return types.Absent(types.OutcomeNotInProject)
	}

	f, err := formatter.New(cfg.Format)
	if err != nil {
		return templateError(err)
	}

	segs, err := f.
		MapMeta(func(name string) (string, bool) {
			switch tokens[name] {
			case tokenSymbol:
				return cfg.Symbol, true
			}
			return "", false
		}).
		MapStyle(func(name string) (string, bool) {
			switch tokens[name] {
			case tokenStyle:
				return cfg.Style, true
			}
			return "", false
		}).
		Map(func(name string) (string, bool) {
			switch tokens[name] {
			case tokenProjectName:
				return deref(data.Name)
			case tokenEnvironmentName:
				return deref(data.environment())
			case tokenShell:
				if inShell {
					return cfg.ShellMsg, true
				}
			}
			return "", false
		}).
		Parse(nil)
	if err != nil {
		return templateError(err)
	}

	return types.Rendered(segs)
}

func templateError(err error) types.Outcome {
	logger := logging.ModuleLogger(Name)
	logger.Warn().Err(err).Msg("Failed to render format")
	return types.TemplateError(err)
}

func deref(s *string) (string, bool) {
	if s == nil {
		return "", false
	}
	return *s, true
}
