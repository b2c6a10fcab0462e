package railway_test

import (
	"testing"

	"github.com/arthur-debert/promptline/pkg/errors"
	"github.com/arthur-debert/promptline/pkg/modules/railway"
	"github.com/arthur-debert/promptline/pkg/testutil"
	"github.com/arthur-debert/promptline/pkg/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const starship = "railway starship"

var boldPurple = &types.Style{Foreground: "purple", Bold: true}

func TestNoToolIsAbsent(t *testing.T) {
	tests := []struct {
		name  string
		value *string
	}{
		{"env_unset", nil},
		{"env_empty", strPtr("")},
		{"env_one", strPtr("1")},
		{"env_upper_case", strPtr("TRUE")},
		{"env_true", strPtr("true")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := testutil.Render(railway.Name)
			if tt.value != nil {
				r.Env(railway.ShellEnvVar, *tt.value)
			}

			segs, ok := r.Collect()
			assert.False(t, ok)
			assert.Nil(t, segs)
			assert.Equal(t, types.OutcomeNotInProject, r.Outcome().Kind)
			assert.Contains(t, r.Context().Calls(), starship)
		})
	}
}

func TestDisabledNeverRunsTool(t *testing.T) {
	ctx := new(testutil.MockContext)
	ctx.On("ModuleConfig", railway.Name).Return(map[string]interface{}{"disabled": true})
	ctx.On("StrictConfig").Return(false)

	outcome := railway.Module{}.Evaluate(ctx)

	assert.Equal(t, types.OutcomeDisabled, outcome.Kind)
	_, ok := outcome.Result()
	assert.False(t, ok)
	ctx.AssertNotCalled(t, "ExecCmd", mock.Anything, mock.Anything)
	ctx.AssertNotCalled(t, "GetEnv", mock.Anything)
	ctx.AssertExpectations(t)
}

func TestMalformedOutputIsSilent(t *testing.T) {
	for _, stdout := range []string{"", "not json", "[1, 2]", `{"name": 42}`, "Unauthorized. Please login"} {
		t.Run(stdout, func(t *testing.T) {
			logs := testutil.CaptureLogs(t)

			r := testutil.Render(railway.Name).Env(railway.ShellEnvVar, "true").Cmd(starship, stdout)
			_, ok := r.Collect()

			assert.False(t, ok)
			assert.Equal(t, types.OutcomeMalformedOutput, r.Outcome().Kind)
			assert.NotContains(t, logs.String(), `"level":"warn"`)
		})
	}
}

func TestRendersProjectInShell(t *testing.T) {
	segs, ok := testutil.Render(railway.Name).
		Env(railway.ShellEnvVar, "true").
		Cmd(starship, `{"name": "my-proj"}`).
		Collect()

	require.True(t, ok)
	assert.Equal(t, "on 🚅 my-proj $", segs.String())

	require.Greater(t, len(segs), 1)
	assert.Equal(t, "on ", segs[0].Value)
	assert.Nil(t, segs[0].Style)
	for _, seg := range segs[1:] {
		assert.Equal(t, boldPurple, seg.Style, "segment %q", seg.Value)
	}
}

func TestRendersEnvironmentOutsideShell(t *testing.T) {
	segs, ok := testutil.Render(railway.Name).
		Cmd(starship, `{"name": "my-proj", "environmentName": "prod"}`).
		Collect()

	require.True(t, ok)
	assert.Equal(t, "on 🚅 my-proj (prod) ", segs.String())
	assert.NotContains(t, segs.String(), "$")
}

func TestShellTokenRequiresExactTrue(t *testing.T) {
	for _, value := range []string{"TRUE", "True", "1", "yes", " true", "true "} {
		t.Run(value, func(t *testing.T) {
			segs, ok := testutil.Render(railway.Name).
				Env(railway.ShellEnvVar, value).
				Cmd(starship, `{"name": "my-proj"}`).
				Collect()
			require.True(t, ok)
			assert.Equal(t, "on 🚅 my-proj ", segs.String())
		})
	}
}

func TestIdenticalInputsRenderIdentically(t *testing.T) {
	render := func() types.Outcome {
		return testutil.Render(railway.Name).
			Env(railway.ShellEnvVar, "true").
			Cmd(starship, `{"name": "my-proj", "environmentName": "prod"}`).
			Outcome()
	}

	first, second := render(), render()
	assert.Equal(t, first, second)
	assert.Equal(t, "on 🚅 my-proj (prod) $", first.Segments.String())
}

func TestOutputDecoding(t *testing.T) {
	tests := []struct {
		name   string
		stdout string
		want   string
		kind   types.OutcomeKind
	}{
		{"snake_case_environment", `{"name": "p", "environment_name": "staging"}`, "on 🚅 p (staging) ", types.OutcomeRendered},
		{"camel_case_wins", `{"name": "p", "environmentName": "a", "environment_name": "b"}`, "on 🚅 p (a) ", types.OutcomeRendered},
		{"comments_and_trailing_commas", "{\n  // linked\n  \"name\": \"p\",\n}", "on 🚅 p ", types.OutcomeRendered},
		{"unknown_keys_ignored", `{"name": "p", "service": "api"}`, "on 🚅 p ", types.OutcomeRendered},
		{"empty_environment_prunes_group", `{"name": "p", "environmentName": ""}`, "on 🚅 p ", types.OutcomeRendered},
		{"environment_only", `{"environmentName": "prod"}`, "on 🚅  (prod) ", types.OutcomeRendered},
		{"empty_object", `{}`, "", types.OutcomeNotInProject},
		{"null", `null`, "", types.OutcomeNotInProject},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			outcome := testutil.Render(railway.Name).Cmd(starship, tt.stdout).Outcome()
			assert.Equal(t, tt.kind, outcome.Kind)
			assert.Equal(t, tt.want, outcome.Segments.String())
		})
	}
}

func TestCustomConfig(t *testing.T) {
	segs, ok := testutil.Render(railway.Name).
		Env(railway.ShellEnvVar, "true").
		Cmd(starship, `{"name": "my-proj", "environmentName": "prod"}`).
		Config(map[string]interface{}{
			"format":    "[$symbol]($style)$project_name@$environment_name[$shell](red)",
			"symbol":    "RW ",
			"style":     "italic",
			"shell_msg": "!",
		}).
		Collect()

	require.True(t, ok)
	assert.Equal(t, "RW my-proj@prod!", segs.String())
	assert.Equal(t, &types.Style{Italic: true}, segs[0].Style)
	assert.Nil(t, segs[1].Style)
	assert.Equal(t, &types.Style{Foreground: "red"}, segs[len(segs)-1].Style)
}

func TestTokensResolveOnlyInTheirRole(t *testing.T) {
	segs, ok := testutil.Render(railway.Name).
		Cmd(starship, `{"name": "my-proj"}`).
		Config(map[string]interface{}{"format": "$nope|$symbol|($unknown)|$style|$project_name"}).
		Collect()

	require.True(t, ok)
	assert.Equal(t, "|🚅 |||my-proj", segs.String())
}

func TestTemplateErrorsAreLoggedAndAbsent(t *testing.T) {
	tests := []struct {
		name   string
		config map[string]interface{}
		code   errors.ErrorCode
	}{
		{"unclosed_group", map[string]interface{}{"format": "[$project_name"}, errors.ErrTemplateSyntax},
		{"unknown_style_variable", map[string]interface{}{"format": "[$project_name]($colour)"}, errors.ErrTemplateUnresolved},
		{"value_token_as_style", map[string]interface{}{"format": "[$project_name]($project_name)"}, errors.ErrTemplateUnresolved},
		{"invalid_style", map[string]interface{}{"style": "bold sparkly"}, errors.ErrTemplateStyle},
		{"broken_symbol", map[string]interface{}{"symbol": "("}, errors.ErrTemplateSyntax},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			logs := testutil.CaptureLogs(t)

			r := testutil.Render(railway.Name).Cmd(starship, `{"name": "my-proj"}`).Config(tt.config)
			outcome := r.Outcome()

			assert.Equal(t, types.OutcomeTemplateError, outcome.Kind)
			assert.True(t, errors.IsErrorCode(outcome.Err, tt.code), "got %v", outcome.Err)
			_, ok := outcome.Result()
			assert.False(t, ok)

			assert.Contains(t, logs.String(), `"level":"warn"`)
			assert.Contains(t, logs.String(), `"module":"railway"`)
			assert.Contains(t, logs.String(), `"error":`)
		})
	}
}

func TestInvalidSectionFallsBackToDefaults(t *testing.T) {
	logs := testutil.CaptureLogs(t)

	segs, ok := testutil.Render(railway.Name).
		Cmd(starship, `{"name": "my-proj"}`).
		Config(map[string]interface{}{"symbol": "X ", "colour": "red"}).
		Strict().
		Collect()

	require.True(t, ok)
	assert.Equal(t, "on 🚅 my-proj ", segs.String())
	assert.Contains(t, logs.String(), "using defaults")
}

func TestDefaultConfig(t *testing.T) {
	cfg := railway.DefaultConfig()
	assert.Equal(t, "on [$symbol$project_name( \\($environment_name\\)) $shell]($style)", cfg.Format)
	assert.Equal(t, "🚅 ", cfg.Symbol)
	assert.Equal(t, "bold purple", cfg.Style)
	assert.False(t, cfg.Disabled)
	assert.Equal(t, "$", cfg.ShellMsg)
}

func TestModuleMetadata(t *testing.T) {
	m := railway.Module{}
	assert.Equal(t, "railway", m.Name())
	assert.NotEmpty(t, m.Description())
	want := railway.DefaultConfig()
	assert.Equal(t, &want, m.Defaults())
}

func strPtr(s string) *string { return &s }
