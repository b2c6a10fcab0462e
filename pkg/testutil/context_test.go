package testutil

import (
	"testing"

	"github.com/rs/zerolog/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFakeContext(t *testing.T) {
	ctx := NewFakeContext().
		WithEnv("IN_RAILWAY_SHELL", "true").
		WithCommand("railway starship", `{"name":"p"}`).
		WithModuleConfig("railway", map[string]interface{}{"symbol": "R"}).
		WithStrict().
		WithDir("/work")

	v, ok := ctx.GetEnv("IN_RAILWAY_SHELL")
	assert.True(t, ok)
	assert.Equal(t, "true", v)

	_, ok = ctx.GetEnv("HOME")
	assert.False(t, ok, "fake env does not fall through to the process")

	out, ok := ctx.ExecCmd("railway", "starship")
	require.True(t, ok)
	assert.Equal(t, `{"name":"p"}`, out.Stdout)

	_, ok = ctx.ExecCmd("railway", "status")
	assert.False(t, ok)

	assert.Equal(t, []string{"railway starship", "railway status"}, ctx.Calls())
	assert.Equal(t, "R", ctx.ModuleConfig("railway")["symbol"])
	assert.Nil(t, ctx.ModuleConfig("other"))
	assert.True(t, ctx.StrictConfig())
	assert.Equal(t, "/work", ctx.CurrentDir())
}

func TestMockContext(t *testing.T) {
	m := new(MockContext)
	m.On("GetEnv", "X").Return("1", true)
	m.On("ExecCmd", "tool", []string{"a"}).Return(nil, false)
	m.On("ModuleConfig", "mod").Return(nil)

	v, ok := m.GetEnv("X")
	assert.Equal(t, "1", v)
	assert.True(t, ok)

	out, ok := m.ExecCmd("tool", "a")
	assert.Nil(t, out)
	assert.False(t, ok)

	assert.Nil(t, m.ModuleConfig("mod"))
	m.AssertExpectations(t)
}

func TestCaptureLogs(t *testing.T) {
	buf := CaptureLogs(t)
	log.Warn().Str("module", "railway").Msg("hello")
	assert.Contains(t, buf.String(), `"level":"warn"`)
	assert.Contains(t, buf.String(), `"module":"railway"`)
}
