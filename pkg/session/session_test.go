package session

import (
	"context"
	"os/exec"
	"path/filepath"
	"testing"
	"time"

	"github.com/arthur-debert/promptline/pkg/config"
	"github.com/arthur-debert/promptline/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func requireShell(t *testing.T) {
	t.Helper()
	if _, err := exec.LookPath("sh"); err != nil {
		t.Skip("sh not available")
	}
}

func newSession(t *testing.T, opts Options) *Session {
	t.Helper()
	s, err := New(context.Background(), opts)
	require.NoError(t, err)
	return s
}

func TestGetEnv(t *testing.T) {
	t.Setenv("PROMPTLINE_TEST_VAR", "from-process")
	s := newSession(t, Options{Env: map[string]string{"IN_RAILWAY_SHELL": "true"}})

	v, ok := s.GetEnv("IN_RAILWAY_SHELL")
	assert.True(t, ok)
	assert.Equal(t, "true", v)

	v, ok = s.GetEnv("PROMPTLINE_TEST_VAR")
	assert.True(t, ok)
	assert.Equal(t, "from-process", v)

	_, ok = s.GetEnv("PROMPTLINE_TEST_SURELY_UNSET")
	assert.False(t, ok)
}

func TestConfigAccess(t *testing.T) {
	path := filepath.Join(t.TempDir(), "promptline.toml")
	require.NoError(t, writeFile(path, "strict = true\n[railway]\nsymbol = 'R'\n"))
	cfg, err := config.LoadFrom(path)
	require.NoError(t, err)

	s := newSession(t, Options{Config: cfg, Dir: "/tmp"})

	assert.True(t, s.StrictConfig())
	assert.Equal(t, "R", s.ModuleConfig("railway")["symbol"])
	assert.Nil(t, s.ModuleConfig("other"))
	assert.Equal(t, "/tmp", s.CurrentDir())
}

func TestExecCmd(t *testing.T) {
	requireShell(t)

	t.Run("captures_stdout", func(t *testing.T) {
		s := newSession(t, Options{})
		out, ok := s.ExecCmd("sh", "-c", `printf '{"name":"my-proj"}'`)
		require.True(t, ok)
		assert.Equal(t, `{"name":"my-proj"}`, out.Stdout)
	})

	t.Run("passes_env_overrides_to_child", func(t *testing.T) {
		s := newSession(t, Options{Env: map[string]string{"PROMPTLINE_CHILD": "yes"}})
		out, ok := s.ExecCmd("sh", "-c", `printf "$PROMPTLINE_CHILD"`)
		require.True(t, ok)
		assert.Equal(t, "yes", out.Stdout)
	})

	t.Run("runs_in_session_dir", func(t *testing.T) {
		dir := t.TempDir()
		s := newSession(t, Options{Dir: dir})
		out, ok := s.ExecCmd("sh", "-c", "pwd -P")
		require.True(t, ok)
		resolved, err := filepath.EvalSymlinks(dir)
		require.NoError(t, err)
		assert.Equal(t, resolved+"\n", out.Stdout)
	})

	t.Run("non_zero_exit_is_failure", func(t *testing.T) {
		s := newSession(t, Options{})
		out, ok := s.ExecCmd("sh", "-c", "echo oops >&2; exit 3")
		assert.False(t, ok)
		assert.Nil(t, out)
	})

	t.Run("missing_program_is_failure", func(t *testing.T) {
		s := newSession(t, Options{})
		_, ok := s.ExecCmd("promptline-no-such-program-xyz")
		assert.False(t, ok)
	})
}

func TestRun_Errors(t *testing.T) {
	requireShell(t)

	t.Run("not_found", func(t *testing.T) {
		s := newSession(t, Options{})
		_, err := s.Run("promptline-no-such-program-xyz")
		assert.True(t, errors.IsErrorCode(err, errors.ErrCommandNotFound))
	})

	t.Run("execute_failure_keeps_stderr", func(t *testing.T) {
		s := newSession(t, Options{})
		_, err := s.Run("sh", "-c", "echo oops >&2; exit 3")
		require.Error(t, err)
		assert.True(t, errors.IsErrorCode(err, errors.ErrCommandExecute))
		assert.Equal(t, "oops", errors.GetErrorDetails(err)["stderr"])
	})

	t.Run("timeout", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "promptline.toml")
		require.NoError(t, writeFile(path, "command_timeout = 50\n"))
		cfg, err := config.LoadFrom(path)
		require.NoError(t, err)

		s := newSession(t, Options{Config: cfg})
		start := time.Now()
		_, err = s.Run("sh", "-c", "sleep 5")
		require.Error(t, err)
		assert.True(t, errors.IsErrorCode(err, errors.ErrCommandTimeout))
		assert.Less(t, time.Since(start), 4*time.Second)
	})

	t.Run("cancelled_render_pass", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		s, err := New(ctx, Options{})
		require.NoError(t, err)
		cancel()

		_, err = s.Run("sh", "-c", "sleep 5")
		require.Error(t, err)
		assert.False(t, errors.IsErrorCode(err, errors.ErrCommandTimeout))
	})
}
