// Package session provides the Context a render pass hands to modules:
// environment lookup, external command execution and the user's module
// configuration.
package session

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"os/exec"
	"sort"
	"strings"
	"time"

	"github.com/arthur-debert/promptline/pkg/config"
	"github.com/arthur-debert/promptline/pkg/errors"
	"github.com/arthur-debert/promptline/pkg/logging"
	"github.com/arthur-debert/promptline/pkg/types"
	"github.com/rs/zerolog"
)

const waitDelay = 100 * time.Millisecond

// Options configures a Session
type Options struct {
	// Dir is the directory the prompt is rendered for; defaults to the working directory
	Dir string

	// Env overrides process environment variables, for lookups and child processes
	Env map[string]string

	// Config is the loaded configuration; defaults to config.Default()
	Config *config.Config
}

// Session is the concrete types.Context for one render pass. It is safe
// for concurrent use by several modules.
type Session struct {
	ctx     context.Context
	dir     string
	env     map[string]string
	cfg     *config.Config
	timeout time.Duration
	logger  zerolog.Logger
}

var _ types.Context = (*Session)(nil)

// New creates a session bound to ctx. Cancelling ctx kills every external
// command the session still has running.
func New(ctx context.Context, opts Options) (*Session, error) {
	cfg := opts.Config
	if cfg == nil {
		cfg = config.Default()
	}

	dir := opts.Dir
	if dir == "" {
		wd, err := os.Getwd()
		if err != nil {
			return nil, errors.Wrap(err, errors.ErrInternal, "failed to determine working directory")
		}
		dir = wd
	}

	env := make(map[string]string, len(opts.Env))
	for k, v := range opts.Env {
		env[k] = v
	}

	return &Session{
		ctx:     ctx,
		dir:     dir,
		env:     env,
		cfg:     cfg,
		timeout: cfg.Timeout(),
		logger:  logging.GetLogger("session"),
	}, nil
}

// GetEnv returns an override when present, the process environment otherwise
func (s *Session) GetEnv(name string) (string, bool) {
	if v, ok := s.env[name]; ok {
		return v, true
	}
	return os.LookupEnv(name)
}

// CurrentDir returns the directory the prompt is rendered for
func (s *Session) CurrentDir() string {
	return s.dir
}

// ModuleConfig returns the raw configuration section for a module
func (s *Session) ModuleConfig(name string) map[string]interface{} {
	return s.cfg.Section(name)
}

// StrictConfig reports whether unknown module fields are rejected
func (s *Session) StrictConfig() bool {
	return s.cfg.Strict
}

// ExecCmd runs a command and reports only whether it succeeded. Failures
// are expected (tool not installed, not in a project) and logged at debug.
func (s *Session) ExecCmd(program string, args ...string) (*types.CommandOutput, bool) {
	out, err := s.Run(program, args...)
	if err != nil {
		event := s.logger.Debug()
		if errors.IsErrorCode(err, errors.ErrCommandTimeout) {
			event = s.logger.Warn()
		}
		event.Err(err).Str("command", program).Strs("args", args).Msg("Command did not succeed")
		return nil, false
	}
	return out, true
}

// Run executes program within the session's timeout and returns its
// output, or a coded error describing why it failed.
func (s *Session) Run(program string, args ...string) (*types.CommandOutput, error) {
	path, err := exec.LookPath(program)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrCommandNotFound, "%s not found", program).
			WithDetail("program", program)
	}

	logging.LogCommand(path, args)
	done := logging.LogOperationStart(s.logger, program+" "+strings.Join(args, " "))
	defer done()

	ctx, cancel := context.WithTimeout(s.ctx, s.timeout)
	defer cancel()

	cmd := exec.CommandContext(ctx, path, args...)
	cmd.Dir = s.dir
	cmd.Env = s.environ()
	// Grandchildren holding stdout open must not outlive the timeout
	cmd.WaitDelay = waitDelay

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		if ctx.Err() == context.DeadlineExceeded && s.ctx.Err() == nil {
			return nil, errors.Newf(errors.ErrCommandTimeout, "%s timed out after %s", program, s.timeout).
				WithDetail("program", program)
		}
		return nil, errors.Wrapf(err, errors.ErrCommandExecute, "%s %s failed", program, strings.Join(args, " ")).
			WithDetail("program", program).
			WithDetail("stderr", strings.TrimSpace(stderr.String()))
	}

	return &types.CommandOutput{
		Stdout: stdout.String(),
		Stderr: stderr.String(),
	}, nil
}

// environ is the process environment with the session overrides applied.
func (s *Session) environ() []string {
	if len(s.env) == 0 {
		return nil
	}

	environ := os.Environ()
	keys := make([]string, 0, len(s.env))
	for k := range s.env {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		environ = append(environ, fmt.Sprintf("%s=%s", k, s.env[k]))
	}
	return environ
}
