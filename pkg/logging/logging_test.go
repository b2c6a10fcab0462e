package logging

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetupLogger(t *testing.T) {
	tests := []struct {
		name      string
		verbosity int
		wantLevel zerolog.Level
	}{
		{"default_warn", 0, zerolog.WarnLevel},
		{"info", 1, zerolog.InfoLevel},
		{"debug", 2, zerolog.DebugLevel},
		{"trace", 3, zerolog.TraceLevel},
		{"beyond_trace", 7, zerolog.TraceLevel},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stateDir := t.TempDir()
			t.Setenv("XDG_STATE_HOME", stateDir)
			captureLogs(t)

			SetupLogger(tt.verbosity)

			assert.Equal(t, tt.wantLevel, zerolog.GlobalLevel())
			_, err := os.Stat(filepath.Join(stateDir, "promptline", "promptline.log"))
			assert.NoError(t, err, "log file should be created")
		})
	}
}

// captureLogs sends the global logger to a buffer at trace level and
// puts the previous logger and level back when the test ends.
func captureLogs(t *testing.T) *bytes.Buffer {
	t.Helper()

	var buf bytes.Buffer
	prevLogger := log.Logger
	prevLevel := zerolog.GlobalLevel()

	log.Logger = zerolog.New(&buf).Level(zerolog.TraceLevel)
	zerolog.SetGlobalLevel(zerolog.TraceLevel)

	t.Cleanup(func() {
		log.Logger = prevLogger
		zerolog.SetGlobalLevel(prevLevel)
	})
	return &buf
}

func TestModuleLogger(t *testing.T) {
	buf := captureLogs(t)

	logger := ModuleLogger("railway")
	logger.Warn().Msg("template failed")

	assert.Contains(t, buf.String(), `"module":"railway"`)
	assert.Contains(t, buf.String(), "template failed")
}

func TestGetLogger(t *testing.T) {
	buf := captureLogs(t)

	logger := GetLogger("session")
	logger.Info().Msg("hello")

	assert.Contains(t, buf.String(), `"component":"session"`)
}

func TestLogCommand(t *testing.T) {
	buf := captureLogs(t)

	LogCommand("railway", []string{"starship"})

	output := buf.String()
	assert.Contains(t, output, "railway")
	assert.Contains(t, output, "starship")
	assert.Contains(t, output, "Executing command")
}

func TestLogOperationStart(t *testing.T) {
	captureLogs(t)
	var buf bytes.Buffer
	logger := zerolog.New(&buf).Level(zerolog.TraceLevel)

	done := LogOperationStart(logger, "render railway")
	require.Contains(t, buf.String(), "Operation started")

	done()
	assert.Contains(t, buf.String(), "Operation completed")
	assert.Contains(t, buf.String(), "duration")
}
