package paths

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/adrg/xdg"
)

// Environment variable names
const (
	// EnvConfigFile points at an explicit configuration file
	EnvConfigFile = "PROMPTLINE_CONFIG"

	// EnvXDGConfigHome is the standard XDG config override
	EnvXDGConfigHome = "XDG_CONFIG_HOME"

	// EnvXDGStateHome is the standard XDG state override
	EnvXDGStateHome = "XDG_STATE_HOME"
)

// Default directories and files
const (
	// AppDirName is the directory name for promptline-specific files
	AppDirName = "promptline"

	// ConfigFileName is the name of the user configuration file
	ConfigFileName = "promptline.toml"

	// LogFileName is the name of the log file
	LogFileName = "promptline.log"
)

// ConfigDir returns the directory holding the user configuration.
// XDG_CONFIG_HOME is read on every call so tests can point it elsewhere.
func ConfigDir() string {
	if dir := os.Getenv(EnvXDGConfigHome); dir != "" {
		return filepath.Join(ExpandHome(dir), AppDirName)
	}
	return filepath.Join(xdg.ConfigHome, AppDirName)
}

// ConfigFile returns the configuration file to load: PROMPTLINE_CONFIG when
// set, the XDG location otherwise.
func ConfigFile() string {
	if file := os.Getenv(EnvConfigFile); file != "" {
		return ExpandHome(file)
	}
	return filepath.Join(ConfigDir(), ConfigFileName)
}

// StateDir returns the directory for promptline's state files.
func StateDir() string {
	if dir := os.Getenv(EnvXDGStateHome); dir != "" {
		return filepath.Join(ExpandHome(dir), AppDirName)
	}
	return filepath.Join(xdg.StateHome, AppDirName)
}

// LogFile returns the path of the session log file.
func LogFile() string {
	return filepath.Join(StateDir(), LogFileName)
}

// ExpandHome replaces a leading ~ with the user's home directory.
func ExpandHome(path string) string {
	if path != "~" && !strings.HasPrefix(path, "~/") {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return filepath.Join(home, strings.TrimPrefix(path, "~"))
}
