// Package paths provides centralized path handling for promptline.
//
// This package implements the XDG Base Directory specification for the
// few files promptline touches:
//
//   - Config: $XDG_CONFIG_HOME/promptline/promptline.toml (user configuration)
//   - State: $XDG_STATE_HOME/promptline/promptline.log (session log)
//
// # Environment Variables
//
//   - PROMPTLINE_CONFIG: explicit path to the configuration file
//   - XDG_CONFIG_HOME, XDG_STATE_HOME: standard XDG overrides
//
// # Usage
//
//	cfgFile := paths.ConfigFile()  // /home/user/.config/promptline/promptline.toml
//	logFile := paths.LogFile()     // /home/user/.local/state/promptline/promptline.log
package paths
