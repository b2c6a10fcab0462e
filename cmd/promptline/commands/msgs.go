package commands

import (
	_ "embed"
	"strings"
)

// Short messages (one-liners)
const (
	// Command descriptions
	MsgRootShort        = "A modular shell prompt renderer"
	MsgPromptShort      = "Render the full prompt"
	MsgModuleShort      = "Render a single module"
	MsgExplainShort     = "Show what each configured module renders"
	MsgTimingsShort     = "Show how long each configured module takes"
	MsgPrintConfigShort = "Print the effective configuration"
	MsgInitShort        = "Print the shell snippet that installs the prompt"
	MsgVersionShort     = "Print version information"
	MsgCompletionShort  = "Generate shell completion script"
	MsgManShort         = "Generate the man page"

	// Table headers
	MsgHeaderModule      = "MODULE"
	MsgHeaderOutcome     = "OUTCOME"
	MsgHeaderOutput      = "OUTPUT"
	MsgHeaderDescription = "DESCRIPTION"
	MsgHeaderDuration    = "DURATION"

	// Status messages
	MsgNoModules      = "No modules configured."
	MsgUnknownOutcome = "unknown module"

	// Flag descriptions
	MsgFlagVerbose   = "Increase verbosity (-v INFO, -vv DEBUG, -vvv TRACE)"
	MsgFlagNoColor   = "Disable colored output"
	MsgFlagConfig    = "Path to the configuration file"
	MsgFlagSet       = "Override a configuration key for this run (key=value, repeatable)"
	MsgFlagShell     = "Shell the prompt is printed for (bash, zsh, fish, none)"
	MsgFlagDefault   = "Print the built-in defaults instead of the loaded configuration"
	MsgFlagFormat    = "Output format (toml, yaml)"
	MsgFlagCommented = "Comment out every value, for use as a starter file"
	MsgFlagOutput    = "Report format (auto, term, text, json)"

	// Error messages
	MsgErrLoadConfig   = "failed to load configuration: %w"
	MsgErrSession      = "failed to start render session: %w"
	MsgErrInvalidShell = "invalid --shell %q (expected bash, zsh, fish or none)"
	MsgErrFormat       = "invalid --format %q (expected toml or yaml)"
)

// Long messages from embedded files
var (
	//go:embed msgs/root-long.txt
	msgRootLongRaw string
	MsgRootLong    = strings.TrimSpace(msgRootLongRaw)

	//go:embed msgs/prompt-long.txt
	msgPromptLongRaw string
	MsgPromptLong    = strings.TrimSpace(msgPromptLongRaw)

	//go:embed msgs/init-long.txt
	msgInitLongRaw string
	MsgInitLong    = strings.TrimSpace(msgInitLongRaw)

	//go:embed msgs/completion-long.txt
	msgCompletionLongRaw string
	MsgCompletionLong    = strings.TrimSpace(msgCompletionLongRaw)

	//go:embed msgs/usage-template.txt
	msgUsageTemplateRaw string
	MsgUsageTemplate    = strings.TrimSpace(msgUsageTemplateRaw) + "\n"
)
