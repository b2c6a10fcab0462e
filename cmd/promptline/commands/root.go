package commands

import (
	"fmt"

	"github.com/arthur-debert/promptline/internal/version"
	"github.com/arthur-debert/promptline/pkg/config"
	"github.com/arthur-debert/promptline/pkg/logging"
	"github.com/arthur-debert/promptline/pkg/paths"
	"github.com/arthur-debert/promptline/pkg/session"
	"github.com/pterm/pterm"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	// Modules register themselves from init()
	_ "github.com/arthur-debert/promptline/pkg/modules/railway"
)

// globalOptions holds the persistent flags shared by every command
type globalOptions struct {
	verbosity  int
	noColor    bool
	configPath string
	overrides  []string
}

// NewRootCmd creates and returns the root command
func NewRootCmd() *cobra.Command {
	initTemplateFormatting()

	opts := &globalOptions{}

	rootCmd := &cobra.Command{
		Use:     "promptline",
		Short:   MsgRootShort,
		Long:    MsgRootLong,
		Version: version.Version,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			logging.SetupLogger(opts.verbosity)
			if opts.noColor {
				pterm.DisableStyling()
			}
			log.Debug().Str("command", cmd.Name()).Msg("Command started")
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			_ = cmd.Help()
			return fmt.Errorf("no command specified")
		},
		SilenceUsage:      true,
		SilenceErrors:     true,
		DisableAutoGenTag: true,
	}

	rootCmd.PersistentFlags().CountVarP(&opts.verbosity, "verbose", "v", MsgFlagVerbose)
	rootCmd.PersistentFlags().BoolVar(&opts.noColor, "no-color", false, MsgFlagNoColor)
	rootCmd.PersistentFlags().StringVarP(&opts.configPath, "config", "c", "", MsgFlagConfig)
	rootCmd.PersistentFlags().StringArrayVar(&opts.overrides, "set", nil, MsgFlagSet)

	rootCmd.AddGroup(&cobra.Group{ID: "prompt", Title: "PROMPT:"})
	rootCmd.AddGroup(&cobra.Group{ID: "inspect", Title: "INSPECT:"})
	rootCmd.AddGroup(&cobra.Group{ID: "misc", Title: "MISC:"})
	rootCmd.SetHelpCommandGroupID("misc")
	rootCmd.SetUsageTemplate(MsgUsageTemplate)

	rootCmd.AddCommand(newPromptCmd(opts))
	rootCmd.AddCommand(newModuleCmd(opts))
	rootCmd.AddCommand(newInitCmd())
	rootCmd.AddCommand(newExplainCmd(opts))
	rootCmd.AddCommand(newTimingsCmd(opts))
	rootCmd.AddCommand(newPrintConfigCmd(opts))
	rootCmd.AddCommand(newVersionCmd())
	rootCmd.AddCommand(newCompletionCmd())
	rootCmd.AddCommand(newManCmd())

	return rootCmd
}

// loadConfig reads --config when given, the default location otherwise,
// and applies --set overrides on top
func (o *globalOptions) loadConfig() (*config.Config, error) {
	overrides, err := config.ParseOverrides(o.overrides)
	if err != nil {
		return nil, err
	}

	path := o.configPath
	if path == "" {
		path = paths.ConfigFile()
	}

	cfg, err := config.LoadWith(path, overrides)
	if err != nil {
		return nil, fmt.Errorf(MsgErrLoadConfig, err)
	}
	return cfg, nil
}

// newSession loads the configuration and opens a render session bound to
// the command's context
func (o *globalOptions) newSession(cmd *cobra.Command) (*config.Config, *session.Session, error) {
	cfg, err := o.loadConfig()
	if err != nil {
		return nil, nil, err
	}

	sess, err := session.New(cmd.Context(), session.Options{Config: cfg})
	if err != nil {
		return nil, nil, fmt.Errorf(MsgErrSession, err)
	}
	return cfg, sess, nil
}
