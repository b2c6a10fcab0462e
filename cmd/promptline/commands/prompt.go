package commands

import (
	"fmt"

	"github.com/arthur-debert/promptline/pkg/logging"
	"github.com/arthur-debert/promptline/pkg/modules"
	"github.com/arthur-debert/promptline/pkg/prompt"
	"github.com/arthur-debert/promptline/pkg/style"
	"github.com/spf13/cobra"
)

func newPromptCmd(opts *globalOptions) *cobra.Command {
	var shellName string

	cmd := &cobra.Command{
		Use:     "prompt",
		Short:   MsgPromptShort,
		Long:    MsgPromptLong,
		GroupID: "prompt",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			switch shellName {
			case "bash", "zsh", "fish":
			case "none", "":
				shellName = ""
			default:
				return fmt.Errorf(MsgErrInvalidShell, shellName)
			}

			cfg, sess, err := opts.newSession(cmd)
			if err != nil {
				return err
			}

			logger := logging.GetLogger("cmd.prompt")
			logger.Debug().Strs("modules", cfg.Modules).Str("shell", shellName).Msg("Rendering prompt")

			results := modules.NewRunner().Run(sess, cfg.Modules)

			out := cmd.OutOrStdout()
			profile := style.DetectProfile(out, opts.noColor, shellName != "")
			renderer := style.NewRenderer(out, profile)

			_, err = fmt.Fprint(out, prompt.Compose(results, renderer, prompt.Options{
				Shell:      shellName,
				AddNewline: cfg.AddNewline,
			}))
			return err
		},
	}

	cmd.Flags().StringVarP(&shellName, "shell", "s", "none", MsgFlagShell)
	_ = cmd.RegisterFlagCompletionFunc("shell", cobra.FixedCompletions(
		[]string{"bash", "zsh", "fish", "none"}, cobra.ShellCompDirectiveNoFileComp))

	return cmd
}

func newModuleCmd(opts *globalOptions) *cobra.Command {
	return &cobra.Command{
		Use:     "module <name>",
		Short:   MsgModuleShort,
		GroupID: "prompt",
		Args:    cobra.ExactArgs(1),
		ValidArgsFunction: func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
			return modules.List(), cobra.ShellCompDirectiveNoFileComp
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := modules.Get(args[0])
			if err != nil {
				return err
			}

			_, sess, err := opts.newSession(cmd)
			if err != nil {
				return err
			}

			segs, ok := m.Render(sess)
			if !ok {
				return nil
			}

			out := cmd.OutOrStdout()
			renderer := style.NewRenderer(out, style.DetectProfile(out, opts.noColor, false))
			_, err = fmt.Fprint(out, prompt.RenderSegments(segs, renderer, ""))
			return err
		},
	}
}
