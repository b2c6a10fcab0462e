package commands

import (
	"fmt"
	"time"

	"github.com/arthur-debert/promptline/pkg/modules"
	"github.com/arthur-debert/promptline/pkg/ui"
	"github.com/spf13/cobra"
)

// inspectCmd wires the shared parts of explain and timings: the --output
// flag and a render pass over the configured modules
func inspectCmd(opts *globalOptions, use, short string, report func(results []modules.Result) ui.Table) *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:     use,
		Short:   short,
		GroupID: "inspect",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			format, err := ui.ParseFormat(output)
			if err != nil {
				return err
			}
			if format == ui.FormatAuto && opts.noColor {
				format = ui.FormatText
			}
			renderer, err := ui.NewRenderer(format, cmd.OutOrStdout())
			if err != nil {
				return err
			}

			cfg, sess, err := opts.newSession(cmd)
			if err != nil {
				return err
			}
			if len(cfg.Modules) == 0 {
				return renderer.RenderMessage(MsgNoModules)
			}

			return renderer.RenderTable(report(modules.NewRunner().Run(sess, cfg.Modules)))
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "auto", MsgFlagOutput)
	return cmd
}

func newExplainCmd(opts *globalOptions) *cobra.Command {
	return inspectCmd(opts, "explain", MsgExplainShort, func(results []modules.Result) ui.Table {
		table := ui.Table{
			Headers:      []string{MsgHeaderModule, MsgHeaderOutcome, MsgHeaderOutput, MsgHeaderDescription},
			StatusColumn: MsgHeaderOutcome,
		}
		for _, r := range results {
			segs, _ := r.Segments()
			table.AddRow(r.Name, outcomeLabel(r), fmt.Sprintf("%q", segs.String()), r.Description)
		}
		return table
	})
}

func newTimingsCmd(opts *globalOptions) *cobra.Command {
	return inspectCmd(opts, "timings", MsgTimingsShort, func(results []modules.Result) ui.Table {
		table := ui.Table{
			Headers:      []string{MsgHeaderModule, MsgHeaderDuration, MsgHeaderOutcome},
			StatusColumn: MsgHeaderOutcome,
		}
		for _, r := range modules.SortByDuration(results) {
			table.AddRow(r.Name, r.Duration.Round(time.Microsecond).String(), outcomeLabel(r))
		}
		return table
	})
}

func outcomeLabel(r modules.Result) string {
	if r.Err != nil {
		return MsgUnknownOutcome
	}
	return r.Outcome.Kind.String()
}
