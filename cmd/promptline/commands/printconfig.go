package commands

import (
	"fmt"

	"github.com/arthur-debert/promptline/pkg/config"
	"github.com/arthur-debert/promptline/pkg/modules"
	"github.com/spf13/cobra"
)

func newPrintConfigCmd(opts *globalOptions) *cobra.Command {
	var (
		defaults  bool
		format    string
		commented bool
	)

	cmd := &cobra.Command{
		Use:     "print-config",
		Short:   MsgPrintConfigShort,
		GroupID: "inspect",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			var cfg *config.Config
			if defaults {
				cfg = config.Default()
			} else {
				loaded, err := opts.loadConfig()
				if err != nil {
					return err
				}
				cfg = loaded
			}

			doc, err := buildDocument(cfg)
			if err != nil {
				return err
			}

			var content string
			switch {
			case format == "toml" && commented:
				content, err = config.GenerateConfigContent(doc)
			case format == "toml":
				content, err = doc.MarshalTOML()
			case format == "yaml":
				content, err = doc.MarshalYAML()
			default:
				return fmt.Errorf(MsgErrFormat, format)
			}
			if err != nil {
				return err
			}

			_, err = fmt.Fprint(cmd.OutOrStdout(), content)
			return err
		},
	}

	cmd.Flags().BoolVar(&defaults, "default", false, MsgFlagDefault)
	cmd.Flags().StringVarP(&format, "format", "f", "toml", MsgFlagFormat)
	cmd.Flags().BoolVar(&commented, "commented", false, MsgFlagCommented)

	return cmd
}

// buildDocument pairs the root config with every registered module's
// section, decoded over that module's defaults.
func buildDocument(cfg *config.Config) (config.Document, error) {
	doc := config.Document{Root: cfg, Sections: make(map[string]interface{})}

	for _, name := range modules.List() {
		m, err := modules.Get(name)
		if err != nil {
			return doc, err
		}
		d, ok := m.(modules.Defaulter)
		if !ok {
			continue
		}

		section := d.Defaults()
		if err := config.DecodeModule(cfg.Section(name), section, cfg.Strict); err != nil {
			return doc, fmt.Errorf("[%s]: %w", name, err)
		}
		doc.Sections[name] = section
	}

	return doc, nil
}
