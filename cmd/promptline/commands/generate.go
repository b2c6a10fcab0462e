package commands

import (
	"fmt"
	"io"

	"github.com/arthur-debert/promptline/internal/version"
	"github.com/spf13/cobra"
	"github.com/spf13/cobra/doc"
)

// GenCompletion writes the completion script for shell
func GenCompletion(root *cobra.Command, shell string, w io.Writer) error {
	switch shell {
	case "bash":
		return root.GenBashCompletionV2(w, true)
	case "zsh":
		return root.GenZshCompletion(w)
	case "fish":
		return root.GenFishCompletion(w, true)
	case "powershell":
		return root.GenPowerShellCompletionWithDesc(w)
	}
	return fmt.Errorf("unknown shell: %s (supported: bash, zsh, fish, powershell)", shell)
}

// ManHeader is the header of the generated man page
func ManHeader() *doc.GenManHeader {
	return &doc.GenManHeader{
		Title:   "PROMPTLINE",
		Section: "1",
		Source:  "promptline " + version.Version,
		Manual:  "promptline manual",
	}
}
