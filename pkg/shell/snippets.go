// Package shell generates the snippet a user sources from their shell rc
// file to have promptline draw the prompt.
package shell

import (
	"fmt"
	"strings"

	"github.com/arthur-debert/promptline/pkg/errors"
)

// Supported lists the shells init can produce a snippet for
var Supported = []string{"bash", "zsh", "fish"}

// GetInitSnippet returns the init snippet for shell, calling the
// promptline binary at binary.
func GetInitSnippet(shell, binary string) (string, error) {
	bin := quote(binary)

	switch shell {
	case "bash":
		return fmt.Sprintf(`_promptline_prompt() {
    PS1="$(%s prompt --shell bash)"
}
if [[ ";${PROMPT_COMMAND:-};" != *";_promptline_prompt;"* ]]; then
    PROMPT_COMMAND="_promptline_prompt${PROMPT_COMMAND:+;$PROMPT_COMMAND}"
fi
`, bin), nil
	case "zsh":
		return fmt.Sprintf(`setopt promptsubst
PROMPT="\$(%s prompt --shell zsh)"
`, bin), nil
	case "fish":
		return fmt.Sprintf(`function fish_prompt
    %s prompt --shell fish
end
`, bin), nil
	}

	return "", errors.Newf(errors.ErrInvalidInput, "unsupported shell %q (supported: %s)",
		shell, strings.Join(Supported, ", ")).WithDetail("shell", shell)
}

// quote single-quotes s for POSIX shells and fish
func quote(s string) string {
	return "'" + strings.ReplaceAll(s, "'", `'\''`) + "'"
}
