package style

import (
	"regexp"
	"strings"
)

// bash decodes PS1 backslash escapes first and then runs parameter,
// command and arithmetic expansion on the result. Each special character
// is written so that decoding leaves it backslash-quoted for the second
// pass. `$` goes through an octal escape because `\$` decodes to `#` for
// root.
//
// zsh prompts are installed as PROMPT='$(...)' with promptsubst, and
// command substitution output is not expanded again, so only `%` needs
// quoting.
var (
	bashEscaper = strings.NewReplacer(
		`\`, `\\\\`,
		"$", `\\\044`,
		"`", `\\\140`,
	)
	zshEscaper = strings.NewReplacer("%", "%%")
)

// sgrPattern matches ANSI select-graphic-rendition sequences.
var sgrPattern = regexp.MustCompile("\x1b\\[[0-9;:]*m")

// WrapForShell marks every escape sequence in s as zero-width for the
// given shell's prompt expansion, so line editing measures the prompt
// correctly. Shells that need no markers get s back unchanged.
func WrapForShell(shell, s string) string {
	var open, closing string
	switch shell {
	case "bash":
		open, closing = `\[`, `\]`
	case "zsh":
		open, closing = "%{", "%}"
	default:
		return s
	}
	return sgrPattern.ReplaceAllStringFunc(s, func(seq string) string {
		return open + seq + closing
	})
}

// EscapeForShell escapes characters the shell's prompt expansion would
// otherwise interpret inside plain segment text.
func EscapeForShell(shell, s string) string {
	switch shell {
	case "bash":
		return bashEscaper.Replace(s)
	case "zsh":
		return zshEscaper.Replace(s)
	}
	return s
}
