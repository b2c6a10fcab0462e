// Package prompt joins module results into the string a shell prints.
package prompt

import (
	"strings"

	"github.com/arthur-debert/promptline/pkg/modules"
	"github.com/arthur-debert/promptline/pkg/style"
	"github.com/arthur-debert/promptline/pkg/types"
)

// Options controls how a prompt is composed
type Options struct {
	// Shell is bash, zsh, fish or empty for plain output
	Shell string

	// AddNewline starts the prompt on a fresh line
	AddNewline bool
}

// Compose renders results in order. Absent modules take no space. Text is
// escaped for the shell's prompt expansion and escape sequences are
// wrapped as zero-width.
func Compose(results []modules.Result, renderer *style.Renderer, opts Options) string {
	var b strings.Builder
	if opts.AddNewline {
		b.WriteString("\n")
	}

	for _, r := range results {
		segs, ok := r.Segments()
		if !ok {
			continue
		}
		b.WriteString(RenderSegments(segs, renderer, opts.Shell))
	}
	return b.String()
}

// RenderSegments draws one module's segments for shell
func RenderSegments(segs types.Segments, renderer *style.Renderer, shell string) string {
	var b strings.Builder
	for _, seg := range segs {
		seg.Value = style.EscapeForShell(shell, seg.Value)
		b.WriteString(style.WrapForShell(shell, renderer.RenderSegment(seg)))
	}
	return b.String()
}
