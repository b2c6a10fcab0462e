package style

import (
	"io"
	"os"
	"strings"

	"github.com/arthur-debert/promptline/pkg/types"
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
	"github.com/muesli/termenv"
)

// Renderer draws segments as ANSI text for one color profile.
type Renderer struct {
	lg *lipgloss.Renderer
}

// NewRenderer returns a renderer using the given termenv profile.
func NewRenderer(w io.Writer, profile termenv.Profile) *Renderer {
	lg := lipgloss.NewRenderer(w)
	lg.SetColorProfile(profile)
	return &Renderer{lg: lg}
}

// DetectProfile picks the color profile for w. noColor, NO_COLOR and
// non-terminal writers get termenv.Ascii. A prompt is printed into a
// command substitution, so stdout is never a TTY there; callers that
// render for a shell pass forceColor.
func DetectProfile(w io.Writer, noColor, forceColor bool) termenv.Profile {
	if noColor || os.Getenv("NO_COLOR") != "" {
		return termenv.Ascii
	}
	if forceColor {
		return termenv.EnvColorProfile()
	}
	if f, ok := w.(*os.File); ok && isatty.IsTerminal(f.Fd()) {
		return termenv.NewOutput(f).EnvColorProfile()
	}
	return termenv.Ascii
}

// Lipgloss converts a parsed style into a lipgloss style bound to this
// renderer's profile.
func (r *Renderer) Lipgloss(s types.Style) lipgloss.Style {
	ls := r.lg.NewStyle().
		Bold(s.Bold).
		Italic(s.Italic).
		Underline(s.Underline).
		Faint(s.Dimmed).
		Reverse(s.Inverted).
		Blink(s.Blink).
		Strikethrough(s.Strikethrough)
	if s.Foreground != "" {
		ls = ls.Foreground(lipgloss.Color(colorValue(s.Foreground)))
	}
	if s.Background != "" {
		ls = ls.Background(lipgloss.Color(colorValue(s.Background)))
	}
	return ls
}

// RenderSegment returns the segment's text wrapped in its style.
func (r *Renderer) RenderSegment(seg types.Segment) string {
	if seg.Value == "" {
		return ""
	}
	if seg.Style == nil || seg.Style.IsZero() {
		return seg.Value
	}
	value := seg.Value
	if seg.Style.Hidden {
		value = strings.Repeat(" ", lipgloss.Width(value))
	}
	return r.Lipgloss(*seg.Style).Render(value)
}

// Render concatenates all segments, each drawn in its own style.
func (r *Renderer) Render(segs types.Segments) string {
	var b strings.Builder
	for _, seg := range segs {
		b.WriteString(r.RenderSegment(seg))
	}
	return b.String()
}
