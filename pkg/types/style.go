package types

// Color is a terminal color as written in a style string. It is either a
// named ANSI color ("purple", "bright-red"), a 256-color index ("208") or
// a hex RGB value ("#ff8800"). The empty Color means "terminal default".
type Color string

// Style describes how a segment is drawn. The zero value is unstyled.
type Style struct {
	Foreground    Color
	Background    Color
	Bold          bool
	Italic        bool
	Underline     bool
	Dimmed        bool
	Inverted      bool
	Blink         bool
	Hidden        bool
	Strikethrough bool
}

// IsZero reports whether the style carries no attributes at all.
func (s Style) IsZero() bool {
	return s == Style{}
}
