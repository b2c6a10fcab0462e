package types

import "strings"

// Segment is the atomic unit of rendered output: a piece of text and the
// style it is drawn with. A nil Style means the text is drawn unstyled.
type Segment struct {
	Value string
	Style *Style
}

// NewSegment returns a segment with a copy of style, so later changes to
// the caller's value do not leak into rendered output.
func NewSegment(value string, style *Style) Segment {
	if style == nil {
		return Segment{Value: value}
	}
	s := *style
	return Segment{Value: value, Style: &s}
}

// Segments is an ordered sequence of segments. Order matches template order.
type Segments []Segment

// String returns the plain text of all segments, without styling.
func (s Segments) String() string {
	var b strings.Builder
	for _, seg := range s {
		b.WriteString(seg.Value)
	}
	return b.String()
}

// IsEmpty reports whether the segments render no visible text.
func (s Segments) IsEmpty() bool {
	for _, seg := range s {
		if seg.Value != "" {
			return false
		}
	}
	return true
}
