package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewSegment_CopiesStyle(t *testing.T) {
	style := &Style{Foreground: "5", Bold: true}
	seg := NewSegment("on ", style)

	style.Bold = false
	style.Foreground = "1"

	assert.True(t, seg.Style.Bold)
	assert.Equal(t, Color("5"), seg.Style.Foreground)
}

func TestNewSegment_NilStyle(t *testing.T) {
	seg := NewSegment("plain", nil)
	assert.Nil(t, seg.Style)
	assert.Equal(t, "plain", seg.Value)
}

func TestSegments(t *testing.T) {
	segs := Segments{NewSegment("on ", nil), NewSegment("", nil), NewSegment("prod", nil)}
	assert.Equal(t, "on prod", segs.String())
	assert.False(t, segs.IsEmpty())

	assert.True(t, Segments{NewSegment("", nil)}.IsEmpty())
	assert.True(t, Segments(nil).IsEmpty())
}

func TestStyle_IsZero(t *testing.T) {
	assert.True(t, Style{}.IsZero())
	assert.False(t, Style{Dimmed: true}.IsZero())
	assert.False(t, Style{Background: "#ff0000"}.IsZero())
}
