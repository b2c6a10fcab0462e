package style

import (
	"strconv"
	"strings"

	"github.com/arthur-debert/promptline/pkg/errors"
	"github.com/arthur-debert/promptline/pkg/types"
)

// ansiColors maps named colors to their 16-color ANSI indexes.
var ansiColors = map[string]int{
	"black":  0,
	"red":    1,
	"green":  2,
	"yellow": 3,
	"blue":   4,
	"purple": 5,
	"cyan":   6,
	"white":  7,
}

// Parse turns a style string such as "bold fg:#ff8800 bg:blue" into a
// Style. Tokens are case-insensitive and separated by whitespace. "none"
// discards everything parsed before it. Unknown tokens are an error.
func Parse(spec string) (types.Style, error) {
	var s types.Style

	for _, token := range strings.Fields(strings.ToLower(spec)) {
		switch token {
		case "none":
			s = types.Style{}
		case "bold":
			s.Bold = true
		case "italic":
			s.Italic = true
		case "underline":
			s.Underline = true
		case "dimmed":
			s.Dimmed = true
		case "inverted":
			s.Inverted = true
		case "blink":
			s.Blink = true
		case "hidden":
			s.Hidden = true
		case "strikethrough":
			s.Strikethrough = true
		default:
			target := &s.Foreground
			color := token
			switch {
			case strings.HasPrefix(token, "fg:"):
				color = strings.TrimPrefix(token, "fg:")
			case strings.HasPrefix(token, "bg:"):
				target = &s.Background
				color = strings.TrimPrefix(token, "bg:")
			}
			if color == "none" {
				*target = ""
				continue
			}
			if !validColor(color) {
				return types.Style{}, errors.Newf(errors.ErrTemplateStyle, "invalid style token %q", token).
					WithDetail("style", spec)
			}
			*target = types.Color(color)
		}
	}

	return s, nil
}

// validColor accepts named colors, bright- variants, 0-255 and #rrggbb.
func validColor(c string) bool {
	if _, ok := ansiColors[strings.TrimPrefix(c, "bright-")]; ok {
		return true
	}
	if n, err := strconv.Atoi(c); err == nil {
		return n >= 0 && n <= 255
	}
	if strings.HasPrefix(c, "#") && len(c) == 7 {
		_, err := strconv.ParseUint(c[1:], 16, 32)
		return err == nil
	}
	return false
}

// colorValue converts a parsed Color into the value lipgloss expects:
// an ANSI index for named and numeric colors, the hex string otherwise.
func colorValue(c types.Color) string {
	name := string(c)
	if strings.HasPrefix(name, "#") {
		return name
	}
	if idx, ok := ansiColors[name]; ok {
		return strconv.Itoa(idx)
	}
	if idx, ok := ansiColors[strings.TrimPrefix(name, "bright-")]; ok {
		return strconv.Itoa(idx + 8)
	}
	return name
}
