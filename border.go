package stderr

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownBorderStyle is returned by [ParseBorderStyle] for unrecognized
// names.
var ErrUnknownBorderStyle = errors.New("unknown border style")

// BorderStyle selects the box-drawing glyphs used by boxes and flag tables.
type BorderStyle int

const (
	BorderLight  BorderStyle = iota // ┌─┐└┘│┬┴├┤┼
	BorderHeavy                     // ┏━┓┗┛┃┳┻┣┫╋
	BorderDouble                    // ╔═╗╚╝║╦╩╠╣╬
)

// String returns the style name.
func (s BorderStyle) String() string {
	switch s {
	case BorderHeavy:
		return "heavy"
	case BorderDouble:
		return "double"
	default:
		return "light"
	}
}

// ParseBorderStyle parses "light", "heavy" or "double", ignoring case. An
// empty string selects [BorderLight].
func ParseBorderStyle(s string) (BorderStyle, error) {
	switch strings.ToLower(s) {
	case "light", "":
		return BorderLight, nil
	case "heavy":
		return BorderHeavy, nil
	case "double":
		return BorderDouble, nil
	default:
		return BorderLight, fmt.Errorf("%w: %q", ErrUnknownBorderStyle, s)
	}
}

// Border is the resolved glyph set for a [BorderStyle].
type Border struct {
	TopLeft, TopRight, BottomLeft, BottomRight string
	Horizontal, Vertical                       string
	TopTee, BottomTee, LeftTee, RightTee       string
	Cross                                      string
}

var borderSets = map[BorderStyle]Border{
	BorderLight: {
		TopLeft: "┌", TopRight: "┐", BottomLeft: "└", BottomRight: "┘",
		Horizontal: "─", Vertical: "│",
		TopTee: "┬", BottomTee: "┴", LeftTee: "├", RightTee: "┤",
		Cross: "┼",
	},
	BorderHeavy: {
		TopLeft: "┏", TopRight: "┓", BottomLeft: "┗", BottomRight: "┛",
		Horizontal: "━", Vertical: "┃",
		TopTee: "┳", BottomTee: "┻", LeftTee: "┣", RightTee: "┫",
		Cross: "╋",
	},
	BorderDouble: {
		TopLeft: "╔", TopRight: "╗", BottomLeft: "╚", BottomRight: "╝",
		Horizontal: "═", Vertical: "║",
		TopTee: "╦", BottomTee: "╩", LeftTee: "╠", RightTee: "╣",
		Cross: "╬",
	},
}

// Chars resolves the style to its glyphs. Unknown styles resolve to
// [BorderLight].
func (s BorderStyle) Chars() Border {
	if b, ok := borderSets[s]; ok {
		return b
	}
	return borderSets[BorderLight]
}
