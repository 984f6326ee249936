package stderr

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownLevel is returned by [ParseLevel] for names that match no level.
var ErrUnknownLevel = errors.New("unknown level")

// Level identifies a log category. Each level has its own glyph, color and
// enablement rule.
type Level int

const (
	LevelError Level = iota
	LevelWarn
	LevelInfo
	LevelOkay
	LevelNote
	LevelDebug
	LevelTrace
	LevelMagic
	LevelSilly
	LevelDevLog
)

var levelNames = map[Level]string{
	LevelError:  "error",
	LevelWarn:   "warn",
	LevelInfo:   "info",
	LevelOkay:   "okay",
	LevelNote:   "note",
	LevelDebug:  "debug",
	LevelTrace:  "trace",
	LevelMagic:  "magic",
	LevelSilly:  "silly",
	LevelDevLog: "devlog",
}

var levels = []Level{
	LevelError, LevelWarn, LevelInfo, LevelOkay, LevelNote,
	LevelDebug, LevelTrace, LevelMagic, LevelSilly, LevelDevLog,
}

// String returns the level name.
func (l Level) String() string {
	if n, ok := levelNames[l]; ok {
		return n
	}
	return "unknown"
}

// Levels returns every level in severity order.
func Levels() []Level {
	out := make([]Level, len(levels))
	copy(out, levels)
	return out
}

// ParseLevel parses a level name, ignoring case.
func ParseLevel(s string) (Level, error) {
	for _, l := range levels {
		if strings.EqualFold(levelNames[l], s) {
			return l, nil
		}
	}
	return LevelInfo, fmt.Errorf("%w: %q", ErrUnknownLevel, s)
}

var levelColors = map[Level]Color{
	LevelError:  Red,
	LevelWarn:   Orange,
	LevelInfo:   Blue,
	LevelOkay:   Green,
	LevelNote:   Blue,
	LevelDebug:  Cyan,
	LevelTrace:  Grey,
	LevelMagic:  Purple,
	LevelSilly:  Magenta,
	LevelDevLog: Red2,
}

// GlyphSet maps each level to the glyph printed in its prefix.
type GlyphSet map[Level]string

var defaultGlyphs = GlyphSet{
	LevelInfo:   "λ",
	LevelWarn:   "△",
	LevelError:  "✕",
	LevelOkay:   "✓",
	LevelTrace:  "…",
	LevelDebug:  "⌬",
	LevelDevLog: "⌬",
	LevelMagic:  "↯",
	LevelNote:   "→",
	LevelSilly:  "φ",
}

// DefaultGlyphs returns a fresh copy of the built-in glyphs.
func DefaultGlyphs() GlyphSet {
	return defaultGlyphs.clone()
}

func (g GlyphSet) clone() GlyphSet {
	out := make(GlyphSet, len(defaultGlyphs))
	for k, v := range defaultGlyphs {
		out[k] = v
	}
	for k, v := range g {
		out[k] = v
	}
	return out
}

// Glyph returns the glyph for level, falling back to the default.
func (g GlyphSet) Glyph(level Level) string {
	if s, ok := g[level]; ok {
		return s
	}
	return defaultGlyphs[level]
}
