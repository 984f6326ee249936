package stderr

import (
	"bytes"
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

// renderValue formats v as an indented YAML document. Values YAML cannot
// represent fall back to %+v.
func renderValue(v any) (out string) {
	// yaml.v3 panics on channels and funcs instead of returning an error.
	defer func() {
		if r := recover(); r != nil {
			out = fmt.Sprintf("%+v", v)
		}
	}()
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(v); err != nil {
		return fmt.Sprintf("%+v", v)
	}
	if err := enc.Close(); err != nil {
		return fmt.Sprintf("%+v", v)
	}
	return strings.TrimRight(buf.String(), "\n")
}

// Inspector pretty-prints values at a chosen level. Obtain one with
// [Logger.Inspect].
type Inspector struct {
	l *Logger
}

// Inspect returns an Inspector bound to l.
func (l *Logger) Inspect() Inspector {
	return Inspector{l: l}
}

func (i Inspector) Error(v any)  { i.Log(LevelError, v) }
func (i Inspector) Warn(v any)   { i.Log(LevelWarn, v) }
func (i Inspector) Info(v any)   { i.Log(LevelInfo, v) }
func (i Inspector) Okay(v any)   { i.Log(LevelOkay, v) }
func (i Inspector) Note(v any)   { i.Log(LevelNote, v) }
func (i Inspector) Debug(v any)  { i.Log(LevelDebug, v) }
func (i Inspector) Trace(v any)  { i.Log(LevelTrace, v) }
func (i Inspector) Magic(v any)  { i.Log(LevelMagic, v) }
func (i Inspector) Silly(v any)  { i.Log(LevelSilly, v) }
func (i Inspector) DevLog(v any) { i.Log(LevelDevLog, v) }

// Log writes v rendered as YAML under the level's glyph. The value starts
// on the line after the glyph so nested structures stay aligned.
func (i Inspector) Log(level Level, v any) {
	l := i.l
	if !l.enabled(level) {
		return
	}
	glyph := l.glyphs.Glyph(level)
	body := renderValue(v)
	l.mirrorRecord(level, glyph, body)
	if !l.visible(level) {
		return
	}
	head := glyph
	if l.label != "" {
		head = "[" + l.label + "]" + glyph
	}
	_ = l.sink.write(l.sink.fg(levelColors[level], head+"\n"+indent(body, "  ")) + "\n")
}

func indent(s, prefix string) string {
	lines := strings.Split(s, "\n")
	for i, line := range lines {
		if line != "" {
			lines[i] = prefix + line
		}
	}
	return strings.Join(lines, "\n")
}
