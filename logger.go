package stderr

import (
	"bufio"
	"io"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/rs/zerolog"
)

// Logger writes leveled messages, boxes, tables and trace trees to a
// terminal stream. A Logger is owned by one goroutine at a time; wrap it in
// a [Shared] to use it from several.
type Logger struct {
	cfg    Config
	sink   *sink
	input  io.Reader
	reader *bufio.Reader
	width  int
	label  string
	glyphs GlyphSet
	mirror *zerolog.Logger
	exit   func(int)

	context    string
	hasContext bool

	traceFunc string
	tracing   bool
}

// Option configures a Logger.
type Option func(*Logger)

// WithConfig replaces the configuration read from the environment.
func WithConfig(cfg Config) Option {
	return func(l *Logger) { l.cfg = cfg }
}

// WithWriter sets the output stream. Default: os.Stderr. Colors are only
// emitted when the stream is a terminal.
func WithWriter(w io.Writer) Option {
	return func(l *Logger) { l.sink = newSink(w) }
}

// WithInput sets the stream confirmations read from. Default: os.Stdin.
// Streams backed by a file descriptor must be a terminal to be considered
// interactive; any other reader is treated as scripted interactive input.
func WithInput(r io.Reader) Option {
	return func(l *Logger) {
		l.input = r
		l.reader = bufio.NewReader(r)
	}
}

// WithWidth fixes the terminal width instead of querying it.
func WithWidth(n int) Option {
	return func(l *Logger) {
		if n > 0 {
			l.width = n
		}
	}
}

// WithLabel prefixes every leveled message with [label].
func WithLabel(label string) Option {
	return func(l *Logger) { l.label = label }
}

// WithGlyphs overrides the glyphs for the levels present in g.
func WithGlyphs(g GlyphSet) Option {
	return func(l *Logger) { l.glyphs = g.clone() }
}

// WithExit replaces the function [Logger.Fatal] calls. Default: os.Exit.
func WithExit(fn func(int)) Option {
	return func(l *Logger) { l.exit = fn }
}

// New returns a Logger writing to stderr, configured from the environment.
func New(opts ...Option) *Logger {
	l := &Logger{
		cfg:    ConfigFromEnv(),
		glyphs: DefaultGlyphs(),
		exit:   os.Exit,
	}
	for _, opt := range opts {
		opt(l)
	}
	if l.sink == nil {
		l.sink = newSink(os.Stderr)
	}
	if l.input == nil {
		l.input = os.Stdin
		l.reader = bufio.NewReader(os.Stdin)
	}
	if l.width == 0 {
		l.width = TermWidth()
	}
	return l
}

// Config returns a copy of the current configuration.
func (l *Logger) Config() Config { return l.cfg }

// Width returns the terminal width used for layout.
func (l *Logger) Width() int { return l.width }

func (l *Logger) SetQuiet(v bool) { l.cfg.Quiet = v }
func (l *Logger) SetDev(v bool)   { l.cfg.Dev = v }
func (l *Logger) SetDebug(v bool) { l.cfg.Debug = v }
func (l *Logger) SetTrace(v bool) { l.cfg.Trace = v }
func (l *Logger) SetSilly(v bool) { l.cfg.Silly = v }

// Label returns the current label, or "" if none is set.
func (l *Logger) Label() string { return l.label }

func (l *Logger) SetLabel(label string) { l.label = label }
func (l *Logger) ClearLabel()           { l.label = "" }

// SetGlyph changes the glyph for one level on this Logger only.
func (l *Logger) SetGlyph(level Level, glyph string) {
	l.glyphs[level] = glyph
}

// Glyphs returns a copy of the glyphs in use.
func (l *Logger) Glyphs() GlyphSet { return l.glyphs.clone() }

// enabled reports whether level passes its mode gate. Quiet is not
// considered here; see visible.
func (l *Logger) enabled(level Level) bool {
	switch level {
	case LevelDebug:
		return l.cfg.Debug
	case LevelDevLog:
		return l.cfg.Dev
	case LevelTrace:
		return l.cfg.Trace
	case LevelMagic, LevelSilly:
		return l.cfg.Silly
	default:
		return true
	}
}

func (l *Logger) visible(level Level) bool {
	if !l.enabled(level) {
		return false
	}
	return level == LevelError || !l.cfg.Quiet
}

func (l *Logger) prefix(glyph string) string {
	if l.label != "" {
		return "[" + l.label + "][" + glyph + "]"
	}
	return "[" + glyph + "]"
}

func (l *Logger) interactive() bool {
	if f, ok := l.input.(interface{ Fd() uintptr }); ok {
		return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
	}
	return true
}
