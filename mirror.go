package stderr

import "github.com/rs/zerolog"

// WithMirror forwards every record that passes its level gate to z, for
// example a JSON log file next to the terminal output. Quiet mode only
// silences the terminal; the mirror still receives records.
func WithMirror(z zerolog.Logger) Option {
	return func(l *Logger) { l.mirror = &z }
}

var mirrorLevels = map[Level]zerolog.Level{
	LevelError:  zerolog.ErrorLevel,
	LevelWarn:   zerolog.WarnLevel,
	LevelInfo:   zerolog.InfoLevel,
	LevelOkay:   zerolog.InfoLevel,
	LevelNote:   zerolog.InfoLevel,
	LevelDebug:  zerolog.DebugLevel,
	LevelDevLog: zerolog.DebugLevel,
	LevelTrace:  zerolog.TraceLevel,
	LevelMagic:  zerolog.TraceLevel,
	LevelSilly:  zerolog.TraceLevel,
}

func (l *Logger) mirrorEvent(level Level) *zerolog.Event {
	if l.mirror == nil {
		return nil
	}
	zl, ok := mirrorLevels[level]
	if !ok {
		zl = zerolog.NoLevel
	}
	ev := l.mirror.WithLevel(zl).Str("level_name", level.String())
	if l.label != "" {
		ev = ev.Str("label", l.label)
	}
	if l.hasContext {
		ev = ev.Str("context", l.context)
	}
	return ev
}

func (l *Logger) mirrorRecord(level Level, glyph, msg string) {
	if ev := l.mirrorEvent(level); ev != nil {
		ev.Str("glyph", glyph).Msg(msg)
	}
}

func (l *Logger) mirrorTrace(fn, msg string) {
	if ev := l.mirrorEvent(LevelTrace); ev != nil {
		ev.Str("func", fn).Msg(msg)
	}
}
