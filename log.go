package stderr

import "fmt"

// Leveled logging calls discard write errors so they can be used as plain
// statements. Use the layout methods when the error matters.

func (l *Logger) Error(msg string)  { l.Log(LevelError, msg) }
func (l *Logger) Warn(msg string)   { l.Log(LevelWarn, msg) }
func (l *Logger) Info(msg string)   { l.Log(LevelInfo, msg) }
func (l *Logger) Okay(msg string)   { l.Log(LevelOkay, msg) }
func (l *Logger) Note(msg string)   { l.Log(LevelNote, msg) }
func (l *Logger) Debug(msg string)  { l.Log(LevelDebug, msg) }
func (l *Logger) Trace(msg string)  { l.Log(LevelTrace, msg) }
func (l *Logger) Magic(msg string)  { l.Log(LevelMagic, msg) }
func (l *Logger) Silly(msg string)  { l.Log(LevelSilly, msg) }
func (l *Logger) DevLog(msg string) { l.Log(LevelDevLog, msg) }

// Log writes msg at level if the level is enabled.
func (l *Logger) Log(level Level, msg string) {
	_ = l.logLevel(level, msg)
}

// Logf formats according to a format specifier and logs at level.
func (l *Logger) Logf(level Level, format string, args ...any) {
	l.Log(level, fmt.Sprintf(format, args...))
}

// Fatal logs msg as an error and terminates the process with status 1.
func (l *Logger) Fatal(msg string) {
	l.Error(msg)
	l.exit(1)
}

func (l *Logger) logLevel(level Level, msg string) error {
	if !l.enabled(level) {
		return nil
	}
	glyph := l.glyphs.Glyph(level)
	l.mirrorRecord(level, glyph, msg)
	if !l.visible(level) {
		return nil
	}
	line := l.prefix(glyph) + " " + msg
	return l.sink.write(l.sink.fg(levelColors[level], line) + "\n")
}

// Print writes msg followed by a newline, uncolored.
func (l *Logger) Print(msg string) error {
	if l.cfg.Quiet {
		return nil
	}
	return l.sink.write(msg + "\n")
}

// Newline writes an empty line.
func (l *Logger) Newline() error {
	return l.Print("")
}
