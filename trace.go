package stderr

import "strings"

// Trace tree connectors.
const (
	traceBranch       = "λ┄┄┄"
	traceConnector    = "\t┆"
	traceLeaf         = "\t└┄┄> "
	traceContinuation = "\t└┄┄>> "
)

// TraceFn records msg under the logical function name. The first call for a
// name opens a branch:
//
//	[…] λ┄┄┄[parse_config]
//		┆
//		└┄┄> reading file
//
// and following calls with the same name continue it:
//
//		└┄┄>> validating
//
// A different name, or a call to [Logger.ResetTraceState], opens a new
// branch. Nothing happens unless trace mode is on.
func (l *Logger) TraceFn(name, msg string) error {
	if !l.cfg.Trace {
		return nil
	}
	return l.traceRecord(name, msg)
}

// traceRecord renders one trace record regardless of the trace flag.
func (l *Logger) traceRecord(name, msg string) error {
	l.mirrorTrace(name, msg)
	if l.cfg.Quiet {
		return nil
	}
	var text string
	if l.tracing && l.traceFunc == name {
		text = leaf(traceContinuation, msg)
	} else {
		text = l.prefix(l.glyphs.Glyph(LevelTrace)) + " " + traceBranch + "[" + name + "]\n" +
			traceConnector + "\n" +
			leaf(traceLeaf, msg)
		l.traceFunc, l.tracing = name, true
	}
	return l.sink.write(l.sink.fg(levelColors[LevelTrace], text) + "\n")
}

// leaf attaches msg to a connector, indenting any further lines of msg so
// they stay under the first.
func leaf(connector, msg string) string {
	pad := "\t" + strings.Repeat(" ", len([]rune(connector))-1)
	return connector + strings.ReplaceAll(msg, "\n", "\n"+pad)
}

// ResetTraceState forgets the current function so the next trace call opens
// a new branch even for the same name.
func (l *Logger) ResetTraceState() {
	l.traceFunc, l.tracing = "", false
}

// CurrentTraceFunc returns the function of the open branch, if any.
func (l *Logger) CurrentTraceFunc() (string, bool) {
	return l.traceFunc, l.tracing
}

// TraceScope traces entry into name and returns a guard whose End traces the
// exit. Use it with defer so the exit is recorded on every return path,
// including panics:
//
//	s := log.TraceScope("load")
//	defer s.End()
//
// Whether the scope traces is decided once, here. Turning trace mode off
// before End does not suppress the exit record.
func (l *Logger) TraceScope(name string) *TraceScope {
	s := &TraceScope{l: l, name: name, enabled: l.cfg.Trace}
	if s.enabled {
		_ = l.traceRecord(name, "entering")
	}
	return s
}

// TraceScope is the guard returned by [Logger.TraceScope].
type TraceScope struct {
	l       *Logger
	name    string
	enabled bool
	ended   bool
}

// Step records msg within the scope.
func (s *TraceScope) Step(msg string) {
	if s.enabled {
		_ = s.l.TraceFn(s.name, msg)
	}
}

// StepDebug records msg followed by v rendered as YAML.
func (s *TraceScope) StepDebug(msg string, v any) {
	if s.enabled {
		_ = s.l.TraceFn(s.name, withValue(msg, v))
	}
}

// End records the exit from the scope. Only the first call has an effect.
func (s *TraceScope) End() {
	if s.ended {
		return
	}
	s.ended = true
	if s.enabled {
		_ = s.l.traceRecord(s.name, "exiting")
	}
}

func withValue(msg string, v any) string {
	body := renderValue(v)
	if strings.Contains(body, "\n") {
		return msg + ":\n" + indent(body, "  ")
	}
	return msg + ": " + body
}

// TraceEnter records entry into name.
func (l *Logger) TraceEnter(name string) error {
	return l.TraceFn(name, "→ entering")
}

// TraceExit records exit from name.
func (l *Logger) TraceExit(name string) error {
	return l.TraceFn(name, "← exiting")
}

// TraceExitWith records exit from name along with its return value.
func (l *Logger) TraceExitWith(name string, v any) error {
	return l.TraceFn(name, withValue("← exiting with", v))
}

// TraceLevel writes a flat trace line indented by depth, outside the branch
// tree.
func (l *Logger) TraceLevel(depth int, name, msg string) {
	l.Trace(strings.Repeat("  ", max(depth, 0)) + "└┄ [" + name + "] " + msg)
}

func (l *Logger) TraceAdd(msg string)   { l.traceLabelled("+", Green, msg) }
func (l *Logger) TraceSub(msg string)   { l.traceLabelled("-", Red, msg) }
func (l *Logger) TraceFound(msg string) { l.traceLabelled("✻", Blue, msg) }
func (l *Logger) TraceDone(msg string)  { l.traceLabelled("✔", Green, msg) }
func (l *Logger) TraceItem(msg string)  { l.traceLabelled("⟐", Purple, msg) }

// traceLabelled writes a tagged leaf under the open branch.
func (l *Logger) traceLabelled(label string, c Color, msg string) {
	if !l.cfg.Trace {
		return
	}
	l.mirrorTrace(l.traceFunc, label+" "+msg)
	if l.cfg.Quiet {
		return
	}
	_ = l.sink.write(l.sink.fg(c, "\t└┄┄[ "+label+" ] "+msg) + "\n")
}
