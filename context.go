package stderr

import (
	"strings"
	"unicode/utf8"
)

const contextBannerWidth = 60

// SetContext announces ctx with a banner when it differs from the current
// context. Setting the same context again writes nothing, so it is safe to
// call inside loops.
func (l *Logger) SetContext(ctx string) error {
	if l.hasContext && l.context == ctx {
		return nil
	}
	l.context, l.hasContext = ctx, true
	if l.cfg.Quiet {
		return nil
	}
	return l.sink.write(l.contextBanner(ctx) + "\n")
}

// ClearContext forgets the current context without writing anything.
func (l *Logger) ClearContext() {
	l.context, l.hasContext = "", false
}

// CurrentContext returns the current context, if any.
func (l *Logger) CurrentContext() (string, bool) {
	return l.context, l.hasContext
}

func (l *Logger) contextBanner(ctx string) string {
	msg := " Context: " + ctx + " "
	width := min(l.width, contextBannerWidth)
	n := utf8.RuneCountInString(msg)
	if n >= width {
		return "---" + msg + "---"
	}
	total := width - n
	return l.sink.fg(Blue, strings.Repeat("-", total/2)+msg+strings.Repeat("-", total-total/2))
}
