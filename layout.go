package stderr

import (
	"strings"
	"unicode/utf8"
)

// Measure returns the width of the widest line of text, counted in code
// points. Wide and combining characters are not accounted for.
func Measure(text string) int {
	n := 0
	for _, line := range splitLines(text) {
		if w := utf8.RuneCountInString(line); w > n {
			n = w
		}
	}
	return n
}

// splitLines splits on "\n", dropping a trailing "\r" from each line and
// the empty line after a final newline.
func splitLines(text string) []string {
	if text == "" {
		return nil
	}
	lines := strings.Split(strings.TrimSuffix(text, "\n"), "\n")
	for i, line := range lines {
		lines[i] = strings.TrimSuffix(line, "\r")
	}
	return lines
}

func padRight(s string, width int) string {
	pad := width - utf8.RuneCountInString(s)
	if pad <= 0 {
		return s
	}
	return s + strings.Repeat(" ", pad)
}

func center(s string, width int) string {
	pad := width - utf8.RuneCountInString(s)
	if pad <= 0 {
		return s
	}
	left := pad / 2
	return strings.Repeat(" ", left) + s + strings.Repeat(" ", pad-left)
}

// RenderBox draws text inside a border. Every content row is padded to the
// widest line so the right border lines up.
func RenderBox(text string, style BorderStyle) string {
	lines := splitLines(text)
	if len(lines) == 0 {
		return ""
	}
	bc := style.Chars()
	width := Measure(text)
	rule := strings.Repeat(bc.Horizontal, width+2)

	var sb strings.Builder
	sb.WriteString(bc.TopLeft + rule + bc.TopRight + "\n")
	for _, line := range lines {
		sb.WriteString(bc.Vertical + " " + padRight(line, width) + " " + bc.Vertical + "\n")
	}
	sb.WriteString(bc.BottomLeft + rule + bc.BottomRight + "\n")
	return sb.String()
}

// Box writes text inside a border of the given style.
func (l *Logger) Box(text string, style BorderStyle) error {
	if l.cfg.Quiet {
		return nil
	}
	return l.writeBox(text, style)
}

func (l *Logger) writeBox(text string, style BorderStyle) error {
	box := RenderBox(text, style)
	if box == "" {
		return nil
	}
	return l.sink.write(l.sink.fg(White, strings.TrimSuffix(box, "\n")) + "\n")
}

func (l *Logger) BoxLight(text string) error  { return l.Box(text, BorderLight) }
func (l *Logger) BoxHeavy(text string) error  { return l.Box(text, BorderHeavy) }
func (l *Logger) BoxDouble(text string) error { return l.Box(text, BorderDouble) }

// Help displays help text in a light box.
func (l *Logger) Help(text string) error {
	return l.Box(text, BorderLight)
}

// Banner centers text across the terminal width between runs of fill.
// When the text does not fit it is written as " text " without fill.
func (l *Logger) Banner(text string, fill rune) error {
	if l.cfg.Quiet {
		return nil
	}
	n := utf8.RuneCountInString(text) + 2
	if n >= l.width {
		return l.sink.write(" " + text + " \n")
	}
	total := l.width - n
	left := strings.Repeat(string(fill), total/2)
	right := strings.Repeat(string(fill), total-total/2)
	msg := l.sink.paint(Paint{Fg: Blue, Bold: true}, text)
	return l.sink.write(left + " " + msg + " " + right + "\n")
}
