package stderr

import (
	"strconv"
	"strings"
	"unicode/utf8"
)

// List writes each item on its own line after bullet.
func (l *Logger) List(items []string, bullet string) error {
	if l.cfg.Quiet || len(items) == 0 {
		return nil
	}
	var sb strings.Builder
	for _, item := range items {
		sb.WriteString(bullet + " " + item + "\n")
	}
	return l.sink.write(sb.String())
}

// NumberedList writes items numbered from 1.
func (l *Logger) NumberedList(items []string) error {
	if l.cfg.Quiet || len(items) == 0 {
		return nil
	}
	var sb strings.Builder
	for i, item := range items {
		sb.WriteString(strconv.Itoa(i+1) + ". " + item + "\n")
	}
	return l.sink.write(sb.String())
}

// RenderColumns lays items out n per line in columns two wider than the
// widest item. Trailing whitespace is trimmed from each line. n below 1 is
// treated as 1.
func RenderColumns(items []string, n int) []string {
	if len(items) == 0 {
		return nil
	}
	n = max(n, 1)
	width := 0
	for _, item := range items {
		width = max(width, utf8.RuneCountInString(item))
	}
	width += 2

	var lines []string
	for start := 0; start < len(items); start += n {
		end := min(start+n, len(items))
		var sb strings.Builder
		for _, item := range items[start:end] {
			sb.WriteString(padRight(item, width))
		}
		lines = append(lines, strings.TrimRight(sb.String(), " "))
	}
	return lines
}

// Columns writes items in n columns, like ls.
func (l *Logger) Columns(items []string, n int) error {
	if l.cfg.Quiet {
		return nil
	}
	lines := RenderColumns(items, n)
	if len(lines) == 0 {
		return nil
	}
	return l.sink.write(strings.Join(lines, "\n") + "\n")
}
