package stderr

import (
	"strings"
	"unicode/utf8"
)

// Rower provides the cells of one table row.
type Rower interface {
	Row() []string
}

// RenderSimpleTable lays out rows as aligned columns separated by two
// spaces. The first row is the header and is followed by a dash rule sized
// to each column. The number of columns is taken from the header; extra
// cells in later rows are dropped.
func RenderSimpleTable(rows [][]string) (header, rule string, body []string) {
	if len(rows) == 0 {
		return "", "", nil
	}
	widths := computeWidths(len(rows[0]), rows)
	header = formatRow(rows[0], widths)
	seps := make([]string, len(widths))
	for i, w := range widths {
		seps[i] = strings.Repeat("-", w)
	}
	rule = strings.Join(seps, "  ")
	for _, row := range rows[1:] {
		body = append(body, formatRow(row, widths))
	}
	return header, rule, body
}

func computeWidths(numCols int, rows [][]string) []int {
	widths := make([]int, numCols)
	for _, row := range rows {
		for i, cell := range row {
			if w := utf8.RuneCountInString(cell); i < numCols && w > widths[i] {
				widths[i] = w
			}
		}
	}
	return widths
}

func formatRow(cells []string, widths []int) string {
	parts := make([]string, 0, len(widths))
	for i, cell := range cells {
		if i >= len(widths) {
			break
		}
		parts = append(parts, padRight(cell, widths[i]))
	}
	return strings.TrimRight(strings.Join(parts, "  "), " ")
}

// SimpleTable writes rows with a bold header and a rule beneath it.
func (l *Logger) SimpleTable(rows [][]string) error {
	if l.cfg.Quiet || len(rows) == 0 {
		return nil
	}
	header, rule, body := RenderSimpleTable(rows)
	var sb strings.Builder
	sb.WriteString(l.sink.paint(Paint{Fg: Blue, Bold: true}, header) + "\n")
	sb.WriteString(l.sink.fg(Grey, rule) + "\n")
	for _, line := range body {
		sb.WriteString(line + "\n")
	}
	return l.sink.write(sb.String())
}

// Table writes headers followed by one row per item.
func Table[T Rower](l *Logger, headers []string, items []T) error {
	rows := make([][]string, 0, len(items)+1)
	rows = append(rows, headers)
	for _, item := range items {
		rows = append(rows, item.Row())
	}
	return l.SimpleTable(rows)
}
