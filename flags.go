package stderr

import (
	"strconv"
	"strings"

	"github.com/mattn/go-runewidth"
)

// Bitmask is any unsigned integer type that can be shown by [FlagTable].
type Bitmask interface {
	~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr
}

const (
	flagMargin = 3
	flagCell   = 4
)

// FlagTableWidth returns the width of a flag table holding n labels in a
// single block: the left margin, n cells with their right border, and the
// leading border.
func FlagTableWidth(n int) int {
	return flagMargin + n*(flagCell+1) + 1
}

type flagChunk struct {
	offset, count int
}

// flagChunks splits n labels into blocks. A table that does not fit in
// termWidth is split into two halves of ceil(n/2) and the remainder; it is
// never split further, so each half may still overflow a very narrow
// terminal.
func flagChunks(n, termWidth int) []flagChunk {
	if FlagTableWidth(n) <= termWidth {
		return []flagChunk{{0, n}}
	}
	size := (n + 1) / 2
	chunks := []flagChunk{{0, size}}
	if n-size > 0 {
		chunks = append(chunks, flagChunk{size, n - size})
	}
	return chunks
}

// FlagTable renders bitmask as bordered blocks of three rows: bit index,
// bit value and label. Label i names bit i and bits are laid out with the
// most significant on the left. Blocks are separated by a blank line.
func FlagTable[T Bitmask](bitmask T, labels []string, style BorderStyle, termWidth int) string {
	if len(labels) == 0 {
		return ""
	}
	bc := style.Chars()
	var sb strings.Builder
	for i, c := range flagChunks(len(labels), termWidth) {
		if i > 0 {
			sb.WriteString("\n")
		}
		writeFlagBlock(&sb, uint64(bitmask), labels, c, bc)
	}
	return sb.String()
}

func writeFlagBlock(sb *strings.Builder, mask uint64, labels []string, c flagChunk, bc Border) {
	idx := make([]string, c.count)
	val := make([]string, c.count)
	lbl := make([]string, c.count)
	for col := range c.count {
		bit := c.offset + c.count - 1 - col
		idx[col] = strconv.Itoa(bit)
		val[col] = strconv.FormatUint((mask>>bit)&1, 10)
		if bit < len(labels) {
			lbl[col] = runewidth.Truncate(labels[bit], flagCell, "")
		}
	}
	margin := strings.Repeat(" ", flagMargin)
	rule := func(left, mid, right string) {
		sb.WriteString(margin + left)
		for col := range c.count {
			if col > 0 {
				sb.WriteString(mid)
			}
			sb.WriteString(strings.Repeat(bc.Horizontal, flagCell))
		}
		sb.WriteString(right + "\n")
	}
	row := func(cells []string) {
		sb.WriteString(margin + bc.Vertical)
		for _, cell := range cells {
			sb.WriteString(center(cell, flagCell) + bc.Vertical)
		}
		sb.WriteString("\n")
	}
	rule(bc.TopLeft, bc.TopTee, bc.TopRight)
	row(idx)
	rule(bc.LeftTee, bc.Cross, bc.RightTee)
	row(val)
	rule(bc.LeftTee, bc.Cross, bc.RightTee)
	row(lbl)
	rule(bc.BottomLeft, bc.BottomTee, bc.BottomRight)
}

// PrintFlagTable writes [FlagTable] sized to the Logger's terminal width.
func PrintFlagTable[T Bitmask](l *Logger, bitmask T, labels []string, style BorderStyle) error {
	if l.cfg.Quiet {
		return nil
	}
	return l.sink.write(FlagTable(bitmask, labels, style, l.width))
}
