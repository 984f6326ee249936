package stderr

import (
	"io"
	"os"

	"github.com/muesli/termenv"
	"golang.org/x/term"
)

// DefaultWidth is used when the terminal width cannot be determined.
const DefaultWidth = 80

// Color is an ANSI 256-color code. The sink converts it to the closest color
// the output supports, or drops it entirely on non-terminals.
type Color string

const (
	NoColor Color = ""
	Red     Color = "1"
	Green   Color = "2"
	Yellow  Color = "3"
	Blue    Color = "4"
	Magenta Color = "5"
	Cyan    Color = "6"
	White   Color = "7"
	Grey    Color = "8"
	Orange  Color = "208"
	Purple  Color = "93"
	Red2    Color = "160"
)

// Paint describes how a segment of output is colored.
type Paint struct {
	Fg   Color
	Bg   Color
	Bold bool
}

// sink is the color-capable writer every Logger renders through. A record is
// built in memory and handed to write in one piece so concurrent writers to
// the same stream never interleave inside it.
type sink struct {
	out *termenv.Output
}

func newSink(w io.Writer) *sink {
	return &sink{out: termenv.NewOutput(w)}
}

// paint applies p to text. Plain text is returned unchanged when the output
// has no color support.
func (s *sink) paint(p Paint, text string) string {
	if text == "" {
		return text
	}
	st := s.out.String(text)
	if p.Fg != NoColor {
		st = st.Foreground(s.out.Color(string(p.Fg)))
	}
	if p.Bg != NoColor {
		st = st.Background(s.out.Color(string(p.Bg)))
	}
	if p.Bold {
		st = st.Bold()
	}
	return st.String()
}

func (s *sink) fg(c Color, text string) string {
	return s.paint(Paint{Fg: c}, text)
}

func (s *sink) write(text string) error {
	if text == "" {
		return nil
	}
	_, err := io.WriteString(s.out, text)
	return err
}

// TermWidth reports the column count of the terminal attached to stderr,
// falling back to [DefaultWidth].
func TermWidth() int {
	return widthOf(os.Stderr)
}

func widthOf(f *os.File) int {
	w, _, err := term.GetSize(int(f.Fd()))
	if err != nil || w <= 0 {
		return DefaultWidth
	}
	return w
}
