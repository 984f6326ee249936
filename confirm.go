package stderr

import (
	"errors"
	"fmt"
	"io"
	"strings"
	"unicode"
)

// ErrNonInteractive is returned when a confirmation is requested but the
// input is not a terminal. Scripted callers should branch on it rather than
// assume an answer.
var ErrNonInteractive = errors.New("cannot ask for confirmation in a non-interactive terminal")

// Answer is the outcome of a confirmation prompt.
type Answer int

const (
	Quit Answer = iota
	Yes
	No
)

// String returns the answer name.
func (a Answer) String() string {
	switch a {
	case Yes:
		return "yes"
	case No:
		return "no"
	default:
		return "quit"
	}
}

// Confirmed reports whether the user answered yes.
func (a Answer) Confirmed() bool { return a == Yes }

const invalidAnswer = "Invalid input. Please try again."

// ConfirmBuilder configures a confirmation prompt. Each setter returns a
// new builder; [ConfirmBuilder.Ask] runs the prompt.
type ConfirmBuilder struct {
	l      *Logger
	prompt string
	boxed  bool
	style  BorderStyle
	color  Color
}

// ConfirmBuilder starts a prompt with no box, a light border style and a
// bold white prompt.
func (l *Logger) ConfirmBuilder(prompt string) ConfirmBuilder {
	return ConfirmBuilder{l: l, prompt: prompt, style: BorderLight, color: White}
}

// Confirm asks prompt with the default settings.
func (l *Logger) Confirm(prompt string) (Answer, error) {
	return l.ConfirmBuilder(prompt).Ask()
}

// Boxed draws the prompt in a box before asking.
func (b ConfirmBuilder) Boxed(v bool) ConfirmBuilder {
	b.boxed = v
	return b
}

// Style sets the border style used when boxed.
func (b ConfirmBuilder) Style(s BorderStyle) ConfirmBuilder {
	b.style = s
	return b
}

// PromptColor sets the color of the question line.
func (b ConfirmBuilder) PromptColor(c Color) ConfirmBuilder {
	b.color = c
	return b
}

// Ask prompts until the user answers y, n or q (case-insensitive, first
// non-space character). Other input prints a warning and asks again.
//
// In quiet mode Ask returns [Yes] without reading anything. It returns
// [ErrNonInteractive] if the input is not a terminal, and any read error
// as-is.
func (b ConfirmBuilder) Ask() (Answer, error) {
	l := b.l
	if l.cfg.Quiet {
		return Yes, nil
	}
	if !l.interactive() {
		return Quit, ErrNonInteractive
	}
	if b.boxed {
		if err := l.writeBox(b.prompt, b.style); err != nil {
			return Quit, err
		}
	}
	question := b.prompt + " [y/n/q] > "
	if b.boxed {
		question = "Your choice [y/n/q] -> "
	}
	for {
		if err := l.sink.write(l.sink.paint(Paint{Fg: b.color, Bold: true}, question)); err != nil {
			return Quit, err
		}
		line, err := l.reader.ReadString('\n')
		if err != nil && (!errors.Is(err, io.EOF) || line == "") {
			return Quit, fmt.Errorf("failed to read confirmation: %w", err)
		}
		if a, ok := classify(line); ok {
			return a, nil
		}
		l.Warn(invalidAnswer)
	}
}

func classify(input string) (Answer, bool) {
	s := strings.TrimLeftFunc(input, unicode.IsSpace)
	if s == "" {
		return Quit, false
	}
	switch s[0] {
	case 'y', 'Y':
		return Yes, true
	case 'n', 'N':
		return No, true
	case 'q', 'Q':
		return Quit, true
	}
	return Quit, false
}
