package stderr_test

import (
	"bytes"
	"slices"
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bjaus/stderr"
)

// ============================================================
// Boxes
// ============================================================

func TestBoxPadsToWidestLine(t *testing.T) {
	t.Parallel()
	var buf bytes.Buffer
	l := newLogger(&buf, stderr.Config{})
	require.NoError(t, l.BoxLight("a\nlonger\nmid"))
	want := "┌────────┐\n" +
		"│ a      │\n" +
		"│ longer │\n" +
		"│ mid    │\n" +
		"└────────┘\n"
	assert.Equal(t, want, buf.String())
}

func TestBoxRowsShareWidth(t *testing.T) {
	t.Parallel()
	box := stderr.RenderBox("x\nλλλλλ\n\nmiddle line", stderr.BorderDouble)
	lines := strings.Split(strings.TrimSuffix(box, "\n"), "\n")
	require.Len(t, lines, 6)
	want := stderr.Measure("middle line") + 4
	for _, line := range lines {
		assert.Equal(t, want, utf8.RuneCountInString(line), line)
	}
}

func TestBoxStyles(t *testing.T) {
	t.Parallel()
	tests := map[string]struct {
		write func(l *stderr.Logger) error
		top   string
	}{
		"light":  {write: func(l *stderr.Logger) error { return l.BoxLight("hi") }, top: "┌────┐"},
		"heavy":  {write: func(l *stderr.Logger) error { return l.BoxHeavy("hi") }, top: "┏━━━━┓"},
		"double": {write: func(l *stderr.Logger) error { return l.BoxDouble("hi") }, top: "╔════╗"},
		"help":   {write: func(l *stderr.Logger) error { return l.Help("hi") }, top: "┌────┐"},
	}
	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			var buf bytes.Buffer
			require.NoError(t, tt.write(newLogger(&buf, stderr.Config{})))
			assert.True(t, strings.HasPrefix(buf.String(), tt.top+"\n"), buf.String())
		})
	}
}

func TestBoxEmptyWritesNothing(t *testing.T) {
	t.Parallel()
	var buf bytes.Buffer
	l := newLogger(&buf, stderr.Config{})
	require.NoError(t, l.BoxLight(""))
	assert.Empty(t, buf.String())
	assert.Empty(t, stderr.RenderBox("", stderr.BorderHeavy))
}

func TestBoxWriteError(t *testing.T) {
	t.Parallel()
	l := stderr.New(stderr.WithWriter(&errWriter{}), stderr.WithConfig(stderr.Config{}))
	err := l.BoxHeavy("x")
	require.ErrorIs(t, err, errWriteFailed)
}

func TestBorderStyleString(t *testing.T) {
	t.Parallel()
	assert.Equal(t, "light", stderr.BorderLight.String())
	assert.Equal(t, "heavy", stderr.BorderHeavy.String())
	assert.Equal(t, "double", stderr.BorderDouble.String())
	assert.Equal(t, "┌", stderr.BorderStyle(42).Chars().TopLeft)
}

func TestParseBorderStyle(t *testing.T) {
	t.Parallel()
	tests := map[string]struct {
		in      string
		want    stderr.BorderStyle
		wantErr bool
	}{
		"empty":   {in: "", want: stderr.BorderLight},
		"light":   {in: "light", want: stderr.BorderLight},
		"heavy":   {in: "HEAVY", want: stderr.BorderHeavy},
		"double":  {in: "Double", want: stderr.BorderDouble},
		"unknown": {in: "dotted", wantErr: true},
	}
	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			got, err := stderr.ParseBorderStyle(tt.in)
			if tt.wantErr {
				require.ErrorIs(t, err, stderr.ErrUnknownBorderStyle)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestMeasure(t *testing.T) {
	t.Parallel()
	assert.Equal(t, 0, stderr.Measure(""))
	assert.Equal(t, 5, stderr.Measure("ab\nλλλλλ\r\nc\n"))
}

// ============================================================
// Banners
// ============================================================

func TestBannerCentered(t *testing.T) {
	t.Parallel()
	var buf bytes.Buffer
	l := newLogger(&buf, stderr.Config{}, stderr.WithWidth(20))
	require.NoError(t, l.Banner("hi", '='))
	assert.Equal(t, "======== hi ========\n", buf.String())
}

func TestBannerOddRemainder(t *testing.T) {
	t.Parallel()
	var buf bytes.Buffer
	l := newLogger(&buf, stderr.Config{}, stderr.WithWidth(10))
	require.NoError(t, l.Banner("abc", '*'))
	assert.Equal(t, "** abc ***\n", buf.String())
}

func TestBannerTooWide(t *testing.T) {
	t.Parallel()
	var buf bytes.Buffer
	l := newLogger(&buf, stderr.Config{}, stderr.WithWidth(5))
	require.NoError(t, l.Banner("hello", '='))
	assert.Equal(t, " hello \n", buf.String())
}

// ============================================================
// Tables
// ============================================================

func TestSimpleTable(t *testing.T) {
	t.Parallel()
	var buf bytes.Buffer
	l := newLogger(&buf, stderr.Config{})
	require.NoError(t, l.SimpleTable([][]string{
		{"Name", "Type"},
		{"config.env", "file"},
		{"logs/", "dir"},
	}))
	want := "Name        Type\n" +
		"----------  ----\n" +
		"config.env  file\n" +
		"logs/       dir\n"
	assert.Equal(t, want, buf.String())
}

func TestSimpleTableRaggedRows(t *testing.T) {
	t.Parallel()
	header, rule, body := stderr.RenderSimpleTable([][]string{
		{"A", "B"},
		{"1"},
		{"22", "333", "extra"},
	})
	assert.Equal(t, "A   B", header)
	assert.Equal(t, "--  ---", rule)
	assert.Equal(t, []string{"1", "22  333"}, body)
}

func TestSimpleTableEmpty(t *testing.T) {
	t.Parallel()
	var buf bytes.Buffer
	l := newLogger(&buf, stderr.Config{})
	require.NoError(t, l.SimpleTable(nil))
	assert.Empty(t, buf.String())
}

func TestSimpleTableWriteError(t *testing.T) {
	t.Parallel()
	l := stderr.New(stderr.WithWriter(&failAfterN{n: 0}), stderr.WithConfig(stderr.Config{}))
	err := l.SimpleTable([][]string{{"h"}, {"v"}})
	require.ErrorIs(t, err, errWriteFailed)
}

type service struct {
	name string
	port string
}

func (s service) Row() []string { return []string{s.name, s.port} }

func TestTableRower(t *testing.T) {
	t.Parallel()
	var buf bytes.Buffer
	l := newLogger(&buf, stderr.Config{})
	err := stderr.Table(l, []string{"Service", "Port"}, []service{
		{name: "api", port: "8080"},
		{name: "metrics", port: "9090"},
	})
	require.NoError(t, err)
	want := "Service  Port\n" +
		"-------  ----\n" +
		"api      8080\n" +
		"metrics  9090\n"
	assert.Equal(t, want, buf.String())
}

// ============================================================
// Lists and columns
// ============================================================

func TestList(t *testing.T) {
	t.Parallel()
	var buf bytes.Buffer
	l := newLogger(&buf, stderr.Config{})
	require.NoError(t, l.List([]string{"a", "b"}, "→"))
	require.NoError(t, l.NumberedList([]string{"x", "y"}))
	assert.Equal(t, "→ a\n→ b\n1. x\n2. y\n", buf.String())
}

func TestColumns(t *testing.T) {
	t.Parallel()
	var buf bytes.Buffer
	l := newLogger(&buf, stderr.Config{})
	require.NoError(t, l.Columns([]string{"a", "bb", "ccc", "dddd", "e"}, 2))
	assert.Equal(t, "a     bb\nccc   dddd\ne\n", buf.String())
}

func TestRenderColumnsClampsCount(t *testing.T) {
	t.Parallel()
	assert.Equal(t, []string{"a", "b"}, stderr.RenderColumns([]string{"a", "b"}, 0))
	assert.Equal(t, []string{"a  b"}, stderr.RenderColumns([]string{"a", "b"}, 10))
	assert.Nil(t, stderr.RenderColumns(nil, 3))
}

func TestListSeq(t *testing.T) {
	t.Parallel()
	var buf bytes.Buffer
	l := newLogger(&buf, stderr.Config{})
	require.NoError(t, l.ListSeq(slices.Values([]string{"one", "two"}), "-"))
	assert.Equal(t, "- one\n- two\n", buf.String())
}

func TestListSeqStopsOnError(t *testing.T) {
	t.Parallel()
	w := &failAfterN{n: 1}
	l := stderr.New(stderr.WithWriter(w), stderr.WithConfig(stderr.Config{}))
	pulled := 0
	seq := func(yield func(string) bool) {
		for _, s := range []string{"a", "b", "c"} {
			pulled++
			if !yield(s) {
				return
			}
		}
	}
	err := l.ListSeq(seq, "*")
	require.ErrorIs(t, err, errWriteFailed)
	assert.Equal(t, 2, pulled)
}

func TestListChan(t *testing.T) {
	t.Parallel()
	var buf bytes.Buffer
	l := newLogger(&buf, stderr.Config{})
	ch := make(chan string)
	go func() {
		defer close(ch)
		ch <- "first"
		ch <- "second"
	}()
	require.NoError(t, l.ListChan(ch, "•"))
	assert.Equal(t, "• first\n• second\n", buf.String())
}

func TestListChanQuietDrains(t *testing.T) {
	t.Parallel()
	var buf bytes.Buffer
	l := newLogger(&buf, stderr.Config{Quiet: true})
	ch := make(chan string)
	done := make(chan struct{})
	go func() {
		defer close(done)
		defer close(ch)
		for range 3 {
			ch <- "item"
		}
	}()
	require.NoError(t, l.ListChan(ch, "-"))
	<-done
	assert.Empty(t, buf.String())
}
