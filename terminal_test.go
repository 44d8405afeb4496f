package main

import (
	"bytes"
	"errors"
	"io"
	"strings"
	"testing"
)

func TestDecodeEscapeArrows(t *testing.T) {
	cases := []struct {
		seq  string
		want Key
	}{
		{"[A", KeyUp},
		{"[B", KeyDown},
		{"[C", KeyRight},
		{"[D", KeyLeft},
		{"[H", KeyLineHome},
		{"[1~", KeyLineHome},
		{"[7~", KeyLineHome},
		{"[4~", KeyLineEnd},
		{"[8~", KeyLineEnd},
		{"[3~", KeyDelete},
		{"[5~", KeyPageUp},
		{"[6~", KeyPageDown},
		{"OH", KeyLineHome},
		{"OF", KeyLineEnd},
		{"OZ", KeyNone},
		{"[Z", KeyNone},
		{"[9~", KeyNone},
		{"[3x", KeyNone},
	}
	for _, c := range cases {
		got := decodeEscape(strings.NewReader(c.seq))
		if got != c.want {
			t.Errorf("decodeEscape(%q) = %d, want %d", c.seq, got, c.want)
		}
	}
}

func TestDecodeEscapeConsumesExactBytes(t *testing.T) {
	// ESC X Y is unrecognized; only X and Y may be consumed.
	in := strings.NewReader("XYrest")
	if got := decodeEscape(in); got != KeyNone {
		t.Fatalf("got key %d, want KeyNone", got)
	}
	rest := make([]byte, in.Len())
	io.ReadFull(in, rest)
	if string(rest) != "rest" {
		t.Errorf("decoder overconsumed, remaining %q", rest)
	}
}

func TestDecodeEscapeShortRead(t *testing.T) {
	if got := decodeEscape(strings.NewReader("[")); got != KeyNone {
		t.Errorf("truncated sequence decoded to %d", got)
	}
	if got := decodeEscape(strings.NewReader("[5")); got != KeyNone {
		t.Errorf("truncated tilde sequence decoded to %d", got)
	}
}

func TestParseCursorReport(t *testing.T) {
	pos, err := parseCursorReport([]byte("\x1b[12;40"))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if pos.Row != 11 || pos.Col != 39 {
		t.Errorf("pos = %+v, want {11 39}", pos)
	}
}

func TestParseCursorReportSkipsLeadingJunk(t *testing.T) {
	// Some terminals prepend stray bytes before the report.
	pos, err := parseCursorReport([]byte("[6~\x1b[3;9"))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if pos.Row != 2 || pos.Col != 8 {
		t.Errorf("pos = %+v, want {2 8}", pos)
	}
}

func TestParseCursorReportMalformed(t *testing.T) {
	cases := [][]byte{
		[]byte("12;40"),      // no escape marker
		[]byte("\x1b[12"),    // no separator
		[]byte("\x1b[;"),     // no digits
		[]byte("\x1b[0;5"),   // rows are 1-based
		[]byte("\x1b[5;0"),   // columns are 1-based
		nil,
	}
	for _, c := range cases {
		if _, err := parseCursorReport(c); !errors.Is(err, ErrReportMalformed) {
			t.Errorf("parseCursorReport(%q) err = %v, want ErrReportMalformed", c, err)
		}
	}
}

func TestCursorPosExchange(t *testing.T) {
	out := &bytes.Buffer{}
	c := NewConsole(strings.NewReader("\x1b[10;20R"), out)

	pos, err := c.CursorPos()
	if err != nil {
		t.Fatalf("cursor pos: %v", err)
	}
	if pos.Row != 9 || pos.Col != 19 {
		t.Errorf("pos = %+v, want {9 19}", pos)
	}
	if out.String() != "\x1b[6n" {
		t.Errorf("query sent: %q", out.String())
	}
}

func TestCursorPosStreamClosed(t *testing.T) {
	c := NewConsole(strings.NewReader(""), &bytes.Buffer{})
	_, err := c.CursorPos()
	if err == nil {
		t.Fatal("expected an error on a closed stream")
	}
	if !errors.Is(err, io.EOF) {
		t.Errorf("err = %v, want wrapped io.EOF", err)
	}
	if errors.Is(err, ErrReportMalformed) {
		t.Error("stream closure misreported as a malformed report")
	}
}

func TestWindowSize(t *testing.T) {
	out := &bytes.Buffer{}
	c := NewConsole(strings.NewReader("\x1b[24;80R"), out)

	win, err := c.WindowSize()
	if err != nil {
		t.Fatalf("window size: %v", err)
	}
	// Width is the extreme column + 1; two rows are reserved below.
	if win.Width != 80 || win.Height != 22 {
		t.Errorf("win = %+v, want {80 22}", win)
	}
	if got := out.String(); got != "\x1b[999C\x1b[999B\x1b[6n" {
		t.Errorf("probe sequence: %q", got)
	}
}
