package main

import (
	"bytes"
	"testing"
)

func TestLoadLinesSplitsOnNewline(t *testing.T) {
	lines := LoadLines([]byte("abc\n\nde"), 4)
	if len(lines) != 3 {
		t.Fatalf("expected 3 lines, got %d", len(lines))
	}
	if string(lines[0].Render) != "abc" {
		t.Errorf("line 0: %q", lines[0].Render)
	}
	if !lines[1].IsEmpty() {
		t.Errorf("line 1 should be empty: %q", lines[1].Render)
	}
	if string(lines[2].Render) != "de" {
		t.Errorf("line 2: %q", lines[2].Render)
	}
}

func TestLoadLinesEmptyInput(t *testing.T) {
	lines := LoadLines(nil, 4)
	if len(lines) != 1 {
		t.Fatalf("expected 1 line, got %d", len(lines))
	}
	if !lines[0].IsEmpty() {
		t.Errorf("expected an empty line, got %q", lines[0].Render)
	}
}

func TestLoadLinesTrailingNewline(t *testing.T) {
	lines := LoadLines([]byte("abc\n"), 4)
	if len(lines) != 2 {
		t.Fatalf("expected 2 lines, got %d", len(lines))
	}
	if !lines[1].IsEmpty() {
		t.Errorf("trailing line should be empty, got %q", lines[1].Render)
	}
}

func TestExpandTabsToTabStops(t *testing.T) {
	cases := []struct {
		in, want string
		width    int
	}{
		{"\tx", "    x", 4},
		{"a\tb", "a   b", 4},
		{"\t\t", "        ", 4},
		{"ab\tc", "ab  c", 4},
		{"abcd\te", "abcd    e", 4},
		{"\tx", "        x", 8},
		{"no tabs", "no tabs", 4},
	}
	for _, c := range cases {
		got := string(expandTabs([]byte(c.in), c.width))
		if got != c.want {
			t.Errorf("expandTabs(%q, %d) = %q, want %q", c.in, c.width, got, c.want)
		}
	}
}

func TestRenderNeverShorterThanOrig(t *testing.T) {
	lines := LoadLines([]byte("\ta\tbc\tdef\n\t\t\nplain"), 4)
	for i, l := range lines {
		if len(l.Render) < len(l.Orig) {
			t.Errorf("line %d: rendered %d bytes < original %d", i, len(l.Render), len(l.Orig))
		}
	}
}

func TestNormalizeUnicodeStripsUTF8BOM(t *testing.T) {
	data := append([]byte{0xEF, 0xBB, 0xBF}, []byte("abc")...)
	lines := LoadLines(data, 4)
	if len(lines) != 1 || string(lines[0].Render) != "abc" {
		t.Fatalf("BOM not stripped: %q", lines[0].Render)
	}
}

func TestNormalizeUnicodeDecodesUTF16(t *testing.T) {
	// "a\nb" in UTF-16LE with BOM.
	data := []byte{0xFF, 0xFE, 'a', 0x00, '\n', 0x00, 'b', 0x00}
	lines := LoadLines(data, 4)
	if len(lines) != 2 {
		t.Fatalf("expected 2 lines, got %d", len(lines))
	}
	if string(lines[0].Render) != "a" || string(lines[1].Render) != "b" {
		t.Errorf("got %q, %q", lines[0].Render, lines[1].Render)
	}
}

func TestNormalizeUnicodePassthrough(t *testing.T) {
	in := []byte("plain ascii\nno bom")
	if got := normalizeUnicode(in); !bytes.Equal(got, in) {
		t.Errorf("bytes changed: %q", got)
	}
}
