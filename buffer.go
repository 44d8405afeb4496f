package main

import (
	"bytes"

	"golang.org/x/text/encoding/unicode"
)

// Line is one logical line of the file: the original bytes as loaded,
// and the rendered form actually drawn on screen (tabs expanded to
// spaces). The model is built once at load and never mutated.
type Line struct {
	Orig   []byte
	Render []byte
}

// Len returns the rendered length; all layout math works on the
// rendered form.
func (l Line) Len() int { return len(l.Render) }

func (l Line) IsEmpty() bool { return len(l.Render) == 0 }

// LoadLines splits raw file bytes into lines on '\n' and renders each
// one. An empty input yields a single empty line. No line-ending
// normalization happens beyond the split.
func LoadLines(data []byte, tabWidth int) []Line {
	data = normalizeUnicode(data)
	parts := bytes.Split(data, []byte{'\n'})
	lines := make([]Line, 0, len(parts))
	for _, p := range parts {
		orig := append([]byte(nil), p...)
		lines = append(lines, Line{Orig: orig, Render: expandTabs(orig, tabWidth)})
	}
	return lines
}

// expandTabs replaces each tab with one-or-more spaces so that the next
// rendered column lands on a multiple of tabWidth.
func expandTabs(line []byte, tabWidth int) []byte {
	out := make([]byte, 0, len(line))
	for _, b := range line {
		if b != '\t' {
			out = append(out, b)
			continue
		}
		out = append(out, ' ')
		for len(out)%tabWidth != 0 {
			out = append(out, ' ')
		}
	}
	return out
}

var (
	bomUTF8    = []byte{0xEF, 0xBB, 0xBF}
	bomUTF16LE = []byte{0xFF, 0xFE}
	bomUTF16BE = []byte{0xFE, 0xFF}
)

// normalizeUnicode strips a UTF-8 BOM and transcodes BOM-marked UTF-16
// content to UTF-8. Bytes without a BOM pass through untouched.
func normalizeUnicode(data []byte) []byte {
	switch {
	case bytes.HasPrefix(data, bomUTF8):
		return data[len(bomUTF8):]
	case bytes.HasPrefix(data, bomUTF16LE), bytes.HasPrefix(data, bomUTF16BE):
		dec := unicode.UTF16(unicode.LittleEndian, unicode.UseBOM).NewDecoder()
		out, err := dec.Bytes(data)
		if err != nil {
			return data
		}
		return out
	}
	return data
}
