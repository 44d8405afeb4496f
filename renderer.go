package main

import (
	"bytes"
	"fmt"
	"strings"
	"time"

	"github.com/mattn/go-runewidth"
)

// Screen builds one complete frame per redraw. Output is accumulated
// into a single buffer so the caller can flush it with one write and
// avoid flicker.
type Screen struct {
	buf bytes.Buffer
}

// RenderFrame draws every visible row starting at the viewport, then
// the status bar, the message row, and finally puts the terminal
// cursor back on the tracked screen position.
func (s *Screen) RenderFrame(lines []Line, view Viewport, cur Cursor, win Window, name string, msg *StatusMessage, now time.Time) string {
	b := &s.buf
	b.Reset()

	// Hide the cursor while drawing to avoid glitching, and home it.
	b.WriteString("\x1b[?25l")
	b.WriteString("\x1b[1;1H")

	rows := 0
	for i := view.Line; i < len(lines) && rows < win.Height; i++ {
		offset := 0
		if i == view.Line {
			// The first visible row may begin mid-line when the
			// window starts after a wrap.
			offset = view.ByteOffset
		}
		remaining := lines[i].Len() - offset

		if remaining == 0 {
			b.WriteString("\x1b[K\r\n")
			rows++
			continue
		}
		for remaining > 0 && rows < win.Height {
			n := remaining
			if n > win.Width {
				n = win.Width
			}
			b.WriteString("\x1b[K")
			b.Write(lines[i].Render[offset : offset+n])
			b.WriteString("\r\n")
			offset += n
			remaining -= n
			rows++
		}
	}
	for ; rows < win.Height; rows++ {
		b.WriteString("\x1b[K~\r\n")
	}

	s.renderStatusBar(win, name, cur, len(lines))
	s.renderMessage(win, msg, now)

	// Move the cursor back to its tracked position and show it.
	fmt.Fprintf(b, "\x1b[%d;%dH", cur.Pos.Row+1, cur.Pos.Col+1)
	b.WriteString("\x1b[?25h")

	return b.String()
}

// renderStatusBar draws the inverse-video bar: file name on the left,
// cursor position and line count on the right.
func (s *Screen) renderStatusBar(win Window, name string, cur Cursor, lineCount int) {
	b := &s.buf
	b.WriteString("\x1b[7m")

	sep := " | "
	count := fmt.Sprintf("%d line", lineCount)
	if lineCount != 1 {
		count += "s"
	}
	pos := fmt.Sprintf("%d:%d", cur.Line, cur.Pos.Col)

	used := len(pos) + len(sep) + len(count)
	avail := win.Width - used
	if avail < 0 {
		avail = 0
	}
	name = runewidth.Truncate(name, avail, "")
	used += runewidth.StringWidth(name)

	b.WriteString(name)
	if pad := win.Width - used; pad > 0 {
		b.WriteString(strings.Repeat(" ", pad))
	}
	b.WriteString(pos)
	b.WriteString(sep)
	b.WriteString(count)

	b.WriteString("\x1b[m")
	b.WriteString("\r\n")
}

// renderMessage draws the bottom message row, truncated to the window
// width. Expired messages render as an empty row.
func (s *Screen) renderMessage(win Window, msg *StatusMessage, now time.Time) {
	b := &s.buf
	b.WriteString("\x1b[K")
	if text := msg.TextAt(now); text != "" {
		b.WriteString(runewidth.Truncate(text, win.Width, ""))
	}
}
