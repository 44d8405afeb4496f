package main

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"golang.org/x/term"
)

// Window is the usable text area of the terminal. Height already
// excludes the two reserved bottom rows (status bar + message bar).
type Window struct {
	Width  int
	Height int
}

// Console owns the byte streams shared by key input, the geometry
// probe, and frame output, plus the raw-mode state of the terminal.
type Console struct {
	in       *bufio.Reader
	out      io.Writer
	inFd     int
	oldState *term.State
}

// NewConsole wraps an input and output stream. Raw mode is only
// available when in is a real terminal file.
func NewConsole(in io.Reader, out io.Writer) *Console {
	c := &Console{in: bufio.NewReader(in), out: out, inFd: -1}
	if f, ok := in.(*os.File); ok {
		c.inFd = int(f.Fd())
	}
	return c
}

// EnterRaw switches the terminal to raw (unbuffered, unechoed) mode.
func (c *Console) EnterRaw() error {
	if c.inFd < 0 {
		return errors.New("input is not a terminal")
	}
	oldState, err := term.MakeRaw(c.inFd)
	if err != nil {
		return err
	}
	c.oldState = oldState
	return nil
}

// Restore clears the screen and returns the terminal to its original
// mode. Safe to call on every exit path, including when EnterRaw was
// never reached.
func (c *Console) Restore() {
	io.WriteString(c.out, "\x1b[2J\x1b[1;1H\x1b[?25h")
	if c.oldState != nil {
		term.Restore(c.inFd, c.oldState)
		c.oldState = nil
	}
}

// ReadByte reads a single input byte, blocking.
func (c *Console) ReadByte() (byte, error) {
	return c.in.ReadByte()
}

// Key is a decoded navigation command. The enum is closed: everything
// the decoder cannot resolve collapses to KeyNone and is ignored.
type Key int

const (
	KeyNone Key = iota
	KeyUp
	KeyDown
	KeyLeft
	KeyRight
	KeyPageUp
	KeyPageDown
	KeyLineHome
	KeyLineEnd
	KeyDelete
)

// ReadEscapeKey consumes the remainder of an escape sequence after its
// 0x1b lead byte and resolves it to a Key. Unrecognized or truncated
// sequences resolve to KeyNone; only the bytes already read are
// consumed, so the stream stays in sync.
func (c *Console) ReadEscapeKey() Key {
	return decodeEscape(c.in)
}

func decodeEscape(in io.Reader) Key {
	var buf [3]byte
	if _, err := io.ReadFull(in, buf[:2]); err != nil {
		return KeyNone
	}

	switch buf[0] {
	case '[':
		if buf[1] >= '0' && buf[1] <= '9' {
			// ESC [ <digit> ~
			if _, err := io.ReadFull(in, buf[2:3]); err != nil {
				return KeyNone
			}
			if buf[2] != '~' {
				return KeyNone
			}
			switch buf[1] {
			case '1', '7':
				return KeyLineHome
			case '4', '8':
				return KeyLineEnd
			case '3':
				return KeyDelete
			case '5':
				return KeyPageUp
			case '6':
				return KeyPageDown
			}
			return KeyNone
		}
		switch buf[1] {
		case 'A':
			return KeyUp
		case 'B':
			return KeyDown
		case 'C':
			return KeyRight
		case 'D':
			return KeyLeft
		case 'H':
			return KeyLineHome
		}
		return KeyNone
	case 'O':
		switch buf[1] {
		case 'H':
			return KeyLineHome
		case 'F':
			return KeyLineEnd
		}
		return KeyNone
	}
	return KeyNone
}

// ErrReportMalformed marks a cursor position report that arrived but
// could not be parsed, as opposed to the stream failing mid-read.
var ErrReportMalformed = errors.New("malformed cursor position report")

// CursorPos asks the terminal where its cursor is. It writes the
// position query and then consumes input up to the terminating 'R'.
// The exchange is blocking and shares the key input stream.
func (c *Console) CursorPos() (Pos, error) {
	if _, err := io.WriteString(c.out, "\x1b[6n"); err != nil {
		return Pos{}, err
	}
	var resp []byte
	for {
		b, err := c.in.ReadByte()
		if err != nil {
			return Pos{}, fmt.Errorf("reading cursor report: %w", err)
		}
		if b == 'R' {
			break
		}
		resp = append(resp, b)
	}
	return parseCursorReport(resp)
}

// parseCursorReport extracts the 1-based "<row>;<col>" pair that
// follows the first escape byte of a report and converts it to a
// zero-based Pos. Some terminals prepend spurious bytes, so anything
// before the escape is skipped.
func parseCursorReport(resp []byte) (Pos, error) {
	i := bytes.IndexByte(resp, 0x1b)
	if i < 0 {
		return Pos{}, ErrReportMalformed
	}
	resp = resp[i+1:]
	semi := bytes.IndexByte(resp, ';')
	if semi < 0 {
		return Pos{}, ErrReportMalformed
	}
	row, ok := scanUint(resp[:semi])
	col, ok2 := scanUint(resp[semi+1:])
	if !ok || !ok2 || row < 1 || col < 1 {
		return Pos{}, ErrReportMalformed
	}
	return Pos{Row: row - 1, Col: col - 1}, nil
}

// scanUint parses the first run of digits in b.
func scanUint(b []byte) (int, bool) {
	i := 0
	for i < len(b) && (b[i] < '0' || b[i] > '9') {
		i++
	}
	n, j := 0, i
	for j < len(b) && b[j] >= '0' && b[j] <= '9' {
		n = n*10 + int(b[j]-'0')
		j++
	}
	return n, j > i
}

// WindowSize measures the terminal by clamping the cursor to the
// bottom-right corner and asking where it landed. The cursor-forward/
// cursor-down forms are used because, unlike a direct position set,
// they cannot move past the window's edge. Two rows are reserved for
// the status bar and the message bar.
func (c *Console) WindowSize() (Window, error) {
	if _, err := io.WriteString(c.out, "\x1b[999C\x1b[999B"); err != nil {
		return Window{}, err
	}
	corner, err := c.CursorPos()
	if err != nil {
		return Window{}, err
	}
	return Window{Width: corner.Col + 1, Height: corner.Row - 1}, nil
}
