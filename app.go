package main

import (
	"errors"
	"io"
	"log"
	"time"
)

const helpHold = 5 * time.Second

// App owns all mutable viewer state and drives the read → decode →
// act → redraw cycle. Everything is single-threaded and blocking: one
// byte in, at most one command applied, one full redraw out.
type App struct {
	name    string
	lines   []Line
	cursor  Cursor
	view    Viewport
	win     Window
	console *Console
	screen  Screen
	msg     StatusMessage

	clock func() time.Time
	debug *log.Logger
}

func NewApp(name string, lines []Line, console *Console) *App {
	return &App{
		name:    name,
		lines:   lines,
		console: console,
		clock:   time.Now,
		debug:   log.New(io.Discard, "", 0),
	}
}

func ctrl(c byte) byte { return c & 0x1f }

// Run is the main loop. It returns nil on quit (Ctrl-C) and on a
// closed input stream during an ordinary key read; a failed geometry
// exchange is fatal because no screen can be laid out without it.
func (a *App) Run() error {
	a.msg.Set("HELP: Ctrl-C to quit", helpHold, a.clock())
	for {
		if err := a.refresh(); err != nil {
			return err
		}

		b, err := a.console.ReadByte()
		if err != nil {
			if errors.Is(err, io.EOF) {
				return nil
			}
			return err
		}

		switch b {
		case ctrl('c'):
			return nil
		case 0x1b:
			a.apply(a.console.ReadEscapeKey())
		default:
			// A viewer: anything that is not navigation or quit is
			// accepted and has no effect.
		}
	}
}

// apply dispatches one decoded key to the cursor engine.
func (a *App) apply(k Key) {
	switch k {
	case KeyUp:
		a.cursor.Up(a.lines, a.win, &a.view)
	case KeyDown:
		a.cursor.Down(a.lines, a.win, &a.view)
	case KeyLeft:
		a.cursor.Left(a.lines, a.win)
	case KeyRight:
		a.cursor.Right(a.lines, a.win)
	case KeyPageUp:
		a.cursor.PageUp(a.lines, a.win, &a.view)
	case KeyPageDown:
		a.cursor.PageDown(a.lines, a.win, &a.view)
	case KeyLineHome:
		a.cursor.LineHome(a.lines, a.win)
	case KeyLineEnd:
		a.cursor.LineEnd(a.lines, a.win)
	case KeyDelete:
		// Recognized but inert: text mutation is out of scope.
	case KeyNone:
	}
	a.debug.Printf("key=%d cursor=%+v view=%+v", k, a.cursor, a.view)
}

// refresh re-probes the geometry (the window may have been resized
// since the last frame) and flushes one freshly built frame.
func (a *App) refresh() error {
	win, err := a.console.WindowSize()
	if err != nil {
		return err
	}
	a.win = win

	frame := a.screen.RenderFrame(a.lines, a.view, a.cursor, a.win, a.name, &a.msg, a.clock())
	_, err = io.WriteString(a.console.out, frame)
	return err
}
