package main

// Pos is a zero-based screen coordinate. {0,0} is the top-left corner
// of the window, even though VT100 sequences count from 1; mixing the
// two bases is where off-by-one bugs live, so everything internal is
// zero-based and the +1 happens only when a sequence is emitted.
type Pos struct {
	Row int
	Col int
}

// Cursor tracks where the user is, in all three coordinate systems at
// once: the screen position, the index of the logical line, and the
// byte offset within that line's rendered form. A line may wrap over
// several rows, so none of the three can be derived from the others.
type Cursor struct {
	Pos  Pos
	Line int
	// Byte is the absolute offset from the start of the line's
	// rendered bytes, across wraps.
	Byte int
	// AtRowEnd records that the cursor was put on the last occupied
	// column of its row by a vertical move or an end-of-line command.
	// While set, vertical moves keep tracking row ends instead of a
	// fixed column. Cleared by moving left off the end column.
	AtRowEnd bool
}

// rowStart returns the line-relative offset of the first byte of the
// row the cursor is on.
func (c *Cursor) rowStart() int { return c.Byte - c.Pos.Col }

// rowLastCol returns the last occupied column of the row under the
// cursor: the window's last column on full rows, less on the final row
// of a wrapped line or on short unwrapped lines.
func (c *Cursor) rowLastCol(lines []Line, width int) int {
	if width <= 0 {
		panic("cursor: window width not established")
	}
	if len(lines) == 0 {
		return 0
	}
	line := lines[c.Line]
	if line.IsEmpty() {
		return 0
	}
	rowLen := line.Len() - c.rowStart()
	if rowLen > width {
		rowLen = width
	}
	return rowLen - 1
}

// rowLastOffset returns the absolute offset within the line of the
// last byte of the cursor's row.
func (c *Cursor) rowLastOffset(lines []Line, width int) int {
	return c.Byte + c.rowLastCol(lines, width) - c.Pos.Col
}

// remainingAfterRow returns how many bytes of the current line come
// after the cursor's row, i.e. the total length of the wrapped rows
// still below it.
func (c *Cursor) remainingAfterRow(lines []Line, width int) int {
	n := lines[c.Line].Len()
	last := c.rowLastOffset(lines, width)
	if last+1 >= n {
		return 0
	}
	return n - last - 1
}

// hasRowBelow reports whether any row exists below the cursor's row:
// either more wrapped rows of the current line, or a next line.
func (c *Cursor) hasRowBelow(lines []Line, width int) bool {
	return c.Line+1 < len(lines) || c.remainingAfterRow(lines, width) > 0
}

// lastRowStart returns the line-relative offset where the final row of
// a line of length n begins. A length that is an exact multiple of the
// width still gets a full final row, never a zero-length one.
func lastRowStart(n, width int) int {
	if n <= width {
		return 0
	}
	return ((n - 1) / width) * width
}

// Right moves one column right within the current row. It refuses to
// cross a wrap boundary: reaching the window's last column stops it,
// and continuing along the line is Down's job.
func (c *Cursor) Right(lines []Line, win Window) {
	if len(lines) == 0 {
		return
	}
	if c.Byte+1 >= lines[c.Line].Len() || c.Pos.Col+1 >= win.Width {
		return
	}
	c.Pos.Col++
	c.Byte++
	if c.Pos.Col == c.rowLastCol(lines, win.Width) {
		c.AtRowEnd = true
	}
}

// Left moves one column left within the current row.
func (c *Cursor) Left(lines []Line, win Window) {
	if c.Pos.Col == 0 {
		return
	}
	if c.Pos.Col == c.rowLastCol(lines, win.Width) {
		c.AtRowEnd = false
	}
	c.Pos.Col--
	c.Byte--
}

// Down moves the cursor down by one row, scrolling the viewport first
// when the cursor sits on the window's bottom row. The landing column
// is the destination row's end when AtRowEnd is set, otherwise the
// current column clamped to the destination row's last occupied column.
func (c *Cursor) Down(lines []Line, win Window, view *Viewport) {
	if len(lines) == 0 {
		return
	}
	if c.Pos.Row+1 == win.Height && c.hasRowBelow(lines, win.Width) {
		if view.ScrollDown(lines, win.Width) {
			c.Pos.Row--
		}
	}

	rest := c.remainingAfterRow(lines, win.Width)
	switch {
	case rest > 0:
		// The line wraps on: stay on it and go down one row.
		if c.Pos.Row+1 < win.Height {
			c.Pos.Row++
		}
		rowLen := rest
		if rowLen > win.Width {
			rowLen = win.Width
		}
		col := rowLen - 1
		if !c.AtRowEnd && c.Pos.Col < col {
			col = c.Pos.Col
		}
		last := c.rowLastOffset(lines, win.Width)
		c.Pos.Col = col
		c.Byte = last + 1 + col
	case c.Line+1 < len(lines):
		c.Line++
		if c.Pos.Row+1 < win.Height {
			c.Pos.Row++
		}
		// The next line might be shorter than the current column.
		line := lines[c.Line]
		col := 0
		if !line.IsEmpty() {
			rowLen := line.Len()
			if rowLen > win.Width {
				rowLen = win.Width
			}
			col = rowLen - 1
			if !c.AtRowEnd && c.Pos.Col < col {
				col = c.Pos.Col
			}
		}
		c.Pos.Col = col
		c.Byte = col
	}
}

// Up moves the cursor up by one row, scrolling the viewport first when
// the cursor sits on the window's top row. Mirror of Down.
func (c *Cursor) Up(lines []Line, win Window, view *Viewport) {
	if len(lines) == 0 {
		return
	}
	if c.Pos.Row == 0 {
		view.ScrollUp(lines, win.Width)
	}

	switch {
	case c.Byte >= win.Width:
		// Still within a wrapped line: move to its previous row.
		if c.Pos.Row > 0 {
			c.Pos.Row--
		}
		if c.AtRowEnd {
			// Last byte of the previous row.
			c.Byte = (c.Byte/win.Width)*win.Width - 1
			c.Pos.Col = c.Byte % win.Width
		} else {
			c.Byte -= win.Width
		}
	case c.Line > 0:
		c.Line--
		if c.Pos.Row > 0 {
			c.Pos.Row--
		}
		line := lines[c.Line]
		switch {
		case line.IsEmpty():
			c.Pos.Col = 0
			c.Byte = 0
		case line.Len() <= win.Width:
			col := line.Len() - 1
			if !c.AtRowEnd && c.Pos.Col < col {
				col = c.Pos.Col
			}
			c.Pos.Col = col
			c.Byte = col
		default:
			// The previous line wraps: land on its last row.
			start := lastRowStart(line.Len(), win.Width)
			col := line.Len() - start - 1
			if !c.AtRowEnd && c.Pos.Col < col {
				col = c.Pos.Col
			}
			c.Pos.Col = col
			c.Byte = start + col
		}
	}
}

// PageDown moves down by one window of rows, stopping at the last line.
func (c *Cursor) PageDown(lines []Line, win Window, view *Viewport) {
	for n := win.Height - 1; n > 0 && c.Line < len(lines); n-- {
		c.Down(lines, win, view)
	}
}

// PageUp moves up by one window of rows, stopping at the first line.
func (c *Cursor) PageUp(lines []Line, win Window, view *Viewport) {
	for n := win.Height - 1; n > 0 && c.Line > 0; n-- {
		c.Up(lines, win, view)
	}
}

// LineHome moves left to the start of the line, or to the start of the
// current row when the cursor sits past a wrap (Left cannot cross wrap
// boundaries).
func (c *Cursor) LineHome(lines []Line, win Window) {
	for c.Byte > 0 && c.Pos.Col > 0 {
		c.Left(lines, win)
	}
}

// LineEnd moves right until the end of the line or the end of the
// window, whichever comes first. It cannot cross a wrap boundary to
// reach the true last row of a wrapped line.
func (c *Cursor) LineEnd(lines []Line, win Window) {
	if len(lines) == 0 {
		return
	}
	for c.Byte+1 < lines[c.Line].Len() && c.Pos.Col+1 < win.Width {
		c.Right(lines, win)
	}
}
