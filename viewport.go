package main

// Viewport identifies the first screen row of the window: which line
// it belongs to, and the offset of its first byte within that line.
// ByteOffset is always a multiple of the window width, and 0 whenever
// the line fits in a single row.
type Viewport struct {
	Line       int
	ByteOffset int
}

// ScrollDown shifts the window down by exactly one row: the next
// wrapped row of the current first line if it has one, otherwise the
// next line. Reports whether it moved. The cursor is untouched;
// callers that scroll as part of a cursor move adjust the screen row
// themselves.
func (v *Viewport) ScrollDown(lines []Line, width int) bool {
	if len(lines) == 0 {
		return false
	}
	if v.ByteOffset+width < lines[v.Line].Len() {
		v.ByteOffset += width
		return true
	}
	if v.Line+1 < len(lines) {
		v.Line++
		v.ByteOffset = 0
		return true
	}
	return false
}

// ScrollUp shifts the window up by exactly one row. When it crosses
// onto a previous line that wraps, the window starts at that line's
// last row. Reports whether it moved.
func (v *Viewport) ScrollUp(lines []Line, width int) bool {
	if v.ByteOffset >= width {
		v.ByteOffset -= width
		return true
	}
	if v.Line > 0 {
		v.Line--
		v.ByteOffset = lastRowStart(lines[v.Line].Len(), width)
		return true
	}
	return false
}
