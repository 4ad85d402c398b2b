package view

import (
	"fmt"
	"io"
)

// Goto moves the cursor to a zero-based line and column.
func Goto(w io.Writer, line, col int) {
	fmt.Fprintf(w, "\x1b[%d;%dH", 1+line, 1+col)
}

// ClearScreen clears the visible screen and moves the cursor to the top-left
// corner. When discardOld is true the scrollback buffer is cleared too.
func ClearScreen(w io.Writer, discardOld bool) {
	_, _ = io.WriteString(w, "\x1b[2J")
	if discardOld {
		_, _ = io.WriteString(w, "\x1b[3J")
	}
	Goto(w, 0, 0)
}

// ShowCursor shows or hides the cursor.
func ShowCursor(w io.Writer, show bool) {
	if show {
		_, _ = io.WriteString(w, "\x1b[?25h")
	} else {
		_, _ = io.WriteString(w, "\x1b[?25l")
	}
}

// AltScreen enters or leaves the alternate screen buffer.
func AltScreen(w io.Writer, enable bool) {
	if enable {
		_, _ = io.WriteString(w, "\x1b[?1049h")
	} else {
		_, _ = io.WriteString(w, "\x1b[?1049l")
	}
}
