package view

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/mattn/go-runewidth"
	"github.com/muesli/reflow/ansi"
)

// Options configures a Viewer.
type Options struct {
	// Timestamps prefixes each printed line with a dim HH:MM:SS stamp.
	// Wrapped continuations are indented under the stamp.
	Timestamps bool
	// DiscardOld clears the scrollback buffer when the file is truncated.
	DiscardOld bool
}

// Viewer prints lines of a growing file to a terminal with hard wrapping
// and ANSI escape passthrough. It writes to w only; the caller owns screen
// setup such as the alternate buffer and cursor visibility.
type Viewer struct {
	w    io.Writer
	name string
	opts Options

	// rows excludes the status bar line at the bottom.
	rows int
	cols int

	line    []rune
	curLine int
	curCol  int

	stamp      time.Time
	stampLabel string
	now        func() time.Time
}

// New creates a Viewer for a terminal of the given size. One row is
// reserved for the status bar.
func New(w io.Writer, name string, cols, rows int, opts Options) *Viewer {
	v := &Viewer{
		w:          w,
		name:       name,
		opts:       opts,
		rows:       rows - 1,
		cols:       cols,
		stampLabel: "Started",
		now:        time.Now,
	}
	v.stamp = v.now()
	return v
}

// Start clears the screen and draws the status bar. Call once before the
// first Feed, so the bar is visible even while the file is empty.
func (v *Viewer) Start() {
	ClearScreen(v.w, false)
	v.printLine()
}

// Feed consumes bytes appended to the file. Complete lines are printed
// immediately; a trailing partial line is buffered until its newline
// arrives. Carriage returns are dropped.
func (v *Viewer) Feed(data []byte) {
	for _, c := range string(data) {
		switch c {
		case '\n':
			v.printLine()
		case '\r':
		default:
			v.line = append(v.line, c)
		}
	}
}

// Truncated resets the viewer after the file shrank back to empty: the
// screen is cleared (and scrollback, when DiscardOld is set) and the status
// bar is restamped.
func (v *Viewer) Truncated() {
	v.stamp = v.now()
	v.stampLabel = "Created"
	ClearScreen(v.w, v.opts.DiscardOld)
	v.line = v.line[:0]
	v.curLine = 0
	v.curCol = 0
	v.statusBar(true)
}

func (v *Viewer) printLine() {
	indent := 0
	if v.opts.Timestamps {
		stamp := v.now().Format("15:04:05") + " "
		fmt.Fprintf(v.w, "\x1b[2m%s\x1b[0m", stamp)
		indent = ansi.PrintableRuneWidth(stamp)
		v.curCol += indent
	}
	pad := strings.Repeat(" ", indent)
	for i := 0; i < len(v.line); {
		c := v.line[i]
		if c == 0x1b {
			i = v.printEscape(i)
			continue
		}
		w := runewidth.RuneWidth(c)
		if !v.fits(w) {
			v.newline()
			_, _ = io.WriteString(v.w, pad)
			v.curCol += indent
		}
		_, _ = io.WriteString(v.w, string(c))
		v.curCol += w
		i++
	}
	v.newline()
	v.line = v.line[:0]
	v.statusBar(false)
}

// printEscape emits one escape sequence starting at index i and returns the
// index past it. The sequence is collected and written at once since most
// terminals do not accept escape sequences character by character.
func (v *Viewer) printEscape(i int) int {
	start := i
	// "\x1b["
	i += 2
	for i < len(v.line) {
		c := v.line[i]
		if !(c >= '0' && c <= '9' || c == ';') {
			break
		}
		i++
	}
	// terminating character
	i++
	if i > len(v.line) {
		i = len(v.line)
	}
	_, _ = io.WriteString(v.w, string(v.line[start:i]))
	return i
}

func (v *Viewer) fits(cells int) bool {
	return v.curCol+cells < v.cols
}

func (v *Viewer) newline() {
	_, _ = io.WriteString(v.w, "\x1b[K\n")
	if v.curLine != v.rows {
		v.curLine++
	}
	v.curCol = 0
}

func (v *Viewer) statusBar(truncated bool) {
	saveLine, saveCol := v.curLine, v.curCol
	_, _ = io.WriteString(v.w, "\x1b[7m")

	Goto(v.w, v.rows, 0)
	_, _ = io.WriteString(v.w, strings.Repeat(" ", v.cols))

	Goto(v.w, v.rows, 1)
	fmt.Fprintf(v.w, "Viewing \x1b[1m%s\x1b[22m", v.name)

	if truncated {
		_, _ = io.WriteString(v.w, "   File truncated")
	}

	stamp := fmt.Sprintf("%s at %s", v.stampLabel, v.stamp.Format("15:04:05"))
	col := v.cols - len(stamp) - 1
	if col < 0 {
		col = 0
	}
	Goto(v.w, v.rows, col)
	_, _ = io.WriteString(v.w, stamp)

	_, _ = io.WriteString(v.w, "\x1b[27m")
	Goto(v.w, saveLine, saveCol)
}
