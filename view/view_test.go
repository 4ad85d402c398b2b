package view

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"go.akshayshah.org/attest"
)

func testClock() time.Time {
	return time.Date(2026, 1, 2, 12, 34, 56, 0, time.UTC)
}

func newTestViewer(out *bytes.Buffer, cols, rows int, opts Options) *Viewer {
	v := New(out, "out.txt", cols, rows, opts)
	v.now = testClock
	v.stamp = testClock()
	return v
}

func TestFeedWrapsAtWidth(t *testing.T) {
	var out bytes.Buffer
	v := newTestViewer(&out, 10, 5, Options{})
	v.Feed([]byte("abcdefghijklmno\n"))
	got := out.String()
	attest.True(t, strings.Contains(got, "abcdefghi\x1b[K\n"),
		attest.Sprintf("first line not wrapped after 9 cells: %q", got))
	attest.True(t, strings.Contains(got, "jklmno\x1b[K\n"),
		attest.Sprintf("continuation missing: %q", got))
}

func TestFeedBuffersPartialLines(t *testing.T) {
	var out bytes.Buffer
	v := newTestViewer(&out, 40, 5, Options{})
	v.Feed([]byte("hel"))
	attest.Equal(t, out.Len(), 0)
	v.Feed([]byte("lo\r\n"))
	attest.True(t, strings.Contains(out.String(), "hello\x1b[K\n"),
		attest.Sprintf("carriage return not dropped: %q", out.String()))
}

func TestFeedPassesEscapesWhole(t *testing.T) {
	var out bytes.Buffer
	v := newTestViewer(&out, 10, 5, Options{})
	v.Feed([]byte("\x1b[31mab\x1b[0m\n"))
	got := out.String()
	attest.True(t, strings.Contains(got, "\x1b[31mab\x1b[0m\x1b[K\n"),
		attest.Sprintf("escape sequence split or reordered: %q", got))
}

func TestFeedEscapesOccupyNoCells(t *testing.T) {
	var out bytes.Buffer
	v := newTestViewer(&out, 5, 5, Options{})
	// Nine bytes of escapes around four cells of text; only the text may
	// trigger a wrap.
	v.Feed([]byte("\x1b[1mabcd\x1b[0m\n"))
	got := out.String()
	attest.True(t, strings.Contains(got, "\x1b[1mabcd\x1b[0m\x1b[K\n"),
		attest.Sprintf("styled word wrapped despite fitting: %q", got))
}

func TestFeedHangulDoubleWidth(t *testing.T) {
	var out bytes.Buffer
	v := newTestViewer(&out, 5, 5, Options{})
	v.Feed([]byte("가나다\n"))
	got := out.String()
	attest.True(t, strings.Contains(got, "가나\x1b[K\n"),
		attest.Sprintf("double-width runes not wrapped after two cells each: %q", got))
	attest.True(t, strings.Contains(got, "다\x1b[K\n"),
		attest.Sprintf("continuation missing: %q", got))
}

func TestTimestampsIndentContinuations(t *testing.T) {
	var out bytes.Buffer
	v := newTestViewer(&out, 12, 5, Options{Timestamps: true})
	v.Feed([]byte("abcdef\n"))
	got := out.String()
	attest.True(t, strings.Contains(got, "\x1b[2m12:34:56 \x1b[0m"),
		attest.Sprintf("dim timestamp prefix missing: %q", got))
	// Timestamp occupies 9 cells of 12, so the line breaks after "ab" and
	// continues under the stamp.
	attest.True(t, strings.Contains(got, "ab\x1b[K\n         c"),
		attest.Sprintf("continuation not indented under timestamp: %q", got))
}

func TestStatusBar(t *testing.T) {
	var out bytes.Buffer
	v := newTestViewer(&out, 60, 5, Options{})
	v.Feed([]byte("x\n"))
	got := out.String()
	for _, want := range []string{
		"\x1b[7m",
		"Viewing \x1b[1mout.txt\x1b[22m",
		"Started at 12:34:56",
		"\x1b[27m",
	} {
		attest.True(t, strings.Contains(got, want),
			attest.Sprintf("status bar missing %q: %q", want, got))
	}
}

func TestTruncated(t *testing.T) {
	var out bytes.Buffer
	v := newTestViewer(&out, 60, 5, Options{})
	v.Feed([]byte("old line\n"))
	out.Reset()
	v.Truncated()
	got := out.String()
	attest.True(t, strings.Contains(got, "\x1b[2J"), attest.Sprintf("screen not cleared: %q", got))
	attest.True(t, !strings.Contains(got, "\x1b[3J"), attest.Sprintf("scrollback cleared without DiscardOld: %q", got))
	attest.True(t, strings.Contains(got, "File truncated"), attest.Sprintf("truncation notice missing: %q", got))
	attest.True(t, strings.Contains(got, "Created at 12:34:56"), attest.Sprintf("status bar not restamped: %q", got))
}

func TestTruncatedDiscardsScrollback(t *testing.T) {
	var out bytes.Buffer
	v := newTestViewer(&out, 60, 5, Options{DiscardOld: true})
	v.Truncated()
	attest.True(t, strings.Contains(out.String(), "\x1b[3J"),
		attest.Sprintf("scrollback not cleared: %q", out.String()))
}

func TestScreenSequences(t *testing.T) {
	var out bytes.Buffer
	Goto(&out, 0, 0)
	attest.Equal(t, out.String(), "\x1b[1;1H")
	out.Reset()
	ClearScreen(&out, true)
	attest.Equal(t, out.String(), "\x1b[2J\x1b[3J\x1b[1;1H")
	out.Reset()
	ShowCursor(&out, false)
	AltScreen(&out, true)
	attest.Equal(t, out.String(), "\x1b[?25l\x1b[?1049h")
}
