// Package view renders a growing text file in a terminal.
//
// Incoming bytes are split into lines and printed with hard wrapping at the
// terminal width. Embedded ANSI SGR escape sequences pass through whole and
// occupy no cells, so styled output renders as the producer intended. The
// bottom line of the screen is a reverse-video status bar naming the viewed
// file and when viewing started.
package view
