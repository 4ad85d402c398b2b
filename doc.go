// Package babble emits a stream of randomly generated words as ANSI text.
//
// The generator writes 1000 words to an io.Writer. Words are drawn from one
// of two charsets (ASCII alphanumerics or Hangul syllables), occasionally
// wrapped in an ANSI SGR style and reset pair, and separated by spaces.
// Roughly one word in ten ends the current line instead, followed by a short
// pause before output continues.
//
// Core properties:
//   - All randomness flows through a single *rand.Rand handle
//   - Seeded runs reproduce byte-identical output
//   - Output is flushed after every token
//
// Example:
//
//	err := babble.Run(babble.Request{Writer: os.Stdout})
//	if err != nil {
//		log.Fatal(err)
//	}
//
// The companion view package renders files of such output in a terminal.
package babble
