package babble

import (
	"math/rand/v2"
	"strings"
)

const (
	minWordLen = 2
	maxWordLen = 10
	asciiOdds  = 0.7

	asciiChars = "0123456789abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ"

	// Precomposed Hangul syllables, exclusive upper bound.
	hangulLo = 0xAC00
	hangulHi = 0xD7B0
)

// randomWord generates a word of 2 to 10 characters, drawn entirely from
// either the ASCII alphanumeric set or the Hangul syllable block.
func randomWord(r *rand.Rand) string {
	n := r.IntN(maxWordLen-minWordLen+1) + minWordLen
	var sb strings.Builder
	if r.Float64() < asciiOdds {
		for range n {
			sb.WriteByte(asciiChars[r.IntN(len(asciiChars))])
		}
		return sb.String()
	}
	for range n {
		sb.WriteRune(rune(hangulLo + r.IntN(hangulHi-hangulLo)))
	}
	return sb.String()
}
