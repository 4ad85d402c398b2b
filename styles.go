package babble

import (
	"math/rand/v2"
	"strconv"
)

// ANSI SGR prefixes. A styled token is written as prefix + word + ansiReset.
const (
	ansiReset  = "\x1b[0m"
	ansiBold   = "\x1b[1m"
	ansiDim    = "\x1b[2m"
	ansiItalic = "\x1b[3m"

	fgLo       = 30
	brightFgLo = 90
	fgRange    = 8
)

func sgr(param int) string {
	return "\x1b[" + strconv.Itoa(param) + "m"
}

// randomStyle returns an SGR prefix for roughly one token in ten, and the
// empty string otherwise. The five style families are equally likely; color
// values are drawn uniformly within their family.
func randomStyle(r *rand.Rand) string {
	if r.Float64() >= styleOdds {
		return ""
	}
	switch r.IntN(5) {
	case 0:
		return ansiBold
	case 1:
		return ansiDim
	case 2:
		return ansiItalic
	case 3:
		return sgr(fgLo + r.IntN(fgRange))
	default:
		return sgr(brightFgLo + r.IntN(fgRange))
	}
}
