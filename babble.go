package babble

import (
	"bufio"
	"fmt"
	"io"
	"math/rand/v2"
	"time"
)

const (
	wordCount = 1000
	linePause = 100 * time.Millisecond

	styleOdds = 0.1
	breakOdds = 0.1
)

// Request configures Run.
type Request struct {
	Writer  io.Writer
	Rand    *rand.Rand
	Options []Option
}

// Option configures generator behavior.
type Option func(*config)

type config struct {
	sleep func(time.Duration)
}

// WithSleepFunc replaces the pause taken after a line break. The default is
// time.Sleep; tests inject a recorder to run without wall-clock delays.
func WithSleepFunc(fn func(time.Duration)) Option {
	return func(cfg *config) {
		if fn != nil {
			cfg.sleep = fn
		}
	}
}

// Run writes 1000 randomly generated words to req.Writer, separated by
// spaces or line breaks, and flushes after every token. A nil req.Rand is
// replaced with a freshly seeded source. Run returns the first write error
// encountered; no output is retried.
func Run(req Request) error {
	if req.Writer == nil {
		return fmt.Errorf("babble: Writer is nil")
	}
	cfg := config{sleep: time.Sleep}
	for _, opt := range req.Options {
		if opt != nil {
			opt(&cfg)
		}
	}
	r := req.Rand
	if r == nil {
		r = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	w := bufio.NewWriter(req.Writer)
	for range wordCount {
		style := randomStyle(r)
		if style != "" {
			_, _ = io.WriteString(w, style)
		}
		_, _ = io.WriteString(w, randomWord(r))
		if style != "" {
			_, _ = io.WriteString(w, ansiReset)
		}
		// The draw order (style, word, separator) is fixed so a seeded
		// source reproduces byte-identical output.
		if r.Float64() >= 1-breakOdds {
			_ = w.WriteByte('\n')
			cfg.sleep(linePause)
		} else {
			_ = w.WriteByte(' ')
		}
		if err := w.Flush(); err != nil {
			return fmt.Errorf("babble: write: %w", err)
		}
	}
	_ = w.WriteByte('\n')
	if err := w.Flush(); err != nil {
		return fmt.Errorf("babble: write: %w", err)
	}
	return nil
}
