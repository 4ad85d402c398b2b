package main

import (
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/pflag"
	"golang.org/x/term"
	"pkt.systems/babble/view"
	"pkt.systems/version"
)

func init() {
	version.SetDefaultModule("pkt.systems/babble")
}

func main() {
	var (
		timestamps bool
		discardOld bool
	)
	flags := pflag.NewFlagSet("follow", pflag.ExitOnError)
	flags.BoolVarP(&timestamps, "timestamps", "t", false, "Show timestamps when a line is printed")
	flags.BoolVarP(&discardOld, "discard-old", "d", false, "Clear the scrollback buffer of the terminal when the file is truncated")
	flags.Usage = func() {
		fmt.Fprintln(os.Stderr, version.Module(), version.Current())
		fmt.Fprintf(os.Stderr, "Usage: follow [flags] <file>\n")
		fmt.Fprintln(os.Stderr, "\nFlags:")
		flags.PrintDefaults()
	}

	if err := flags.Parse(os.Args[1:]); err != nil {
		os.Exit(2)
	}
	args := flags.Args()
	if len(args) != 1 {
		flags.Usage()
		os.Exit(2)
	}

	// Enter the alternate screen buffer before anything is printed so the
	// caller's scrollback survives the session, and leave it even on error.
	view.AltScreen(os.Stdout, true)
	code := 0
	if err := run(args[0], view.Options{Timestamps: timestamps, DiscardOld: discardOld}); err != nil {
		fmt.Fprintln(os.Stderr, err)
		code = 1
	}
	view.AltScreen(os.Stdout, false)
	os.Exit(code)
}

func run(path string, opts view.Options) error {
	fd := int(os.Stdout.Fd())
	if !term.IsTerminal(fd) {
		return fmt.Errorf("follow: stdout is not a terminal")
	}
	cols, rows, err := term.GetSize(fd)
	if err != nil {
		return fmt.Errorf("follow: terminal size: %w", err)
	}

	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("follow: open: %w", err)
	}
	defer func() { _ = f.Close() }()

	view.ShowCursor(os.Stdout, false)
	defer view.ShowCursor(os.Stdout, true)
	echo := view.DisableEcho(int(os.Stdin.Fd()))
	defer echo.Restore()

	v := view.New(os.Stdout, displayName(path), cols, rows, opts)
	v.Start()

	var offset int64
	feed := func() error {
		info, err := f.Stat()
		if err != nil {
			return fmt.Errorf("follow: stat: %w", err)
		}
		if info.Size() < offset {
			if _, err := f.Seek(0, io.SeekStart); err != nil {
				return fmt.Errorf("follow: seek: %w", err)
			}
			offset = 0
			v.Truncated()
		}
		data, err := io.ReadAll(f)
		if err != nil {
			return fmt.Errorf("follow: read: %w", err)
		}
		offset += int64(len(data))
		v.Feed(data)
		return nil
	}
	if err := feed(); err != nil {
		return err
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("follow: watch: %w", err)
	}
	defer func() { _ = watcher.Close() }()
	if err := watcher.Add(path); err != nil {
		return fmt.Errorf("follow: watch %s: %w", path, err)
	}

	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM, syscall.SIGHUP)
	for {
		select {
		case ev, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if ev.Has(fsnotify.Write) {
				if err := feed(); err != nil {
					return err
				}
			}
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			return fmt.Errorf("follow: watch: %w", err)
		case <-sigs:
			return nil
		}
	}
}

func displayName(path string) string {
	home, err := os.UserHomeDir()
	if err != nil || home == "" {
		return path
	}
	if rest, ok := strings.CutPrefix(path, home); ok {
		return "~" + rest
	}
	return path
}
