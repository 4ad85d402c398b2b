//go:build linux || darwin || freebsd || netbsd || openbsd || dragonfly

package view

import "golang.org/x/sys/unix"

// NoEcho holds the terminal mode saved by DisableEcho.
type NoEcho struct {
	fd  int
	old *unix.Termios
}

// DisableEcho turns off input echo on the terminal at fd and returns a
// restorer for the previous mode. Failures leave the terminal untouched and
// Restore becomes a no-op, so a non-terminal fd is harmless.
func DisableEcho(fd int) *NoEcho {
	old, err := unix.IoctlGetTermios(fd, ioctlReadTermios)
	if err != nil {
		return &NoEcho{}
	}
	mode := *old
	mode.Lflag &^= unix.ECHO
	if err := unix.IoctlSetTermios(fd, ioctlWriteTermios, &mode); err != nil {
		return &NoEcho{}
	}
	return &NoEcho{fd: fd, old: old}
}

// Restore reinstates the terminal mode saved by DisableEcho.
func (n *NoEcho) Restore() {
	if n.old == nil {
		return
	}
	_ = unix.IoctlSetTermios(n.fd, ioctlWriteTermios, n.old)
	n.old = nil
}
