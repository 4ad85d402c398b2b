//go:build !linux && !darwin && !freebsd && !netbsd && !openbsd && !dragonfly

package view

// NoEcho is a no-op on platforms without termios support.
type NoEcho struct{}

// DisableEcho is a no-op on platforms without termios support.
func DisableEcho(fd int) *NoEcho {
	return &NoEcho{}
}

// Restore is a no-op on platforms without termios support.
func (n *NoEcho) Restore() {}
