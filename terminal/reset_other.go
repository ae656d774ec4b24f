//go:build !(linux || darwin || dragonfly || freebsd || netbsd || openbsd)

package terminal

// resetTerminalMode is a no-op where termios ioctls are not wired up; the escape
// sequences written by EmergencyReset still apply
func resetTerminalMode() {}
