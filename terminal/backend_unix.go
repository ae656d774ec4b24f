//go:build unix

package terminal

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/pkg/errors"
	"golang.org/x/sys/unix"
	"golang.org/x/term"
)

type unixBackend struct {
	in      *os.File
	out     *os.File
	inFd    int
	outFd   int
	oldTerm *term.State
	enc     *ANSIEncoder

	onResize func(width, height int)
}

// NewUnixBackend returns a backend driving stdin/stdout with ANSI sequences
func NewUnixBackend() Backend {
	return &unixBackend{
		in:    os.Stdin,
		out:   os.Stdout,
		inFd:  int(os.Stdin.Fd()),
		outFd: int(os.Stdout.Fd()),
		enc:   NewANSIEncoder(os.Stdout),
	}
}

func (b *unixBackend) Init() error {
	if !term.IsTerminal(b.inFd) {
		return errors.New("terminal: stdin is not a terminal")
	}

	old, err := term.MakeRaw(b.inFd)
	if err != nil {
		return errors.Wrap(err, "terminal: raw mode")
	}
	b.oldTerm = old
	return nil
}

func (b *unixBackend) Fini() {
	if b.oldTerm != nil {
		term.Restore(b.inFd, b.oldTerm)
		b.oldTerm = nil
	}
}

func (b *unixBackend) Size() (int, int) {
	return getTerminalSize(b.outFd)
}

func (b *unixBackend) Encoder() Encoder {
	return b.enc
}

func (b *unixBackend) SetResizeHandler(handler func(width, height int)) {
	b.onResize = handler
}

// Listen polls stdin with a short timeout so stop is observed promptly.
// SIGWINCH is watched on the same goroutine while listening.
func (b *unixBackend) Listen(stop <-chan struct{}, onQuit func()) error {
	sigCh := make(chan os.Signal, 1)
	if b.onResize != nil {
		signal.Notify(sigCh, syscall.SIGWINCH)
		defer signal.Stop(sigCh)
	}

	buf := make([]byte, 256)
	for {
		select {
		case <-stop:
			return nil
		case <-sigCh:
			if w, h := b.Size(); w > 0 && h > 0 {
				b.onResize(w, h)
			}
		default:
		}

		fds := []unix.PollFd{
			{Fd: int32(b.inFd), Events: unix.POLLIN},
		}

		// 100ms timeout
		n, err := unix.Poll(fds, 100)
		if err != nil {
			if err == unix.EINTR {
				continue
			}
			return errors.Wrap(err, "terminal: poll")
		}
		if n == 0 {
			continue
		}

		rn, err := unix.Read(b.inFd, buf)
		if err != nil {
			if err == unix.EINTR || err == unix.EAGAIN {
				continue
			}
			return errors.Wrap(err, "terminal: read")
		}
		if rn == 0 {
			// EOF
			return nil
		}

		// A lone ESC is the key itself, longer reads starting with ESC are sequences
		if rn == 1 && buf[0] == 0x1b {
			onQuit()
			continue
		}
		for _, c := range buf[:rn] {
			if isQuitKey(c) {
				onQuit()
				break
			}
		}
	}
}

// getTerminalSize returns the terminal size for a given fd
func getTerminalSize(fd int) (int, int) {
	ws, err := unix.IoctlGetWinsize(fd, unix.TIOCGWINSZ)
	if err != nil {
		return 80, 24 // Fallback
	}
	return int(ws.Col), int(ws.Row)
}
