package engine

import (
	"fmt"
	"io"
	"os"
	"os/signal"
	"runtime/debug"
	"syscall"

	"github.com/lixenwraith/termcanvas/terminal"
)

// Restorer puts the terminal back in a usable state; must be idempotent
type Restorer interface {
	Restore() error
}

// exit and crashOut are swapped in tests
var (
	exit               = os.Exit
	crashOut io.Writer = os.Stdout
)

// HandleCrash restores the terminal, reports the panic with its stack on stderr and
// exits with status 1. A nil restorer falls back to EmergencyReset on stdout.
// Call it only from the goroutine that renders.
func HandleCrash(restorer Restorer, r any) {
	if restorer == nil || restorer.Restore() != nil {
		terminal.EmergencyReset(crashOut)
	}
	reportCrash(r)
	exit(1)
}

// Go runs fn on a new goroutine. A panic there trips the latch so the frame loop stops,
// then resets the terminal with direct writes that bypass the frame encoder, and exits.
func Go(latch *Latch, fn func()) {
	go func() {
		defer func() {
			if r := recover(); r != nil {
				latch.Trip()
				terminal.EmergencyReset(crashOut)
				reportCrash(r)
				exit(1)
			}
		}()
		fn()
	}()
}

func reportCrash(r any) {
	// Use \r\n for raw mode compatibility to avoid zig-zag output
	fmt.Fprintf(os.Stderr, "\r\n\x1b[31mTERMCANVAS CRASHED: %v\x1b[0m\r\n", r)
	fmt.Fprintf(os.Stderr, "Stack Trace:\r\n%s\r\n", debug.Stack())
}

// InstallSignalHandler trips the latch on SIGINT or SIGTERM.
// The returned func uninstalls the handler.
func InstallSignalHandler(latch *Latch) func() {
	sigCh := make(chan os.Signal, 1)
	done := make(chan struct{})
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		for {
			select {
			case <-sigCh:
				latch.Trip()
			case <-done:
				return
			}
		}
	}()

	return func() {
		signal.Stop(sigCh)
		close(done)
	}
}
