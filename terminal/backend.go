package terminal

// Backend abstracts the platform side of a terminal session: raw mode, size, input and the
// output sink the encoder writes into.
type Backend interface {
	// Lifecycle
	Init() error
	Fini()

	// Capabilities
	Size() (width, height int)

	// Encoder returns the draw-op surface bound to the backend output
	Encoder() Encoder

	// Listen blocks reading input until stop is closed or input ends.
	// onQuit is invoked for every quit key (q, Ctrl-C, Ctrl-D, Esc).
	Listen(stop <-chan struct{}, onQuit func()) error

	// SetResizeHandler registers a callback for terminal resize events.
	// Must be called before Listen.
	SetResizeHandler(handler func(width, height int))
}

// isQuitKey reports whether a raw input byte requests shutdown
func isQuitKey(b byte) bool {
	switch b {
	case 'q', 'Q', 0x03, 0x04:
		return true
	}
	return false
}
