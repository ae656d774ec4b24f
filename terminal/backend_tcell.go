package terminal

import (
	"github.com/gdamore/tcell/v2"
	"github.com/pkg/errors"
)

type tcellBackend struct {
	screen   tcell.Screen
	enc      *TcellEncoder
	onResize func(width, height int)
	ready    bool
}

// NewTcellBackend creates a backend on the platform tcell screen
func NewTcellBackend() (Backend, error) {
	s, err := tcell.NewScreen()
	if err != nil {
		return nil, errors.Wrap(err, "terminal: tcell screen")
	}
	return NewTcellBackendWithScreen(s), nil
}

// NewTcellBackendWithScreen wraps an existing screen, e.g. tcell.NewSimulationScreen
func NewTcellBackendWithScreen(s tcell.Screen) Backend {
	return &tcellBackend{screen: s, enc: NewTcellEncoder(s)}
}

func (b *tcellBackend) Init() error {
	if err := b.screen.Init(); err != nil {
		return errors.Wrap(err, "terminal: tcell init")
	}
	b.ready = true
	return nil
}

func (b *tcellBackend) Fini() {
	if b.ready {
		b.screen.Fini()
		b.ready = false
	}
}

func (b *tcellBackend) Size() (int, int) {
	return b.screen.Size()
}

func (b *tcellBackend) Encoder() Encoder {
	return b.enc
}

func (b *tcellBackend) SetResizeHandler(handler func(width, height int)) {
	b.onResize = handler
}

// Listen drains the tcell event queue. A nil event means the screen was finalized.
func (b *tcellBackend) Listen(stop <-chan struct{}, onQuit func()) error {
	go func() {
		<-stop
		// Unblocks PollEvent; ignored if the queue is full or the screen is gone
		_ = b.screen.PostEvent(tcell.NewEventInterrupt(nil))
	}()

	for {
		ev := b.screen.PollEvent()
		if ev == nil {
			return nil
		}
		select {
		case <-stop:
			return nil
		default:
		}

		switch e := ev.(type) {
		case *tcell.EventKey:
			switch e.Key() {
			case tcell.KeyCtrlC, tcell.KeyCtrlD, tcell.KeyEscape:
				onQuit()
			case tcell.KeyRune:
				if r := e.Rune(); r < 0x80 && isQuitKey(byte(r)) {
					onQuit()
				}
			}
		case *tcell.EventResize:
			if b.onResize != nil {
				w, h := e.Size()
				b.onResize(w, h)
			}
		}
	}
}
