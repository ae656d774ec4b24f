//go:build !unix

package terminal

import (
	"os"

	"github.com/pkg/errors"
)

type stubBackend struct {
	enc *ANSIEncoder
}

// NewUnixBackend is unavailable off unix; Init always fails. Use the tcell backend instead.
func NewUnixBackend() Backend {
	return &stubBackend{enc: NewANSIEncoder(os.Stdout)}
}

func (b *stubBackend) Init() error {
	return errors.New("terminal: raw ansi backend requires a unix platform")
}

func (b *stubBackend) Fini() {}

func (b *stubBackend) Size() (int, int) { return 80, 24 }

func (b *stubBackend) Encoder() Encoder { return b.enc }

func (b *stubBackend) SetResizeHandler(func(width, height int)) {}

func (b *stubBackend) Listen(stop <-chan struct{}, _ func()) error {
	<-stop
	return nil
}

