package terminal

import (
	"testing"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/termcanvas/vmath"
)

func TestTcellEncoderRendersGrid(t *testing.T) {
	screen := tcell.NewSimulationScreen("UTF-8")
	if err := screen.Init(); err != nil {
		t.Fatalf("Failed to init simulation screen: %v", err)
	}
	defer screen.Fini()
	screen.SetSize(20, 5)

	g := NewGrid(vmath.NewPoint(2, 1), vmath.NewVector(3, 2), 2, NewTcellEncoder(screen))
	g.Draw(vmath.NewPoint(1, 1), Cell{Rune: '@', Fg: ColorRGB(10, 20, 30), Bg: ColorBlue})
	if err := g.Render(); err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	// Block (1,1) lands on row 2, columns 4 and 5
	for _, x := range []int{4, 5} {
		r, _, style, _ := screen.GetContent(x, 2)
		if r != '@' {
			t.Errorf("Expected '@' at (%d,2), got %q", x, r)
		}
		fg, bg, _ := style.Decompose()
		if got := ColorFromTcell(fg); got != ColorRGB(10, 20, 30) {
			t.Errorf("Expected foreground rgb(10,20,30), got %v", got)
		}
		if got := ColorFromTcell(bg); got != ColorBlue {
			t.Errorf("Expected blue background, got %v", got)
		}
	}

	r, _, style, _ := screen.GetContent(2, 1)
	if r != ' ' {
		t.Errorf("Expected blank at grid origin, got %q", r)
	}
	fg, _, _ := style.Decompose()
	if !ColorFromTcell(fg).IsDefault() {
		t.Errorf("Expected default foreground on empty cell, got %v", ColorFromTcell(fg))
	}
}

func TestColorTcellBridge(t *testing.T) {
	if got := ColorToTcell(ColorDefault); got != tcell.ColorDefault {
		t.Errorf("Expected tcell.ColorDefault, got %v", got)
	}

	for _, c := range []Color{ColorBlack, ColorWhite, ColorRGB(1, 2, 3)} {
		if got := ColorFromTcell(ColorToTcell(c)); got != c {
			t.Errorf("Expected %v to survive tcell round trip, got %v", c, got)
		}
	}
}

func TestTcellBackendListenQuits(t *testing.T) {
	screen := tcell.NewSimulationScreen("UTF-8")
	b := NewTcellBackendWithScreen(screen)
	if err := b.Init(); err != nil {
		t.Fatalf("Failed to init backend: %v", err)
	}
	defer b.Fini()

	stop := make(chan struct{})
	quit := make(chan struct{}, 1)
	done := make(chan error, 1)
	go func() {
		done <- b.Listen(stop, func() {
			select {
			case quit <- struct{}{}:
			default:
			}
		})
	}()

	screen.InjectKey(tcell.KeyRune, 'q', tcell.ModNone)
	<-quit

	close(stop)
	if err := <-done; err != nil {
		t.Errorf("Unexpected listen error: %v", err)
	}
}
