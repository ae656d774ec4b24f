package main

import (
	"math/rand/v2"
	"time"

	"github.com/lixenwraith/termcanvas/ecs"
	"github.com/lixenwraith/termcanvas/engine"
	"github.com/lixenwraith/termcanvas/terminal"
	"github.com/lixenwraith/termcanvas/vmath"
)

// animation ping-pongs a cell background between two colors over a random period
type animation struct {
	from, to terminal.RGB
	period   time.Duration
	elapsed  time.Duration
}

func newAnimation(rng *rand.Rand) animation {
	return animation{
		from:   terminal.RGBGreen,
		to:     terminal.RGBBlue,
		period: 2*time.Second + time.Duration(rng.Int64N(int64(8*time.Second))),
	}
}

// step returns the color for the current point of the cycle, then advances by dt
func (a *animation) step(dt time.Duration) terminal.RGB {
	if a.elapsed >= a.period {
		a.from, a.to = a.to, a.from
		a.elapsed = 0
	}
	c := a.from.Mix(a.to, float64(a.elapsed)/float64(a.period))
	a.elapsed += dt
	return c
}

// gradientApp stores one entity per cell with a position and an animation component
type gradientApp struct {
	world *ecs.World
	rng   *rand.Rand
}

func newGradientApp() *gradientApp {
	return &gradientApp{
		world: ecs.NewWorld(0),
		rng:   rand.New(rand.NewPCG(uint64(time.Now().UnixNano()), 0x7e4)),
	}
}

func (a *gradientApp) BeforeStart(c *terminal.Canvas) {
	a.world = ecs.NewWorld(c.Area())
	ecs.Register[vmath.Point](a.world)
	ecs.Register[animation](a.world)

	size := c.Size()
	for x := 0; x < size.X; x++ {
		for y := 0; y < size.Y; y++ {
			eb := ecs.With(a.world.Spawn(), vmath.PointFromSigned(x, y))
			ecs.With(eb, newAnimation(a.rng))
		}
	}
}

func (a *gradientApp) Frame(c *terminal.Canvas, dt time.Duration, _ *engine.Latch) {
	ecs.ForEach(a.world, func(e ecs.Entity, pos vmath.Point) {
		anim := ecs.Get[animation](a.world, e)
		if anim == nil {
			return
		}
		c.Draw(pos, terminal.CellEmpty.WithBg(terminal.ColorFromRGB(anim.step(dt))))
	})
}
