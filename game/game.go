package game

import (
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/cgratie/simple-reinforcement-learning/grid"
)

// Game animates a simulation in a terminal. Every tick renders one full
// frame to the writer, so a live-updating writer redraws in place while a
// plain writer just appends frames.
type Game struct {
	world  *grid.World
	sim    *grid.Simulation
	driver Driver
	out    io.Writer

	stepDelay  time.Duration
	resetDelay time.Duration
}

// New builds a game around a fresh simulation of the world. stepDelay
// paces ordinary ticks and resetDelay lingers on a finished episode before
// the driver restarts it; zero delays run unpaced, which is what a
// blocking human driver wants.
func New(world *grid.World, driver Driver, out io.Writer, stepDelay, resetDelay time.Duration) *Game {
	return &Game{
		world:      world,
		sim:        grid.NewSimulation(world),
		driver:     driver,
		out:        out,
		stepDelay:  stepDelay,
		resetDelay: resetDelay,
	}
}

// Sim returns the simulation being animated.
func (g *Game) Sim() *grid.Simulation {
	return g.sim
}

// Start runs the loop until the driver quits or ctx is cancelled.
func (g *Game) Start(ctx context.Context) {
	for !g.driver.ShouldQuit() {
		select {
		case <-ctx.Done():
			return
		default:
		}

		fmt.Fprint(g.out, g.Frame())

		wasTerminal := g.sim.InTerminalState()
		g.driver.Interact(g.sim)

		delay := g.stepDelay
		if wasTerminal {
			// Keep the final frame of the episode on screen a while.
			delay = g.resetDelay
		}
		g.pause(ctx, delay)
	}
}

func (g *Game) pause(ctx context.Context, d time.Duration) {
	if d <= 0 {
		return
	}
	select {
	case <-ctx.Done():
	case <-time.After(d):
	}
}

// Frame renders the world with the agent overlaid, followed by the score.
// Lines end in \r\n so frames draw correctly when the terminal is in raw
// mode.
func (g *Game) Frame() string {
	var b strings.Builder
	pos := g.sim.Position()
	width, height := g.world.Size()
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			cell := grid.Position{X: x, Y: y}
			if cell == pos {
				b.WriteByte('@')
			} else {
				b.WriteRune(g.world.At(cell).Rune())
			}
		}
		b.WriteString("\r\n")
	}
	fmt.Fprintf(&b, "Score: %d\r\n", g.sim.Score())
	return b.String()
}
