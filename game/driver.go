package game

import (
	"github.com/cgratie/simple-reinforcement-learning/grid"
)

// Driver decides what happens on each tick of the game loop.
type Driver interface {
	// ShouldQuit reports whether the loop should stop before the next
	// tick.
	ShouldQuit() bool
	// Interact advances the simulation by one interaction: an action, a
	// reset, or nothing at all.
	Interact(sim *grid.Simulation)
}
