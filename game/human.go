package game

import (
	"io"

	"github.com/cgratie/simple-reinforcement-learning/grid"
)

type key int

const (
	keyNone key = iota
	keyUp
	keyDown
	keyLeft
	keyRight
	keyReset
	keyQuit
)

// HumanPlayer drives the simulation from keyboard input: the arrow keys
// move, space restarts a finished episode, q or Esc quits. The reader must
// deliver raw (uncooked) terminal bytes; reaching the end of input also
// quits.
type HumanPlayer struct {
	in   io.Reader
	quit bool
}

var _ Driver = &HumanPlayer{}

func NewHumanPlayer(in io.Reader) *HumanPlayer {
	return &HumanPlayer{in: in}
}

func (p *HumanPlayer) ShouldQuit() bool {
	return p.quit
}

// Interact blocks until the next key and applies it. Moves are ignored
// once the simulation is in a terminal state, until space resets it.
func (p *HumanPlayer) Interact(sim *grid.Simulation) {
	switch k := p.readKey(); k {
	case keyQuit:
		p.quit = true
	case keyReset:
		if sim.InTerminalState() {
			sim.Reset()
		}
	case keyUp, keyDown, keyLeft, keyRight:
		if !sim.InTerminalState() {
			sim.Act(actionFor(k))
		}
	}
}

func actionFor(k key) grid.Action {
	switch k {
	case keyUp:
		return grid.ActionUp
	case keyDown:
		return grid.ActionDown
	case keyLeft:
		return grid.ActionLeft
	}
	return grid.ActionRight
}

// readKey decodes one keypress. Arrow keys arrive as three-byte ANSI
// escape sequences; an Esc with nothing after it counts as quit.
func (p *HumanPlayer) readKey() key {
	var b [1]byte
	if _, err := io.ReadFull(p.in, b[:]); err != nil {
		return keyQuit
	}
	switch b[0] {
	case 'q':
		return keyQuit
	case ' ':
		return keyReset
	case 0x1b:
		var seq [2]byte
		if _, err := io.ReadFull(p.in, seq[:]); err != nil {
			return keyQuit
		}
		if seq[0] != '[' {
			return keyQuit
		}
		switch seq[1] {
		case 'A':
			return keyUp
		case 'B':
			return keyDown
		case 'C':
			return keyRight
		case 'D':
			return keyLeft
		}
	}
	return keyNone
}
