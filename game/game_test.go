package game

import (
	"bytes"
	"context"
	"io"
	"testing"
	"time"

	"github.com/cgratie/simple-reinforcement-learning/grid"
	"github.com/cgratie/simple-reinforcement-learning/policies"
)

// scriptedDriver plays a fixed sequence of actions, then quits.
type scriptedDriver struct {
	actions []grid.Action
	next    int
}

func (d *scriptedDriver) ShouldQuit() bool {
	return d.next >= len(d.actions)
}

func (d *scriptedDriver) Interact(sim *grid.Simulation) {
	sim.Act(d.actions[d.next])
	d.next++
}

func TestGameFrame(t *testing.T) {
	g := New(mustParse(t, "@^"), &scriptedDriver{}, io.Discard, 0, 0)
	if got, want := g.Frame(), "@^\r\nScore: 0\r\n"; got != want {
		t.Errorf("Frame() = %q, want %q", got, want)
	}

	g.Sim().Act(grid.ActionRight)
	// The agent covers the trap symbol.
	if got, want := g.Frame(), ".@\r\nScore: -1000\r\n"; got != want {
		t.Errorf("Frame() = %q, want %q", got, want)
	}
}

func TestGameLoop(t *testing.T) {
	var out bytes.Buffer
	driver := &scriptedDriver{actions: []grid.Action{grid.ActionRight}}
	g := New(mustParse(t, "@$"), driver, &out, 0, 0)

	g.Start(context.Background())

	if got, want := out.String(), "@$\r\nScore: 0\r\n"; got != want {
		t.Errorf("rendered %q, want the single starting frame %q", got, want)
	}
	if g.Sim().Position() != (grid.Position{X: 1, Y: 0}) {
		t.Errorf("Position() = %v, want (1, 0)", g.Sim().Position())
	}
	if !g.Sim().InTerminalState() {
		t.Error("InTerminalState() = false, want the goal reached")
	}
}

func TestGameStopsWhenCancelled(t *testing.T) {
	player := NewMachinePlayer(policies.NewGreedyPolicy(policies.NewQTable(0)), policies.NoOpLearner{})
	g := New(mustParse(t, "@."), player, io.Discard, 0, 0)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		g.Start(ctx)
		close(done)
	}()
	cancel()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Start did not stop after cancel")
	}
}
