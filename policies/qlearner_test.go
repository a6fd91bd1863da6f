package policies

import (
	"testing"

	"github.com/cgratie/simple-reinforcement-learning/grid"
)

func TestQLearnerObserve(t *testing.T) {
	oldState := grid.Position{X: 0, Y: 0}
	newState := grid.Position{X: 1, Y: 0}

	t.Run("single update", func(t *testing.T) {
		q := NewQTable(0)
		learner := NewQLearner(q, 0.5, 1)
		learner.Observe(oldState, grid.ActionRight, -1, newState)
		// 0 + 0.5*(-1 + 1*0 - 0)
		if got := q.Get(oldState, grid.ActionRight); got != -0.5 {
			t.Errorf("Get after one observation = %v, want -0.5", got)
		}
	})

	t.Run("repeated updates converge on the target", func(t *testing.T) {
		q := NewQTable(0)
		learner := NewQLearner(q, 0.5, 1)
		learner.Observe(oldState, grid.ActionRight, -1, newState)
		learner.Observe(oldState, grid.ActionRight, -1, newState)
		// -0.5 + 0.5*(-1 - (-0.5))
		if got := q.Get(oldState, grid.ActionRight); got != -0.75 {
			t.Errorf("Get after two observations = %v, want -0.75", got)
		}
	})

	t.Run("discounts the best next value", func(t *testing.T) {
		q := NewQTable(0)
		q.Set(newState, grid.ActionDown, 10)
		learner := NewQLearner(q, 1, 0.5)
		learner.Observe(oldState, grid.ActionRight, 0, newState)
		// 0 + 1*(0 + 0.5*10 - 0)
		if got := q.Get(oldState, grid.ActionRight); got != 5 {
			t.Errorf("Get = %v, want 5", got)
		}
	})
}

func TestQLearnerSharedTable(t *testing.T) {
	// The learner writes through to the table the greedy policy reads, so
	// a better estimate changes the pick immediately.
	q := NewQTable(0)
	learner := NewQLearner(q, 1, 0)
	policy := NewGreedyPolicy(q)
	state := grid.Position{X: 0, Y: 0}

	learner.Observe(state, grid.ActionDown, 5, state)
	if action := policy.PickAction(state); action != grid.ActionDown {
		t.Errorf("PickAction = %v, want down after observing its reward", action)
	}
}
