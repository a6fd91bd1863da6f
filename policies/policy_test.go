package policies

import (
	"testing"

	"golang.org/x/exp/rand"

	"github.com/cgratie/simple-reinforcement-learning/grid"
)

// fixedPolicy always picks the same action.
type fixedPolicy struct {
	action grid.Action
}

func (p fixedPolicy) PickAction(grid.Position) grid.Action {
	return p.action
}

func TestRandomPolicy(t *testing.T) {
	policy := NewRandomPolicy(rand.New(rand.NewSource(1)))
	state := grid.Position{X: 0, Y: 0}
	picked := make(map[grid.Action]int)
	for i := 0; i < 100; i++ {
		picked[policy.PickAction(state)]++
	}
	for _, action := range grid.AllActions {
		if picked[action] == 0 {
			t.Errorf("action %v never picked in 100 draws", action)
		}
	}
	if len(picked) != len(grid.AllActions) {
		t.Errorf("picked %d distinct actions, want %d", len(picked), len(grid.AllActions))
	}
}

func TestGreedyPolicy(t *testing.T) {
	q := NewQTable(0)
	state := grid.Position{X: 2, Y: 3}
	q.Set(state, grid.ActionLeft, 10)
	policy := NewGreedyPolicy(q)
	if action := policy.PickAction(state); action != grid.ActionLeft {
		t.Errorf("PickAction = %v, want left", action)
	}
	if action := policy.PickAction(grid.Position{X: 0, Y: 0}); action != grid.ActionUp {
		t.Errorf("PickAction on unseen state = %v, want up (first in order)", action)
	}
}

func TestEpsilonPolicy(t *testing.T) {
	a := fixedPolicy{grid.ActionUp}
	b := fixedPolicy{grid.ActionDown}
	state := grid.Position{X: 0, Y: 0}

	t.Run("zero follows a", func(t *testing.T) {
		policy := NewEpsilonPolicy(a, b, 0, rand.New(rand.NewSource(1)))
		for i := 0; i < 50; i++ {
			if action := policy.PickAction(state); action != grid.ActionUp {
				t.Fatalf("PickAction = %v, want up", action)
			}
		}
	})

	t.Run("one follows b", func(t *testing.T) {
		policy := NewEpsilonPolicy(a, b, 1, rand.New(rand.NewSource(1)))
		for i := 0; i < 50; i++ {
			if action := policy.PickAction(state); action != grid.ActionDown {
				t.Fatalf("PickAction = %v, want down", action)
			}
		}
	})

	t.Run("half blends both", func(t *testing.T) {
		policy := NewEpsilonPolicy(a, b, 0.5, rand.New(rand.NewSource(1)))
		picked := make(map[grid.Action]int)
		for i := 0; i < 100; i++ {
			picked[policy.PickAction(state)]++
		}
		if picked[grid.ActionUp] == 0 || picked[grid.ActionDown] == 0 {
			t.Errorf("picks = %v, want both policies exercised", picked)
		}
	})
}
