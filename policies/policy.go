package policies

import (
	"golang.org/x/exp/rand"

	"github.com/cgratie/simple-reinforcement-learning/grid"
)

// Policy picks the next action for a state.
type Policy interface {
	PickAction(state grid.Position) grid.Action
}

// RandomPolicy picks actions uniformly at random, ignoring the state.
type RandomPolicy struct {
	rand *rand.Rand
}

var _ Policy = &RandomPolicy{}

func NewRandomPolicy(rand *rand.Rand) *RandomPolicy {
	return &RandomPolicy{rand: rand}
}

func (p *RandomPolicy) PickAction(grid.Position) grid.Action {
	return grid.AllActions[p.rand.Intn(len(grid.AllActions))]
}

// GreedyPolicy picks the action with the highest estimated value.
type GreedyPolicy struct {
	q *QTable
}

var _ Policy = &GreedyPolicy{}

func NewGreedyPolicy(q *QTable) *GreedyPolicy {
	return &GreedyPolicy{q: q}
}

func (p *GreedyPolicy) PickAction(state grid.Position) grid.Action {
	action, _ := p.q.Best(state)
	return action
}

// EpsilonPolicy follows policy A, except that with probability epsilon it
// follows policy B instead. Blending a random B into a greedy A is the
// usual way to keep a learner exploring; since the behavior then differs
// from the policy being estimated, the learner watching the run has to be
// off-policy.
type EpsilonPolicy struct {
	a, b    Policy
	epsilon float64
	rand    *rand.Rand
}

var _ Policy = &EpsilonPolicy{}

func NewEpsilonPolicy(a, b Policy, epsilon float64, rand *rand.Rand) *EpsilonPolicy {
	return &EpsilonPolicy{a: a, b: b, epsilon: epsilon, rand: rand}
}

func (p *EpsilonPolicy) PickAction(state grid.Position) grid.Action {
	if p.rand.Float64() < p.epsilon {
		return p.b.PickAction(state)
	}
	return p.a.PickAction(state)
}
