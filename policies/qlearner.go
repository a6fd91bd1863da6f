package policies

import (
	"github.com/cgratie/simple-reinforcement-learning/grid"
)

// Learner consumes observed transitions one at a time.
type Learner interface {
	Observe(oldState grid.Position, action grid.Action, reward float64, newState grid.Position)
}

// QLearner updates a QTable with one-step Q-learning. The update targets
// the table's own best value for the new state rather than whatever the
// behavior policy does next, so it estimates the greedy policy no matter
// which policy generated the transitions.
type QLearner struct {
	q     *QTable
	alpha float64 // learning rate
	gamma float64 // discount rate
}

var _ Learner = &QLearner{}

func NewQLearner(q *QTable, learningRate, discountRate float64) *QLearner {
	return &QLearner{q: q, alpha: learningRate, gamma: discountRate}
}

func (l *QLearner) Observe(oldState grid.Position, action grid.Action, reward float64, newState grid.Position) {
	prev := l.q.Get(oldState, action)
	_, next := l.q.Best(newState)
	l.q.Set(oldState, action, prev+l.alpha*(reward+l.gamma*next-prev))
}

// NoOpLearner discards every observation. It stands in for a real learner
// when running a fixed policy.
type NoOpLearner struct{}

var _ Learner = NoOpLearner{}

func (NoOpLearner) Observe(grid.Position, grid.Action, float64, grid.Position) {}
