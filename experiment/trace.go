package experiment

import (
	"github.com/cgratie/simple-reinforcement-learning/grid"
)

// Step is one observed transition.
type Step struct {
	State     grid.Position
	Action    grid.Action
	Reward    int
	NextState grid.Position
}

// Trace is the sequence of steps taken in one episode.
type Trace struct {
	steps []Step
}

func NewTrace() *Trace {
	return &Trace{
		steps: make([]Step, 0),
	}
}

func (t *Trace) AddStep(s Step) {
	t.steps = append(t.steps, s)
}

// Step returns the i-th step of the trace.
func (t *Trace) Step(i int) Step {
	return t.steps[i]
}

func (t *Trace) Len() int {
	return len(t.steps)
}
