package experiment

import (
	"github.com/cgratie/simple-reinforcement-learning/grid"
	"github.com/cgratie/simple-reinforcement-learning/policies"
)

// Experiment pairs a simulation with the policy that drives it and the
// learner that watches it.
type Experiment struct {
	Name    string
	Sim     *grid.Simulation
	Policy  policies.Policy
	Learner policies.Learner
}

// RunConfig bounds a run.
type RunConfig struct {
	// Episodes is how many times the simulation is reset and driven to an
	// end.
	Episodes int
	// Horizon caps the steps of a single episode. Episodes that never
	// reach a terminal state end here.
	Horizon int
}

// Outcome says how an episode ended.
type Outcome int

const (
	OutcomeGoal Outcome = iota
	OutcomeTrap
	OutcomeHorizon
)

func (o Outcome) String() string {
	switch o {
	case OutcomeGoal:
		return "goal"
	case OutcomeTrap:
		return "trap"
	}
	return "horizon"
}

// Episode summarizes one episode of a run.
type Episode struct {
	Number  int
	Steps   int
	Return  int
	Outcome Outcome
}

// DataSet is whatever an analyzer accumulates over a run.
type DataSet interface{}

// Analyzer consumes episodes as they complete and distills a dataset out
// of them.
type Analyzer interface {
	Analyze(ep Episode, trace *Trace)
	DataSet() DataSet
	Reset()
}

// Result collects what happened over a whole run.
type Result struct {
	Name            string
	Episodes        int
	TotalSteps      int
	GoalEpisodes    int
	TrapEpisodes    int
	HorizonEpisodes int
	Datasets        map[string]DataSet
}
