package analysis

import (
	"github.com/cgratie/simple-reinforcement-learning/experiment"
	"github.com/cgratie/simple-reinforcement-learning/grid"
)

// CoverageDataSet records, per episode, the cumulative timestep count and
// how many distinct cells the agent has visited by then.
type CoverageDataSet struct {
	Timesteps    []int `json:"timesteps"`
	UniqueStates []int `json:"unique_states"`
}

func (c *CoverageDataSet) copyDataSet() *CoverageDataSet {
	out := &CoverageDataSet{
		Timesteps:    make([]int, len(c.Timesteps)),
		UniqueStates: make([]int, len(c.UniqueStates)),
	}
	copy(out.Timesteps, c.Timesteps)
	copy(out.UniqueStates, c.UniqueStates)
	return out
}

// CoverageAnalyzer counts the distinct positions visited across all
// episodes of a run. A policy that stops exploring shows up as a flat
// curve.
type CoverageAnalyzer struct {
	visited map[grid.Position]bool
	dataset *CoverageDataSet
}

var _ experiment.Analyzer = &CoverageAnalyzer{}

func NewCoverageAnalyzer() *CoverageAnalyzer {
	return &CoverageAnalyzer{
		visited: make(map[grid.Position]bool),
		dataset: &CoverageDataSet{},
	}
}

func (c *CoverageAnalyzer) Analyze(_ experiment.Episode, trace *experiment.Trace) {
	for i := 0; i < trace.Len(); i++ {
		step := trace.Step(i)
		c.visited[step.State] = true
		c.visited[step.NextState] = true
	}
	lastTimestep := 0
	if n := len(c.dataset.Timesteps); n > 0 {
		lastTimestep = c.dataset.Timesteps[n-1]
	}
	c.dataset.Timesteps = append(c.dataset.Timesteps, lastTimestep+trace.Len())
	c.dataset.UniqueStates = append(c.dataset.UniqueStates, len(c.visited))
}

func (c *CoverageAnalyzer) DataSet() experiment.DataSet {
	return c.dataset.copyDataSet()
}

func (c *CoverageAnalyzer) Reset() {
	c.visited = make(map[grid.Position]bool)
	c.dataset = &CoverageDataSet{}
}
