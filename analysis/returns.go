package analysis

import (
	"slices"

	"gonum.org/v1/gonum/stat"

	"github.com/cgratie/simple-reinforcement-learning/experiment"
)

// ReturnDataSet records the return and length of every episode, in order.
type ReturnDataSet struct {
	Returns []float64 `json:"returns"`
	Steps   []int     `json:"steps"`
	Goals   int       `json:"goals"`
	Traps   int       `json:"traps"`
}

func (d *ReturnDataSet) copyDataSet() *ReturnDataSet {
	out := &ReturnDataSet{
		Returns: make([]float64, len(d.Returns)),
		Steps:   make([]int, len(d.Steps)),
		Goals:   d.Goals,
		Traps:   d.Traps,
	}
	copy(out.Returns, d.Returns)
	copy(out.Steps, d.Steps)
	return out
}

// ReturnSummary condenses a ReturnDataSet for reporting.
type ReturnSummary struct {
	Episodes   int
	MeanReturn float64
	StdDev     float64
	Best       float64
	Worst      float64
	GoalRate   float64
}

func (d *ReturnDataSet) Summary() ReturnSummary {
	s := ReturnSummary{Episodes: len(d.Returns)}
	if s.Episodes == 0 {
		return s
	}
	s.MeanReturn = stat.Mean(d.Returns, nil)
	if s.Episodes > 1 {
		s.StdDev = stat.StdDev(d.Returns, nil)
	}
	s.Best = slices.Max(d.Returns)
	s.Worst = slices.Min(d.Returns)
	s.GoalRate = float64(d.Goals) / float64(s.Episodes)
	return s
}

// ReturnAnalyzer accumulates a ReturnDataSet over a run.
type ReturnAnalyzer struct {
	dataset *ReturnDataSet
}

var _ experiment.Analyzer = &ReturnAnalyzer{}

func NewReturnAnalyzer() *ReturnAnalyzer {
	return &ReturnAnalyzer{dataset: &ReturnDataSet{}}
}

func (r *ReturnAnalyzer) Analyze(ep experiment.Episode, _ *experiment.Trace) {
	r.dataset.Returns = append(r.dataset.Returns, float64(ep.Return))
	r.dataset.Steps = append(r.dataset.Steps, ep.Steps)
	switch ep.Outcome {
	case experiment.OutcomeGoal:
		r.dataset.Goals++
	case experiment.OutcomeTrap:
		r.dataset.Traps++
	}
}

func (r *ReturnAnalyzer) DataSet() experiment.DataSet {
	return r.dataset.copyDataSet()
}

func (r *ReturnAnalyzer) Reset() {
	r.dataset = &ReturnDataSet{}
}
