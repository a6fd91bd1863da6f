package experiment

import (
	"context"
	"fmt"
	"io"

	"github.com/cgratie/simple-reinforcement-learning/grid"
)

// Run drives the experiment for cfg.Episodes episodes and returns the
// collected result. Each episode resets the simulation and steps it until
// a terminal state or cfg.Horizon steps, whichever comes first. Every
// completed episode is handed to the analyzers and reported on out, one
// line per episode. Cancelling ctx stops the run between steps; whatever
// completed so far is still returned.
func Run(ctx context.Context, exp *Experiment, cfg RunConfig, analyzers map[string]Analyzer, out io.Writer) *Result {
	result := &Result{
		Name:     exp.Name,
		Datasets: make(map[string]DataSet),
	}

EpisodeLoop:
	for episode := 0; episode < cfg.Episodes; episode++ {
		exp.Sim.Reset()
		trace := NewTrace()

		for step := 0; step < cfg.Horizon && !exp.Sim.InTerminalState(); step++ {
			select {
			case <-ctx.Done():
				break EpisodeLoop
			default:
			}

			oldState := exp.Sim.Position()
			action := exp.Policy.PickAction(oldState)
			reward := exp.Sim.Act(action)
			exp.Learner.Observe(oldState, action, float64(reward), exp.Sim.Position())
			trace.AddStep(Step{
				State:     oldState,
				Action:    action,
				Reward:    reward,
				NextState: exp.Sim.Position(),
			})
		}

		ep := Episode{
			Number:  episode,
			Steps:   trace.Len(),
			Return:  exp.Sim.Score(),
			Outcome: outcome(exp.Sim),
		}
		result.Episodes++
		result.TotalSteps += ep.Steps
		switch ep.Outcome {
		case OutcomeGoal:
			result.GoalEpisodes++
		case OutcomeTrap:
			result.TrapEpisodes++
		default:
			result.HorizonEpisodes++
		}

		for _, analyzer := range analyzers {
			analyzer.Analyze(ep, trace)
		}

		fmt.Fprintf(out, "Experiment: %s, Episode: %d/%d, Steps: %d, Return: %d, Goals: %d, Traps: %d\n",
			exp.Name, episode+1, cfg.Episodes, ep.Steps, ep.Return, result.GoalEpisodes, result.TrapEpisodes)
	}

	for name, analyzer := range analyzers {
		result.Datasets[name] = analyzer.DataSet()
	}
	return result
}

func outcome(sim *grid.Simulation) Outcome {
	if !sim.InTerminalState() {
		return OutcomeHorizon
	}
	if sim.World().At(sim.Position()) == grid.Goal {
		return OutcomeGoal
	}
	return OutcomeTrap
}
