package cmd

import (
	"fmt"
	"io"
	"os"
	"path"

	"github.com/google/uuid"
	"github.com/gosuri/uilive"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/cgratie/simple-reinforcement-learning/analysis"
	"github.com/cgratie/simple-reinforcement-learning/experiment"
	"github.com/cgratie/simple-reinforcement-learning/grid"
	"github.com/cgratie/simple-reinforcement-learning/policies"
	"github.com/cgratie/simple-reinforcement-learning/util"
)

func TrainCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "train",
		Short: "Train the learner without animation and save the results",
		RunE: func(cmd *cobra.Command, args []string) error {
			world, err := loadWorld()
			if err != nil {
				return err
			}
			experiments, err := trainExperiments(world)
			if err != nil {
				return err
			}

			runPath := path.Join(flags.SavePath, uuid.NewString())
			if err := flags.Record(runPath); err != nil {
				return err
			}

			var out io.Writer = os.Stdout
			var live *uilive.Writer
			if isatty.IsTerminal(os.Stdout.Fd()) {
				live = uilive.New()
				live.Start()
				out = live
			}

			cfg := experiment.RunConfig{Episodes: flags.Episodes, Horizon: flags.Horizon}
			results := make([]*experiment.Result, 0, len(experiments))
			for _, exp := range experiments {
				analyzers := map[string]experiment.Analyzer{
					"returns":  analysis.NewReturnAnalyzer(),
					"coverage": analysis.NewCoverageAnalyzer(),
				}
				result := experiment.Run(cmd.Context(), exp, cfg, analyzers, out)
				for name, dataset := range result.Datasets {
					file := path.Join(runPath, fmt.Sprintf("%s_%s.json", result.Name, name))
					if err := util.SaveJson(file, dataset); err != nil {
						return err
					}
				}
				results = append(results, result)
			}
			if live != nil {
				live.Stop()
			}

			for _, result := range results {
				dataset, ok := result.Datasets["returns"].(*analysis.ReturnDataSet)
				if !ok {
					continue
				}
				s := dataset.Summary()
				fmt.Fprintf(os.Stdout, "%s: %d episodes, mean return %.2f (stddev %.2f), goal rate %.2f, best %.0f, worst %.0f\n",
					result.Name, s.Episodes, s.MeanReturn, s.StdDev, s.GoalRate, s.Best, s.Worst)
			}
			fmt.Fprintf(os.Stdout, "Results saved to %s\n", runPath)
			return nil
		},
	}
}

func trainExperiments(world *grid.World) ([]*experiment.Experiment, error) {
	policy, learner, err := newAgent()
	if err != nil {
		return nil, err
	}
	experiments := []*experiment.Experiment{{
		Name:    flags.Policy,
		Sim:     grid.NewSimulation(world),
		Policy:  policy,
		Learner: learner,
	}}
	if flags.CompareRandom {
		experiments = append(experiments, &experiment.Experiment{
			Name:    "random-baseline",
			Sim:     grid.NewSimulation(world),
			Policy:  policies.NewRandomPolicy(newRand()),
			Learner: policies.NoOpLearner{},
		})
	}
	return experiments, nil
}
