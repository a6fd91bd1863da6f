package cmd

import (
	"time"

	"github.com/spf13/cobra"
)

var (
	flags *Flags = DefaultFlags()

	mapFile      string
	policy       string
	learningRate float64
	discountRate float64
	epsilon      float64
	initialQ     float64
	seed         uint64

	episodes      int
	horizon       int
	compareRandom bool

	stepDelay  int
	resetDelay int
	savePath   string
)

func AddFlags(cmd *cobra.Command) {
	cmd.PersistentFlags().StringVar(&mapFile, "map", flags.MapFile, "Path to a map file, empty for the built-in world")
	cmd.PersistentFlags().StringVar(&policy, "policy", flags.Policy, "Policy to play: random, greedy or epsilon")
	cmd.PersistentFlags().Float64Var(&learningRate, "alpha", flags.LearningRate, "Learning rate")
	cmd.PersistentFlags().Float64Var(&discountRate, "gamma", flags.DiscountRate, "Discount rate")
	cmd.PersistentFlags().Float64Var(&epsilon, "epsilon", flags.Epsilon, "Probability of exploring instead of following the learned policy")
	cmd.PersistentFlags().Float64Var(&initialQ, "initial-q", flags.InitialQ, "Value of state-action pairs never observed")
	cmd.PersistentFlags().Uint64Var(&seed, "seed", flags.Seed, "Random seed, 0 seeds from the clock")

	cmd.PersistentFlags().IntVar(&episodes, "episodes", flags.Episodes, "Number of episodes")
	cmd.PersistentFlags().IntVar(&horizon, "horizon", flags.Horizon, "Maximum steps per episode")
	cmd.PersistentFlags().BoolVar(&compareRandom, "compare-random", flags.CompareRandom, "Also run a random baseline")

	cmd.PersistentFlags().IntVar(&stepDelay, "step-delay", int(flags.StepDelay.Milliseconds()), "Milliseconds between animated steps")
	cmd.PersistentFlags().IntVar(&resetDelay, "reset-delay", int(flags.ResetDelay.Milliseconds()), "Milliseconds to linger on a finished episode")
	cmd.PersistentFlags().StringVar(&savePath, "save-path", flags.SavePath, "Path to save results")
}

func UpdateFlags() {
	flags.MapFile = mapFile
	flags.Policy = policy
	flags.LearningRate = learningRate
	flags.DiscountRate = discountRate
	flags.Epsilon = epsilon
	flags.InitialQ = initialQ
	flags.Seed = seed

	flags.Episodes = episodes
	flags.Horizon = horizon
	flags.CompareRandom = compareRandom

	flags.StepDelay = time.Duration(stepDelay) * time.Millisecond
	flags.ResetDelay = time.Duration(resetDelay) * time.Millisecond
	flags.SavePath = savePath
}
