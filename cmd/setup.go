package cmd

import (
	"fmt"
	"os"
	"time"

	"golang.org/x/exp/rand"

	"github.com/cgratie/simple-reinforcement-learning/grid"
	"github.com/cgratie/simple-reinforcement-learning/policies"
)

// DefaultMap is the world used when --map is not given.
const DefaultMap = `
########
#..#...#
#.@#.$.#
#.##^^.#
#......#
########
`

func loadWorld() (*grid.World, error) {
	if flags.MapFile == "" {
		return grid.Parse(DefaultMap)
	}
	bs, err := os.ReadFile(flags.MapFile)
	if err != nil {
		return nil, err
	}
	return grid.Parse(string(bs))
}

func newRand() *rand.Rand {
	s := flags.Seed
	if s == 0 {
		s = uint64(time.Now().UnixNano())
	}
	return rand.New(rand.NewSource(s))
}

// newAgent builds the configured policy and a learner writing into the
// table the policy reads, so what the learner picks up shows in the very
// next action.
func newAgent() (policies.Policy, policies.Learner, error) {
	q := policies.NewQTable(flags.InitialQ)
	policy, err := newPolicy(q)
	if err != nil {
		return nil, nil, err
	}
	return policy, policies.NewQLearner(q, flags.LearningRate, flags.DiscountRate), nil
}

func newPolicy(q *policies.QTable) (policies.Policy, error) {
	rand := newRand()
	switch flags.Policy {
	case "random":
		return policies.NewRandomPolicy(rand), nil
	case "greedy":
		return policies.NewGreedyPolicy(q), nil
	case "epsilon":
		return policies.NewEpsilonPolicy(
			policies.NewGreedyPolicy(q),
			policies.NewRandomPolicy(rand),
			flags.Epsilon,
			rand,
		), nil
	}
	return nil, fmt.Errorf("unknown policy %q, want random, greedy or epsilon", flags.Policy)
}
