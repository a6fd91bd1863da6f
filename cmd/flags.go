package cmd

import (
	"path"
	"time"

	"github.com/cgratie/simple-reinforcement-learning/util"
)

type Flags struct {
	MapFile string
	AgentFlags
	RunFlags
	GameFlags
	SavePath string
}

type AgentFlags struct {
	Policy       string
	LearningRate float64
	DiscountRate float64
	Epsilon      float64
	InitialQ     float64
	Seed         uint64
}

type RunFlags struct {
	Episodes      int
	Horizon       int
	CompareRandom bool
}

type GameFlags struct {
	StepDelay  time.Duration
	ResetDelay time.Duration
}

func DefaultFlags() *Flags {
	return &Flags{
		MapFile: "",
		AgentFlags: AgentFlags{
			Policy:       "epsilon",
			LearningRate: 0.05,
			DiscountRate: 0.1,
			Epsilon:      0.01,
			InitialQ:     0,
			Seed:         0,
		},
		RunFlags: RunFlags{
			Episodes:      1000,
			Horizon:       100,
			CompareRandom: false,
		},
		GameFlags: GameFlags{
			StepDelay:  50 * time.Millisecond,
			ResetDelay: time.Second,
		},
		SavePath: "results",
	}
}

// Record saves the flags of the run alongside its results.
func (f *Flags) Record(dir string) error {
	return util.SaveJson(path.Join(dir, "config.json"), f)
}
