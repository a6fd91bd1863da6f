package cmd

import (
	"io"
	"os"

	"github.com/gosuri/uilive"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/cgratie/simple-reinforcement-learning/game"
)

func WatchCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "watch",
		Short: "Watch the learner teach itself the world",
		RunE: func(cmd *cobra.Command, args []string) error {
			world, err := loadWorld()
			if err != nil {
				return err
			}
			policy, learner, err := newAgent()
			if err != nil {
				return err
			}

			var out io.Writer = os.Stdout
			if isatty.IsTerminal(os.Stdout.Fd()) {
				writer := uilive.New()
				writer.Start()
				defer writer.Stop()
				out = writer
			}

			player := game.NewMachinePlayer(policy, learner)
			g := game.New(world, player, out, flags.StepDelay, flags.ResetDelay)
			g.Start(cmd.Context())
			return nil
		},
	}
}
