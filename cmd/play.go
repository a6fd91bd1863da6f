package cmd

import (
	"errors"
	"fmt"
	"os"

	"github.com/gosuri/uilive"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/cgratie/simple-reinforcement-learning/game"
)

func PlayCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "play",
		Short: "Steer the agent yourself with the arrow keys",
		RunE: func(cmd *cobra.Command, args []string) error {
			if !isatty.IsTerminal(os.Stdout.Fd()) {
				return errors.New("play needs a terminal")
			}

			world, err := loadWorld()
			if err != nil {
				return err
			}

			// Stays above the live frame area.
			fmt.Println("Arrow keys move, space restarts a finished run, q quits.")

			// Keys should arrive unbuffered, without waiting for enter.
			oldState, err := term.MakeRaw(int(os.Stdin.Fd()))
			if err != nil {
				return err
			}
			defer term.Restore(int(os.Stdin.Fd()), oldState)

			writer := uilive.New()
			writer.Start()
			defer writer.Stop()

			g := game.New(world, game.NewHumanPlayer(os.Stdin), writer, 0, 0)
			g.Start(cmd.Context())
			return nil
		},
	}
}
