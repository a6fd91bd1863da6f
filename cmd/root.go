package cmd

import "github.com/spf13/cobra"

func RootCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "gridworld",
		Short: "A grid world for watching a reinforcement learner earn its keep",
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			UpdateFlags()
		},
	}
	AddFlags(cmd)

	cmd.AddCommand(
		PlayCommand(),
		WatchCommand(),
		TrainCommand(),
	)

	return cmd
}
