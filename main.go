package main

import (
	"context"
	"os"
	"os/signal"

	"github.com/cgratie/simple-reinforcement-learning/cmd"
)

func main() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt)
	go func() {
		<-sigChan
		cancel()
	}()

	if err := cmd.RootCommand().ExecuteContext(ctx); err != nil {
		os.Exit(1)
	}
}
