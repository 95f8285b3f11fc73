package main

import (
	"context"
	"os"
	"os/signal"

	"github.com/rpgo/numwords/internal/cli"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	rootCmd := cli.CreateRootCommand(cli.NewFlags())
	if err := rootCmd.ExecuteContext(ctx); err != nil {
		stop()
		os.Exit(1)
	}
}
