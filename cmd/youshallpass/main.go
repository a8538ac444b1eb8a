package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/iudanet/youshallpass/internal/cli"
)

var (
	// Version information set via ldflags during build
	Version   = "dev"
	BuildDate = "unknown"
	GitCommit = "unknown"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	root := cli.NewRootCmd(cli.Options{
		Version:   Version,
		BuildDate: BuildDate,
		GitCommit: GitCommit,
	})

	// Cobra сам печатает "Error: ..." в stderr
	if err := root.ExecuteContext(ctx); err != nil {
		stop()
		os.Exit(1)
	}
}
