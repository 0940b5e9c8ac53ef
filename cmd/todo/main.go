package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"todo-app/internal/cli"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	root := cli.NewRootCommand(os.Stdout)
	if err := root.Execute(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		stop()
		os.Exit(cli.NewErrorHandler().ExitCode(err))
	}
}
