package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"nxtool.dev/cli/internal/interfaces/cli"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)

	app, err := cli.NewApp()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize: %v\n", err)
		stop()
		os.Exit(1)
	}

	code := cli.Execute(ctx, app)
	stop()
	os.Exit(code)
}
