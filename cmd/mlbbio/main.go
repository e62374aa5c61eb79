package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/elibenporat/mlbbio/internal/cli"
)

func main() {
	if os.Getenv("SKIP_RUN") == "1" {
		return
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	code := cli.Execute(ctx, os.Args[1:], cli.Options{})
	stop()
	os.Exit(code)
}
