package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/vmodem/vmodem99a/internal/application/dispatch"
	"github.com/vmodem/vmodem99a/internal/infrastructure/cli"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM)
	defer stop()

	// SIGINT is caught rather than ignored so external clients still get
	// the default disposition after exec.
	interrupts := make(chan os.Signal, 1)
	signal.Notify(interrupts, os.Interrupt)

	root := cli.NewRootCmd(ctx, cli.Options{Interrupts: interrupts})
	if err := root.ExecuteContext(ctx); err != nil {
		if !dispatch.IsReported(err) {
			fmt.Fprintln(os.Stderr, "error:", err)
		}
		stop()
		os.Exit(1)
	}
}
