package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/organize-rs/organize-sub000/internal/cli"
	"github.com/organize-rs/organize-sub000/pkg/display"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	rootCmd := cli.NewRootCmd()
	if err := rootCmd.ExecuteContext(ctx); err != nil {
		renderer, rerr := display.NewRenderer(display.DetectFormat(os.Stderr), os.Stderr)
		if rerr == nil {
			_ = renderer.RenderError(err)
		}
		stop()
		os.Exit(1)
	}
}
