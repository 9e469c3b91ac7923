// Command gridwalk edits a grid maze and animates breadth-first and
// depth-first search over it, either in an interactive terminal UI or as a
// one-shot solve that prints the marked board.
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newRootCommand().ExecuteContext(ctx); err != nil {
		stop()
		os.Exit(1)
	}
}
