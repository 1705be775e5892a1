package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	afero "github.com/spf13/afero"
)

// Version is set at build time via -ldflags "-X main.Version=..."
var Version = "dev"

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := NewRootCommand(afero.NewOsFs(), Version).ExecuteContext(ctx); err != nil {
		os.Exit(1)
	}
}
