// umark generates the branded icon assets from a single definition.
//
// The design matches the Umami reference: a bold U with wavy cutouts and a
// soft gray backdrop. All sizes derive from the requested canvas size so the
// proportions stay consistent across platforms.
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/umami-mobile/umark/internal/cli"
)

func main() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-sigCh
		cancel()
	}()

	if err := cli.Execute(ctx); err != nil {
		os.Exit(1)
	}
}
