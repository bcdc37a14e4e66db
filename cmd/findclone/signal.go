package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	findclone "github.com/mattkeenan/findclone/pkg"
)

// setupSignalContext returns a context cancelled on SIGINT or SIGTERM. Hashing and
// comparison check it between reads, so an interrupted run stops promptly with an error.
func setupSignalContext(parent context.Context) (context.Context, context.CancelFunc) {
	ctx, cancel := context.WithCancel(parent)

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		defer signal.Stop(sigChan)
		select {
		case sig := <-sigChan:
			findclone.Logger().Warn().Str("signal", sig.String()).Msg("received signal, stopping")
			cancel()
		case <-ctx.Done():
		}
	}()

	return ctx, cancel
}
