package main

import (
	"context"
	"fmt"
	"os"

	findclone "github.com/mattkeenan/findclone/pkg"
	"github.com/spf13/cobra"
	"go.uber.org/automaxprocs/maxprocs"
)

// version is overridden at build time with -ldflags "-X main.version=..."
var version = "dev"

func main() {
	// hash_workers = 0 sizes the worker pool from GOMAXPROCS, so honour container CPU quotas
	logf := func(format string, args ...interface{}) { findclone.VerboseLog(2, format, args...) }
	if _, err := maxprocs.Set(maxprocs.Logger(logf)); err != nil {
		findclone.Logger().Warn().Err(err).Msg("failed to set GOMAXPROCS")
	}

	ctx, stop := setupSignalContext(context.Background())
	err := newRootCommand().ExecuteContext(ctx)
	stop()
	if err != nil {
		fmt.Fprintf(os.Stderr, "findclone: %v\n", err)
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "findclone <path>",
		Short: "A tool to find duplicate files",
		Long: `findclone reports every pair of byte-identical regular files under a directory.

Files are compared by size, then by digest, then byte for byte. Each confirmed pair is
printed as "<path A> and <path B> are the same".

Environment:
  FINDCLONE_CONFIG     path of an ini configuration file
  FINDCLONE_OVERRIDES  comma-separated key:value overrides
                       (default, format, level, debug, hash_workers, hash_buffer, policy)
  FINDCLONE_DEBUG      debug flags (scan, hash, compare)`,
		Args:          cobra.ExactArgs(1),
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := findclone.LoadFromEnvironment()
			if err != nil {
				return err
			}

			opts, err := cfg.Options()
			if err != nil {
				return err
			}

			reporter, err := findclone.NewReporter(cfg.GetOutputConfig().Format, cmd.OutOrStdout())
			if err != nil {
				return err
			}

			_, err = findclone.NewFinder(reporter, opts).Run(cmd.Context(), args[0])
			return err
		},
	}
}
