package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"codeclass/internal/prof"
)

var profiling *prof.Session

// setupProfiling inspects persistent profiling flags and enables the
// corresponding profilers; main stops them after the command returns.
func setupProfiling(cmd *cobra.Command, _ []string) error {
	root := cmd.Root()
	var opts prof.Options
	var err error
	if opts.CPU, err = root.PersistentFlags().GetString("cpu-profile"); err != nil {
		return fmt.Errorf("failed to get cpu-profile flag: %w", err)
	}
	if opts.Mem, err = root.PersistentFlags().GetString("mem-profile"); err != nil {
		return fmt.Errorf("failed to get mem-profile flag: %w", err)
	}
	if opts.Trace, err = root.PersistentFlags().GetString("runtime-trace"); err != nil {
		return fmt.Errorf("failed to get runtime-trace flag: %w", err)
	}
	profiling, err = prof.Start(opts)
	return err
}

func stopProfiling() {
	if err := profiling.Stop(); err != nil {
		fmt.Fprintf(os.Stderr, "failed to write profiles: %v\n", err)
	}
}
