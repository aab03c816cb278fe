package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"symcalc/internal/prof"
)

// setupProfiling inspects the profiling flags and starts the requested
// profilers. The returned cleanup stops them and writes the heap profile.
func setupProfiling(cmd *cobra.Command) (func(), error) {
	flags := cmd.Flags()

	var opts prof.Options
	for name, dst := range map[string]*string{
		"cpu-profile":   &opts.CPU,
		"mem-profile":   &opts.Mem,
		"runtime-trace": &opts.Trace,
	} {
		v, err := flags.GetString(name)
		if err != nil {
			return nil, fmt.Errorf("failed to get %s flag: %w", name, err)
		}
		*dst = v
	}
	if !opts.Enabled() {
		return func() {}, nil
	}

	session, err := prof.Start(opts)
	if err != nil {
		return nil, err
	}
	return func() {
		if err := session.Stop(); err != nil {
			fmt.Fprintf(cmd.ErrOrStderr(), "profiling: %v\n", err)
		}
	}, nil
}
