package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/se04-aizu-2025/se04project-white-mocha/internal/engine"
	"github.com/se04-aizu-2025/se04project-white-mocha/internal/input"
	"github.com/se04-aizu-2025/se04project-white-mocha/internal/registry"
)

// SelfTestOptions holds flags for the selftest command.
type SelfTestOptions struct {
	*RootOptions
	Trials int
	Size   int
	Bound  int
	Seed   uint64
}

// NewSelfTestCommand creates the selftest command.
func NewSelfTestCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &SelfTestOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "selftest",
		Short: "Check every algorithm against the standard library sort",
		Long: `Sort random arrays with every registered algorithm and compare the
result with the standard library sort.

Exit codes:
  0 - All algorithms passed
  1 - At least one algorithm produced a wrong result
  2 - Command error (invalid flags)

Examples:
  sortscope selftest
  sortscope selftest --trials 1000 --size 64 --seed 42`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSelfTest(opts, cmd)
		},
	}

	cmd.Flags().IntVar(&opts.Trials, "trials", 100, "random arrays per algorithm")
	cmd.Flags().IntVar(&opts.Size, "size", 20, "length of each array")
	cmd.Flags().IntVar(&opts.Bound, "bound", 1000, "values are drawn from [0, bound)")
	cmd.Flags().Uint64Var(&opts.Seed, "seed", 0, "random seed (0 for random)")

	return cmd
}

func runSelfTest(opts *SelfTestOptions, cmd *cobra.Command) error {
	f := newFormatter(opts.RootOptions, cmd)

	if opts.Trials < 1 || opts.Size < 0 || opts.Bound < 1 {
		return commandError(f, CodeInvalidInput, "trials and bound must be > 0, size must be >= 0", nil)
	}

	results, err := engine.SelfTest(cmd.Context(), registry.Default(), opts.Trials, opts.Size, opts.Bound, input.NewRand(opts.Seed))
	if err != nil {
		return WrapExitError(ExitCommandError, "self test aborted", err)
	}

	text := func(w io.Writer) error {
		for _, r := range results {
			if r.Passed {
				fmt.Fprintf(w, "PASS  %-10s %s (%d trials)\n", r.Key, r.Name, r.Trials)
			} else {
				fmt.Fprintf(w, "FAIL  %-10s %s: %s\n", r.Key, r.Name, r.Failure)
			}
		}
		return nil
	}

	if engine.AllPassed(results) {
		return f.Success(results, text)
	}

	msg := "self test failed"
	if err := f.Failure(CodeSelfTest, msg, results, text); err != nil {
		return err
	}
	return NewExitError(ExitFailure, msg)
}
