package cli

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/se04-aizu-2025/se04project-white-mocha/internal/engine"
	"github.com/se04-aizu-2025/se04project-white-mocha/internal/registry"
	"github.com/se04-aizu-2025/se04project-white-mocha/internal/store"
)

// ReplayOptions holds flags for the replay command.
type ReplayOptions struct {
	*RootOptions
	Database string
	RunID    string // optional - specific run only
}

// ReplayResult holds the overall replay result.
type ReplayResult struct {
	Runs             []engine.Reproduction `json:"runs"`
	TotalRuns        int                   `json:"total_runs"`
	AllDeterministic bool                  `json:"all_deterministic"`
}

// NewReplayCommand creates the replay command.
func NewReplayCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &ReplayOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "replay",
		Short: "Replay the run log and verify determinism",
		Long: `Replay every recorded run and verify determinism.

For each run the stored steps are replayed over the stored initial array,
then the algorithm is run again and its trace is compared with the stored
one by digest.

Exit codes:
  0 - All runs are deterministic
  1 - Determinism verification failed
  2 - Command error (database not found, unknown run, etc.)

Examples:
  sortscope replay --db ./runs.db
  sortscope replay --db ./runs.db --run 0190f7c4-...
  sortscope replay --db ./runs.db --format json`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runReplay(opts, cmd)
		},
	}

	cmd.Flags().StringVar(&opts.Database, "db", "", "path to SQLite run log (required)")
	_ = cmd.MarkFlagRequired("db")
	cmd.Flags().StringVar(&opts.RunID, "run", "", "replay one run only")

	return cmd
}

func runReplay(opts *ReplayOptions, cmd *cobra.Command) error {
	ctx := cmd.Context()
	f := newFormatter(opts.RootOptions, cmd)

	// store.Open would create a missing file.
	if _, err := os.Stat(opts.Database); err != nil {
		return WrapExitError(ExitCommandError, "database not found", err)
	}
	st, err := store.Open(opts.Database)
	if err != nil {
		return WrapExitError(ExitCommandError, "failed to open database", err)
	}
	defer st.Close()

	eng := engine.New(registry.Default(),
		engine.WithStore(st),
		engine.WithMaxArraySize(0),
		engine.WithLogger(slog.Default()),
	)

	reps, err := eng.ReproduceAll(ctx, opts.RunID)
	if err != nil {
		if errors.Is(err, store.ErrRunNotFound) {
			return WrapExitError(ExitCommandError, fmt.Sprintf("run not found: %s", opts.RunID), err)
		}
		return WrapExitError(ExitCommandError, "failed to replay run log", err)
	}

	result := ReplayResult{
		Runs:             reps,
		TotalRuns:        len(reps),
		AllDeterministic: true,
	}
	for _, rep := range reps {
		if !rep.Deterministic {
			result.AllDeterministic = false
		}
	}

	text := func(w io.Writer) error {
		return outputReplayText(w, result, opts.Verbose)
	}
	if result.AllDeterministic {
		return f.Success(result, text)
	}

	msg := "determinism verification failed"
	if err := f.Failure(CodeDeterminism, msg, result, text); err != nil {
		return err
	}
	return NewExitError(ExitFailure, msg)
}

// outputReplayText outputs the replay result as text.
func outputReplayText(w io.Writer, result ReplayResult, verbose bool) error {
	if result.TotalRuns == 0 {
		fmt.Fprintln(w, "No runs found in database.")
		return nil
	}

	fmt.Fprintf(w, "Replay Summary: %d run(s)\n", result.TotalRuns)
	fmt.Fprintln(w)

	for _, rep := range result.Runs {
		status := "\u2713"
		if !rep.Deterministic {
			status = "\u2717"
		}

		fmt.Fprintf(w, "%s Run: %s\n", status, rep.RunID)
		if verbose {
			fmt.Fprintf(w, "  Algorithm: %s\n", rep.Algorithm)
			fmt.Fprintf(w, "  Steps: %d\n", rep.Steps)
		} else {
			fmt.Fprintf(w, "  %s, %d steps\n", rep.Algorithm, rep.Steps)
		}

		if !rep.Deterministic {
			fmt.Fprintf(w, "  Warning: %s\n", rep.Reason)
		}
	}
	fmt.Fprintln(w)

	if result.AllDeterministic {
		fmt.Fprintln(w, "\u2713 All runs verified deterministic")
	} else {
		fmt.Fprintln(w, "\u2717 Determinism verification failed")
	}
	return nil
}
