package cli

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/spf13/cobra"

	"github.com/se04-aizu-2025/se04project-white-mocha/internal/engine"
	"github.com/se04-aizu-2025/se04project-white-mocha/internal/input"
	"github.com/se04-aizu-2025/se04project-white-mocha/internal/observe"
	"github.com/se04-aizu-2025/se04project-white-mocha/internal/registry"
	"github.com/se04-aizu-2025/se04project-white-mocha/internal/store"
	"github.com/se04-aizu-2025/se04project-white-mocha/internal/trace"
)

// RunOptions holds flags for the run command.
type RunOptions struct {
	*RootOptions
	Algorithm string
	Limit     int
	Database  string // optional run log
}

// RunOutput is the JSON payload of the run command.
type RunOutput struct {
	RunID string `json:"run_id,omitempty"` // set when the run was recorded
	engine.Response
	Stats trace.Stats `json:"stats"`
}

// NewRunCommand creates the run command.
func NewRunCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &RunOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "run <array>",
		Short: "Sort an array and print its step trace",
		Long: `Sort an array with one algorithm and print every recorded step.

The array may be written with or without brackets: "[5,1,4,2,8]" and
"5,1,4,2,8" are the same input. The trace is replay-verified before it is
printed. With --db the run is appended to the run log.

Examples:
  sortscope run "[5,1,4,2,8]"
  sortscope run 3,1,2 --algorithm merge --limit 0
  sortscope run 3,1,2 -a selection --db ./runs.db --format json`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSort(opts, args[0], cmd)
		},
	}

	cmd.Flags().StringVarP(&opts.Algorithm, "algorithm", "a", "bubble", "algorithm key")
	cmd.Flags().IntVar(&opts.Limit, "limit", DefaultStepLimit, "steps to print in text mode (0 for all)")
	cmd.Flags().StringVar(&opts.Database, "db", "", "path to SQLite run log (optional)")

	return cmd
}

func runSort(opts *RunOptions, text string, cmd *cobra.Command) error {
	ctx := cmd.Context()
	f := newFormatter(opts.RootOptions, cmd)

	arr, err := input.Parse(text)
	if err != nil {
		return commandError(f, CodeInvalidInput, "invalid array", err)
	}

	logger := slog.Default()
	engOpts := []engine.Option{
		engine.WithLogger(logger),
		engine.WithVerify(true),
	}
	if opts.Verbose {
		engOpts = append(engOpts, engine.WithTap(func(key string) observe.Observer {
			return observe.NewSlog(logger, slog.String("algorithm", key))
		}))
	}
	if opts.Database != "" {
		st, err := store.Open(opts.Database)
		if err != nil {
			return WrapExitError(ExitCommandError, "failed to open database", err)
		}
		defer st.Close()
		engOpts = append(engOpts, engine.WithStore(st))
	}

	eng := engine.New(registry.Default(), engOpts...)
	if err := eng.Resume(ctx); err != nil {
		return WrapExitError(ExitCommandError, "failed to read run log", err)
	}

	res, err := eng.Run(ctx, opts.Algorithm, arr)
	if err != nil {
		switch {
		case errors.Is(err, engine.ErrUnknownAlgorithm):
			msg := fmt.Sprintf("unknown algorithm %q (available: %s)",
				opts.Algorithm, strings.Join(eng.Registry().Keys(), ", "))
			return commandError(f, CodeUnknownAlgorithm, msg, nil)
		case errors.Is(err, engine.ErrInputTooLarge):
			return commandError(f, CodeInvalidInput, "array too large", err)
		}
		return WrapExitError(ExitFailure, "run failed", err)
	}

	out := RunOutput{Response: res.Response(), Stats: res.Stats}
	if eng.Store() != nil {
		out.RunID = res.ID
	}

	return f.Success(out, func(w io.Writer) error {
		newStepPrinter(w, opts.Limit).Print(res)
		if out.RunID != "" {
			fmt.Fprintf(w, "run id: %s\n", out.RunID)
		}
		return nil
	})
}
