package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/se04-aizu-2025/se04project-white-mocha/internal/input"
)

// GenerateOptions holds flags for the generate command.
type GenerateOptions struct {
	*RootOptions
	Count int
	Max   int
	Seed  uint64 // 0 picks a random seed
}

// NewGenerateCommand creates the generate command.
func NewGenerateCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &GenerateOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate distinct random integers",
		Long: `Generate --count distinct integers drawn from 1..--max.

The output can be passed straight to "sortscope run". A non-zero --seed
makes the output reproducible.

Examples:
  sortscope generate --count 8 --max 50
  sortscope run "$(sortscope generate --count 20 --max 100 --seed 7)"`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGenerate(opts, cmd)
		},
	}

	cmd.Flags().IntVar(&opts.Count, "count", 10, "number of values")
	cmd.Flags().IntVar(&opts.Max, "max", 100, "largest allowed value")
	cmd.Flags().Uint64Var(&opts.Seed, "seed", 0, "random seed (0 for random)")

	return cmd
}

func runGenerate(opts *GenerateOptions, cmd *cobra.Command) error {
	f := newFormatter(opts.RootOptions, cmd)

	arr, err := input.Unique(opts.Count, opts.Max, input.NewRand(opts.Seed))
	if err != nil {
		return commandError(f, CodeInvalidInput, "invalid range", err)
	}

	return f.Success(arr, func(w io.Writer) error {
		_, err := fmt.Fprintln(w, input.Format(arr))
		return err
	})
}
