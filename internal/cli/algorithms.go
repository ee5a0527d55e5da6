package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/se04-aizu-2025/se04project-white-mocha/internal/registry"
)

// AlgorithmInfo describes one registered algorithm.
type AlgorithmInfo struct {
	Key  string `json:"key"`
	Name string `json:"name"`
}

// NewAlgorithmsCommand creates the algorithms command.
func NewAlgorithmsCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "algorithms",
		Short: "List registered algorithms",
		Long: `List the registered algorithm keys in listing order.

Examples:
  sortscope algorithms
  sortscope algorithms --format json`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return listAlgorithms(rootOpts, registry.Default(), cmd)
		},
	}
}

func listAlgorithms(opts *RootOptions, reg *registry.Registry, cmd *cobra.Command) error {
	entries := reg.All()
	infos := make([]AlgorithmInfo, 0, len(entries))
	for _, e := range entries {
		infos = append(infos, AlgorithmInfo{Key: e.Key, Name: e.Algorithm.Name()})
	}

	return newFormatter(opts, cmd).Success(infos, func(w io.Writer) error {
		for _, info := range infos {
			fmt.Fprintf(w, "%-10s %s\n", info.Key, info.Name)
		}
		return nil
	})
}
