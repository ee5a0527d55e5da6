// Command sortscope runs instrumented sorts and serves their step traces.
package main

import (
	"fmt"
	"os"

	"github.com/se04-aizu-2025/se04project-white-mocha/internal/cli"
)

func main() {
	if err := cli.NewRootCommand().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(cli.GetExitCode(err))
	}
}
