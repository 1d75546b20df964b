// Command paint is a terminal pixel canvas.
package main

import (
	"fmt"
	"os"

	"github.com/roach88/paint/internal/cli"
)

func main() {
	if err := cli.NewRootCommand().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(cli.GetExitCode(err))
	}
}
