package main

import (
	"os"

	"github.com/hbjs97/goto/internal/cli"
)

func main() {
	cmd := cli.NewApp().NewRootCmd()
	if err := cmd.Execute(); err != nil {
		cli.ReportError(os.Stderr, err)
		os.Exit(int(cli.MapExitCode(err)))
	}
}
