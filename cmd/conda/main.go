package main

import (
	"os"

	"github.com/ysusumu13/conda/internal/cli"
)

func main() {
	app := cli.NewApp()
	if err := app.NewRootCmd().Execute(); err != nil {
		os.Exit(int(cli.MapExitCode(err)))
	}
}
