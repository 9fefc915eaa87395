package main

import (
	"os"

	"github.com/pfrederiksen/enea-outages/internal/cli"
)

func main() {
	if err := cli.NewRootCmd().Execute(); err != nil {
		os.Exit(cli.ExitError)
	}
}
