package main

import (
	"fmt"
	"os"

	"github.com/matzehuels/klondike/internal/cli"
	"github.com/matzehuels/klondike/pkg/buildinfo"
)

func main() {
	cli.SetVersion(buildinfo.Version, buildinfo.Commit, buildinfo.Date)

	if err := cli.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
