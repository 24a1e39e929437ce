// Command biofabric is the BioFabric layout and alignment engine's
// command-line front end (spec.md §6): layout, render, info, convert,
// align, compare, extract, export-order, and search.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/gobiofabric/biofabric/internal/cli"
)

// version is overridden at build time via -ldflags "-X main.version=...".
var version = "dev"

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	cli.Version = version

	root := cli.New().RootCommand()
	err := root.ExecuteContext(ctx)

	if err != nil {
		fmt.Fprintln(os.Stderr, err)
	}
	os.Exit(cli.ExitCode(err))
}
