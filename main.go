package main

import (
	"context"
	"os"

	"github.com/charmbracelet/fang"
	"github.com/garagelog/photodex/cmd"
)

const version = "0.1.0"

func main() {
	root := cmd.NewRootCmd()

	// fang supplies completions, manpages, --version, and wires Ctrl-C into
	// the command context so the review loop can stop cleanly.
	if err := fang.Execute(
		context.Background(),
		root,
		fang.WithVersion(version),
		fang.WithNotifySignal(os.Interrupt),
	); err != nil {
		os.Exit(1)
	}
}
